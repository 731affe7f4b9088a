package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/analysis"
	appErr "github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/pkg/errors"
)

type stubPipeline struct {
	detectCalls  int
	rewriteCalls int
	detectResult *analysis.Result
	rewriteText  string
	err          error
	lastInput    string
	lastOpts     analysis.Options
}

func (p *stubPipeline) detect(ctx context.Context, text string, opts analysis.Options, progress analysis.ProgressFunc) (*analysis.Result, error) {
	p.detectCalls++
	p.lastInput = text
	p.lastOpts = opts
	if p.err != nil {
		return nil, p.err
	}
	return p.detectResult, nil
}

func (p *stubPipeline) rewrite(ctx context.Context, text string, opts analysis.Options, progress analysis.ProgressFunc) (string, error) {
	p.rewriteCalls++
	p.lastInput = text
	p.lastOpts = opts
	if p.err != nil {
		return "", p.err
	}
	return p.rewriteText, nil
}

func (p *stubPipeline) CheckPlagiarism(ctx context.Context, text string, opts analysis.Options, progress analysis.ProgressFunc) (*analysis.Result, error) {
	return p.detect(ctx, text, opts, progress)
}

func (p *stubPipeline) DetectAIContent(ctx context.Context, text string, opts analysis.Options, progress analysis.ProgressFunc) (*analysis.Result, error) {
	return p.detect(ctx, text, opts, progress)
}

func (p *stubPipeline) Humanize(ctx context.Context, text string, opts analysis.Options, progress analysis.ProgressFunc) (string, error) {
	return p.rewrite(ctx, text, opts, progress)
}

func (p *stubPipeline) Summarize(ctx context.Context, text string, opts analysis.Options, progress analysis.ProgressFunc) (string, error) {
	return p.rewrite(ctx, text, opts, progress)
}

func newTestService(p *stubPipeline) *AnalysisService {
	return NewAnalysisService(p, nil, AnalysisServiceConfig{MaxInputChars: 100, TimeoutSeconds: 5})
}

func TestAnalysisService_TrimsInput(t *testing.T) {
	p := &stubPipeline{detectResult: &analysis.Result{Score: 10}}
	svc := newTestService(p)
	result, err := svc.CheckPlagiarism(context.Background(), "  some text  \n", analysis.Options{}, nil)
	require.NoError(t, err)
	require.Equal(t, 10, result.Score)
	require.Equal(t, "some text", p.lastInput)
}

func TestAnalysisService_RejectsEmptyInput(t *testing.T) {
	p := &stubPipeline{}
	svc := newTestService(p)
	_, err := svc.CheckPlagiarism(context.Background(), "   \n\t", analysis.Options{}, nil)
	require.ErrorIs(t, err, appErr.ErrInvalid)
	require.Zero(t, p.detectCalls)
}

func TestAnalysisService_RejectsOversizeInput(t *testing.T) {
	p := &stubPipeline{}
	svc := newTestService(p)
	_, err := svc.Summarize(context.Background(), strings.Repeat("a", 101), analysis.Options{}, nil)
	require.ErrorIs(t, err, appErr.ErrInvalid)
	require.Zero(t, p.rewriteCalls)
}

func TestAnalysisService_DetectionCacheHit(t *testing.T) {
	p := &stubPipeline{detectResult: &analysis.Result{
		Score:    42,
		Segments: []analysis.Segment{{Text: "abc", Flagged: true, SourceURL: "http://s", Confidence: 0.7}},
	}}
	svc := newTestService(p)

	first, err := svc.CheckPlagiarism(context.Background(), "same input", analysis.Options{}, nil)
	require.NoError(t, err)
	second, err := svc.CheckPlagiarism(context.Background(), "same input", analysis.Options{}, nil)
	require.NoError(t, err)

	require.Equal(t, 1, p.detectCalls)
	require.Equal(t, first, second)
}

func TestAnalysisService_CacheKeyedByOptions(t *testing.T) {
	p := &stubPipeline{rewriteText: "rewritten"}
	svc := newTestService(p)

	_, err := svc.Humanize(context.Background(), "same input", analysis.Options{Tone: analysis.ToneCasual}, nil)
	require.NoError(t, err)
	_, err = svc.Humanize(context.Background(), "same input", analysis.Options{Tone: analysis.ToneAcademic}, nil)
	require.NoError(t, err)
	require.Equal(t, 2, p.rewriteCalls)
}

func TestAnalysisService_CacheKeyedByMode(t *testing.T) {
	p := &stubPipeline{rewriteText: "output"}
	svc := newTestService(p)

	_, err := svc.Humanize(context.Background(), "same input", analysis.Options{}, nil)
	require.NoError(t, err)
	_, err = svc.Summarize(context.Background(), "same input", analysis.Options{}, nil)
	require.NoError(t, err)
	require.Equal(t, 2, p.rewriteCalls)
}

func TestAnalysisService_ErrorNotCached(t *testing.T) {
	p := &stubPipeline{err: appErr.NewUserFacing(appErr.MsgUnavailable, nil)}
	svc := newTestService(p)

	_, err := svc.DetectAIContent(context.Background(), "input", analysis.Options{}, nil)
	require.Error(t, err)

	p.err = nil
	p.detectResult = &analysis.Result{Score: 5}
	result, err := svc.DetectAIContent(context.Background(), "input", analysis.Options{}, nil)
	require.NoError(t, err)
	require.Equal(t, 5, result.Score)
	require.Equal(t, 2, p.detectCalls)
}

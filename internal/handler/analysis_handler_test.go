package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/analysis"
	appErr "github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/pkg/errors"
	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/service"
)

type fakePipeline struct {
	result   *analysis.Result
	rewrite  string
	err      error
	lastOpts analysis.Options
}

func (p *fakePipeline) CheckPlagiarism(ctx context.Context, text string, opts analysis.Options, progress analysis.ProgressFunc) (*analysis.Result, error) {
	p.lastOpts = opts
	return p.result, p.err
}

func (p *fakePipeline) DetectAIContent(ctx context.Context, text string, opts analysis.Options, progress analysis.ProgressFunc) (*analysis.Result, error) {
	p.lastOpts = opts
	return p.result, p.err
}

func (p *fakePipeline) Humanize(ctx context.Context, text string, opts analysis.Options, progress analysis.ProgressFunc) (string, error) {
	p.lastOpts = opts
	return p.rewrite, p.err
}

func (p *fakePipeline) Summarize(ctx context.Context, text string, opts analysis.Options, progress analysis.ProgressFunc) (string, error) {
	p.lastOpts = opts
	return p.rewrite, p.err
}

func newTestRouter(p *fakePipeline) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewAnalysisService(p, nil, service.AnalysisServiceConfig{MaxInputChars: 1000})
	router := gin.New()
	api := router.Group("/api/v1")
	RegisterRoutes(api, RouterDeps{Analysis: NewAnalysisHandler(svc)})
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCheckPlagiarismEndpoint(t *testing.T) {
	p := &fakePipeline{result: &analysis.Result{
		Score: 42,
		Segments: []analysis.Segment{
			{Text: "copied bit", Flagged: true, SourceURL: "http://src", Confidence: 0.8},
			{Text: " and the rest"},
		},
	}}
	router := newTestRouter(p)

	rec := postJSON(router, "/api/v1/analyze/plagiarism", `{"text":"copied bit and the rest","sensitivity":"high"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"score":42`)
	require.Contains(t, rec.Body.String(), `"source_url":"http://src"`)
	require.Equal(t, analysis.Options{Sensitivity: "high"}, p.lastOpts)
}

func TestHumanizeEndpoint(t *testing.T) {
	p := &fakePipeline{rewrite: "a natural rewrite"}
	router := newTestRouter(p)

	rec := postJSON(router, "/api/v1/analyze/humanize", `{"text":"stiff robotic text","tone":"casual"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "a natural rewrite")
	require.Equal(t, analysis.Options{Tone: "casual"}, p.lastOpts)
}

func TestSummarizeEndpoint(t *testing.T) {
	p := &fakePipeline{rewrite: "the gist"}
	router := newTestRouter(p)

	rec := postJSON(router, "/api/v1/analyze/summarize", `{"text":"a long document","length":"short"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "the gist")
	require.Equal(t, analysis.Options{SummaryLength: "short"}, p.lastOpts)
}

func TestAnalyzeEndpoint_UserFacingError(t *testing.T) {
	p := &fakePipeline{err: appErr.NewUserFacing(appErr.MsgHighTraffic, nil)}
	router := newTestRouter(p)

	rec := postJSON(router, "/api/v1/analyze/ai", `{"text":"some text"}`)
	require.Contains(t, rec.Body.String(), appErr.MsgHighTraffic)
}

func TestAnalyzeEndpoint_EmptyText(t *testing.T) {
	p := &fakePipeline{result: &analysis.Result{}}
	router := newTestRouter(p)

	rec := postJSON(router, "/api/v1/analyze/plagiarism", `{"text":"   "}`)
	require.Contains(t, rec.Body.String(), "invalid request")
}

func TestAnalyzeEndpoint_BadJSON(t *testing.T) {
	p := &fakePipeline{}
	router := newTestRouter(p)

	rec := postJSON(router, "/api/v1/analyze/plagiarism", `{"text":`)
	require.Contains(t, rec.Body.String(), "invalid request")
}

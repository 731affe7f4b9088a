package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/ai"
	apperrors "github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/pkg/errors"
)

// ProgressFunc receives completion percent in [0,100] and a short status
// line. It is invoked synchronously between chunk operations and must
// return quickly.
type ProgressFunc func(percent float64, message string)

type Config struct {
	MaxWordsPerChunk int
	Retry            RetryPolicy
}

// Analyzer runs the chunk / call-with-retry / parse / reconstruct
// pipeline against a single injected generator. Chunks are processed
// strictly sequentially, one remote call at a time; a failure on any
// chunk aborts the whole run and discards earlier partial results.
type Analyzer struct {
	gen ai.IGenerator
	cfg Config
}

func NewAnalyzer(gen ai.IGenerator, cfg Config) *Analyzer {
	if cfg.MaxWordsPerChunk <= 0 {
		cfg.MaxWordsPerChunk = DefaultMaxWordsPerChunk
	}
	return &Analyzer{gen: gen, cfg: cfg}
}

func (a *Analyzer) CheckPlagiarism(ctx context.Context, text string, opts Options, progress ProgressFunc) (*Result, error) {
	return a.runDetection(ctx, plagiarismMode{}, text, opts, progress)
}

func (a *Analyzer) DetectAIContent(ctx context.Context, text string, opts Options, progress ProgressFunc) (*Result, error) {
	return a.runDetection(ctx, aiDetectionMode{}, text, opts, progress)
}

func (a *Analyzer) Humanize(ctx context.Context, text string, opts Options, progress ProgressFunc) (string, error) {
	return a.runRewrite(ctx, humanizeMode{}, text, opts, progress)
}

func (a *Analyzer) Summarize(ctx context.Context, text string, opts Options, progress ProgressFunc) (string, error) {
	return a.runRewrite(ctx, summarizeMode{}, text, opts, progress)
}

func (a *Analyzer) runDetection(ctx context.Context, mode detectMode, text string, opts Options, progress ProgressFunc) (*Result, error) {
	logger := logutil.GetLogger(ctx).With(zap.String("mode", string(mode.Kind())))
	chunks := SplitChunks(text, a.cfg.MaxWordsPerChunk)
	logger.Info("analysis started", zap.Int("chunks", len(chunks)), zap.Int("input_chars", len(text)))

	var findings []Finding
	for i, chunk := range chunks {
		percent := float64(i+1) / float64(len(chunks)) * 100
		report(progress, percent, fmt.Sprintf("Analyzing section %d of %d...", i+1, len(chunks)))
		raw, err := a.callModel(ctx, mode.BuildRequest(chunk, opts), percent, progress)
		if err != nil {
			logger.Error("chunk analysis failed", zap.Int("chunk", i), zap.Error(err))
			return nil, apperrors.ClassifyModelError(err)
		}
		parsed, err := mode.ParseFindings(raw)
		if err != nil {
			logger.Error("model response rejected", zap.Int("chunk", i), zap.Error(err))
			return nil, apperrors.NewUserFacing(apperrors.MsgBadResponse, err)
		}
		findings = append(findings, parsed...)
	}

	result := Reconstruct(text, findings)
	logger.Info("analysis finished",
		zap.Int("findings", len(findings)),
		zap.Int("segments", len(result.Segments)),
		zap.Int("score", result.Score),
	)
	return &result, nil
}

func (a *Analyzer) runRewrite(ctx context.Context, mode rewriteMode, text string, opts Options, progress ProgressFunc) (string, error) {
	logger := logutil.GetLogger(ctx).With(zap.String("mode", string(mode.Kind())))
	chunks := SplitChunks(text, a.cfg.MaxWordsPerChunk)
	logger.Info("rewrite started", zap.Int("chunks", len(chunks)), zap.Int("input_chars", len(text)))

	outputs := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		percent := float64(i+1) / float64(len(chunks)) * 100
		report(progress, percent, fmt.Sprintf("Rewriting section %d of %d...", i+1, len(chunks)))
		raw, err := a.callModel(ctx, mode.BuildRequest(chunk, opts), percent, progress)
		if err != nil {
			logger.Error("chunk rewrite failed", zap.Int("chunk", i), zap.Error(err))
			return "", apperrors.ClassifyModelError(err)
		}
		out := strings.TrimSpace(raw)
		if out == "" {
			logger.Error("model returned empty rewrite", zap.Int("chunk", i))
			return "", apperrors.NewUserFacing(apperrors.MsgBadResponse, fmt.Errorf("empty model response"))
		}
		outputs = append(outputs, out)
	}

	logger.Info("rewrite finished", zap.Int("chunks", len(chunks)))
	return strings.Join(outputs, " "), nil
}

// callModel is one chunk's remote call under the retry policy, with the
// retry notification wired into the progress stream.
func (a *Analyzer) callModel(ctx context.Context, req *ai.Request, percent float64, progress ProgressFunc) (string, error) {
	return CallWithRetry(ctx, a.cfg.Retry, func(attempt int) {
		report(progress, percent, fmt.Sprintf("The AI service is busy, retrying attempt %d...", attempt))
	}, func(ctx context.Context) (string, error) {
		return a.gen.Generate(ctx, req)
	})
}

func report(progress ProgressFunc, percent float64, message string) {
	if progress == nil {
		return
	}
	progress(percent, message)
}

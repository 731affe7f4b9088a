package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/analysis"
	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/model"
	appErr "github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/pkg/errors"
	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/repo"
)

// Pipeline is the analysis orchestrator surface the service drives.
type Pipeline interface {
	CheckPlagiarism(ctx context.Context, text string, opts analysis.Options, progress analysis.ProgressFunc) (*analysis.Result, error)
	DetectAIContent(ctx context.Context, text string, opts analysis.Options, progress analysis.ProgressFunc) (*analysis.Result, error)
	Humanize(ctx context.Context, text string, opts analysis.Options, progress analysis.ProgressFunc) (string, error)
	Summarize(ctx context.Context, text string, opts analysis.Options, progress analysis.ProgressFunc) (string, error)
}

type AnalysisServiceConfig struct {
	MaxInputChars  int
	TimeoutSeconds int
}

// AnalysisService validates input, short-circuits repeated requests via
// an expiring cache, drives the pipeline, and records history.
type AnalysisService struct {
	pipeline Pipeline
	reports  *repo.ReportRepo
	cache    *expirable.LRU[string, string]
	cfg      AnalysisServiceConfig
}

func NewAnalysisService(pipeline Pipeline, reports *repo.ReportRepo, cfg AnalysisServiceConfig) *AnalysisService {
	cache := expirable.NewLRU[string, string](2000, nil, 2*time.Hour)
	return &AnalysisService{
		pipeline: pipeline,
		reports:  reports,
		cache:    cache,
		cfg:      cfg,
	}
}

func (s *AnalysisService) CheckPlagiarism(ctx context.Context, input string, opts analysis.Options, progress analysis.ProgressFunc) (*analysis.Result, error) {
	return s.runDetection(ctx, analysis.KindPlagiarism, s.pipeline.CheckPlagiarism, input, opts, progress)
}

func (s *AnalysisService) DetectAIContent(ctx context.Context, input string, opts analysis.Options, progress analysis.ProgressFunc) (*analysis.Result, error) {
	return s.runDetection(ctx, analysis.KindAIDetection, s.pipeline.DetectAIContent, input, opts, progress)
}

func (s *AnalysisService) Humanize(ctx context.Context, input string, opts analysis.Options, progress analysis.ProgressFunc) (string, error) {
	return s.runRewrite(ctx, analysis.KindHumanize, s.pipeline.Humanize, input, opts, progress)
}

func (s *AnalysisService) Summarize(ctx context.Context, input string, opts analysis.Options, progress analysis.ProgressFunc) (string, error) {
	return s.runRewrite(ctx, analysis.KindSummarize, s.pipeline.Summarize, input, opts, progress)
}

type detectionFunc func(ctx context.Context, text string, opts analysis.Options, progress analysis.ProgressFunc) (*analysis.Result, error)

type rewriteFunc func(ctx context.Context, text string, opts analysis.Options, progress analysis.ProgressFunc) (string, error)

func (s *AnalysisService) runDetection(ctx context.Context, kind analysis.Kind, run detectionFunc, input string, opts analysis.Options, progress analysis.ProgressFunc) (*analysis.Result, error) {
	text, err := s.cleanInput(input)
	if err != nil {
		return nil, err
	}
	cacheKey := s.cacheKey(kind, opts, text)
	if cached, ok := s.cache.Get(cacheKey); ok {
		var result analysis.Result
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	result, err := run(ctx, text, opts, progress)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(result); err == nil {
		s.cache.Add(cacheKey, string(data))
		s.saveReport(ctx, kind, opts, len(text), result.Score, string(data))
	}
	return result, nil
}

func (s *AnalysisService) runRewrite(ctx context.Context, kind analysis.Kind, run rewriteFunc, input string, opts analysis.Options, progress analysis.ProgressFunc) (string, error) {
	text, err := s.cleanInput(input)
	if err != nil {
		return "", err
	}
	cacheKey := s.cacheKey(kind, opts, text)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return cached, nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	result, err := run(ctx, text, opts, progress)
	if err != nil {
		return "", err
	}
	s.cache.Add(cacheKey, result)
	if data, err := json.Marshal(map[string]string{"text": result}); err == nil {
		s.saveReport(ctx, kind, opts, len(text), -1, string(data))
	}
	return result, nil
}

func (s *AnalysisService) cleanInput(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", appErr.ErrInvalid
	}
	if s.cfg.MaxInputChars > 0 && len(trimmed) > s.cfg.MaxInputChars {
		return "", appErr.ErrInvalid
	}
	return trimmed, nil
}

func (s *AnalysisService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.TimeoutSeconds > 0 {
		return context.WithTimeout(ctx, time.Duration(s.cfg.TimeoutSeconds)*time.Second)
	}
	return context.WithCancel(ctx)
}

func (s *AnalysisService) cacheKey(kind analysis.Kind, opts analysis.Options, text string) string {
	optsData, _ := json.Marshal(opts)
	hash := sha256.Sum256([]byte(text))
	return string(kind) + ":" + string(optsData) + ":" + hex.EncodeToString(hash[:])
}

// saveReport is best-effort: history must never fail an analysis that
// already succeeded.
func (s *AnalysisService) saveReport(ctx context.Context, kind analysis.Kind, opts analysis.Options, inputChars, score int, result string) {
	if s.reports == nil {
		return
	}
	optsData, _ := json.Marshal(opts)
	report := &model.Report{
		ID:         newID(),
		Mode:       string(kind),
		Options:    string(optsData),
		InputChars: inputChars,
		Score:      score,
		Result:     result,
		Ctime:      time.Now().UnixMilli(),
	}
	if err := s.reports.Create(ctx, report); err != nil {
		logutil.GetLogger(ctx).Warn("save report failed", zap.String("mode", string(kind)), zap.Error(err))
		return
	}
	logutil.GetLogger(ctx).Debug("report saved", zap.String("report_id", report.ID), zap.String("mode", string(kind)))
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/ai"
	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/analysis"
	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/pkg/errcode"
	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/pkg/response"
	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/service"
)

type AnalysisHandler struct {
	analysis *service.AnalysisService
}

func NewAnalysisHandler(analysis *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysis: analysis}
}

type plagiarismRequest struct {
	Text        string `json:"text"`
	Sensitivity string `json:"sensitivity"`
}

type aiDetectRequest struct {
	Text string `json:"text"`
}

type humanizeRequest struct {
	Text string `json:"text"`
	Tone string `json:"tone"`
}

type summarizeRequest struct {
	Text   string `json:"text"`
	Length string `json:"length"`
}

func (h *AnalysisHandler) CheckPlagiarism(c *gin.Context) {
	var req plagiarismRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	opts := analysis.Options{Sensitivity: req.Sensitivity}
	result, err := h.analysis.CheckPlagiarism(c.Request.Context(), req.Text, opts, progressLogger(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, result)
}

func (h *AnalysisHandler) DetectAIContent(c *gin.Context) {
	var req aiDetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	result, err := h.analysis.DetectAIContent(c.Request.Context(), req.Text, analysis.Options{}, progressLogger(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, result)
}

func (h *AnalysisHandler) Humanize(c *gin.Context) {
	var req humanizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	opts := analysis.Options{Tone: req.Tone}
	text, err := h.analysis.Humanize(c.Request.Context(), req.Text, opts, progressLogger(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, gin.H{"text": text})
}

func (h *AnalysisHandler) Summarize(c *gin.Context) {
	var req summarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errcode.ErrInvalid, "invalid request")
		return
	}
	opts := analysis.Options{SummaryLength: req.Length}
	summary, err := h.analysis.Summarize(c.Request.Context(), req.Text, opts, progressLogger(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, gin.H{"summary": summary})
}

func (h *AnalysisHandler) fail(c *gin.Context, err error) {
	if errors.Is(err, ai.ErrUnavailable) {
		response.Error(c, errcode.ErrAIUnavailable, "ai not configured")
		return
	}
	handleError(c, err)
}

// progressLogger surfaces pipeline progress in the request log; the
// response itself stays a single synchronous JSON body.
func progressLogger(c *gin.Context) analysis.ProgressFunc {
	logger := logutil.GetLogger(c.Request.Context())
	return func(percent float64, message string) {
		logger.Info("analysis progress", zap.Float64("percent", percent), zap.String("message", message))
	}
}

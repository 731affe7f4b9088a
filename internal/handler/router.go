package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/middleware"
)

type RouterDeps struct {
	Analysis        *AnalysisHandler
	Reports         *ReportHandler
	RateLimitWindow time.Duration
}

func RegisterRoutes(api *gin.RouterGroup, deps RouterDeps) {
	analyzeGroup := api.Group("/analyze")
	analyzeGroup.Use(middleware.RateLimit(deps.RateLimitWindow))
	analyzeGroup.POST("/plagiarism", deps.Analysis.CheckPlagiarism)
	analyzeGroup.POST("/ai", deps.Analysis.DetectAIContent)
	analyzeGroup.POST("/humanize", deps.Analysis.Humanize)
	analyzeGroup.POST("/summarize", deps.Analysis.Summarize)

	if deps.Reports != nil {
		api.GET("/reports", deps.Reports.List)
		api.GET("/reports/:id", deps.Reports.Get)
		api.DELETE("/reports/:id", deps.Reports.Delete)
	}
}

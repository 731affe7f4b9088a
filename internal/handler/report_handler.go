package handler

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/model"
	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/pkg/response"
	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/service"
)

type ReportHandler struct {
	reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	var modes []string
	if raw := c.Query("modes"); raw != "" {
		for _, mode := range strings.Split(raw, ",") {
			mode = strings.TrimSpace(mode)
			if mode != "" {
				modes = append(modes, mode)
			}
		}
	}
	items, err := h.reports.List(c.Request.Context(), modes, limit)
	if err != nil {
		handleError(c, err)
		return
	}
	if items == nil {
		items = []*model.Report{}
	}
	response.Success(c, gin.H{"items": items})
}

func (h *ReportHandler) Get(c *gin.Context) {
	report, err := h.reports.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, report)
}

func (h *ReportHandler) Delete(c *gin.Context) {
	if err := h.reports.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, gin.H{})
}

package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/pkg/errcode"
	appErr "github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/pkg/errors"
	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/pkg/response"
)

func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID, _ := c.Get("request_id")
	logutil.GetLogger(c.Request.Context()).Error("request failed",
		zap.Any("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	if ufe, ok := appErr.AsUserFacing(err); ok {
		response.Error(c, errcode.ErrAnalysisFailed, ufe.Error())
		return
	}
	switch {
	case errors.Is(err, appErr.ErrInvalid):
		response.Error(c, errcode.ErrInvalid, "invalid request")
	case errors.Is(err, appErr.ErrNotFound):
		response.Error(c, errcode.ErrNotFound, "not found")
	case errors.Is(err, appErr.ErrTooMany):
		response.Error(c, errcode.ErrTooMany, "too many requests")
	default:
		response.Error(c, errcode.ErrInternal, "internal error")
	}
}

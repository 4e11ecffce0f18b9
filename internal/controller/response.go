package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"turnstone_admin_v1/internal/service"
)

// respondError 业务错误统一转 HTTP 状态码
// 没匹配到哨兵的一律 500
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrUserDisabled),
		errors.Is(err, service.ErrInvalidToken):
		status = http.StatusUnauthorized
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}

// parseIDParam 路径参数转 int64，非法时第二个返回值为 false
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

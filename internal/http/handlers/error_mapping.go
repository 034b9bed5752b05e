package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/motorparts-api/internal/http/response"
	"github.com/motorparts-api/internal/logger"
	"github.com/motorparts-api/internal/service"
)

// mappedError 业务错误到 HTTP 状态码的映射
type mappedError struct {
	target error
	status int
}

// errorRules 可预期的业务错误按序匹配,未命中的按内部错误处理。
var errorRules = []mappedError{
	{target: service.ErrNotFound, status: http.StatusNotFound},
	{target: service.ErrCartItemNotFound, status: http.StatusNotFound},
	{target: service.ErrNameRequired, status: http.StatusBadRequest},
	{target: service.ErrVehicleRequired, status: http.StatusBadRequest},
	{target: service.ErrModelRequired, status: http.StatusBadRequest},
	{target: service.ErrCategoryRequired, status: http.StatusBadRequest},
	{target: service.ErrPriceInvalid, status: http.StatusBadRequest},
	{target: service.ErrQuantityInvalid, status: http.StatusBadRequest},
	{target: service.ErrCategoryExists, status: http.StatusBadRequest},
	{target: service.ErrEmptyBatch, status: http.StatusBadRequest},
	{target: service.ErrIDsRequired, status: http.StatusBadRequest},
	{target: service.ErrCartEmpty, status: http.StatusBadRequest},
	{target: service.ErrInsufficientStock, status: http.StatusBadRequest},
}

// respondError 统一错误出口。业务错误按映射表返回,
// 存储类错误记日志并对外只给笼统消息。
func respondError(c *gin.Context, err error) {
	for _, rule := range errorRules {
		if errors.Is(err, rule.target) {
			c.JSON(rule.status, response.ErrorBody{Error: err.Error()})
			return
		}
	}
	logger.Errorw("请求处理失败",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"error", err,
	)
	response.InternalError(c)
}

package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody 统一错误响应体
type ErrorBody struct {
	Error   string      `json:"error"`             // 错误消息
	Details interface{} `json:"details,omitempty"` // 补充信息
}

// Pagination 分页信息
type Pagination struct {
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	TotalItems int64       `json:"total_items"`
	TotalPages int         `json:"total_pages"`
	Sort       string      `json:"sort,omitempty"`
	Order      string      `json:"order,omitempty"`
	Filters    interface{} `json:"filters,omitempty"`
}

// PageResponse 分页响应结构
type PageResponse struct {
	Pagination Pagination  `json:"pagination"`
	Data       interface{} `json:"data"`
}

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 创建成功响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// OKWithPage 200 分页响应
func OKWithPage(c *gin.Context, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, PageResponse{
		Pagination: pagination,
		Data:       data,
	})
}

// BadRequest 400 参数或业务校验失败
func BadRequest(c *gin.Context, msg string, details interface{}) {
	c.JSON(http.StatusBadRequest, ErrorBody{Error: msg, Details: details})
}

// NotFound 404 资源不存在
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, ErrorBody{Error: msg})
}

// InternalError 500 服务内部错误,对外只暴露笼统消息
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, ErrorBody{Error: "internal server error"})
}

package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/motorparts-api/internal/http/response"
)

// parseUintParam 解析路径中的数字 ID,非法格式按参数错误返回。
func parseUintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid id", gin.H{name: raw})
		return 0, false
	}
	return uint(id), true
}

// normalizePagination 归一化分页参数,limit 上限 100。
func normalizePagination(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

// queryInt 读取整数查询参数,缺省或非法时返回 fallback。
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

// IDsRequest 批量删除请求体
type IDsRequest struct {
	IDs []uint `json:"ids"`
}

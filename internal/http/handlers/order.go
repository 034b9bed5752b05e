package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/motorparts-api/internal/http/response"
	"github.com/motorparts-api/internal/repository"
)

// ListOrders 订单列表,创建时间倒序分页
func (h *Handler) ListOrders(c *gin.Context) {
	page, limit := normalizePagination(queryInt(c, "page", 1), queryInt(c, "limit", 10))
	result, err := h.Orders.List(repository.OrderListFilter{Page: page, Limit: limit})
	if err != nil {
		respondError(c, err)
		return
	}
	response.OKWithPage(c, result.Orders, response.Pagination{
		Page:       page,
		Limit:      limit,
		TotalItems: result.Total,
		TotalPages: totalPagesOf(result.Total, limit),
	})
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	order, err := h.Orders.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, order)
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/motorparts-api/internal/http/response"
	"github.com/motorparts-api/internal/service"
)

// CartItemRequest 购物车条目请求
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// GetCart 获取购物车,不存在时自动创建空车
func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.Cart.GetOrCreate()
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, cart)
}

// AddCartItem 加入商品,quantity 缺省按 1 处理
func (h *Handler) AddCartItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	cart, err := h.Cart.AddItem(req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, cart)
}

// UpdateCartItem 设置条目数量,数量 <= 0 即移除
func (h *Handler) UpdateCartItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	cart, err := h.Cart.UpdateItem(req.ProductID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, cart)
}

// RemoveCartItem 移除条目,条目不存在时同样返回成功
func (h *Handler) RemoveCartItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	cart, err := h.Cart.RemoveItem(req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, cart)
}

// CheckoutRequest 结算请求,客户信息可整体或部分缺省
type CheckoutRequest struct {
	CustomerName    string `json:"customer_name"`
	CustomerPhone   string `json:"customer_phone"`
	CustomerAddress string `json:"customer_address"`
	Note            string `json:"note"`
}

// Checkout 购物车结算,成功返回新建订单
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	order, err := h.Orders.Checkout(service.CheckoutInput{
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		Note:            req.Note,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, order)
}

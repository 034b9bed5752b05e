package service

import "errors"

// 业务错误哨兵,由 HTTP 层统一映射为状态码。
var (
	ErrNotFound          = errors.New("resource not found")
	ErrNameRequired      = errors.New("name is required")
	ErrVehicleRequired   = errors.New("vehicle is required")
	ErrModelRequired     = errors.New("model is required")
	ErrCategoryRequired  = errors.New("category is required")
	ErrPriceInvalid      = errors.New("price must be a non-negative number")
	ErrQuantityInvalid   = errors.New("quantity must not be negative")
	ErrCategoryExists    = errors.New("category already exists for this vehicle")
	ErrEmptyBatch        = errors.New("batch payload is empty")
	ErrIDsRequired       = errors.New("ids are required")
	ErrCartEmpty         = errors.New("cart is empty")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)

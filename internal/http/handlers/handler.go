package handlers

import "github.com/motorparts-api/internal/service"

// Handler HTTP 处理器,聚合各业务服务。
type Handler struct {
	Vehicles   *service.VehicleService
	Models     *service.VehicleModelService
	Categories *service.CategoryService
	Products   *service.ProductService
	Cart       *service.CartService
	Orders     *service.OrderService
	Stats      *service.StatsService
}

// NewHandler 创建处理器
func NewHandler(
	vehicles *service.VehicleService,
	models *service.VehicleModelService,
	categories *service.CategoryService,
	products *service.ProductService,
	cart *service.CartService,
	orders *service.OrderService,
	stats *service.StatsService,
) *Handler {
	return &Handler{
		Vehicles:   vehicles,
		Models:     models,
		Categories: categories,
		Products:   products,
		Cart:       cart,
		Orders:     orders,
		Stats:      stats,
	}
}

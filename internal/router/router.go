package router

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/motorparts-api/internal/cache"
	"github.com/motorparts-api/internal/config"
	"github.com/motorparts-api/internal/http/handlers"
	"github.com/motorparts-api/internal/logger"
	"github.com/motorparts-api/internal/models"
	"github.com/motorparts-api/internal/provider"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	handler := handlers.NewHandler(
		c.VehicleService,
		c.VehicleModelService,
		c.CategoryService,
		c.ProductService,
		c.CartService,
		c.OrderService,
		c.StatsService,
	)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "mp"
	}
	// 批量写接口的限流规则,防止导入脚本打垮存储
	bulkRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:bulk", redisPrefix),
		WindowSeconds: cfg.Security.BulkRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.BulkRateLimit.MaxRequests,
	}
	bulkLimit := RateLimitMiddleware(cache.Client(), bulkRule, KeyByIP)

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))
	r.Use(BodySizeLimitMiddleware(cfg.Security.MaxBodyBytes))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", healthCheck)

	api := r.Group("/api")
	{
		vehicles := api.Group("/vehicles")
		{
			vehicles.GET("", handler.ListVehicles)
			vehicles.POST("", handler.CreateVehicle)
			vehicles.POST("/bulk", bulkLimit, handler.BulkCreateVehicles)
			vehicles.POST("/delete-multiple", handler.DeleteVehicles)
			vehicles.GET("/:id", handler.GetVehicle)
			vehicles.PUT("/:id", handler.UpdateVehicle)
			vehicles.DELETE("/:id", handler.DeleteVehicle)
		}

		vehicleModels := api.Group("/models")
		{
			vehicleModels.GET("", handler.ListVehicleModels)
			vehicleModels.POST("", handler.CreateVehicleModel)
			vehicleModels.POST("/bulk", bulkLimit, handler.BulkCreateVehicleModels)
			vehicleModels.POST("/delete-multiple", handler.DeleteVehicleModels)
			vehicleModels.GET("/:id", handler.GetVehicleModel)
			vehicleModels.PUT("/:id", handler.UpdateVehicleModel)
			vehicleModels.DELETE("/:id", handler.DeleteVehicleModel)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", handler.ListCategories)
			categories.POST("", handler.CreateCategory)
			categories.POST("/bulk", bulkLimit, handler.BulkCreateCategories)
			categories.POST("/delete-multiple", handler.DeleteCategories)
			categories.GET("/:id", handler.GetCategory)
			categories.PUT("/:id", handler.UpdateCategory)
			categories.DELETE("/:id", handler.DeleteCategory)
		}

		products := api.Group("/products")
		{
			products.GET("", handler.ListProducts)
			products.POST("", handler.CreateProduct)
			products.POST("/bulk-insert", bulkLimit, handler.BulkCreateProducts)
			products.POST("/delete-multiple", handler.DeleteProducts)
			products.GET("/:id", handler.GetProduct)
			products.PUT("/:id", handler.UpdateProduct)
			products.DELETE("/:id", handler.DeleteProduct)
		}

		cart := api.Group("/cart")
		{
			cart.GET("", handler.GetCart)
			cart.POST("/add", handler.AddCartItem)
			cart.PUT("/update", handler.UpdateCartItem)
			cart.DELETE("/remove", handler.RemoveCartItem)
			cart.POST("/checkout", handler.Checkout)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", handler.ListOrders)
			orders.GET("/:id", handler.GetOrder)
		}

		api.GET("/stats/overview", handler.StatsOverview)
	}

	return r
}

// healthCheck 存活检查,顺带确认数据库连通。
func healthCheck(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		c.JSON(503, gin.H{"status": "degraded", "database": "unreachable"})
		return
	}
	c.JSON(200, gin.H{"status": "ok"})
}

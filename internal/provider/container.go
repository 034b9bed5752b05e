package provider

import (
	"time"

	"github.com/motorparts-api/internal/cache"
	"github.com/motorparts-api/internal/config"
	"github.com/motorparts-api/internal/logger"
	"github.com/motorparts-api/internal/models"
	"github.com/motorparts-api/internal/repository"
	"github.com/motorparts-api/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	VehicleRepo        repository.VehicleRepository
	VehicleModelRepo   repository.VehicleModelRepository
	CategoryRepo       repository.CategoryRepository
	ProductRepo        repository.ProductRepository
	CartRepo           repository.CartRepository
	OrderRepo          repository.OrderRepository
	InvoiceCounterRepo repository.InvoiceCounterRepository
	StatsRepo          repository.StatsRepository

	// Services
	VehicleService      *service.VehicleService
	VehicleModelService *service.VehicleModelService
	CategoryService     *service.CategoryService
	ProductService      *service.ProductService
	CartService         *service.CartService
	OrderService        *service.OrderService
	StatsService        *service.StatsService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.VehicleRepo = repository.NewGormVehicleRepository(db)
	c.VehicleModelRepo = repository.NewGormVehicleModelRepository(db)
	c.CategoryRepo = repository.NewGormCategoryRepository(db)
	c.ProductRepo = repository.NewGormProductRepository(db)
	c.CartRepo = repository.NewGormCartRepository(db)
	c.OrderRepo = repository.NewGormOrderRepository(db)
	c.InvoiceCounterRepo = repository.NewGormInvoiceCounterRepository(db)
	c.StatsRepo = repository.NewGormStatsRepository(db)
}

func (c *Container) initServices() {
	cacheTTL := time.Duration(c.Config.Stats.CacheTTLSeconds) * time.Second
	c.StatsService = service.NewStatsService(c.StatsRepo, cacheTTL)

	c.VehicleService = service.NewVehicleService(c.VehicleRepo)
	c.VehicleModelService = service.NewVehicleModelService(c.VehicleModelRepo)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.StatsService)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(
		models.DB,
		c.OrderRepo,
		c.InvoiceCounterRepo,
		c.CartRepo,
		c.ProductRepo,
		c.Config.Order.NormalizedInvoicePrefix(),
		c.StatsService,
	)
}

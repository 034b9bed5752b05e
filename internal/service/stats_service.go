package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/motorparts-api/internal/cache"
	"github.com/motorparts-api/internal/constants"
	"github.com/motorparts-api/internal/logger"
	"github.com/motorparts-api/internal/models"
	"github.com/motorparts-api/internal/repository"
)

// statsOverviewCacheKey 仪表盘总览的缓存键
const statsOverviewCacheKey = "stats:overview"

// MonthRevenue 月度营收序列元素,Month 形如 "2026-08"
type MonthRevenue struct {
	Month      string       `json:"month"`
	Revenue    models.Money `json:"revenue"`
	OrderCount int64        `json:"order_count"`
}

// StatsOverview 仪表盘总览
type StatsOverview struct {
	TotalProducts        int64                         `json:"total_products"`
	TotalStock           int64                         `json:"total_stock"`
	OutOfStockCount      int64                         `json:"out_of_stock_count"`
	TotalByBrand         []repository.VehicleStockRow  `json:"total_by_brand"`
	CategoryDistribution []repository.CategoryCountRow `json:"category_distribution"`
	MonthlyRevenue       []MonthRevenue                `json:"monthly_revenue"`
	TotalOrders          int64                         `json:"total_orders"`
	TotalRevenue         models.Money                  `json:"total_revenue"`
	NewCustomers         int64                         `json:"new_customers"`
	TopLowStock          []models.Product              `json:"top_low_stock"`
	TopBrand             string                        `json:"top_brand"`
}

// StatsService 仪表盘统计服务,聚合结果经 Redis 读穿缓存。
type StatsService struct {
	repo     repository.StatsRepository
	cacheTTL time.Duration
	now      func() time.Time
}

// NewStatsService 创建统计服务,cacheTTL <= 0 时不缓存。
func NewStatsService(repo repository.StatsRepository, cacheTTL time.Duration) *StatsService {
	return &StatsService{repo: repo, cacheTTL: cacheTTL, now: time.Now}
}

// Overview 返回仪表盘总览,缓存命中直接返回,未命中聚合后回填。
func (s *StatsService) Overview(ctx context.Context) (*StatsOverview, error) {
	if s.cacheTTL <= 0 {
		return s.build()
	}

	var cached StatsOverview
	hit, err := cache.GetJSON(ctx, statsOverviewCacheKey, &cached)
	if err != nil {
		logger.Warnw("读取统计缓存失败", "error", err)
	}
	if hit {
		return &cached, nil
	}

	overview, err := s.build()
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, statsOverviewCacheKey, overview, s.cacheTTL); err != nil {
		logger.Warnw("写入统计缓存失败", "error", err)
	}
	return overview, nil
}

// Invalidate 商品或订单变更后使缓存失效
func (s *StatsService) Invalidate() {
	if s.cacheTTL <= 0 {
		return
	}
	if err := cache.Del(context.Background(), statsOverviewCacheKey); err != nil {
		logger.Warnw("清除统计缓存失败", "error", err)
	}
}

func (s *StatsService) build() (*StatsOverview, error) {
	overview := &StatsOverview{}

	var err error
	if overview.TotalProducts, err = s.repo.CountProducts(); err != nil {
		return nil, err
	}
	if overview.TotalStock, err = s.repo.SumStock(); err != nil {
		return nil, err
	}
	if overview.OutOfStockCount, err = s.repo.CountOutOfStock(); err != nil {
		return nil, err
	}
	if overview.TotalByBrand, err = s.repo.StockByVehicle(); err != nil {
		return nil, err
	}
	if overview.CategoryDistribution, err = s.repo.CountByCategory(); err != nil {
		return nil, err
	}
	if overview.TotalOrders, err = s.repo.CountOrders(nil); err != nil {
		return nil, err
	}

	completed := constants.CompletedOrderStatuses()
	revenue, err := s.repo.SumRevenue(completed)
	if err != nil {
		return nil, err
	}
	overview.TotalRevenue = models.NewMoneyFromDecimal(revenue)

	overview.MonthlyRevenue, err = s.monthlyRevenue(completed)
	if err != nil {
		return nil, err
	}

	since := s.now().AddDate(0, 0, -30)
	if overview.NewCustomers, err = s.repo.CountDistinctCustomers(since); err != nil {
		return nil, err
	}
	if overview.TopLowStock, err = s.repo.LowStock(5); err != nil {
		return nil, err
	}
	for i := range overview.TopLowStock {
		overview.TopLowStock[i].Status = overview.TopLowStock[i].DisplayStatus()
	}

	overview.TopBrand = topBrand(overview.TotalByBrand)
	return overview, nil
}

// monthlyRevenue 固定 12 个自然月桶,最旧在前,末尾为当前月,
// 无成交的月份补零。
func (s *StatsService) monthlyRevenue(statuses []string) ([]MonthRevenue, error) {
	now := s.now()
	year, month, _ := now.Date()
	start := time.Date(year, month, 1, 0, 0, 0, 0, now.Location()).AddDate(0, -11, 0)

	rows, err := s.repo.MonthlyRevenue(start, statuses)
	if err != nil {
		return nil, err
	}
	byMonth := make(map[string]repository.MonthRevenueRow, len(rows))
	for _, row := range rows {
		byMonth[row.Month] = row
	}

	series := make([]MonthRevenue, 0, 12)
	for i := 0; i < 12; i++ {
		bucket := start.AddDate(0, i, 0)
		key := bucket.Format("2006-01")
		entry := MonthRevenue{
			Month:   key,
			Revenue: models.NewMoneyFromDecimal(decimal.Zero),
		}
		if row, ok := byMonth[key]; ok {
			entry.Revenue = models.NewMoneyFromDecimal(row.Revenue)
			entry.OrderCount = row.OrderCount
		}
		series = append(series, entry)
	}
	return series, nil
}

// topBrand 取库存合计最高的车系
func topBrand(rows []repository.VehicleStockRow) string {
	var best string
	var bestStock int64 = -1
	for _, row := range rows {
		if row.TotalStock > bestStock {
			best = row.Vehicle
			bestStock = row.TotalStock
		}
	}
	return best
}

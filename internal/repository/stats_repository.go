package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/motorparts-api/internal/constants"
	"github.com/motorparts-api/internal/models"
)

// VehicleStockRow 按品牌聚合的商品数与库存量。
type VehicleStockRow struct {
	Vehicle      string `json:"vehicle"`
	ProductCount int64  `json:"productCount"`
	TotalStock   int64  `json:"totalStock"`
}

// CategoryCountRow 按分类聚合的商品数。
type CategoryCountRow struct {
	Category     string `json:"category"`
	ProductCount int64  `json:"productCount"`
}

// MonthRevenueRow 单个自然月的成交额与订单数,Month 形如 "2026-08"。
type MonthRevenueRow struct {
	Month      string          `json:"month"`
	Revenue    decimal.Decimal `json:"revenue"`
	OrderCount int64           `json:"orderCount"`
}

// StatsRepository 仪表盘统计数据访问接口,只读聚合查询。
type StatsRepository interface {
	CountProducts() (int64, error)
	SumStock() (int64, error)
	CountOutOfStock() (int64, error)
	StockByVehicle() ([]VehicleStockRow, error)
	CountByCategory() ([]CategoryCountRow, error)
	CountOrders(statuses []string) (int64, error)
	SumRevenue(statuses []string) (decimal.Decimal, error)
	MonthlyRevenue(since time.Time, statuses []string) ([]MonthRevenueRow, error)
	CountDistinctCustomers(since time.Time) (int64, error)
	LowStock(limit int) ([]models.Product, error)
}

type GormStatsRepository struct {
	db *gorm.DB
}

func NewGormStatsRepository(db *gorm.DB) *GormStatsRepository {
	return &GormStatsRepository{db: db}
}

func (r *GormStatsRepository) CountProducts() (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).Count(&count).Error
	return count, err
}

func (r *GormStatsRepository) SumStock() (int64, error) {
	var total int64
	err := r.db.Model(&models.Product{}).
		Select("COALESCE(SUM(quantity), 0)").Scan(&total).Error
	return total, err
}

// CountOutOfStock 以实际余量判定,包含状态字段未同步的商品。
func (r *GormStatsRepository) CountOutOfStock() (int64, error) {
	var count int64
	err := r.db.Model(&models.Product{}).
		Where("quantity <= 0 OR status = ?", constants.ProductStatusOutOfStock).
		Count(&count).Error
	return count, err
}

func (r *GormStatsRepository) StockByVehicle() ([]VehicleStockRow, error) {
	var rows []VehicleStockRow
	err := r.db.Model(&models.Product{}).
		Select("vehicle, COUNT(*) AS product_count, COALESCE(SUM(quantity), 0) AS total_stock").
		Group("vehicle").
		Order("product_count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *GormStatsRepository) CountByCategory() ([]CategoryCountRow, error) {
	var rows []CategoryCountRow
	err := r.db.Model(&models.Product{}).
		Select("category, COUNT(*) AS product_count").
		Group("category").
		Order("product_count DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *GormStatsRepository) CountOrders(statuses []string) (int64, error) {
	var count int64
	query := r.db.Model(&models.Order{})
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	err := query.Count(&count).Error
	return count, err
}

func (r *GormStatsRepository) SumRevenue(statuses []string) (decimal.Decimal, error) {
	var total decimal.Decimal
	query := r.db.Model(&models.Order{})
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	err := query.Select("COALESCE(SUM(total_amount), 0)").Scan(&total).Error
	return total, err
}

// MonthlyRevenue 按自然月聚合成交额,月份表达式按方言生成。
func (r *GormStatsRepository) MonthlyRevenue(since time.Time, statuses []string) ([]MonthRevenueRow, error) {
	expr := monthBucketExpr(r.db)
	query := r.db.Model(&models.Order{}).
		Select(expr + " AS month, COALESCE(SUM(total_amount), 0) AS revenue, COUNT(*) AS order_count").
		Where("created_at >= ?", since)
	if len(statuses) > 0 {
		query = query.Where("status IN ?", statuses)
	}
	var rows []MonthRevenueRow
	err := query.Group(expr).Order("month ASC").Scan(&rows).Error
	return rows, err
}

// CountDistinctCustomers 按手机号去重统计时间窗内的下单客户数。
func (r *GormStatsRepository) CountDistinctCustomers(since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Order{}).
		Where("created_at >= ? AND customer_phone <> ''", since).
		Distinct("customer_phone").
		Count(&count).Error
	return count, err
}

// LowStock 库存升序取前 limit 件,用于补货提醒。
func (r *GormStatsRepository) LowStock(limit int) ([]models.Product, error) {
	if limit < 1 {
		limit = 5
	}
	var products []models.Product
	err := r.db.Order("quantity ASC").Limit(limit).Find(&products).Error
	return products, err
}

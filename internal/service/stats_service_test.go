package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/motorparts-api/internal/models"
	"github.com/motorparts-api/internal/repository"
)

var statsSvcInvoiceSeq int

// seedStatsOrder 以指定状态与时间落一笔订单
func seedStatsOrder(t *testing.T, db *gorm.DB, status string, amount int64, phone string, createdAt time.Time) {
	t.Helper()
	statsSvcInvoiceSeq++
	order := &models.Order{
		InvoiceCode:   fmt.Sprintf("TEST%05d", statsSvcInvoiceSeq),
		CustomerName:  "客户",
		CustomerPhone: phone,
		Status:        status,
		TotalAmount:   models.NewMoneyFromDecimal(decimal.NewFromInt(amount)),
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
	err := db.Model(&models.Order{}).Where("id = ?", order.ID).
		UpdateColumn("created_at", createdAt).Error
	if err != nil {
		t.Fatalf("backdate order failed: %v", err)
	}
}

func newTestStatsService(db *gorm.DB, now time.Time) *StatsService {
	svc := NewStatsService(repository.NewGormStatsRepository(db), time.Minute)
	svc.now = func() time.Time { return now }
	return svc
}

func TestStatsOverviewAggregates(t *testing.T) {
	db := setupServiceTestDB(t)
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	svc := newTestStatsService(db, now)

	seedServiceProduct(t, db, "Piston", 100, 10)
	seedServiceProduct(t, db, "Chain", 50, 0)
	scarce := seedServiceProduct(t, db, "Filter", 30, 2)
	scarce.Vehicle = "Yamaha Exciter"
	if err := db.Save(scarce).Error; err != nil {
		t.Fatalf("save product failed: %v", err)
	}

	seedStatsOrder(t, db, "completed", 300, "0901", now.AddDate(0, 0, -1))
	seedStatsOrder(t, db, "paid", 200, "0902", now.AddDate(0, 0, -2))
	seedStatsOrder(t, db, "cancelled", 999, "0903", now.AddDate(0, 0, -3))

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}

	if overview.TotalProducts != 3 {
		t.Fatalf("expected 3 products, got %d", overview.TotalProducts)
	}
	if overview.TotalStock != 12 {
		t.Fatalf("expected total stock 12, got %d", overview.TotalStock)
	}
	if overview.OutOfStockCount != 1 {
		t.Fatalf("expected 1 out of stock, got %d", overview.OutOfStockCount)
	}
	if overview.TotalOrders != 3 {
		t.Fatalf("order count must include every status, got %d", overview.TotalOrders)
	}
	// 营收只计完成态,取消单不计入
	if !overview.TotalRevenue.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected revenue 500, got %s", overview.TotalRevenue)
	}
	if overview.NewCustomers != 3 {
		t.Fatalf("expected 3 distinct customers, got %d", overview.NewCustomers)
	}
	// 库存合计最高的车系
	if overview.TopBrand != "Honda Wave" {
		t.Fatalf("expected top brand Honda Wave, got %s", overview.TopBrand)
	}
	if len(overview.TopLowStock) != 3 || overview.TopLowStock[0].Name != "Chain" {
		t.Fatalf("low stock must sort by quantity asc: %+v", overview.TopLowStock)
	}
	// 零库存商品的展示状态被覆写
	if overview.TopLowStock[0].Status != "out_of_stock" {
		t.Fatalf("expected display override, got %s", overview.TopLowStock[0].Status)
	}
}

func TestStatsZeroTTLDisablesCache(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewStatsService(repository.NewGormStatsRepository(db), 0)
	if svc.cacheTTL != 0 {
		t.Fatalf("zero ttl must stay zero, got %v", svc.cacheTTL)
	}

	seedServiceProduct(t, db, "Piston", 100, 4)
	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.TotalProducts != 1 {
		t.Fatalf("expected direct aggregation, got %+v", overview)
	}

	// 每次读取都走直取,后续变更立即可见
	seedServiceProduct(t, db, "Chain", 50, 2)
	overview, err = svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}
	if overview.TotalProducts != 2 {
		t.Fatalf("uncached read must see new rows, got %d", overview.TotalProducts)
	}
}

func TestStatsMonthlyRevenueTwelveBuckets(t *testing.T) {
	db := setupServiceTestDB(t)
	now := time.Date(2026, time.August, 15, 12, 0, 0, 0, time.UTC)
	svc := newTestStatsService(db, now)

	seedStatsOrder(t, db, "completed", 100, "0901", time.Date(2026, time.August, 3, 0, 0, 0, 0, time.UTC))
	seedStatsOrder(t, db, "completed", 150, "0902", time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC))
	seedStatsOrder(t, db, "paid", 80, "0903", time.Date(2026, time.July, 1, 0, 0, 0, 0, time.UTC))
	seedStatsOrder(t, db, "cancelled", 999, "0904", time.Date(2026, time.July, 5, 0, 0, 0, 0, time.UTC))
	// 窗口之外,不应出现在任何桶
	seedStatsOrder(t, db, "completed", 400, "0905", time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC))

	overview, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview failed: %v", err)
	}

	series := overview.MonthlyRevenue
	if len(series) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(series))
	}
	if series[0].Month != "2025-09" || series[11].Month != "2026-08" {
		t.Fatalf("window must end at current month: first=%s last=%s", series[0].Month, series[11].Month)
	}

	byMonth := make(map[string]MonthRevenue, len(series))
	for _, entry := range series {
		byMonth[entry.Month] = entry
	}
	if got := byMonth["2026-08"]; !got.Revenue.Equal(decimal.NewFromInt(250)) || got.OrderCount != 2 {
		t.Fatalf("august bucket wrong: %+v", got)
	}
	if got := byMonth["2026-07"]; !got.Revenue.Equal(decimal.NewFromInt(80)) || got.OrderCount != 1 {
		t.Fatalf("july bucket must exclude cancelled: %+v", got)
	}
	// 无成交月份补零
	if got := byMonth["2026-01"]; !got.Revenue.Equal(decimal.Zero) || got.OrderCount != 0 {
		t.Fatalf("empty month must be zero filled: %+v", got)
	}
}

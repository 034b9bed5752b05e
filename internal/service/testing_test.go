package service

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/motorparts-api/internal/constants"
	"github.com/motorparts-api/internal/models"
	"github.com/motorparts-api/internal/repository"
)

// setupServiceTestDB 按测试名隔离的内存库,建齐全部业务表。
func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	err = db.AutoMigrate(
		&models.Vehicle{},
		&models.VehicleModel{},
		&models.Category{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.InvoiceCounter{},
	)
	if err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func newTestCartService(db *gorm.DB) *CartService {
	return NewCartService(
		repository.NewGormCartRepository(db),
		repository.NewGormProductRepository(db),
	)
}

func newTestOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(
		db,
		repository.NewGormOrderRepository(db),
		repository.NewGormInvoiceCounterRepository(db),
		repository.NewGormCartRepository(db),
		repository.NewGormProductRepository(db),
		constants.DefaultInvoicePrefix,
		nil,
	)
}

func seedServiceProduct(t *testing.T, db *gorm.DB, name string, price int64, quantity int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     name,
		Vehicle:  "Honda Wave",
		Model:    "Wave Alpha 110",
		Category: "engine",
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Quantity: quantity,
		Status:   constants.ProductStatusInStock,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return product
}

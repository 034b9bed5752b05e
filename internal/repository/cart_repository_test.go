package repository

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/motorparts-api/internal/constants"
	"github.com/motorparts-api/internal/models"
)

func setupCartRepositoryTest(t *testing.T) *GormCartRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Cart{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate cart failed: %v", err)
	}
	return NewGormCartRepository(db)
}

func TestCartGetByKeyMissingReturnsNil(t *testing.T) {
	repo := setupCartRepositoryTest(t)

	cart, err := repo.GetByKey(constants.DefaultCartKey)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if cart != nil {
		t.Fatalf("expected nil for missing cart")
	}
}

func TestCartReplaceItems(t *testing.T) {
	repo := setupCartRepositoryTest(t)
	cart := &models.Cart{CartKey: constants.DefaultCartKey, TotalAmount: models.NewMoneyFromInt(0)}
	if err := repo.Create(cart); err != nil {
		t.Fatalf("create cart failed: %v", err)
	}

	cart.TotalAmount = models.NewMoneyFromDecimal(decimal.NewFromInt(200))
	items := []models.CartItem{
		{ProductID: 1, Name: "A", Price: models.NewMoneyFromInt(100), Quantity: 2},
	}
	if err := repo.ReplaceItems(cart, items); err != nil {
		t.Fatalf("replace items failed: %v", err)
	}

	got, err := repo.GetByKey(constants.DefaultCartKey)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(got.Items) != 1 || got.Items[0].Quantity != 2 {
		t.Fatalf("unexpected items after replace: %+v", got.Items)
	}
	if !got.TotalAmount.Decimal.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected total=200, got %s", got.TotalAmount)
	}

	// 重写为另一组条目,旧条目不能残留
	cart.TotalAmount = models.NewMoneyFromDecimal(decimal.NewFromInt(50))
	if err := repo.ReplaceItems(cart, []models.CartItem{
		{ProductID: 2, Name: "B", Price: models.NewMoneyFromInt(50), Quantity: 1},
	}); err != nil {
		t.Fatalf("second replace failed: %v", err)
	}
	got, _ = repo.GetByKey(constants.DefaultCartKey)
	if len(got.Items) != 1 || got.Items[0].ProductID != 2 {
		t.Fatalf("stale items after replace: %+v", got.Items)
	}
}

func TestCartClearItems(t *testing.T) {
	repo := setupCartRepositoryTest(t)
	cart := &models.Cart{CartKey: constants.DefaultCartKey, TotalAmount: models.NewMoneyFromInt(0)}
	if err := repo.Create(cart); err != nil {
		t.Fatalf("create cart failed: %v", err)
	}
	if err := repo.ReplaceItems(cart, []models.CartItem{
		{ProductID: 1, Name: "A", Price: models.NewMoneyFromInt(100), Quantity: 2},
	}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}

	if err := repo.ClearItems(cart.ID, models.NewMoneyFromInt(0)); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	got, err := repo.GetByKey(constants.DefaultCartKey)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(got.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(got.Items))
	}
	if !got.TotalAmount.Decimal.IsZero() {
		t.Fatalf("expected zero total, got %s", got.TotalAmount)
	}
}

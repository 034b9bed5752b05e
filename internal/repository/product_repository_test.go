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

func setupProductRepositoryTest(t *testing.T) *GormProductRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		t.Fatalf("migrate product failed: %v", err)
	}
	return NewGormProductRepository(db)
}

func createTestProduct(t *testing.T, repo *GormProductRepository, name, vehicle, category string, price int64, quantity int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     name,
		Vehicle:  vehicle,
		Model:    "M1",
		Category: category,
		Price:    models.NewMoneyFromDecimal(decimal.NewFromInt(price)),
		Quantity: quantity,
		Status:   constants.ProductStatusInStock,
	}
	if err := repo.Create(product); err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func TestProductListFiltersAndCountShareConditions(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "活塞环", "Honda Wave", "发动机件", 100, 10)
	createTestProduct(t, repo, "刹车片", "Honda Wave", "制动系统", 80, 5)
	createTestProduct(t, repo, "气缸", "Yamaha Exciter", "发动机件", 300, 2)

	products, total, err := repo.List(ProductListFilter{Page: 1, Limit: 10, Vehicle: "Honda Wave"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected total=2, got %d", total)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(products))
	}
	for _, p := range products {
		if p.Vehicle != "Honda Wave" {
			t.Fatalf("unexpected vehicle in result: %s", p.Vehicle)
		}
	}
}

func TestProductListSearchIsCaseInsensitiveAndEscaped(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "Piston Ring Set", "Honda Wave", "engine", 100, 10)
	createTestProduct(t, repo, "100% Cotton Seat", "Honda Wave", "body", 50, 3)

	products, total, err := repo.List(ProductListFilter{Page: 1, Limit: 10, Search: "piston"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].Name != "Piston Ring Set" {
		t.Fatalf("case-insensitive search mismatch: total=%d", total)
	}

	// 通配符按字面匹配,"100%" 不能命中任意前缀
	_, total, err = repo.List(ProductListFilter{Page: 1, Limit: 10, Search: "0% Cotton"})
	if err != nil {
		t.Fatalf("escaped search failed: %v", err)
	}
	if total != 1 {
		t.Fatalf("expected literal %% match, got total=%d", total)
	}
	_, total, err = repo.List(ProductListFilter{Page: 1, Limit: 10, Search: "0_ Cotton"})
	if err != nil {
		t.Fatalf("escaped underscore search failed: %v", err)
	}
	if total != 0 {
		t.Fatalf("underscore must not act as wildcard, got total=%d", total)
	}
}

func TestProductListPriceRangeInclusive(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "A", "V", "C", 50, 1)
	createTestProduct(t, repo, "B", "V", "C", 100, 1)
	createTestProduct(t, repo, "C", "V", "C", 200, 1)

	min := decimal.NewFromInt(100)
	max := decimal.NewFromInt(200)
	products, total, err := repo.List(ProductListFilter{Page: 1, Limit: 10, PriceMin: &min, PriceMax: &max, Sort: "price", Order: "asc"})
	if err != nil {
		t.Fatalf("price range list failed: %v", err)
	}
	if total != 2 {
		t.Fatalf("expected total=2, got %d", total)
	}
	if products[0].Name != "B" || products[1].Name != "C" {
		t.Fatalf("unexpected ordering: %s, %s", products[0].Name, products[1].Name)
	}
}

func TestProductListUnknownSortFallsBack(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "A", "V", "C", 50, 1)

	if _, _, err := repo.List(ProductListFilter{Page: 1, Limit: 10, Sort: "name; DROP TABLE products"}); err != nil {
		t.Fatalf("unknown sort must fall back, got error: %v", err)
	}
}

func TestProductListEmptyResult(t *testing.T) {
	repo := setupProductRepositoryTest(t)

	products, total, err := repo.List(ProductListFilter{Page: 1, Limit: 10, Vehicle: "none"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 0 || len(products) != 0 {
		t.Fatalf("expected empty result, total=%d rows=%d", total, len(products))
	}
}

func TestProductDecrementStockGuarded(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	product := createTestProduct(t, repo, "A", "V", "C", 50, 3)

	affected, err := repo.DecrementStock(product.ID, 2)
	if err != nil {
		t.Fatalf("decrement failed: %v", err)
	}
	if affected != 1 {
		t.Fatalf("expected 1 affected row, got %d", affected)
	}

	affected, err = repo.DecrementStock(product.ID, 5)
	if err != nil {
		t.Fatalf("decrement failed: %v", err)
	}
	if affected != 0 {
		t.Fatalf("insufficient stock must not decrement, affected=%d", affected)
	}

	got, err := repo.GetByID(product.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Quantity != 1 {
		t.Fatalf("expected quantity=1, got %d", got.Quantity)
	}
}

func TestProductListKeysIn(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	createTestProduct(t, repo, "A", "V1", "C1", 50, 1)
	createTestProduct(t, repo, "A", "V2", "C1", 50, 1)

	existing, err := repo.ListKeysIn([]string{"A", "B"})
	if err != nil {
		t.Fatalf("list keys failed: %v", err)
	}
	if len(existing) != 2 {
		t.Fatalf("expected 2 key rows, got %d", len(existing))
	}
}

func TestProductDeleteByIDs(t *testing.T) {
	repo := setupProductRepositoryTest(t)
	p1 := createTestProduct(t, repo, "A", "V", "C", 50, 1)
	p2 := createTestProduct(t, repo, "B", "V", "C", 50, 1)

	deleted, err := repo.DeleteByIDs([]uint{p1.ID, p2.ID, 9999})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected deleted=2, got %d", deleted)
	}
}

func TestProductGetByIDMissingReturnsNil(t *testing.T) {
	repo := setupProductRepositoryTest(t)

	product, err := repo.GetByID(42)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if product != nil {
		t.Fatalf("expected nil for missing product")
	}
}

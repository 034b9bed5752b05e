package service

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/motorparts-api/internal/constants"
	"github.com/motorparts-api/internal/repository"
)

// validProductInput 齐备必填字段的创建输入,便于按用例逐项挖空。
func validProductInput() CreateProductInput {
	return CreateProductInput{
		Name:     "Piston",
		Vehicle:  "Honda Wave",
		Model:    "Wave Alpha 110",
		Category: "engine",
		Price:    decimal.NewFromInt(10),
		Quantity: 3,
	}
}

func TestProductCreateValidation(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewProductService(repository.NewGormProductRepository(db), nil)

	cases := []struct {
		name   string
		mutate func(*CreateProductInput)
		want   error
	}{
		{"missing name", func(in *CreateProductInput) { in.Name = "" }, ErrNameRequired},
		{"missing vehicle", func(in *CreateProductInput) { in.Vehicle = "" }, ErrVehicleRequired},
		{"missing model", func(in *CreateProductInput) { in.Model = "" }, ErrModelRequired},
		{"missing category", func(in *CreateProductInput) { in.Category = "" }, ErrCategoryRequired},
		{"negative price", func(in *CreateProductInput) { in.Price = decimal.NewFromInt(-1) }, ErrPriceInvalid},
		{"negative quantity", func(in *CreateProductInput) { in.Quantity = -2 }, ErrQuantityInvalid},
	}
	for _, tc := range cases {
		input := validProductInput()
		tc.mutate(&input)
		if _, err := svc.Create(input); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	product, err := svc.Create(validProductInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if product.Status != constants.ProductStatusInStock {
		t.Fatalf("expected default status in_stock, got %s", product.Status)
	}
}

func TestProductBulkCreateValidatesEveryItem(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewProductService(repository.NewGormProductRepository(db), nil)

	bad := validProductInput()
	bad.Category = ""
	if _, err := svc.BulkCreate([]CreateProductInput{validProductInput(), bad}); !errors.Is(err, ErrCategoryRequired) {
		t.Fatalf("expected ErrCategoryRequired, got %v", err)
	}

	// 整批拒绝,首条也不落库
	page, err := svc.List(repository.ProductListFilter{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Total != 0 {
		t.Fatalf("rejected batch must not persist anything, got %d rows", page.Total)
	}
}

func TestProductDisplayStatusOverridesWhenOutOfStock(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewProductService(repository.NewGormProductRepository(db), nil)

	input := validProductInput()
	input.Quantity = 0
	product, err := svc.Create(input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.Get(product.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Status != constants.ProductStatusOutOfStock {
		t.Fatalf("expected read-time out_of_stock, got %s", got.Status)
	}

	// 存储值保持不变
	page, err := svc.List(repository.ProductListFilter{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if page.Products[0].Status != constants.ProductStatusOutOfStock {
		t.Fatalf("list must apply override, got %s", page.Products[0].Status)
	}
}

func TestProductBulkCreateSkipsExistingNaturalKeys(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewProductService(repository.NewGormProductRepository(db), nil)

	if _, err := svc.Create(CreateProductInput{
		Name: "A", Vehicle: "V1", Model: "M1", Category: "C1", Price: decimal.NewFromInt(10),
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	result, err := svc.BulkCreate([]CreateProductInput{
		{Name: "A", Vehicle: "V1", Model: "M1", Category: "C1", Price: decimal.NewFromInt(10)}, // 已存在
		{Name: "A", Vehicle: "V2", Model: "M1", Category: "C1", Price: decimal.NewFromInt(10)}, // 同名异键
		{Name: "B", Vehicle: "V1", Model: "M1", Category: "C1", Price: decimal.NewFromInt(10)},
		{Name: "B", Vehicle: "V1", Model: "M1", Category: "C1", Price: decimal.NewFromInt(10)}, // 批内重复
	})
	if err != nil {
		t.Fatalf("bulk create failed: %v", err)
	}
	if result.Inserted != 2 || result.Skipped != 2 {
		t.Fatalf("expected inserted=2 skipped=2, got %+v", result)
	}
}

func TestProductBulkCreateEmptyBatch(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewProductService(repository.NewGormProductRepository(db), nil)

	if _, err := svc.BulkCreate(nil); !errors.Is(err, ErrEmptyBatch) {
		t.Fatalf("expected ErrEmptyBatch, got %v", err)
	}
}

func TestProductUpdateMergesFields(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewProductService(repository.NewGormProductRepository(db), nil)

	input := validProductInput()
	input.Quantity = 5
	input.Origin = "Vietnam"
	product, err := svc.Create(input)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	newPrice := decimal.NewFromInt(20)
	updated, err := svc.Update(product.ID, UpdateProductInput{Price: &newPrice})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if !updated.Price.Equal(decimal.NewFromInt(20)) {
		t.Fatalf("price not updated: %s", updated.Price)
	}
	if updated.Name != "Piston" || updated.Origin != "Vietnam" || updated.Quantity != 5 {
		t.Fatalf("untouched fields must survive: %+v", updated)
	}

	// 必填字段不允许清空
	empty := ""
	if _, err := svc.Update(product.ID, UpdateProductInput{Model: &empty}); !errors.Is(err, ErrModelRequired) {
		t.Fatalf("expected ErrModelRequired, got %v", err)
	}
	if _, err := svc.Update(product.ID, UpdateProductInput{Category: &empty}); !errors.Is(err, ErrCategoryRequired) {
		t.Fatalf("expected ErrCategoryRequired, got %v", err)
	}

	if _, err := svc.Update(9999, UpdateProductInput{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProductDeleteMany(t *testing.T) {
	db := setupServiceTestDB(t)
	svc := NewProductService(repository.NewGormProductRepository(db), nil)

	first := validProductInput()
	second := validProductInput()
	second.Name = "Chain"
	p1, err := svc.Create(first)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	p2, err := svc.Create(second)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if _, err := svc.DeleteMany(nil); !errors.Is(err, ErrIDsRequired) {
		t.Fatalf("expected ErrIDsRequired, got %v", err)
	}

	deleted, err := svc.DeleteMany([]uint{p1.ID, p2.ID, 9999})
	if err != nil {
		t.Fatalf("delete many failed: %v", err)
	}
	if deleted != 2 {
		t.Fatalf("expected deleted=2, got %d", deleted)
	}
}

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/motorparts-api/internal/constants"
	"github.com/motorparts-api/internal/models"
	"github.com/motorparts-api/internal/repository"
	"github.com/motorparts-api/internal/service"
)

// setupTestRouter 内存库上的完整处理器与路由
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:h_%s?mode=memory&cache=shared", t.Name())
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

	cartRepo := repository.NewGormCartRepository(db)
	productRepo := repository.NewGormProductRepository(db)
	handler := NewHandler(
		service.NewVehicleService(repository.NewGormVehicleRepository(db)),
		service.NewVehicleModelService(repository.NewGormVehicleModelRepository(db)),
		service.NewCategoryService(repository.NewGormCategoryRepository(db)),
		service.NewProductService(productRepo, nil),
		service.NewCartService(cartRepo, productRepo),
		service.NewOrderService(
			db,
			repository.NewGormOrderRepository(db),
			repository.NewGormInvoiceCounterRepository(db),
			cartRepo,
			productRepo,
			constants.DefaultInvoicePrefix,
			nil,
		),
		service.NewStatsService(repository.NewGormStatsRepository(db), time.Minute),
	)

	r := gin.New()
	api := r.Group("/api")
	products := api.Group("/products")
	{
		products.GET("", handler.ListProducts)
		products.POST("", handler.CreateProduct)
		products.POST("/bulk-insert", handler.BulkCreateProducts)
		products.GET("/:id", handler.GetProduct)
		products.PUT("/:id", handler.UpdateProduct)
		products.DELETE("/:id", handler.DeleteProduct)
	}
	categories := api.Group("/categories")
	{
		categories.POST("", handler.CreateCategory)
	}
	cart := api.Group("/cart")
	{
		cart.GET("", handler.GetCart)
		cart.POST("/add", handler.AddCartItem)
		cart.POST("/checkout", handler.Checkout)
	}
	api.GET("/stats/overview", handler.StatsOverview)
	return r, db
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func seedHandlerProduct(t *testing.T, db *gorm.DB, name string, price int64, quantity int) *models.Product {
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

func TestListProductsReturnsPageShape(t *testing.T) {
	r, db := setupTestRouter(t)
	for i := 0; i < 3; i++ {
		seedHandlerProduct(t, db, fmt.Sprintf("Part %d", i), 100, 5)
	}

	w := doJSON(t, r, http.MethodGet, "/api/products?page=1&limit=2&sort=name&order=asc", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Pagination struct {
			Page       int   `json:"page"`
			Limit      int   `json:"limit"`
			TotalItems int64 `json:"total_items"`
			TotalPages int   `json:"total_pages"`
		} `json:"pagination"`
		Data []models.Product `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if resp.Pagination.TotalItems != 3 || resp.Pagination.TotalPages != 2 {
		t.Fatalf("pagination wrong: %+v", resp.Pagination)
	}
	if len(resp.Data) != 2 || resp.Data[0].Name != "Part 0" {
		t.Fatalf("page data wrong: %+v", resp.Data)
	}
}

func TestGetProductErrors(t *testing.T) {
	r, _ := setupTestRouter(t)

	if w := doJSON(t, r, http.MethodGet, "/api/products/abc", ""); w.Code != http.StatusBadRequest {
		t.Fatalf("non-numeric id want 400 got %d", w.Code)
	}
	if w := doJSON(t, r, http.MethodGet, "/api/products/9999", ""); w.Code != http.StatusNotFound {
		t.Fatalf("missing product want 404 got %d", w.Code)
	}
}

func TestCreateProductValidation(t *testing.T) {
	r, _ := setupTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/products", `{"vehicle":"Honda Wave","model":"Wave Alpha 110","category":"engine","price":"100"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing name want 400 got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/products", `{"name":"Piston","vehicle":"Honda Wave","model":"Wave Alpha 110","price":"100"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing category want 400 got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/products", `{"name":"Piston","vehicle":"Honda Wave","model":"Wave Alpha 110","category":"engine","price":"150.50","quantity":4}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create want 201 got %d: %s", w.Code, w.Body.String())
	}
	var created models.Product
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if created.ID == 0 || !created.Price.Equal(decimal.NewFromFloat(150.50)) {
		t.Fatalf("created product wrong: %+v", created)
	}
}

func TestCreateCategoryDuplicateReturns400(t *testing.T) {
	r, _ := setupTestRouter(t)

	body := `{"name":"engine","vehicle":"Honda Wave"}`
	if w := doJSON(t, r, http.MethodPost, "/api/categories", body); w.Code != http.StatusCreated {
		t.Fatalf("create want 201 got %d: %s", w.Code, w.Body.String())
	}
	if w := doJSON(t, r, http.MethodPost, "/api/categories", body); w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate want 400 got %d", w.Code)
	}
}

func TestCheckoutFlow(t *testing.T) {
	r, db := setupTestRouter(t)
	product := seedHandlerProduct(t, db, "Piston", 100, 10)

	body := fmt.Sprintf(`{"product_id":%d,"quantity":2}`, product.ID)
	if w := doJSON(t, r, http.MethodPost, "/api/cart/add", body); w.Code != http.StatusOK {
		t.Fatalf("add want 200 got %d: %s", w.Code, w.Body.String())
	}

	// 客户信息可部分缺省
	w := doJSON(t, r, http.MethodPost, "/api/cart/checkout", `{"customer_name":"Nam"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout want 201 got %d: %s", w.Code, w.Body.String())
	}
	var order models.Order
	if err := json.Unmarshal(w.Body.Bytes(), &order); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if order.InvoiceCode != "NDNH00001" || !order.TotalAmount.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("order wrong: %+v", order)
	}

	// 空车再结算
	if w := doJSON(t, r, http.MethodPost, "/api/cart/checkout", `{"customer_name":"Nam","customer_phone":"0901234567"}`); w.Code != http.StatusBadRequest {
		t.Fatalf("empty cart want 400 got %d", w.Code)
	}
}

func TestStatsOverviewEndpoint(t *testing.T) {
	r, db := setupTestRouter(t)
	seedHandlerProduct(t, db, "Piston", 100, 10)

	w := doJSON(t, r, http.MethodGet, "/api/stats/overview", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status want 200 got %d: %s", w.Code, w.Body.String())
	}
	var overview service.StatsOverview
	if err := json.Unmarshal(w.Body.Bytes(), &overview); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if overview.TotalProducts != 1 || overview.TotalStock != 10 {
		t.Fatalf("overview wrong: %+v", overview)
	}
	if len(overview.MonthlyRevenue) != 12 {
		t.Fatalf("expected 12 month buckets, got %d", len(overview.MonthlyRevenue))
	}
}

package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/motorparts-api/internal/http/response"
	"github.com/motorparts-api/internal/repository"
	"github.com/motorparts-api/internal/service"
)

// ProductRequest 商品创建请求
type ProductRequest struct {
	Name           string           `json:"name" binding:"required"`
	Vehicle        string           `json:"vehicle" binding:"required"`
	Model          string           `json:"model" binding:"required"`
	Category       string           `json:"category" binding:"required"`
	Price          *decimal.Decimal `json:"price"`
	Description    string           `json:"description"`
	Year           string           `json:"year"`
	Specifications string           `json:"specifications"`
	Quantity       int              `json:"quantity"`
	Origin         string           `json:"origin"`
	Image          string           `json:"image"`
	Status         string           `json:"status"`
}

// ProductUpdateRequest 商品更新请求,缺省字段不变更
type ProductUpdateRequest struct {
	Name           *string          `json:"name"`
	Vehicle        *string          `json:"vehicle"`
	Model          *string          `json:"model"`
	Category       *string          `json:"category"`
	Price          *decimal.Decimal `json:"price"`
	Description    *string          `json:"description"`
	Year           *string          `json:"year"`
	Specifications *string          `json:"specifications"`
	Quantity       *int             `json:"quantity"`
	Origin         *string          `json:"origin"`
	Image          *string          `json:"image"`
	Status         *string          `json:"status"`
}

func (req ProductRequest) toInput() (service.CreateProductInput, error) {
	if req.Price == nil {
		return service.CreateProductInput{}, service.ErrPriceInvalid
	}
	return service.CreateProductInput{
		Name:           req.Name,
		Vehicle:        req.Vehicle,
		Model:          req.Model,
		Category:       req.Category,
		Price:          *req.Price,
		Description:    req.Description,
		Year:           req.Year,
		Specifications: req.Specifications,
		Quantity:       req.Quantity,
		Origin:         req.Origin,
		Image:          req.Image,
		Status:         req.Status,
	}, nil
}

// buildProductFilter 从查询参数构造过滤条件,缺省参数不参与过滤。
func buildProductFilter(c *gin.Context) (repository.ProductListFilter, error) {
	page, limit := normalizePagination(queryInt(c, "page", 1), queryInt(c, "limit", 10))
	filter := repository.ProductListFilter{
		Page:     page,
		Limit:    limit,
		Sort:     c.Query("sort"),
		Order:    c.Query("order"),
		Vehicle:  c.Query("vehicle"),
		Category: c.Query("category"),
		Model:    c.Query("model"),
		Status:   c.Query("status"),
		Year:     c.Query("year"),
		Search:   c.Query("q"),
	}
	if raw := c.Query("price_min"); raw != "" {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, err
		}
		filter.PriceMin = &value
	}
	if raw := c.Query("price_max"); raw != "" {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, err
		}
		filter.PriceMax = &value
	}
	return filter, nil
}

// ListProducts 商品分页列表,条件过滤与总数基于同一组条件
func (h *Handler) ListProducts(c *gin.Context) {
	filter, err := buildProductFilter(c)
	if err != nil {
		response.BadRequest(c, "invalid price range", err.Error())
		return
	}
	page, err := h.Products.List(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OKWithPage(c, page.Products, response.Pagination{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: page.Total,
		TotalPages: totalPagesOf(page.Total, filter.Limit),
		Sort:       filter.Sort,
		Order:      filter.Order,
		Filters:    echoProductFilters(filter),
	})
}

// totalPagesOf 空结果返回 0 页
func totalPagesOf(total int64, limit int) int {
	if total == 0 {
		return 0
	}
	return repository.TotalPages(total, limit)
}

// echoProductFilters 回显生效的过滤条件
func echoProductFilters(filter repository.ProductListFilter) gin.H {
	filters := gin.H{}
	if filter.Vehicle != "" {
		filters["vehicle"] = filter.Vehicle
	}
	if filter.Category != "" {
		filters["category"] = filter.Category
	}
	if filter.Model != "" {
		filters["model"] = filter.Model
	}
	if filter.Status != "" {
		filters["status"] = filter.Status
	}
	if filter.Year != "" {
		filters["year"] = filter.Year
	}
	if filter.Search != "" {
		filters["q"] = filter.Search
	}
	if filter.PriceMin != nil {
		filters["price_min"] = filter.PriceMin.String()
	}
	if filter.PriceMax != nil {
		filters["price_max"] = filter.PriceMax.String()
	}
	return filters
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	product, err := h.Products.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, product)
}

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	input, err := req.toInput()
	if err != nil {
		respondError(c, err)
		return
	}
	product, err := h.Products.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, product)
}

// BulkCreateProducts 批量创建商品
// 自然键 (name, vehicle, model, category) 已存在的跳过
func (h *Handler) BulkCreateProducts(c *gin.Context) {
	var reqs []ProductRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	inputs := make([]service.CreateProductInput, 0, len(reqs))
	for _, req := range reqs {
		input, err := req.toInput()
		if err != nil {
			respondError(c, err)
			return
		}
		inputs = append(inputs, input)
	}
	result, err := h.Products.BulkCreate(inputs)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	product, err := h.Products.Update(id, service.UpdateProductInput{
		Name:           req.Name,
		Vehicle:        req.Vehicle,
		Model:          req.Model,
		Category:       req.Category,
		Price:          req.Price,
		Description:    req.Description,
		Year:           req.Year,
		Specifications: req.Specifications,
		Quantity:       req.Quantity,
		Origin:         req.Origin,
		Image:          req.Image,
		Status:         req.Status,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.Products.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": 1})
}

// DeleteProducts 批量删除商品
func (h *Handler) DeleteProducts(c *gin.Context) {
	var req IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	deleted, err := h.Products.DeleteMany(req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": deleted})
}

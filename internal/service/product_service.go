package service

import (
	"github.com/shopspring/decimal"

	"github.com/motorparts-api/internal/constants"
	"github.com/motorparts-api/internal/models"
	"github.com/motorparts-api/internal/repository"
)

// ProductService 商品业务服务
type ProductService struct {
	repo  repository.ProductRepository
	stats StatsInvalidator
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository, stats StatsInvalidator) *ProductService {
	return &ProductService{repo: repo, stats: stats}
}

// CreateProductInput 创建商品输入
type CreateProductInput struct {
	Name           string
	Vehicle        string
	Model          string
	Category       string
	Price          decimal.Decimal
	Description    string
	Year           string
	Specifications string
	Quantity       int
	Origin         string
	Image          string
	Status         string
}

// UpdateProductInput 更新商品输入,nil 字段保持原值
type UpdateProductInput struct {
	Name           *string
	Vehicle        *string
	Model          *string
	Category       *string
	Price          *decimal.Decimal
	Description    *string
	Year           *string
	Specifications *string
	Quantity       *int
	Origin         *string
	Image          *string
	Status         *string
}

// ProductPage 商品分页结果
type ProductPage struct {
	Products []models.Product
	Total    int64
}

func (input CreateProductInput) validate() error {
	if input.Name == "" {
		return ErrNameRequired
	}
	if input.Vehicle == "" {
		return ErrVehicleRequired
	}
	if input.Model == "" {
		return ErrModelRequired
	}
	if input.Category == "" {
		return ErrCategoryRequired
	}
	if input.Price.IsNegative() {
		return ErrPriceInvalid
	}
	if input.Quantity < 0 {
		return ErrQuantityInvalid
	}
	return nil
}

func (input CreateProductInput) toModel() models.Product {
	status := input.Status
	if status == "" {
		status = constants.ProductStatusInStock
	}
	return models.Product{
		Name:           input.Name,
		Vehicle:        input.Vehicle,
		Model:          input.Model,
		Category:       input.Category,
		Price:          models.NewMoneyFromDecimal(input.Price),
		Description:    input.Description,
		Year:           input.Year,
		Specifications: input.Specifications,
		Quantity:       input.Quantity,
		Origin:         input.Origin,
		Image:          input.Image,
		Status:         status,
	}
}

// List 分页查询商品,总数与页数据基于同一组过滤条件,
// 返回前按余量覆写展示状态。
func (s *ProductService) List(filter repository.ProductListFilter) (*ProductPage, error) {
	products, total, err := s.repo.List(filter)
	if err != nil {
		return nil, err
	}
	for i := range products {
		products[i].Status = products[i].DisplayStatus()
	}
	return &ProductPage{Products: products, Total: total}, nil
}

// Get 按 ID 获取商品,展示状态同样按余量覆写
func (s *ProductService) Get(id uint) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	product.Status = product.DisplayStatus()
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input CreateProductInput) (*models.Product, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	product := input.toModel()
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	invalidateStats(s.stats)
	return &product, nil
}

// productKey 商品自然键 (name, vehicle, model, category)
type productKey [4]string

// BulkCreate 批量创建,按自然键去重,已存在的组合跳过
func (s *ProductService) BulkCreate(inputs []CreateProductInput) (*BulkResult, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyBatch
	}

	names := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if err := input.validate(); err != nil {
			return nil, err
		}
		names = append(names, input.Name)
	}

	existing, err := s.repo.ListKeysIn(names)
	if err != nil {
		return nil, err
	}
	seen := make(map[productKey]bool, len(existing))
	for _, p := range existing {
		seen[productKey{p.Name, p.Vehicle, p.Model, p.Category}] = true
	}

	var batch []models.Product
	result := &BulkResult{}
	for _, input := range inputs {
		key := productKey{input.Name, input.Vehicle, input.Model, input.Category}
		if seen[key] {
			result.Skipped++
			continue
		}
		seen[key] = true
		batch = append(batch, input.toModel())
	}
	if err := s.repo.CreateBatch(batch); err != nil {
		return nil, err
	}
	result.Inserted = len(batch)
	if result.Inserted > 0 {
		invalidateStats(s.stats)
	}
	return result, nil
}

// Update 更新商品,仅覆盖调用方给出的字段
func (s *ProductService) Update(id uint, input UpdateProductInput) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, ErrNameRequired
		}
		product.Name = *input.Name
	}
	if input.Vehicle != nil {
		if *input.Vehicle == "" {
			return nil, ErrVehicleRequired
		}
		product.Vehicle = *input.Vehicle
	}
	if input.Model != nil {
		if *input.Model == "" {
			return nil, ErrModelRequired
		}
		product.Model = *input.Model
	}
	if input.Category != nil {
		if *input.Category == "" {
			return nil, ErrCategoryRequired
		}
		product.Category = *input.Category
	}
	if input.Price != nil {
		if input.Price.IsNegative() {
			return nil, ErrPriceInvalid
		}
		product.Price = models.NewMoneyFromDecimal(*input.Price)
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Year != nil {
		product.Year = *input.Year
	}
	if input.Specifications != nil {
		product.Specifications = *input.Specifications
	}
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, ErrQuantityInvalid
		}
		product.Quantity = *input.Quantity
	}
	if input.Origin != nil {
		product.Origin = *input.Origin
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.Status != nil {
		product.Status = *input.Status
	}

	if err := s.repo.Update(product); err != nil {
		return nil, err
	}
	invalidateStats(s.stats)
	return product, nil
}

// Delete 删除商品
func (s *ProductService) Delete(id uint) error {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	invalidateStats(s.stats)
	return nil
}

// DeleteMany 批量删除,返回实际删除数
func (s *ProductService) DeleteMany(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrIDsRequired
	}
	deleted, err := s.repo.DeleteByIDs(ids)
	if err != nil {
		return 0, err
	}
	if deleted > 0 {
		invalidateStats(s.stats)
	}
	return deleted, nil
}

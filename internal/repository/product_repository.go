package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/motorparts-api/internal/models"
)

// ProductRepository 商品数据访问接口。
type ProductRepository interface {
	List(filter ProductListFilter) ([]models.Product, int64, error)
	GetByID(id uint) (*models.Product, error)
	Create(product *models.Product) error
	CreateBatch(items []models.Product) error
	ListKeysIn(names []string) ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uint) error
	DeleteByIDs(ids []uint) (int64, error)
	DecrementStock(id uint, quantity int) (int64, error)
	WithTx(tx *gorm.DB) ProductRepository
}

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) WithTx(tx *gorm.DB) ProductRepository {
	return &GormProductRepository{db: tx}
}

// productSortColumns 排序字段白名单,未命中一律回退 created_at。
var productSortColumns = map[string]string{
	"name":       "name",
	"price":      "price",
	"quantity":   "quantity",
	"year":       "year",
	"createdAt":  "created_at",
	"created_at": "created_at",
}

// List 按过滤条件分页查询,总数与当前页共用同一组条件。
func (r *GormProductRepository) List(filter ProductListFilter) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{})

	if filter.Vehicle != "" {
		query = query.Where("vehicle = ?", filter.Vehicle)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Model != "" {
		query = query.Where("model = ?", filter.Model)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Year != "" {
		query = query.Where("year = ?", filter.Year)
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.Search)) + "%"
		query = query.Where("LOWER(name) LIKE ? ESCAPE '\\'", pattern)
	}
	if filter.PriceMin != nil {
		query = query.Where("price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price <= ?", *filter.PriceMax)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := productSortColumns[filter.Sort]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.Order, "asc") {
		direction = "ASC"
	}

	var products []models.Product
	err := applyPagination(query.Order(column+" "+direction), filter.Page, filter.Limit).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *GormProductRepository) GetByID(id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) Create(product *models.Product) error {
	return r.db.Create(product).Error
}

func (r *GormProductRepository) CreateBatch(items []models.Product) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

// ListKeysIn 查出名字命中候选集的已有商品,仅取自然键四列,调用方做精确去重。
func (r *GormProductRepository) ListKeysIn(names []string) ([]models.Product, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var existing []models.Product
	err := r.db.Select("name", "vehicle", "model", "category").
		Where("name IN ?", names).Find(&existing).Error
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *GormProductRepository) Update(product *models.Product) error {
	return r.db.Save(product).Error
}

func (r *GormProductRepository) Delete(id uint) error {
	return r.db.Delete(&models.Product{}, id).Error
}

func (r *GormProductRepository) DeleteByIDs(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Delete(&models.Product{}, ids)
	return result.RowsAffected, result.Error
}

// DecrementStock 带余量校验的原子扣减,库存不足时影响行数为 0。
func (r *GormProductRepository) DecrementStock(id uint, quantity int) (int64, error) {
	result := r.db.Model(&models.Product{}).
		Where("id = ? AND quantity >= ?", id, quantity).
		UpdateColumn("quantity", gorm.Expr("quantity - ?", quantity))
	return result.RowsAffected, result.Error
}

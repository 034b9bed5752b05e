package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/motorparts-api/internal/models"
)

// OrderRepository 订单数据访问接口。
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	List(filter OrderListFilter) ([]models.Order, int64, error)
	LastInvoiceCode(prefix string) (string, error)
	WithTx(tx *gorm.DB) OrderRepository
}

type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

func (r *GormOrderRepository) WithTx(tx *gorm.DB) OrderRepository {
	return &GormOrderRepository{db: tx}
}

// Create 连同订单行一起写入,Items 通过关联级联插入。
func (r *GormOrderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *GormOrderRepository) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Items").First(&order, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// List 按创建时间倒序分页。
func (r *GormOrderRepository) List(filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.Model(&models.Order{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.Order
	err := applyPagination(query.Preload("Items").Order("created_at DESC"), filter.Page, filter.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// LastInvoiceCode 返回指定前缀下字典序最大的单号,用于计数器首次播种。
func (r *GormOrderRepository) LastInvoiceCode(prefix string) (string, error) {
	var code string
	err := r.db.Model(&models.Order{}).
		Where("invoice_code LIKE ?", escapeLike(prefix)+"%").
		Order("invoice_code DESC").
		Limit(1).
		Pluck("invoice_code", &code).Error
	if err != nil {
		return "", err
	}
	return code, nil
}

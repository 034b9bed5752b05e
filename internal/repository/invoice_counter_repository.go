package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/motorparts-api/internal/models"
)

// InvoiceCounterRepository 单号计数器数据访问接口。
type InvoiceCounterRepository interface {
	Get(prefix string) (*models.InvoiceCounter, error)
	Create(counter *models.InvoiceCounter) error
	Next(prefix string) (int64, error)
	WithTx(tx *gorm.DB) InvoiceCounterRepository
}

type GormInvoiceCounterRepository struct {
	db *gorm.DB
}

func NewGormInvoiceCounterRepository(db *gorm.DB) *GormInvoiceCounterRepository {
	return &GormInvoiceCounterRepository{db: db}
}

func (r *GormInvoiceCounterRepository) WithTx(tx *gorm.DB) InvoiceCounterRepository {
	return &GormInvoiceCounterRepository{db: tx}
}

func (r *GormInvoiceCounterRepository) Get(prefix string) (*models.InvoiceCounter, error) {
	var counter models.InvoiceCounter
	err := r.db.Where("prefix = ?", prefix).First(&counter).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &counter, nil
}

func (r *GormInvoiceCounterRepository) Create(counter *models.InvoiceCounter) error {
	return r.db.Create(counter).Error
}

// Next 原子自增并返回新值。UPDATE 先行拿到行锁,并发结算时序号不会重复。
func (r *GormInvoiceCounterRepository) Next(prefix string) (int64, error) {
	result := r.db.Model(&models.InvoiceCounter{}).
		Where("prefix = ?", prefix).
		UpdateColumn("value", gorm.Expr("value + 1"))
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	var counter models.InvoiceCounter
	if err := r.db.Where("prefix = ?", prefix).First(&counter).Error; err != nil {
		return 0, err
	}
	return counter.Value, nil
}

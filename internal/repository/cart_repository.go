package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/motorparts-api/internal/models"
)

// CartRepository 购物车数据访问接口,购物车按 cart_key 单例寻址。
type CartRepository interface {
	GetByKey(key string) (*models.Cart, error)
	Create(cart *models.Cart) error
	ReplaceItems(cart *models.Cart, items []models.CartItem) error
	ClearItems(cartID uint, total models.Money) error
	WithTx(tx *gorm.DB) CartRepository
}

type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) WithTx(tx *gorm.DB) CartRepository {
	return &GormCartRepository{db: tx}
}

func (r *GormCartRepository) GetByKey(key string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Preload("Items").Where("cart_key = ?", key).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *GormCartRepository) Create(cart *models.Cart) error {
	return r.db.Create(cart).Error
}

// ReplaceItems 整体重写购物车条目并更新合计,三步在同一事务内完成。
func (r *GormCartRepository) ReplaceItems(cart *models.Cart, items []models.CartItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = 0
			items[i].CartID = cart.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).
			Updates(map[string]interface{}{
				"total_amount": cart.TotalAmount,
				"updated_at":   time.Now(),
			}).Error
	})
}

// ClearItems 清空购物车,结算成功后调用。
func (r *GormCartRepository) ClearItems(cartID uint, total models.Money) error {
	if err := r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error; err != nil {
		return err
	}
	return r.db.Model(&models.Cart{}).Where("id = ?", cartID).
		Updates(map[string]interface{}{
			"total_amount": total,
			"updated_at":   time.Now(),
		}).Error
}

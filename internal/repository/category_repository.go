package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/motorparts-api/internal/models"
)

// CategoryRepository 配件分类数据访问接口。
type CategoryRepository interface {
	List(vehicle string) ([]models.Category, error)
	GetByID(id uint) (*models.Category, error)
	GetByNameVehicle(name, vehicle string) (*models.Category, error)
	Create(category *models.Category) error
	CreateBatch(items []models.Category) error
	ListKeysIn(names []string) ([]models.Category, error)
	Update(category *models.Category) error
	Delete(id uint) error
	DeleteByIDs(ids []uint) (int64, error)
}

type GormCategoryRepository struct {
	db *gorm.DB
}

func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

func (r *GormCategoryRepository) List(vehicle string) ([]models.Category, error) {
	query := r.db.Order("created_at DESC")
	if vehicle != "" {
		query = query.Where("vehicle = ?", vehicle)
	}
	var items []models.Category
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormCategoryRepository) GetByID(id uint) (*models.Category, error) {
	var item models.Category
	err := r.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormCategoryRepository) GetByNameVehicle(name, vehicle string) (*models.Category, error) {
	var item models.Category
	err := r.db.Where("name = ? AND vehicle = ?", name, vehicle).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

func (r *GormCategoryRepository) CreateBatch(items []models.Category) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

// ListKeysIn 查出名字命中候选集的已有分类,调用方按 (name, vehicle) 精确去重。
func (r *GormCategoryRepository) ListKeysIn(names []string) ([]models.Category, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var existing []models.Category
	err := r.db.Select("name", "vehicle").Where("name IN ?", names).Find(&existing).Error
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *GormCategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

func (r *GormCategoryRepository) Delete(id uint) error {
	return r.db.Delete(&models.Category{}, id).Error
}

func (r *GormCategoryRepository) DeleteByIDs(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Delete(&models.Category{}, ids)
	return result.RowsAffected, result.Error
}

package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/motorparts-api/internal/models"
)

// VehicleModelRepository 车型数据访问接口。
type VehicleModelRepository interface {
	List(vehicle string) ([]models.VehicleModel, error)
	GetByID(id uint) (*models.VehicleModel, error)
	GetByNameVehicle(name, vehicle string) (*models.VehicleModel, error)
	Create(model *models.VehicleModel) error
	CreateBatch(items []models.VehicleModel) error
	ListKeysIn(names []string) ([]models.VehicleModel, error)
	Update(model *models.VehicleModel) error
	Delete(id uint) error
	DeleteByIDs(ids []uint) (int64, error)
}

type GormVehicleModelRepository struct {
	db *gorm.DB
}

func NewGormVehicleModelRepository(db *gorm.DB) *GormVehicleModelRepository {
	return &GormVehicleModelRepository{db: db}
}

// List 可按品牌过滤,vehicle 为空时返回全部。
func (r *GormVehicleModelRepository) List(vehicle string) ([]models.VehicleModel, error) {
	query := r.db.Order("created_at DESC")
	if vehicle != "" {
		query = query.Where("vehicle = ?", vehicle)
	}
	var items []models.VehicleModel
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormVehicleModelRepository) GetByID(id uint) (*models.VehicleModel, error) {
	var item models.VehicleModel
	err := r.db.First(&item, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormVehicleModelRepository) GetByNameVehicle(name, vehicle string) (*models.VehicleModel, error) {
	var item models.VehicleModel
	err := r.db.Where("name = ? AND vehicle = ?", name, vehicle).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *GormVehicleModelRepository) Create(model *models.VehicleModel) error {
	return r.db.Create(model).Error
}

func (r *GormVehicleModelRepository) CreateBatch(items []models.VehicleModel) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

// ListKeysIn 查出名字命中候选集的已有车型,调用方再按 (name, vehicle) 精确去重。
func (r *GormVehicleModelRepository) ListKeysIn(names []string) ([]models.VehicleModel, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var existing []models.VehicleModel
	err := r.db.Select("name", "vehicle").Where("name IN ?", names).Find(&existing).Error
	if err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *GormVehicleModelRepository) Update(model *models.VehicleModel) error {
	return r.db.Save(model).Error
}

func (r *GormVehicleModelRepository) Delete(id uint) error {
	return r.db.Delete(&models.VehicleModel{}, id).Error
}

func (r *GormVehicleModelRepository) DeleteByIDs(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Delete(&models.VehicleModel{}, ids)
	return result.RowsAffected, result.Error
}

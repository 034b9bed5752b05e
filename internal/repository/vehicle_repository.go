package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/motorparts-api/internal/models"
)

// VehicleRepository 品牌数据访问接口。
type VehicleRepository interface {
	List() ([]models.Vehicle, error)
	GetByID(id uint) (*models.Vehicle, error)
	GetByName(name string) (*models.Vehicle, error)
	Create(vehicle *models.Vehicle) error
	CreateBatch(vehicles []models.Vehicle) error
	ListNamesIn(names []string) ([]string, error)
	Update(vehicle *models.Vehicle) error
	Delete(id uint) error
	DeleteByIDs(ids []uint) (int64, error)
}

type GormVehicleRepository struct {
	db *gorm.DB
}

func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

func (r *GormVehicleRepository) List() ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := r.db.Order("created_at DESC").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *GormVehicleRepository) GetByID(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.First(&vehicle, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *GormVehicleRepository) GetByName(name string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.Where("name = ?", name).First(&vehicle).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (r *GormVehicleRepository) Create(vehicle *models.Vehicle) error {
	return r.db.Create(vehicle).Error
}

func (r *GormVehicleRepository) CreateBatch(vehicles []models.Vehicle) error {
	if len(vehicles) == 0 {
		return nil
	}
	return r.db.Create(&vehicles).Error
}

// ListNamesIn 返回已存在的品牌名,用于批量导入前的去重。
func (r *GormVehicleRepository) ListNamesIn(names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}
	var existing []string
	if err := r.db.Model(&models.Vehicle{}).Where("name IN ?", names).Pluck("name", &existing).Error; err != nil {
		return nil, err
	}
	return existing, nil
}

func (r *GormVehicleRepository) Update(vehicle *models.Vehicle) error {
	return r.db.Save(vehicle).Error
}

func (r *GormVehicleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Vehicle{}, id).Error
}

func (r *GormVehicleRepository) DeleteByIDs(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result := r.db.Delete(&models.Vehicle{}, ids)
	return result.RowsAffected, result.Error
}

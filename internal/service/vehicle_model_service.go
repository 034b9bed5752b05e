package service

import (
	"fmt"

	"github.com/motorparts-api/internal/models"
	"github.com/motorparts-api/internal/repository"
)

// VehicleModelService 车型业务服务
type VehicleModelService struct {
	repo repository.VehicleModelRepository
}

// NewVehicleModelService 创建车型服务
func NewVehicleModelService(repo repository.VehicleModelRepository) *VehicleModelService {
	return &VehicleModelService{repo: repo}
}

// CreateVehicleModelInput 创建车型输入
type CreateVehicleModelInput struct {
	Name        string
	Vehicle     string
	Description string
	Image       string
}

// UpdateVehicleModelInput 更新车型输入,nil 字段保持原值
type UpdateVehicleModelInput struct {
	Name        *string
	Vehicle     *string
	Description *string
	Image       *string
}

// List 获取车型列表,vehicle 非空时按车系过滤
func (s *VehicleModelService) List(vehicle string) ([]models.VehicleModel, error) {
	return s.repo.List(vehicle)
}

// Get 按 ID 获取车型
func (s *VehicleModelService) Get(id uint) (*models.VehicleModel, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// Create 创建车型
func (s *VehicleModelService) Create(input CreateVehicleModelInput) (*models.VehicleModel, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if input.Vehicle == "" {
		return nil, ErrVehicleRequired
	}
	item := models.VehicleModel{
		Name:        input.Name,
		Vehicle:     input.Vehicle,
		Description: input.Description,
		Image:       input.Image,
	}
	if err := s.repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// BulkCreate 批量创建,按 (name, vehicle) 去重,已存在的跳过
func (s *VehicleModelService) BulkCreate(inputs []CreateVehicleModelInput) (*BulkResult, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyBatch
	}

	names := make([]string, 0, len(inputs))
	var missingName, missingVehicle []int
	for i, input := range inputs {
		if input.Name == "" {
			missingName = append(missingName, i)
			continue
		}
		if input.Vehicle == "" {
			missingVehicle = append(missingVehicle, i)
			continue
		}
		names = append(names, input.Name)
	}
	if len(missingName) > 0 {
		return nil, fmt.Errorf("%w: items %v", ErrNameRequired, missingName)
	}
	if len(missingVehicle) > 0 {
		return nil, fmt.Errorf("%w: items %v", ErrVehicleRequired, missingVehicle)
	}

	existing, err := s.repo.ListKeysIn(names)
	if err != nil {
		return nil, err
	}
	seen := make(map[[2]string]bool, len(existing))
	for _, item := range existing {
		seen[[2]string{item.Name, item.Vehicle}] = true
	}

	var batch []models.VehicleModel
	result := &BulkResult{}
	for _, input := range inputs {
		key := [2]string{input.Name, input.Vehicle}
		if seen[key] {
			result.Skipped++
			continue
		}
		seen[key] = true
		batch = append(batch, models.VehicleModel{
			Name:        input.Name,
			Vehicle:     input.Vehicle,
			Description: input.Description,
			Image:       input.Image,
		})
	}
	if err := s.repo.CreateBatch(batch); err != nil {
		return nil, err
	}
	result.Inserted = len(batch)
	return result, nil
}

// Update 更新车型,仅覆盖调用方给出的字段
func (s *VehicleModelService) Update(id uint, input UpdateVehicleModelInput) (*models.VehicleModel, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, ErrNameRequired
		}
		item.Name = *input.Name
	}
	if input.Vehicle != nil {
		if *input.Vehicle == "" {
			return nil, ErrVehicleRequired
		}
		item.Vehicle = *input.Vehicle
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Image != nil {
		item.Image = *input.Image
	}

	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete 删除车型
func (s *VehicleModelService) Delete(id uint) error {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// DeleteMany 批量删除,返回实际删除数
func (s *VehicleModelService) DeleteMany(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrIDsRequired
	}
	return s.repo.DeleteByIDs(ids)
}

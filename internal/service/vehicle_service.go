package service

import (
	"fmt"

	"github.com/motorparts-api/internal/models"
	"github.com/motorparts-api/internal/repository"
)

// VehicleService 车系业务服务
type VehicleService struct {
	repo repository.VehicleRepository
}

// NewVehicleService 创建车系服务
func NewVehicleService(repo repository.VehicleRepository) *VehicleService {
	return &VehicleService{repo: repo}
}

// CreateVehicleInput 创建车系输入
type CreateVehicleInput struct {
	Name        string
	Description string
	Image       string
}

// UpdateVehicleInput 更新车系输入,nil 字段保持原值
type UpdateVehicleInput struct {
	Name        *string
	Description *string
	Image       *string
}

// BulkResult 批量写入结果
type BulkResult struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// List 获取车系列表
func (s *VehicleService) List() ([]models.Vehicle, error) {
	return s.repo.List()
}

// Get 按 ID 获取车系
func (s *VehicleService) Get(id uint) (*models.Vehicle, error) {
	vehicle, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrNotFound
	}
	return vehicle, nil
}

// Create 创建车系
func (s *VehicleService) Create(input CreateVehicleInput) (*models.Vehicle, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	vehicle := models.Vehicle{
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
	}
	if err := s.repo.Create(&vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// BulkCreate 批量创建,已存在的名称跳过不报错
func (s *VehicleService) BulkCreate(inputs []CreateVehicleInput) (*BulkResult, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyBatch
	}

	names := make([]string, 0, len(inputs))
	var invalid []int
	for i, input := range inputs {
		if input.Name == "" {
			invalid = append(invalid, i)
			continue
		}
		names = append(names, input.Name)
	}
	if len(invalid) > 0 {
		return nil, fmt.Errorf("%w: items %v", ErrNameRequired, invalid)
	}

	existing, err := s.repo.ListNamesIn(names)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(existing))
	for _, name := range existing {
		seen[name] = true
	}

	var batch []models.Vehicle
	result := &BulkResult{}
	for _, input := range inputs {
		if seen[input.Name] {
			result.Skipped++
			continue
		}
		seen[input.Name] = true
		batch = append(batch, models.Vehicle{
			Name:        input.Name,
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

// Update 更新车系,仅覆盖调用方给出的字段
func (s *VehicleService) Update(id uint, input UpdateVehicleInput) (*models.Vehicle, error) {
	vehicle, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrNotFound
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, ErrNameRequired
		}
		vehicle.Name = *input.Name
	}
	if input.Description != nil {
		vehicle.Description = *input.Description
	}
	if input.Image != nil {
		vehicle.Image = *input.Image
	}

	if err := s.repo.Update(vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Delete 删除车系
func (s *VehicleService) Delete(id uint) error {
	vehicle, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// DeleteMany 批量删除,返回实际删除数
func (s *VehicleService) DeleteMany(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrIDsRequired
	}
	return s.repo.DeleteByIDs(ids)
}

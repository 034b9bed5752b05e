package service

import (
	"github.com/motorparts-api/internal/models"
	"github.com/motorparts-api/internal/repository"
)

// CategoryService 配件分类业务服务
type CategoryService struct {
	repo repository.CategoryRepository
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository) *CategoryService {
	return &CategoryService{repo: repo}
}

// CreateCategoryInput 创建分类输入
type CreateCategoryInput struct {
	Name        string
	Vehicle     string
	Description string
	Image       string
}

// UpdateCategoryInput 更新分类输入,nil 字段保持原值
type UpdateCategoryInput struct {
	Name        *string
	Vehicle     *string
	Description *string
	Image       *string
}

// List 获取分类列表,vehicle 非空时按车系过滤
func (s *CategoryService) List(vehicle string) ([]models.Category, error) {
	return s.repo.List(vehicle)
}

// Get 按 ID 获取分类
func (s *CategoryService) Get(id uint) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Create 创建分类,(name, vehicle) 组合重复时返回冲突
func (s *CategoryService) Create(input CreateCategoryInput) (*models.Category, error) {
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if input.Vehicle == "" {
		return nil, ErrVehicleRequired
	}

	existing, err := s.repo.GetByNameVehicle(input.Name, input.Vehicle)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryExists
	}

	category := models.Category{
		Name:        input.Name,
		Vehicle:     input.Vehicle,
		Description: input.Description,
		Image:       input.Image,
	}
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// BulkCreate 批量创建,按 (name, vehicle) 去重,已存在的跳过
func (s *CategoryService) BulkCreate(inputs []CreateCategoryInput) (*BulkResult, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyBatch
	}

	names := make([]string, 0, len(inputs))
	for _, input := range inputs {
		if input.Name == "" {
			return nil, ErrNameRequired
		}
		if input.Vehicle == "" {
			return nil, ErrVehicleRequired
		}
		names = append(names, input.Name)
	}

	existing, err := s.repo.ListKeysIn(names)
	if err != nil {
		return nil, err
	}
	seen := make(map[[2]string]bool, len(existing))
	for _, item := range existing {
		seen[[2]string{item.Name, item.Vehicle}] = true
	}

	var batch []models.Category
	result := &BulkResult{}
	for _, input := range inputs {
		key := [2]string{input.Name, input.Vehicle}
		if seen[key] {
			result.Skipped++
			continue
		}
		seen[key] = true
		batch = append(batch, models.Category{
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

// Update 更新分类,变更后的组合与他人冲突时拒绝
func (s *CategoryService) Update(id uint, input UpdateCategoryInput) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	name := category.Name
	vehicle := category.Vehicle
	if input.Name != nil {
		if *input.Name == "" {
			return nil, ErrNameRequired
		}
		name = *input.Name
	}
	if input.Vehicle != nil {
		if *input.Vehicle == "" {
			return nil, ErrVehicleRequired
		}
		vehicle = *input.Vehicle
	}

	if name != category.Name || vehicle != category.Vehicle {
		existing, err := s.repo.GetByNameVehicle(name, vehicle)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != category.ID {
			return nil, ErrCategoryExists
		}
	}

	category.Name = name
	category.Vehicle = vehicle
	if input.Description != nil {
		category.Description = *input.Description
	}
	if input.Image != nil {
		category.Image = *input.Image
	}

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 删除分类
func (s *CategoryService) Delete(id uint) error {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

// DeleteMany 批量删除,返回实际删除数
func (s *CategoryService) DeleteMany(ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, ErrIDsRequired
	}
	return s.repo.DeleteByIDs(ids)
}

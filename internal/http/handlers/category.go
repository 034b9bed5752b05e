package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/motorparts-api/internal/http/response"
	"github.com/motorparts-api/internal/service"
)

// CategoryRequest 分类创建请求
type CategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Vehicle     string `json:"vehicle" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// CategoryUpdateRequest 分类更新请求,缺省字段不变更
type CategoryUpdateRequest struct {
	Name        *string `json:"name"`
	Vehicle     *string `json:"vehicle"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// ListCategories 分类列表,支持 ?vehicle= 过滤
func (h *Handler) ListCategories(c *gin.Context) {
	items, err := h.Categories.List(c.Query("vehicle"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, items)
}

// GetCategory 分类详情
func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	category, err := h.Categories.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, category)
}

// CreateCategory 创建分类,(name, vehicle) 重复时返回冲突
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	category, err := h.Categories.Create(service.CreateCategoryInput{
		Name:        req.Name,
		Vehicle:     req.Vehicle,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, category)
}

// BulkCreateCategories 批量创建分类,重复组合跳过
func (h *Handler) BulkCreateCategories(c *gin.Context) {
	var reqs []CategoryRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	inputs := make([]service.CreateCategoryInput, 0, len(reqs))
	for _, req := range reqs {
		inputs = append(inputs, service.CreateCategoryInput{
			Name:        req.Name,
			Vehicle:     req.Vehicle,
			Description: req.Description,
			Image:       req.Image,
		})
	}
	result, err := h.Categories.BulkCreate(inputs)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateCategory 更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	category, err := h.Categories.Update(id, service.UpdateCategoryInput{
		Name:        req.Name,
		Vehicle:     req.Vehicle,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, category)
}

// DeleteCategory 删除分类
func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.Categories.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": 1})
}

// DeleteCategories 批量删除分类
func (h *Handler) DeleteCategories(c *gin.Context) {
	var req IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	deleted, err := h.Categories.DeleteMany(req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": deleted})
}

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/motorparts-api/internal/http/response"
	"github.com/motorparts-api/internal/service"
)

// VehicleModelRequest 车型创建请求
type VehicleModelRequest struct {
	Name        string `json:"name" binding:"required"`
	Vehicle     string `json:"vehicle" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// VehicleModelUpdateRequest 车型更新请求,缺省字段不变更
type VehicleModelUpdateRequest struct {
	Name        *string `json:"name"`
	Vehicle     *string `json:"vehicle"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// ListVehicleModels 车型列表,支持 ?vehicle= 过滤
func (h *Handler) ListVehicleModels(c *gin.Context) {
	items, err := h.Models.List(c.Query("vehicle"))
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, items)
}

// GetVehicleModel 车型详情
func (h *Handler) GetVehicleModel(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	item, err := h.Models.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, item)
}

// CreateVehicleModel 创建车型
func (h *Handler) CreateVehicleModel(c *gin.Context) {
	var req VehicleModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	item, err := h.Models.Create(service.CreateVehicleModelInput{
		Name:        req.Name,
		Vehicle:     req.Vehicle,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, item)
}

// BulkCreateVehicleModels 批量创建车型,(name, vehicle) 重复的跳过
func (h *Handler) BulkCreateVehicleModels(c *gin.Context) {
	var reqs []VehicleModelRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	inputs := make([]service.CreateVehicleModelInput, 0, len(reqs))
	for _, req := range reqs {
		inputs = append(inputs, service.CreateVehicleModelInput{
			Name:        req.Name,
			Vehicle:     req.Vehicle,
			Description: req.Description,
			Image:       req.Image,
		})
	}
	result, err := h.Models.BulkCreate(inputs)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateVehicleModel 更新车型
func (h *Handler) UpdateVehicleModel(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req VehicleModelUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	item, err := h.Models.Update(id, service.UpdateVehicleModelInput{
		Name:        req.Name,
		Vehicle:     req.Vehicle,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, item)
}

// DeleteVehicleModel 删除车型
func (h *Handler) DeleteVehicleModel(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.Models.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": 1})
}

// DeleteVehicleModels 批量删除车型
func (h *Handler) DeleteVehicleModels(c *gin.Context) {
	var req IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	deleted, err := h.Models.DeleteMany(req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": deleted})
}

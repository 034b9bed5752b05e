package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/motorparts-api/internal/http/response"
	"github.com/motorparts-api/internal/service"
)

// VehicleRequest 车系创建请求
type VehicleRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// VehicleUpdateRequest 车系更新请求,缺省字段不变更
type VehicleUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

// ListVehicles 车系列表
func (h *Handler) ListVehicles(c *gin.Context) {
	vehicles, err := h.Vehicles.List()
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, vehicles)
}

// GetVehicle 车系详情
func (h *Handler) GetVehicle(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	vehicle, err := h.Vehicles.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, vehicle)
}

// CreateVehicle 创建车系
func (h *Handler) CreateVehicle(c *gin.Context) {
	var req VehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	vehicle, err := h.Vehicles.Create(service.CreateVehicleInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, vehicle)
}

// BulkCreateVehicles 批量创建车系,重名跳过
func (h *Handler) BulkCreateVehicles(c *gin.Context) {
	var reqs []VehicleRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	inputs := make([]service.CreateVehicleInput, 0, len(reqs))
	for _, req := range reqs {
		inputs = append(inputs, service.CreateVehicleInput{
			Name:        req.Name,
			Description: req.Description,
			Image:       req.Image,
		})
	}
	result, err := h.Vehicles.BulkCreate(inputs)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Created(c, result)
}

// UpdateVehicle 更新车系
func (h *Handler) UpdateVehicle(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req VehicleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	vehicle, err := h.Vehicles.Update(id, service.UpdateVehicleInput{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, vehicle)
}

// DeleteVehicle 删除车系
func (h *Handler) DeleteVehicle(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := h.Vehicles.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": 1})
}

// DeleteVehicles 批量删除车系
func (h *Handler) DeleteVehicles(c *gin.Context) {
	var req IDsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body", err.Error())
		return
	}
	deleted, err := h.Vehicles.DeleteMany(req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": deleted})
}

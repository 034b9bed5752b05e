package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/motorparts-api/internal/http/response"
)

// StatsOverview 仪表盘总览
func (h *Handler) StatsOverview(c *gin.Context) {
	overview, err := h.Stats.Overview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	response.OK(c, overview)
}

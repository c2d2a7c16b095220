package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shiftline/shiftline/internal/services"
)

type GenerationHandler struct {
	generationService *services.GenerationService
}

func NewGenerationHandler(generationService *services.GenerationService) *GenerationHandler {
	return &GenerationHandler{
		generationService: generationService,
	}
}

// GenerateScheduleRequest is the constraint-based generation request
type GenerateScheduleRequest struct {
	GroupID string `json:"groupId" binding:"required"`
	services.GenerateRequest
}

// GenerateSchedule runs constraint-based generation for a group and
// applies the outcome
func (h *GenerationHandler) GenerateSchedule(c *gin.Context) {
	var req GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.generationService.Generate(c.Request.Context(), req.GroupID, &req.GenerateRequest)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GenerateRetailSchedule runs total-hours generation for an existing
// schedule and applies the outcome
func (h *GenerationHandler) GenerateRetailSchedule(c *gin.Context) {
	var req services.GenerateRetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.generationService.GenerateRetail(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

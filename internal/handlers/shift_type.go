package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shiftline/shiftline/internal/services"
)

type ShiftTypeHandler struct {
	shiftTypeService *services.ShiftTypeService
}

func NewShiftTypeHandler(shiftTypeService *services.ShiftTypeService) *ShiftTypeHandler {
	return &ShiftTypeHandler{
		shiftTypeService: shiftTypeService,
	}
}

// ShiftTypeRequest is the create/update payload for a shift type
type ShiftTypeRequest struct {
	Name         string  `json:"name" binding:"required"`
	StartTime    string  `json:"startTime" binding:"required"`
	EndTime      string  `json:"endTime" binding:"required"`
	MinEmployees int     `json:"minEmployees"`
	MaxEmployees int     `json:"maxEmployees"`
	Color        string  `json:"color"`
	GroupID      *string `json:"groupId"`
}

// CreateShiftType creates a shift type
func (h *ShiftTypeHandler) CreateShiftType(c *gin.Context) {
	var req ShiftTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	shiftType, err := h.shiftTypeService.CreateShiftType(req.Name, req.StartTime, req.EndTime,
		req.MinEmployees, req.MaxEmployees, req.Color, req.GroupID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, shiftType)
}

// ListShiftTypes retrieves the shift types visible to a group
func (h *ShiftTypeHandler) ListShiftTypes(c *gin.Context) {
	groupID := c.Query("groupId")
	if groupID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "groupId is required"})
		return
	}

	shiftTypes, err := h.shiftTypeService.ListShiftTypes(groupID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shiftTypes)
}

// UpdateShiftType updates a shift type
func (h *ShiftTypeHandler) UpdateShiftType(c *gin.Context) {
	id := c.Param("id")

	shiftType, err := h.shiftTypeService.GetShiftType(id)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if shiftType == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Shift type not found"})
		return
	}

	var req ShiftTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	shiftType.Name = req.Name
	shiftType.StartTime = req.StartTime
	shiftType.EndTime = req.EndTime
	shiftType.MinEmployees = req.MinEmployees
	shiftType.MaxEmployees = req.MaxEmployees
	shiftType.Color = req.Color
	shiftType.GroupID = req.GroupID

	if err := h.shiftTypeService.UpdateShiftType(shiftType); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, shiftType)
}

// DeleteShiftType removes a shift type
func (h *ShiftTypeHandler) DeleteShiftType(c *gin.Context) {
	if err := h.shiftTypeService.DeleteShiftType(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Shift type deleted"})
}

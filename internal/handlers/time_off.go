package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shiftline/shiftline/internal/models"
	"github.com/shiftline/shiftline/internal/services"
)

type TimeOffHandler struct {
	timeOffService *services.TimeOffService
}

func NewTimeOffHandler(timeOffService *services.TimeOffService) *TimeOffHandler {
	return &TimeOffHandler{
		timeOffService: timeOffService,
	}
}

// TimeOffRequest is an approved absence for an employee
type TimeOffRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	StartDate  string `json:"startDate" binding:"required"`
	EndDate    string `json:"endDate" binding:"required"`
	Type       string `json:"type" binding:"required"`
}

// CreateTimeOff records an approved absence
func (h *TimeOffHandler) CreateTimeOff(c *gin.Context) {
	var req TimeOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	timeOff, err := h.timeOffService.CreateTimeOff(req.EmployeeID, req.StartDate, req.EndDate, models.TimeOffType(req.Type))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, timeOff)
}

// ListTimeOffs retrieves absences for an employee or a period
func (h *TimeOffHandler) ListTimeOffs(c *gin.Context) {
	if employeeID := c.Query("employeeId"); employeeID != "" {
		timeOffs, err := h.timeOffService.ListForEmployee(employeeID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, timeOffs)
		return
	}

	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate == "" || endDate == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employeeId or startDate and endDate are required"})
		return
	}

	timeOffs, err := h.timeOffService.ListForPeriod(startDate, endDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, timeOffs)
}

// DeleteTimeOff removes an absence
func (h *TimeOffHandler) DeleteTimeOff(c *gin.Context) {
	if err := h.timeOffService.DeleteTimeOff(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Time off deleted"})
}

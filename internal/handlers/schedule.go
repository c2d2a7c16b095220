package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shiftline/shiftline/internal/services"
	"github.com/shiftline/shiftline/pkg/logger"
)

type ScheduleHandler struct {
	scheduleService  *services.ScheduleService
	shiftTypeService *services.ShiftTypeService
	employeeService  *services.EmployeeService
	groupService     *services.GroupService
	exportService    *services.ExportService
}

func NewScheduleHandler(scheduleService *services.ScheduleService, shiftTypeService *services.ShiftTypeService,
	employeeService *services.EmployeeService, groupService *services.GroupService,
	exportService *services.ExportService) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleService:  scheduleService,
		shiftTypeService: shiftTypeService,
		employeeService:  employeeService,
		groupService:     groupService,
		exportService:    exportService,
	}
}

// GetScheduleDataForManaging returns everything the schedule editor
// needs for a group: its employees, its shift types and the group list
func (h *ScheduleHandler) GetScheduleDataForManaging(c *gin.Context) {
	groupID := c.Param("groupID")
	if groupID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Group ID is required"})
		return
	}

	employees, err := h.employeeService.ListByGroup(groupID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shiftTypes, err := h.shiftTypeService.ListShiftTypes(groupID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	groups, err := h.groupService.ListGroups()
	if err != nil {
		logger.WithError(err).Error("Failed to list groups")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load schedule data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"employees":  employees,
		"shiftTypes": shiftTypes,
		"groups":     groups,
	})
}

// GetScheduleInfoWithShifts returns the schedule covering a month for a
// group, with its shifts loaded
func (h *ScheduleHandler) GetScheduleInfoWithShifts(c *gin.Context) {
	groupID := c.Query("groupId")
	if groupID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "groupId is required"})
		return
	}

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}
	onlyConfirmed := c.Query("showOnlyConfirmed") == "true"

	sched, err := h.scheduleService.GetScheduleInfoWithShifts(groupID, year, month, onlyConfirmed)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if sched == nil {
		c.JSON(http.StatusOK, gin.H{"schedule": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"schedule": sched})
}

// UpdateSchedule replaces the full shift set of a group's schedule
func (h *ScheduleHandler) UpdateSchedule(c *gin.Context) {
	var req services.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	sched, err := h.scheduleService.UpdateSchedule(&req)
	if err != nil {
		var conflict *services.ConflictError
		switch {
		case errors.Is(err, services.ErrSaveInProgress):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.As(err, &conflict):
			c.JSON(http.StatusConflict, gin.H{"error": conflict.Message, "reason": conflict.Reason})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, sched)
}

// UnconfirmSchedule clears the confirmation flag of a schedule
func (h *ScheduleHandler) UnconfirmSchedule(c *gin.Context) {
	scheduleID := c.Param("scheduleID")
	if scheduleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Schedule ID is required"})
		return
	}

	if err := h.scheduleService.Unconfirm(scheduleID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Schedule unconfirmed"})
}

// ExportSchedule streams the schedule as a spreadsheet download
func (h *ScheduleHandler) ExportSchedule(c *gin.Context) {
	scheduleID := c.Param("scheduleID")
	if scheduleID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Schedule ID is required"})
		return
	}

	file, fileName, err := h.exportService.Export(scheduleID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)

	if err := file.Write(c.Writer); err != nil {
		logger.WithError(err).Error("Failed to write export spreadsheet")
	}
}

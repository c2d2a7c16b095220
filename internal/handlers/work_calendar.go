package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shiftline/shiftline/internal/services"
)

type WorkCalendarHandler struct {
	workCalendarService *services.WorkCalendarService
}

func NewWorkCalendarHandler(workCalendarService *services.WorkCalendarService) *WorkCalendarHandler {
	return &WorkCalendarHandler{
		workCalendarService: workCalendarService,
	}
}

// WorkDayRequest configures one operating day of the week
type WorkDayRequest struct {
	DayOfWeek string `json:"dayOfWeek" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

// SetWorkDay marks a day of the week as an operating day
func (h *WorkCalendarHandler) SetWorkDay(c *gin.Context) {
	var req WorkDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	workDay, err := h.workCalendarService.SetWorkDay(req.DayOfWeek, req.StartTime, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, workDay)
}

// ListWorkDays retrieves the configured operating days
func (h *WorkCalendarHandler) ListWorkDays(c *gin.Context) {
	workDays, err := h.workCalendarService.ListWorkDays()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list work days"})
		return
	}

	c.JSON(http.StatusOK, workDays)
}

// ClearWorkDay makes a day of the week non-working
func (h *WorkCalendarHandler) ClearWorkDay(c *gin.Context) {
	if err := h.workCalendarService.ClearWorkDay(c.Param("dayOfWeek")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Work day cleared"})
}

// HolidayRequest is an annually recurring holiday
type HolidayRequest struct {
	Name  string `json:"name" binding:"required"`
	Month int    `json:"month" binding:"required"`
	Day   int    `json:"day" binding:"required"`
}

// CreateHoliday adds a recurring holiday
func (h *WorkCalendarHandler) CreateHoliday(c *gin.Context) {
	var req HolidayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	holiday, err := h.workCalendarService.AddHoliday(req.Name, req.Month, req.Day)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, holiday)
}

// ListHolidays retrieves all holidays
func (h *WorkCalendarHandler) ListHolidays(c *gin.Context) {
	holidays, err := h.workCalendarService.ListHolidays()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list holidays"})
		return
	}

	c.JSON(http.StatusOK, holidays)
}

// DeleteHoliday removes a holiday
func (h *WorkCalendarHandler) DeleteHoliday(c *gin.Context) {
	if err := h.workCalendarService.DeleteHoliday(c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Holiday deleted"})
}

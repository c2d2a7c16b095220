package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shiftline/shiftline/internal/services"
)

type CoverageHandler struct {
	coverageService *services.CoverageService
}

func NewCoverageHandler(coverageService *services.CoverageService) *CoverageHandler {
	return &CoverageHandler{
		coverageService: coverageService,
	}
}

// CheckCoverageRequest names the month to evaluate
type CheckCoverageRequest struct {
	GroupID string `json:"groupId" binding:"required"`
	Year    int    `json:"year" binding:"required"`
	Month   int    `json:"month" binding:"required"`
}

// CheckCoverage evaluates staffing coverage for a group's month
func (h *CoverageHandler) CheckCoverage(c *gin.Context) {
	var req CheckCoverageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	report, err := h.coverageService.CheckMonth(req.GroupID, req.Year, req.Month)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, report)
}

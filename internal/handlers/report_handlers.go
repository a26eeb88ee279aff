package handlers

import (
	"net/http"

	"restaurant_pos_backend/internal/services"
	"restaurant_pos_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReportHandler holds the report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// GetDailySales returns today's sales total; the billing screen polls this
// after every finalized order.
func (h *ReportHandler) GetDailySales(c *gin.Context) {
	report, err := h.reportService.GetDailySales()
	if err != nil {
		utils.LogError(err, "GetDailySales: Error from reportService.GetDailySales")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute daily sales.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetDashboardSummary returns today's sales total and order count.
func (h *ReportHandler) GetDashboardSummary(c *gin.Context) {
	summary, err := h.reportService.GetDashboardSummary()
	if err != nil {
		utils.LogError(err, "GetDashboardSummary: Error from reportService.GetDashboardSummary")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to compute dashboard summary.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, summary)
}

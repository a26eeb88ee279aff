package services

import (
	"fmt"
	"time"

	"restaurant_pos_backend/internal/models"
	"restaurant_pos_backend/internal/repositories"
)

const reportDateLayout = "2006-01-02"

// --- ReportService Interface ---
type ReportService interface {
	GetDailySales() (*models.DailySalesReport, error)
	GetDashboardSummary() (*models.DashboardSummary, error)
}

// --- reportService Implementation ---
type reportService struct {
	orderRepo repositories.OrderRepository
}

// NewReportService creates a new instance of ReportService.
func NewReportService(orderRepo repositories.OrderRepository) ReportService {
	return &reportService{orderRepo: orderRepo}
}

// GetDailySales returns the sum of recorded order totals for the current
// local calendar day; zero when nothing has been sold yet.
func (s *reportService) GetDailySales() (*models.DailySalesReport, error) {
	now := time.Now()
	total, err := s.orderRepo.GetDailySalesTotal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily sales total: %w", err)
	}
	return &models.DailySalesReport{
		Date:  now.Format(reportDateLayout),
		Total: total,
	}, nil
}

// GetDashboardSummary returns today's sales total and order count.
func (s *reportService) GetDashboardSummary() (*models.DashboardSummary, error) {
	now := time.Now()
	total, err := s.orderRepo.GetDailySalesTotal(now)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily sales total: %w", err)
	}
	count, err := s.orderRepo.GetDailyOrderCount(now)
	if err != nil {
		return nil, fmt.Errorf("failed to get daily order count: %w", err)
	}
	return &models.DashboardSummary{
		Date:       now.Format(reportDateLayout),
		TotalSales: total,
		OrderCount: count,
	}, nil
}

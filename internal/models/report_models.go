package models

// DailySalesReport is the daily sales readout shown on the billing screen.
type DailySalesReport struct {
	Date  string  `json:"date"` // YYYY-MM-DD, local calendar day
	Total float64 `json:"total"`
}

// DashboardSummary aggregates today's key figures for the operator.
type DashboardSummary struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"total_sales"`
	OrderCount int     `json:"order_count"`
}

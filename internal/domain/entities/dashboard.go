package entities

// StatusCount is one slice of the dashboard status breakdown.
type StatusCount struct {
	Status OrderStatus `json:"status"`
	Count  int         `json:"count"`
}

// DashboardStats is the fixed-shape summary shown on the dashboard.
//
// CompletedThisMonth and RevenueThisMonth are month-scoped (close date in the
// current calendar month); ByStatus is a full-population breakdown in the
// canonical status order.
type DashboardStats struct {
	TotalOpen          int           `json:"total_open"`
	CompletedThisMonth int           `json:"completed_this_month"`
	RevenueThisMonth   float64       `json:"revenue_this_month"`
	ByStatus           []StatusCount `json:"by_status"`
}

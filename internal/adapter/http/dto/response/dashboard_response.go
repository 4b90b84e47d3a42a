package response

import (
	"servicos_xpto/internal/domain/entities"
	"servicos_xpto/pkg/format"
)

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type DashboardStatsResponse struct {
	TotalOpen               int                   `json:"total_open"`
	CompletedThisMonth      int                   `json:"completed_this_month"`
	RevenueThisMonth        float64               `json:"revenue_this_month"`
	RevenueThisMonthDisplay string                `json:"revenue_this_month_display"`
	ByStatus                []StatusCountResponse `json:"by_status"`
}

func FromDashboardStats(s entities.DashboardStats) DashboardStatsResponse {
	byStatus := make([]StatusCountResponse, 0, len(s.ByStatus))
	for _, sc := range s.ByStatus {
		byStatus = append(byStatus, StatusCountResponse{Status: string(sc.Status), Count: sc.Count})
	}
	return DashboardStatsResponse{
		TotalOpen:               s.TotalOpen,
		CompletedThisMonth:      s.CompletedThisMonth,
		RevenueThisMonth:        s.RevenueThisMonth,
		RevenueThisMonthDisplay: format.Currency(s.RevenueThisMonth),
		ByStatus:                byStatus,
	}
}

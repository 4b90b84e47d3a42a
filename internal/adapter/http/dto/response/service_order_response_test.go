package response

import (
	"testing"
	"time"

	"servicos_xpto/internal/domain/entities"
)

func TestFromServiceOrder(t *testing.T) {
	closeDate := time.Date(2025, time.August, 30, 0, 0, 0, 0, time.UTC)
	order := entities.ServiceOrder{
		ID:            8,
		ClientName:    "Ana Silva",
		OpenDate:      time.Date(2025, time.August, 3, 0, 0, 0, 0, time.UTC),
		CloseDate:     &closeDate,
		Value:         1234.5,
		Status:        entities.OrderStatusCompleted,
		PaymentMethod: "PIX",
	}

	resp := FromServiceOrder(order)
	if resp.OpenDate != "2025-08-03" {
		t.Fatalf("expected sortable open date, got %q", resp.OpenDate)
	}
	if resp.OpenDateDisplay != "03/08/2025" || resp.CloseDateDisplay != "30/08/2025" {
		t.Fatalf("expected dd/mm/yyyy display, got %q / %q", resp.OpenDateDisplay, resp.CloseDateDisplay)
	}
	if resp.ValueDisplay != "R$ 1.234,50" {
		t.Fatalf("unexpected value display: %q", resp.ValueDisplay)
	}
	if resp.Status != "COMPLETED" {
		t.Fatalf("unexpected status: %q", resp.Status)
	}
}

func TestFromServiceOrder_NoCloseDate(t *testing.T) {
	resp := FromServiceOrder(entities.ServiceOrder{
		ID:       1,
		OpenDate: time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
		Status:   entities.OrderStatusOpen,
	})
	if resp.CloseDate != "" || resp.CloseDateDisplay != "" {
		t.Fatalf("expected empty close date fields, got %q / %q", resp.CloseDate, resp.CloseDateDisplay)
	}
}

func TestFromDashboardStats(t *testing.T) {
	stats := entities.DashboardStats{
		TotalOpen:          2,
		CompletedThisMonth: 1,
		RevenueThisMonth:   1500,
		ByStatus: []entities.StatusCount{
			{Status: entities.OrderStatusOpen, Count: 2},
			{Status: entities.OrderStatusCompleted, Count: 1},
		},
	}

	resp := FromDashboardStats(stats)
	if resp.RevenueThisMonthDisplay != "R$ 1.500,00" {
		t.Fatalf("unexpected revenue display: %q", resp.RevenueThisMonthDisplay)
	}
	if len(resp.ByStatus) != 2 || resp.ByStatus[0].Status != "OPEN" {
		t.Fatalf("unexpected breakdown: %+v", resp.ByStatus)
	}
}

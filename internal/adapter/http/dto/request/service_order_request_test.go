package request

import (
	"errors"
	"testing"
	"time"

	"servicos_xpto/internal/domain/entities"
)

func TestServiceOrderRequest_ToEntity(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		r := ServiceOrderRequest{
			ClientName: "Ana",
			OpenDate:   "2025-08-01",
			CloseDate:  "2025-08-30",
			Value:      99.9,
			Status:     "COMPLETED",
		}
		order, err := r.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !order.OpenDate.Equal(time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected open date: %v", order.OpenDate)
		}
		if order.CloseDate == nil || !order.CloseDate.Equal(time.Date(2025, time.August, 30, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected close date: %v", order.CloseDate)
		}
		if order.Status != entities.OrderStatusCompleted {
			t.Fatalf("unexpected status: %v", order.Status)
		}
	})

	t.Run("rfc3339 timestamp", func(t *testing.T) {
		r := ServiceOrderRequest{ClientName: "Ana", OpenDate: "2025-08-01T14:30:00Z"}
		order, err := r.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.OpenDate.Hour() != 14 {
			t.Fatalf("unexpected open date: %v", order.OpenDate)
		}
	})

	t.Run("empty dates stay zero", func(t *testing.T) {
		r := ServiceOrderRequest{ClientName: "Ana"}
		order, err := r.ToEntity()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !order.OpenDate.IsZero() || order.CloseDate != nil {
			t.Fatalf("expected zero dates, got %+v", order)
		}
	})

	t.Run("garbage date rejected", func(t *testing.T) {
		r := ServiceOrderRequest{ClientName: "Ana", OpenDate: "31/08/2025"}
		if _, err := r.ToEntity(); !errors.Is(err, ErrInvalidOrderDate) {
			t.Fatalf("expected ErrInvalidOrderDate, got %v", err)
		}
	})
}

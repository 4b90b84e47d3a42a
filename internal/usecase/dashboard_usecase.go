package usecase

import (
	"context"
	"time"

	"servicos_xpto/internal/domain/entities"
	"servicos_xpto/internal/usecase/interfaces"
)

// IDashboardUseCase computes the dashboard summary.
type IDashboardUseCase interface {
	GetStats(ctx context.Context) (entities.DashboardStats, error)
}

type DashboardUseCase struct {
	repo interfaces.IServiceOrderRepository
}

var _ IDashboardUseCase = (*DashboardUseCase)(nil)

func NewDashboardUseCase(repo interfaces.IServiceOrderRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetStats loads the full order set and aggregates it in memory. The only
// failure mode is the underlying GetAll; it propagates unchanged.
func (u *DashboardUseCase) GetStats(ctx context.Context) (entities.DashboardStats, error) {
	orders, err := u.repo.GetAll(ctx)
	if err != nil {
		return entities.DashboardStats{}, err
	}
	return ComputeDashboardStats(orders, time.Now()), nil
}

// ComputeDashboardStats aggregates a full order set into the dashboard
// summary. Aggregation runs client-side over the complete set rather than as
// a server-side query; while order volume stays small that is the simpler
// trade, and keeping this a pure function lets a server-computed source
// replace it without touching callers.
//
// CompletedThisMonth/RevenueThisMonth cover COMPLETED orders whose close date
// falls in now's calendar month and year. ByStatus counts the whole
// population per label, in canonical order, regardless of input order.
func ComputeDashboardStats(orders []entities.ServiceOrder, now time.Time) entities.DashboardStats {
	stats := entities.DashboardStats{}

	counts := make(map[entities.OrderStatus]int, 6)
	for _, o := range orders {
		counts[o.Status]++
		if o.Status == entities.OrderStatusOpen {
			stats.TotalOpen++
		}
		if o.Status == entities.OrderStatusCompleted && o.CloseDate != nil &&
			o.CloseDate.Year() == now.Year() && o.CloseDate.Month() == now.Month() {
			stats.CompletedThisMonth++
			stats.RevenueThisMonth += o.Value
		}
	}

	all := entities.AllOrderStatuses()
	stats.ByStatus = make([]entities.StatusCount, 0, len(all))
	for _, s := range all {
		stats.ByStatus = append(stats.ByStatus, entities.StatusCount{Status: s, Count: counts[s]})
	}
	return stats
}

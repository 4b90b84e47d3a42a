package usecase

import (
	"strings"

	"servicos_xpto/internal/domain/entities"
)

// StatusFilterAll is the status selector that passes every order.
const StatusFilterAll = "all"

// FilterOrders narrows an already-loaded order list by a free-text query and
// a status selector.
//
// The query is a case-insensitive substring match against the client name
// only; the status selector is an exact label match, with "all" (or an empty
// selector) passing everything. Both predicates are ANDed and the input
// order is preserved. The function is pure: calling it twice with the same
// inputs yields the same result.
func FilterOrders(orders []entities.ServiceOrder, query, status string) []entities.ServiceOrder {
	q := strings.ToLower(query)

	filtered := make([]entities.ServiceOrder, 0, len(orders))
	for _, o := range orders {
		if !strings.Contains(strings.ToLower(o.ClientName), q) {
			continue
		}
		if status != "" && status != StatusFilterAll && string(o.Status) != status {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered
}

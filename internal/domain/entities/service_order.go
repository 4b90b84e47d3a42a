package entities

import "time"

// OrderStatus is the lifecycle label of a service order.
//
// Domain notes:
//   - The six labels are fixed and stored verbatim in the service_orders table.
//   - There is no transition graph: the shop staff sets any status at any time
//     through an edit, so assignment is free-form on purpose.
//   - The declaration order below is also the canonical order of the dashboard
//     status breakdown.
type OrderStatus string

const (
	OrderStatusOpen                 OrderStatus = "OPEN"
	OrderStatusCreation             OrderStatus = "CREATION"
	OrderStatusProduction           OrderStatus = "PRODUCTION"
	OrderStatusAwaitingInstallation OrderStatus = "AWAITING_INSTALLATION"
	OrderStatusCompleted            OrderStatus = "COMPLETED"
	OrderStatusCancelled            OrderStatus = "CANCELLED"
)

// AllOrderStatuses returns the six labels in canonical order.
func AllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusOpen,
		OrderStatusCreation,
		OrderStatusProduction,
		OrderStatusAwaitingInstallation,
		OrderStatusCompleted,
		OrderStatusCancelled,
	}
}

// IsValid reports whether s is one of the six enumerated labels.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusOpen, OrderStatusCreation, OrderStatusProduction,
		OrderStatusAwaitingInstallation, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// ServiceOrder is the service order (ordem de serviço) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (number, assigned from the counters table on creation)
//
// Monetary representation:
//   - Value is the agreed order total, always >= 0.
//
// CloseDate is optional; it usually carries meaning once the order reaches
// COMPLETED or CANCELLED, but nothing enforces that pairing.
type ServiceOrder struct {
	ID            int         `json:"id"`
	ClientName    string      `json:"client_name"`
	ClientPhone   string      `json:"client_phone"`
	Description   string      `json:"description"`
	OpenDate      time.Time   `json:"open_date"`
	CloseDate     *time.Time  `json:"close_date,omitempty"`
	Value         float64     `json:"value"`
	Status        OrderStatus `json:"status"`
	PaymentMethod string      `json:"payment_method"`
	Observations  string      `json:"observations,omitempty"`
}

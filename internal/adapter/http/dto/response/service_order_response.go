package response

import (
	"servicos_xpto/internal/domain/entities"
	"servicos_xpto/pkg/format"
)

// ServiceOrderResponse carries the machine representation of an order plus
// the display strings the screens render: pt-BR currency and dd/mm/yyyy
// dates. Stored dates stay ISO so they sort.
type ServiceOrderResponse struct {
	ID               int     `json:"id"`
	ClientName       string  `json:"client_name"`
	ClientPhone      string  `json:"client_phone"`
	Description      string  `json:"description"`
	OpenDate         string  `json:"open_date"`
	OpenDateDisplay  string  `json:"open_date_display"`
	CloseDate        string  `json:"close_date,omitempty"`
	CloseDateDisplay string  `json:"close_date_display,omitempty"`
	Value            float64 `json:"value"`
	ValueDisplay     string  `json:"value_display"`
	Status           string  `json:"status"`
	PaymentMethod    string  `json:"payment_method"`
	Observations     string  `json:"observations,omitempty"`
}

func FromServiceOrder(o entities.ServiceOrder) ServiceOrderResponse {
	resp := ServiceOrderResponse{
		ID:              o.ID,
		ClientName:      o.ClientName,
		ClientPhone:     o.ClientPhone,
		Description:     o.Description,
		OpenDate:        o.OpenDate.Format("2006-01-02"),
		OpenDateDisplay: format.Date(o.OpenDate),
		Value:           o.Value,
		ValueDisplay:    format.Currency(o.Value),
		Status:          string(o.Status),
		PaymentMethod:   o.PaymentMethod,
		Observations:    o.Observations,
	}
	if o.CloseDate != nil {
		resp.CloseDate = o.CloseDate.Format("2006-01-02")
		resp.CloseDateDisplay = format.Date(*o.CloseDate)
	}
	return resp
}

func FromServiceOrders(orders []entities.ServiceOrder) []ServiceOrderResponse {
	out := make([]ServiceOrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromServiceOrder(o))
	}
	return out
}

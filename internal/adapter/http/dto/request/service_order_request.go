package request

import (
	"errors"
	"strings"
	"time"

	"servicos_xpto/internal/domain/entities"
)

var ErrInvalidOrderDate = errors.New("invalid order date")

// ServiceOrderRequest is the payload accepted by the create and update
// endpoints. Dates come in either as plain dates ("2025-08-31") or RFC 3339
// timestamps; value/status/client rules are enforced by the use case.
type ServiceOrderRequest struct {
	ClientName    string  `json:"client_name" binding:"required"`
	ClientPhone   string  `json:"client_phone"`
	Description   string  `json:"description"`
	OpenDate      string  `json:"open_date"`
	CloseDate     string  `json:"close_date"`
	Value         float64 `json:"value"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"payment_method"`
	Observations  string  `json:"observations"`
}

// ToEntity translates the payload into the domain entity. The id is never
// taken from the body; create ignores it and update takes it from the path.
func (r ServiceOrderRequest) ToEntity() (entities.ServiceOrder, error) {
	openDate, err := parseOrderDate(r.OpenDate)
	if err != nil {
		return entities.ServiceOrder{}, err
	}

	var closeDate *time.Time
	if strings.TrimSpace(r.CloseDate) != "" {
		t, err := parseOrderDate(r.CloseDate)
		if err != nil {
			return entities.ServiceOrder{}, err
		}
		closeDate = &t
	}

	return entities.ServiceOrder{
		ClientName:    r.ClientName,
		ClientPhone:   r.ClientPhone,
		Description:   r.Description,
		OpenDate:      openDate,
		CloseDate:     closeDate,
		Value:         r.Value,
		Status:        entities.OrderStatus(r.Status),
		PaymentMethod: r.PaymentMethod,
		Observations:  r.Observations,
	}, nil
}

func parseOrderDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidOrderDate
}

package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"servicos_xpto/internal/domain/entities"
	"servicos_xpto/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound      = errors.New("service order not found")
	ErrInvalidOrderID     = errors.New("invalid service order id")
	ErrInvalidClientName  = errors.New("invalid client name")
	ErrInvalidOrderValue  = errors.New("invalid service order value")
	ErrInvalidOrderStatus = errors.New("invalid service order status")
)

// IServiceOrderUseCase exposes the service order operations behind the list,
// form and delete actions of the shop's management screens.
//
// Validation happens here, before any store call: the store is not the last
// line of defense against an empty client name or a negative value.
type IServiceOrderUseCase interface {
	List(ctx context.Context, query, status string) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, id int) (entities.ServiceOrder, error)
	Create(ctx context.Context, order entities.ServiceOrder) (entities.ServiceOrder, error)
	Update(ctx context.Context, order entities.ServiceOrder) error
	Delete(ctx context.Context, id int) error
}

type ServiceOrderUseCase struct {
	repo interfaces.IServiceOrderRepository
}

var _ IServiceOrderUseCase = (*ServiceOrderUseCase)(nil)

func NewServiceOrderUseCase(repo interfaces.IServiceOrderRepository) *ServiceOrderUseCase {
	return &ServiceOrderUseCase{repo: repo}
}

// List loads every order and narrows it with FilterOrders. The result keeps
// the store's id-descending order.
func (u *ServiceOrderUseCase) List(ctx context.Context, query, status string) ([]entities.ServiceOrder, error) {
	orders, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterOrders(orders, query, status), nil
}

func (u *ServiceOrderUseCase) GetByID(ctx context.Context, id int) (entities.ServiceOrder, error) {
	if id <= 0 {
		return entities.ServiceOrder{}, ErrInvalidOrderID
	}

	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.ServiceOrder{}, err
	}
	if order.ID == 0 {
		// The repository reports an unconfigured backend the same way; both
		// surface as not-found here.
		return entities.ServiceOrder{}, ErrOrderNotFound
	}
	return order, nil
}

func (u *ServiceOrderUseCase) Create(ctx context.Context, order entities.ServiceOrder) (entities.ServiceOrder, error) {
	order.ID = 0 // the store assigns ids
	order.ClientName = strings.TrimSpace(order.ClientName)
	if order.ClientName == "" {
		return entities.ServiceOrder{}, ErrInvalidClientName
	}
	if order.Value < 0 {
		return entities.ServiceOrder{}, ErrInvalidOrderValue
	}
	if order.Status == "" {
		order.Status = entities.OrderStatusOpen
	}
	if !order.Status.IsValid() {
		return entities.ServiceOrder{}, ErrInvalidOrderStatus
	}
	if order.OpenDate.IsZero() {
		order.OpenDate = time.Now().UTC()
	}
	return u.repo.Create(ctx, order)
}

func (u *ServiceOrderUseCase) Update(ctx context.Context, order entities.ServiceOrder) error {
	if order.ID <= 0 {
		return ErrInvalidOrderID
	}
	order.ClientName = strings.TrimSpace(order.ClientName)
	if order.ClientName == "" {
		return ErrInvalidClientName
	}
	if order.Value < 0 {
		return ErrInvalidOrderValue
	}
	if !order.Status.IsValid() {
		return ErrInvalidOrderStatus
	}
	return u.repo.Update(ctx, order)
}

func (u *ServiceOrderUseCase) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidOrderID
	}
	return u.repo.Delete(ctx, id)
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"servicos_xpto/internal/domain/entities"
	"servicos_xpto/internal/usecase/interfaces"
	mock_interfaces "servicos_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestServiceOrderUseCase_Create(t *testing.T) {
	t.Run("empty client name", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil)
		_, err := uc.Create(context.Background(), entities.ServiceOrder{ClientName: "   ", Value: 10})
		if !errors.Is(err, ErrInvalidClientName) {
			t.Fatalf("expected ErrInvalidClientName, got %v", err)
		}
	})

	t.Run("negative value", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil)
		_, err := uc.Create(context.Background(), entities.ServiceOrder{ClientName: "Ana", Value: -1})
		if !errors.Is(err, ErrInvalidOrderValue) {
			t.Fatalf("expected ErrInvalidOrderValue, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil)
		_, err := uc.Create(context.Background(), entities.ServiceOrder{ClientName: "Ana", Status: "PAUSED"})
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("defaults applied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ServiceOrder{})).DoAndReturn(
			func(_ context.Context, o entities.ServiceOrder) (entities.ServiceOrder, error) {
				if o.ID != 0 {
					t.Fatalf("expected id left for the store, got %d", o.ID)
				}
				if o.ClientName != "Ana Silva" {
					t.Fatalf("expected trimmed client name, got %q", o.ClientName)
				}
				if o.Status != entities.OrderStatusOpen {
					t.Fatalf("expected default OPEN status, got %s", o.Status)
				}
				if o.OpenDate.IsZero() {
					t.Fatalf("expected open date default")
				}
				o.ID = 7
				return o, nil
			},
		)

		created, err := uc.Create(context.Background(), entities.ServiceOrder{ID: 99, ClientName: " Ana Silva ", Value: 120})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 7 {
			t.Fatalf("expected store-assigned id 7, got %d", created.ID)
		}
	})

	t.Run("unconfigured store fails loudly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.ServiceOrder{}, interfaces.ErrStoreNotConfigured)

		_, err := uc.Create(context.Background(), entities.ServiceOrder{ClientName: "Ana", Value: 10})
		if !errors.Is(err, interfaces.ErrStoreNotConfigured) {
			t.Fatalf("expected ErrStoreNotConfigured, got %v", err)
		}
	})
}

func TestServiceOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil)
		_, err := uc.GetByID(context.Background(), 0)
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("zero-value result maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), 42).Return(entities.ServiceOrder{}, nil)

		_, err := uc.GetByID(context.Background(), 42)
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("store error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		storeErr := &interfaces.StoreError{Op: "get_by_id", Err: errors.New("timeout")}
		repo.EXPECT().GetByID(gomock.Any(), 42).Return(entities.ServiceOrder{}, storeErr)

		_, err := uc.GetByID(context.Background(), 42)
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected store error passthrough, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), 42).Return(entities.ServiceOrder{ID: 42, ClientName: "Bruno"}, nil)

		order, err := uc.GetByID(context.Background(), 42)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.ID != 42 || order.ClientName != "Bruno" {
			t.Fatalf("unexpected order: %+v", order)
		}
	})
}

func TestServiceOrderUseCase_Update(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil)
		err := uc.Update(context.Background(), entities.ServiceOrder{ClientName: "Ana", Status: entities.OrderStatusOpen})
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("status must be one of the six", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil)
		err := uc.Update(context.Background(), entities.ServiceOrder{ID: 1, ClientName: "Ana", Status: "DONE"})
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("any enumerated status is assignable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		// No transition graph: a CANCELLED order may go straight back to OPEN.
		for _, status := range entities.AllOrderStatuses() {
			repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
			err := uc.Update(context.Background(), entities.ServiceOrder{ID: 1, ClientName: "Ana", Status: status})
			if err != nil {
				t.Fatalf("status %s: unexpected error: %v", status, err)
			}
		}
	})

	t.Run("store rejection propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		storeErr := &interfaces.StoreError{Op: "update", Err: errors.New("conditional check failed")}
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(storeErr)

		err := uc.Update(context.Background(), entities.ServiceOrder{ID: 1, ClientName: "Ana", Status: entities.OrderStatusOpen})
		if !errors.Is(err, storeErr) {
			t.Fatalf("expected store error passthrough, got %v", err)
		}
	})
}

func TestServiceOrderUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewServiceOrderUseCase(nil)
		if err := uc.Delete(context.Background(), -3); !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("delegates to repository", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), 5).Return(nil)

		if err := uc.Delete(context.Background(), 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceOrderUseCase_List(t *testing.T) {
	t.Run("repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		repo.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("db"))

		_, err := uc.List(context.Background(), "", "all")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("applies the filter over the loaded set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceOrderRepository(ctrl)
		uc := NewServiceOrderUseCase(repo)

		now := time.Now()
		repo.EXPECT().GetAll(gomock.Any()).Return([]entities.ServiceOrder{
			{ID: 2, ClientName: "Bruno", Status: entities.OrderStatusCompleted, OpenDate: now},
			{ID: 1, ClientName: "Ana Silva", Status: entities.OrderStatusOpen, OpenDate: now},
		}, nil)

		orders, err := uc.List(context.Background(), "ana", "all")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(orders) != 1 || orders[0].ID != 1 {
			t.Fatalf("expected only order 1, got %+v", orders)
		}
	})
}

package interfaces

import (
	"context"
	"errors"

	"servicos_xpto/internal/domain/entities"
)

// ErrStoreNotConfigured is returned by Create when no persistence backend is
// configured. Reads degrade to empty results in the same state and writes
// that target existing records (update/delete) become no-ops; only the
// creation of new data fails loudly.
var ErrStoreNotConfigured = errors.New("service order store not configured")

// StoreError wraps a rejection from the persistence backend (network failure,
// constraint violation, unknown id on a conditional write). The underlying
// cause is always kept and never retried.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return "service order store: " + e.Op + ": " + e.Err.Error()
}

func (e *StoreError) Unwrap() error { return e.Err }

// IServiceOrderRepository abstracts DynamoDB persistence for ServiceOrder.
//
// Contract:
//   - GetAll returns orders sorted by id descending (most recent first) and
//     an empty slice when the backend is unconfigured.
//   - GetByID returns a zero-value order both for "not found" and for an
//     unconfigured backend; callers cannot tell the two apart.
//   - Create assigns the numeric id and fails with ErrStoreNotConfigured when
//     no backend is set up.
//   - Update replaces the full record keyed by id; Delete removes it. Both
//     are no-ops when the backend is unconfigured.
type IServiceOrderRepository interface {
	GetAll(ctx context.Context) ([]entities.ServiceOrder, error)
	GetByID(ctx context.Context, id int) (entities.ServiceOrder, error)
	Create(ctx context.Context, order entities.ServiceOrder) (entities.ServiceOrder, error)
	Update(ctx context.Context, order entities.ServiceOrder) error
	Delete(ctx context.Context, id int) error
}

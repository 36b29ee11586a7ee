package interfaces

import (
	"context"

	"phicoffee/internal/domain/entities"
)

// IOrderRepository abstracts sheet-row persistence for orders.
//
// The service must be able to:
//   - append one row per submitted order (append-only; no in-place update)
//   - find an order by id for the invoice view (linear scan of the range)
//
// FindByID reports a missing order as (zero, false, nil): not-found is
// distinct from an upstream error.
type IOrderRepository interface {
	Append(ctx context.Context, o entities.Order) error
	FindByID(ctx context.Context, id string) (entities.Order, bool, error)
}

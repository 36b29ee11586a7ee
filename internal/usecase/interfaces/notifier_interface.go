package interfaces

import (
	"context"

	"phicoffee/internal/domain/entities"
)

// IOrderNotifier abstracts the vendor notification channel (e.g. Telegram).
//
// Delivery is best-effort and fire-and-forget: a failed notification is
// recorded in the submission outcome but never fails the order.
type IOrderNotifier interface {
	NotifyNewOrder(ctx context.Context, o entities.Order) error
}

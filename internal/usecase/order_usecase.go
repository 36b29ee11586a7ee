package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"phicoffee/internal/domain/entities"
	"phicoffee/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound          = errors.New("order not found")
	ErrInvalidCustomerName    = errors.New("name must be at least 2 characters")
	ErrInvalidPhone           = errors.New("phone must be at least 10 characters")
	ErrInvalidLocation        = errors.New("delivery location must be at least 3 characters")
	ErrMissingPickupTime      = errors.New("pickup time is required for spot orders")
	ErrNoSelections           = errors.New("order has no selections")
	ErrInvalidOrderID         = errors.New("invalid order id")
	ErrUnknownSelection       = errors.New("selection does not match the catalog")
	ErrOrderPersistenceFailed = errors.New("failed to save order")
)

// SubmitOrderCommand carries a validated-elsewhere form submission. The
// client's displayed total is deliberately absent: the total is always
// recomputed here, at the point of truth.
type SubmitOrderCommand struct {
	Channel          entities.OrderChannel
	CustomerName     string
	Phone            string
	Notes            string
	DeliveryLocation string
	PickupTime       string
	CoordinatesURL   string
	Selections       []entities.CoffeeSelection
	PaymentProofURL  string
}

// SubmitOutcome records the per-step result of one submission so a future
// reconciliation job has enough state to find orphans (uploaded proof with no
// row, row with no notification).
type SubmitOutcome struct {
	Order            entities.Order
	RowAppended      bool
	NotificationSent bool
}

// IOrderUseCase exposes order submission and invoice lookup.
type IOrderUseCase interface {
	Submit(ctx context.Context, cmd SubmitOrderCommand) (SubmitOutcome, error)
	GetInvoice(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	notifier interfaces.IOrderNotifier
	catalog  entities.Catalog
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

// NewOrderUseCase wires the submission flow. notifier may be nil when the
// chat channel is not configured; submissions then skip the notification.
func NewOrderUseCase(repo interfaces.IOrderRepository, notifier interfaces.IOrderNotifier, catalog entities.Catalog) *OrderUseCase {
	return &OrderUseCase{repo: repo, notifier: notifier, catalog: catalog}
}

// Submit validates the command, recomputes the total against the catalog,
// assigns the order id once, appends the row, and fires the notification
// best-effort. Validation failures reject before any external call.
func (u *OrderUseCase) Submit(ctx context.Context, cmd SubmitOrderCommand) (SubmitOutcome, error) {
	o, err := u.buildOrder(cmd)
	if err != nil {
		return SubmitOutcome{}, err
	}
	log.Printf("[order][usecase] submit start id=%s channel=%s total=%d", o.ID, o.Channel, o.TotalPrice)

	outcome := SubmitOutcome{Order: o}
	if err := u.repo.Append(ctx, o); err != nil {
		log.Printf("[order][usecase] append failed id=%s err=%v", o.ID, err)
		return outcome, fmt.Errorf("%w: %v", ErrOrderPersistenceFailed, err)
	}
	outcome.RowAppended = true

	if u.notifier == nil {
		log.Printf("[order][usecase] notifier not configured; skipping id=%s", o.ID)
		return outcome, nil
	}
	if err := u.notifier.NotifyNewOrder(ctx, o); err != nil {
		// Best-effort: the order is saved, only the ping is lost.
		log.Printf("[order][usecase] notification failed id=%s err=%v", o.ID, err)
		return outcome, nil
	}
	outcome.NotificationSent = true
	log.Printf("[order][usecase] submit success id=%s", o.ID)
	return outcome, nil
}

func (u *OrderUseCase) buildOrder(cmd SubmitOrderCommand) (entities.Order, error) {
	name := strings.TrimSpace(cmd.CustomerName)
	if len(name) < 2 {
		return entities.Order{}, ErrInvalidCustomerName
	}
	phone := strings.TrimSpace(cmd.Phone)
	if len(phone) < 10 {
		return entities.Order{}, ErrInvalidPhone
	}

	prefix := entities.OrderIDPrefixDelivery
	switch cmd.Channel {
	case entities.ChannelSpot:
		prefix = entities.OrderIDPrefixSpot
		if strings.TrimSpace(cmd.PickupTime) == "" {
			return entities.Order{}, ErrMissingPickupTime
		}
	default:
		if len(strings.TrimSpace(cmd.DeliveryLocation)) < 3 {
			return entities.Order{}, ErrInvalidLocation
		}
	}

	selections := entities.FilterSelections(cmd.Selections)
	if len(selections) == 0 {
		return entities.Order{}, ErrNoSelections
	}
	total, err := entities.OrderTotal(u.catalog, selections)
	if err != nil {
		return entities.Order{}, fmt.Errorf("%w: %v", ErrUnknownSelection, err)
	}

	o := entities.Order{
		ID:               entities.NewOrderID(prefix),
		Channel:          cmd.Channel,
		CreatedAt:        time.Now(),
		CustomerName:     name,
		Phone:            phone,
		Notes:            strings.TrimSpace(cmd.Notes),
		DeliveryLocation: strings.TrimSpace(cmd.DeliveryLocation),
		PickupTime:       strings.TrimSpace(cmd.PickupTime),
		CoordinatesURL:   strings.TrimSpace(cmd.CoordinatesURL),
		Selections:       selections,
		TotalPrice:       total,
		Status:           entities.OrderStatusPendingPayment,
	}
	if cmd.Channel == entities.ChannelSpot {
		o.DeliveryLocation = ""
	}
	if proof := strings.TrimSpace(cmd.PaymentProofURL); proof != "" {
		o.AttachPaymentProof(proof)
	}
	return o, nil
}

// GetInvoice resolves the display projection for the invoice view. A missing
// id yields ErrOrderNotFound, never an upstream error.
func (u *OrderUseCase) GetInvoice(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, found, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if !found {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

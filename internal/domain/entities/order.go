package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderStatus tracks the payment lifecycle of an order.
//
// Domain notes:
//   - An order is built in memory as pending_payment, flips to
//     pending_verification exactly once when the proof is attached, and is
//     persisted with a single append. Progression to verified happens by
//     manual vendor action outside this service.

type OrderStatus string

const (
	OrderStatusPendingPayment      OrderStatus = "pending_payment"
	OrderStatusPendingVerification OrderStatus = "pending_verification"
	OrderStatusVerified            OrderStatus = "verified"
)

// OrderChannel distinguishes campus delivery pre-orders from on-the-spot
// pickup orders. The two channels fill mutually exclusive location fields.

type OrderChannel string

const (
	ChannelDelivery OrderChannel = "delivery"
	ChannelSpot     OrderChannel = "spot"
)

const (
	OrderIDPrefixDelivery = "ORDER"
	OrderIDPrefixSpot     = "SPOT"
)

// IceSplit is a per-drink quantity split by ice preference.
type IceSplit struct {
	WithIce    int `json:"withIce"`
	WithoutIce int `json:"withoutIce"`
}

// CoffeeSelection is the customer's chosen quantity for one catalog item.
type CoffeeSelection struct {
	CatalogKey string   `json:"type"`
	Ice        IceSplit `json:"ice"`
}

func (s CoffeeSelection) Quantity() int {
	return s.Ice.WithIce + s.Ice.WithoutIce
}

// FilterSelections drops zero-quantity selections, preserving order. Persisted
// and serialized output never contains an empty line.
func FilterSelections(selections []CoffeeSelection) []CoffeeSelection {
	out := make([]CoffeeSelection, 0, len(selections))
	for _, sel := range selections {
		if sel.Quantity() > 0 {
			out = append(out, sel)
		}
	}
	return out
}

// Order is one customer order. TotalPrice always equals the recomputed sum
// over Selections against the catalog; it is assigned at the server boundary
// and never copied from client input.
type Order struct {
	ID               string            `json:"id"`
	Channel          OrderChannel      `json:"channel"`
	CreatedAt        time.Time         `json:"created_at"`
	CustomerName     string            `json:"name"`
	Phone            string            `json:"phone"`
	Notes            string            `json:"notes,omitempty"`
	DeliveryLocation string            `json:"location,omitempty"`
	PickupTime       string            `json:"pickup_time,omitempty"`
	CoordinatesURL   string            `json:"location_coordinates,omitempty"`
	Selections       []CoffeeSelection `json:"selections"`
	TotalPrice       int64             `json:"total_price"`
	PaymentProofURL  string            `json:"payment_proof_url,omitempty"`
	Status           OrderStatus       `json:"status"`
}

// AttachPaymentProof records the uploaded proof URL and moves the order to
// pending_verification. Called at most once, before the persistence append.
func (o *Order) AttachPaymentProof(url string) {
	o.PaymentProofURL = url
	o.Status = OrderStatusPendingVerification
}

// NewOrderID builds a `<PREFIX>-<epochMillis>-<token>` identifier. The id is
// assigned once, before any persistence write, and never changes.
func NewOrderID(prefix string) string {
	token := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), token)
}

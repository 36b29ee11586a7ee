package request

import (
	"strings"

	"phicoffee/internal/domain/entities"
)

type IceSplitRequest struct {
	WithIce    int `json:"withIce" binding:"min=0"`
	WithoutIce int `json:"withoutIce" binding:"min=0"`
}

type CoffeeSelectionRequest struct {
	Type string          `json:"type" binding:"required"`
	Ice  IceSplitRequest `json:"ice"`
}

// OrderRequest is the delivery (pre-order) submission payload. Field names
// mirror the customer form. TotalPrice is a client display hint only; the
// server recomputes the total and never trusts it.
type OrderRequest struct {
	Name                string                   `json:"name" binding:"required"`
	Phone               string                   `json:"phone" binding:"required"`
	Notes               string                   `json:"notes"`
	Location            string                   `json:"location" binding:"required"`
	LocationCoordinates string                   `json:"location_coordinates"`
	CoffeeSelections    []CoffeeSelectionRequest `json:"coffeeSelections" binding:"required"`
	TotalPrice          int64                    `json:"totalPrice"`
	PaymentProofURL     string                   `json:"bukti_pembayaran"`
}

// SpotOrderRequest is the on-the-spot submission payload; pickup time takes
// the place of a delivery location.
type SpotOrderRequest struct {
	Name             string                   `json:"name" binding:"required"`
	Phone            string                   `json:"phone" binding:"required"`
	Notes            string                   `json:"notes"`
	PickupTime       string                   `json:"pickupTime" binding:"required"`
	CoffeeSelections []CoffeeSelectionRequest `json:"coffeeSelections" binding:"required"`
	TotalPrice       int64                    `json:"totalPrice"`
	PaymentProofURL  string                   `json:"bukti_pembayaran"`
}

func resolveSelections(selections []CoffeeSelectionRequest) []entities.CoffeeSelection {
	out := make([]entities.CoffeeSelection, 0, len(selections))
	for _, sel := range selections {
		out = append(out, entities.CoffeeSelection{
			CatalogKey: strings.TrimSpace(sel.Type),
			Ice: entities.IceSplit{
				WithIce:    sel.Ice.WithIce,
				WithoutIce: sel.Ice.WithoutIce,
			},
		})
	}
	return out
}

func (r OrderRequest) ResolveSelections() []entities.CoffeeSelection {
	return resolveSelections(r.CoffeeSelections)
}

func (r SpotOrderRequest) ResolveSelections() []entities.CoffeeSelection {
	return resolveSelections(r.CoffeeSelections)
}

package response

import (
	"phicoffee/internal/adapter/persistence/rowcodec"
	"phicoffee/internal/domain/entities"
)

type SelectionResponse struct {
	Type       string `json:"type"`
	WithIce    int    `json:"withIce"`
	WithoutIce int    `json:"withoutIce"`
}

// OrderResponse is the invoice-oriented projection of an order.
type OrderResponse struct {
	ID                string              `json:"id"`
	Channel           string              `json:"channel"`
	Date              string              `json:"date"`
	Name              string              `json:"name"`
	Phone             string              `json:"phone"`
	Notes             string              `json:"notes,omitempty"`
	Location          string              `json:"location,omitempty"`
	PickupTime        string              `json:"pickup_time,omitempty"`
	CoordinatesURL    string              `json:"location_coordinates,omitempty"`
	Selections        []SelectionResponse `json:"selections"`
	SelectionsText    string              `json:"selections_text"`
	TotalPrice        int64               `json:"total_price"`
	TotalPriceDisplay string              `json:"total_price_display"`
	InvoiceURL        string              `json:"invoice_url"`
	PaymentProofURL   string              `json:"payment_proof_url,omitempty"`
	Status            string              `json:"status"`
}

// SubmitOrderResponse wraps a successful submission, including the recorded
// per-step outcomes of the submission sequence.
type SubmitOrderResponse struct {
	Success          bool          `json:"success"`
	Order            OrderResponse `json:"order"`
	RowAppended      bool          `json:"row_appended"`
	NotificationSent bool          `json:"notification_sent"`
}

func FromOrder(o entities.Order, invoiceURL string) OrderResponse {
	selections := make([]SelectionResponse, 0, len(o.Selections))
	for _, sel := range o.Selections {
		selections = append(selections, SelectionResponse{
			Type:       sel.CatalogKey,
			WithIce:    sel.Ice.WithIce,
			WithoutIce: sel.Ice.WithoutIce,
		})
	}

	return OrderResponse{
		ID:                o.ID,
		Channel:           string(o.Channel),
		Date:              rowcodec.FormatTimestamp(o.CreatedAt),
		Name:              o.CustomerName,
		Phone:             o.Phone,
		Notes:             o.Notes,
		Location:          o.DeliveryLocation,
		PickupTime:        o.PickupTime,
		CoordinatesURL:    o.CoordinatesURL,
		Selections:        selections,
		SelectionsText:    rowcodec.SelectionsText(o.Selections),
		TotalPrice:        o.TotalPrice,
		TotalPriceDisplay: entities.FormatRupiah(o.TotalPrice),
		InvoiceURL:        invoiceURL,
		PaymentProofURL:   o.PaymentProofURL,
		Status:            string(o.Status),
	}
}

func FromSubmitOutcome(o entities.Order, invoiceURL string, rowAppended, notificationSent bool) SubmitOrderResponse {
	return SubmitOrderResponse{
		Success:          true,
		Order:            FromOrder(o, invoiceURL),
		RowAppended:      rowAppended,
		NotificationSent: notificationSent,
	}
}

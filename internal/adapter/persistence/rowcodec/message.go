package rowcodec

import (
	"fmt"
	"strings"
	"time"

	"phicoffee/internal/domain/entities"
	"phicoffee/internal/domain/schedule"
)

// ComposeNotification renders the Markdown message sent to the vendor's chat
// channel for a new order. One-way projection for human consumption; nothing
// machine-readable depends on it.
func (c *Codec) ComposeNotification(o entities.Order, sentAt time.Time) string {
	var b strings.Builder

	b.WriteString("🆕 *NEW COFFEE ORDER* 🆕\n\n")
	fmt.Fprintf(&b, "👤 *Customer*: %s\n", o.CustomerName)
	fmt.Fprintf(&b, "☎️ *Phone*: %s\n", o.Phone)
	fmt.Fprintf(&b, "☕ *Order*: %s\n", SelectionsText(o.Selections))
	fmt.Fprintf(&b, "💰 *Total*: Rp %s\n", entities.FormatRupiah(o.TotalPrice))

	if o.Channel == entities.ChannelSpot {
		fmt.Fprintf(&b, "🕐 *Pickup*: %s\n", o.PickupTime)
	} else {
		fmt.Fprintf(&b, "📍 *Location*: %s\n", o.DeliveryLocation)
		fmt.Fprintf(&b, "🚚 *Delivery*: %s\n", schedule.FormatLongDate(schedule.DeliveryDateFor(o.CreatedAt)))
	}
	fmt.Fprintf(&b, "🧾 *Invoice*: %s\n", c.InvoiceURL(o.ID))
	if o.Notes != "" {
		fmt.Fprintf(&b, "📝 *Notes*: %s\n", o.Notes)
	}

	fmt.Fprintf(&b, "\n⏰ *Time*: %s", FormatTimestamp(sentAt))
	return b.String()
}

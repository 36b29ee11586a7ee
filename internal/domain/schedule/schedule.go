// Package schedule derives delivery dates under the fixed weekly cadence:
// orders placed Sunday through Tuesday are delivered Wednesday, Wednesday and
// Thursday orders on Friday, Friday and Saturday orders on the next Sunday.
package schedule

import (
	"fmt"
	"time"
)

// Item is one order-window row of the weekly calendar. Produced fresh per
// request, never persisted.
type Item struct {
	OrderDays   string `json:"orderDays"`
	DeliveryDay string `json:"deliveryDay"`
}

// The rendered labels are a wire contract in the Indonesian convention, so
// the name tables are explicit rather than pulled from a locale library.
var weekdayNames = [7]string{"Minggu", "Senin", "Selasa", "Rabu", "Kamis", "Jumat", "Sabtu"}

var monthNames = [13]string{"",
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// DeliveryDateFor maps an order instant to its delivery date. All seven
// weekdays are handled explicitly (0=Sunday .. 6=Saturday):
//
//	Sun      -> +3 (Wednesday)
//	Mon/Tue  -> +(3-dow) (Wednesday)
//	Wed/Thu  -> +(5-dow) (Friday)
//	Fri/Sat  -> +(7-dow) (Sunday)
func DeliveryDateFor(orderAt time.Time) time.Time {
	dow := int(orderAt.Weekday())
	var offset int
	switch dow {
	case 0:
		offset = 3
	case 1, 2:
		offset = 3 - dow
	case 3, 4:
		offset = 5 - dow
	default: // 5, 6
		offset = 7 - dow
	}
	return orderAt.AddDate(0, 0, offset)
}

// FormatLongDate renders "Rabu, 7 Mei 2025".
func FormatLongDate(t time.Time) string {
	return fmt.Sprintf("%s, %d %s %d", weekdayNames[int(t.Weekday())], t.Day(), monthNames[int(t.Month())], t.Year())
}

// FormatDeliveryDay renders "Rabu, 7 Mei" (no year), as shown in the weekly
// calendar.
func FormatDeliveryDay(t time.Time) string {
	return fmt.Sprintf("%s, %d %s", weekdayNames[int(t.Weekday())], t.Day(), monthNames[int(t.Month())])
}

// Weekly computes the three order windows of the current Sunday-anchored
// week. Recomputed on every call relative to now; past weeks are never
// replayed.
func Weekly(now time.Time) []Item {
	sunday := now.AddDate(0, 0, -int(now.Weekday()))

	mon := sunday.AddDate(0, 0, 1)
	tue := sunday.AddDate(0, 0, 2)
	wed := sunday.AddDate(0, 0, 3)
	thu := sunday.AddDate(0, 0, 4)
	fri := sunday.AddDate(0, 0, 5)
	sat := sunday.AddDate(0, 0, 6)
	nextSun := sunday.AddDate(0, 0, 7)

	return []Item{
		{
			OrderDays: fmt.Sprintf("Minggu-Senin-Selasa (%d-%d-%d %s)",
				sunday.Day(), mon.Day(), tue.Day(), monthNames[int(sunday.Month())]),
			DeliveryDay: FormatDeliveryDay(wed),
		},
		{
			OrderDays: fmt.Sprintf("Rabu-Kamis (%d-%d %s)",
				wed.Day(), thu.Day(), monthNames[int(wed.Month())]),
			DeliveryDay: FormatDeliveryDay(fri),
		},
		{
			OrderDays: fmt.Sprintf("Jumat-Sabtu (%d-%d %s)",
				fri.Day(), sat.Day(), monthNames[int(fri.Month())]),
			DeliveryDay: FormatDeliveryDay(nextSun),
		},
	}
}

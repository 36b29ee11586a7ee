package rowcodec

import "time"

// TimestampLayout is the sheet timestamp micro-format: day and month without
// leading zeros, 24h clock, and `.` (not `:`) as the time separator. This is
// a strict wire contract consumed positionally by the vendor's sheet; any
// drift silently breaks round-tripping.
const TimestampLayout = "2/1/2006, 15.04.05"

var jakarta = loadJakarta()

func loadJakarta() *time.Location {
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		return time.FixedZone("WIB", 7*60*60)
	}
	return loc
}

// FormatTimestamp renders t in Asia/Jakarta using the sheet micro-format.
func FormatTimestamp(t time.Time) string {
	return t.In(jakarta).Format(TimestampLayout)
}

// ParseTimestamp reverses FormatTimestamp.
func ParseTimestamp(s string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s, jakarta)
}

package rowcodec

import (
	"testing"
	"time"
)

// The literal string form is a wire contract: day/month without leading
// zeros and `.` between time parts. Locking it here catches any drift toward
// a conventional `:`-separated format.
func TestTimestampFixture(t *testing.T) {
	at := time.Date(2025, time.May, 7, 14, 30, 5, 0, jakarta)

	const fixture = "7/5/2025, 14.30.05"
	if got := FormatTimestamp(at); got != fixture {
		t.Fatalf("expected %q, got %q", fixture, got)
	}

	parsed, err := ParseTimestamp(fixture)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !parsed.Equal(at) {
		t.Fatalf("expected %s, got %s", at, parsed)
	}
}

func TestFormatTimestamp_ConvertsToJakarta(t *testing.T) {
	// 07:30 UTC is 14:30 in Asia/Jakarta (UTC+7).
	at := time.Date(2025, time.May, 7, 7, 30, 5, 0, time.UTC)
	if got := FormatTimestamp(at); got != "7/5/2025, 14.30.05" {
		t.Fatalf("unexpected timestamp: %q", got)
	}
}

func TestParseTimestamp_RejectsColonSeparator(t *testing.T) {
	if _, err := ParseTimestamp("7/5/2025, 14:30:05"); err == nil {
		t.Fatal("expected parse error for colon-separated time")
	}
}

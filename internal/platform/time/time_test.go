package time

import (
	"testing"
	"time"

	kit "filmnames/internal/platform/testkit"
)

func TestTodayAndSince(t *testing.T) {
	kit.Serial(t)
	fixed := time.Date(2024, 3, 7, 23, 59, 0, 0, time.Local)
	kit.Swap(t, &Now, func() time.Time { return fixed })

	if got := Today(); got != "2024-03-07" {
		t.Fatalf("Today = %q", got)
	}
	if got := Since(fixed.Add(-90 * time.Second)); got != 90*time.Second {
		t.Fatalf("Since = %v", got)
	}
}

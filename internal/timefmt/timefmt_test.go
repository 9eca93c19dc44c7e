package timefmt

import (
	"testing"
	"time"
)

func TestRelative(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"30 seconds", now.Add(-30 * time.Second), "Just now"},
		{"exactly now", now, "Just now"},
		{"90 seconds", now.Add(-90 * time.Second), "1m ago"},
		{"59 minutes 59 seconds", now.Add(-(59*time.Minute + 59*time.Second)), "59m ago"},
		{"one hour", now.Add(-time.Hour), "1h ago"},
		{"23 hours 59 minutes", now.Add(-(23*time.Hour + 59*time.Minute)), "23h ago"},
		{"25 hours", now.Add(-25 * time.Hour), "1d ago"},
		{"47 hours", now.Add(-47 * time.Hour), "1d ago"},
		{"ten days", now.Add(-240 * time.Hour), "10d ago"},
		{"future by seconds", now.Add(30 * time.Second), "Just now"},
		{"future by days", now.Add(72 * time.Hour), "Just now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Relative(tt.ts, now); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAbsolute(t *testing.T) {
	ts := time.Date(2025, 3, 7, 14, 5, 0, 0, time.UTC)
	if got := Absolute(ts); got != "07 Mar, 14:05" {
		t.Errorf("expected %q, got %q", "07 Mar, 14:05", got)
	}

	// Non-UTC input is converted, not rendered in its own zone.
	zone := time.FixedZone("UTC+2", 2*60*60)
	if got := Absolute(ts.In(zone)); got != "07 Mar, 14:05" {
		t.Errorf("expected UTC rendering, got %q", got)
	}

	late := time.Date(2025, 12, 31, 23, 59, 0, 0, time.UTC)
	if got := Absolute(late); got != "31 Dec, 23:59" {
		t.Errorf("expected %q, got %q", "31 Dec, 23:59", got)
	}
}

func TestClock(t *testing.T) {
	now := time.Date(2025, 3, 7, 4, 9, 33, 0, time.FixedZone("EST", -5*60*60))
	if got := Clock(now); got != "09:09 UTC" {
		t.Errorf("expected %q, got %q", "09:09 UTC", got)
	}
}

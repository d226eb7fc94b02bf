package clock_test

import (
	"testing"
	"time"

	"github.com/jameson75/kalshix/clock"
)

// Compile-time checks: both implementations satisfy the interface.
var (
	_ clock.Clock = clock.System()
	_ clock.Clock = (*clock.Fake)(nil)
)

func TestSystem_MonotonicNonDecreasing(t *testing.T) {
	c := clock.System()
	prev := c.Now()
	for i := 0; i < 100; i++ {
		cur := c.Now()
		if cur.Before(prev) {
			t.Fatalf("reading %d went backwards: %v < %v", i, cur, prev)
		}
		prev = cur
	}
}

func TestSystem_UTC(t *testing.T) {
	if loc := clock.System().Now().Location(); loc != time.UTC {
		t.Fatalf("location = %v, want UTC", loc)
	}
}

func TestFake_SetAndAdvance(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	f := clock.NewFake(start)

	if got := f.Now(); !got.Equal(start) {
		t.Fatalf("Now() = %v, want %v", got, start)
	}

	got := f.Advance(90 * time.Second)
	want := start.Add(90 * time.Second)
	if !got.Equal(want) {
		t.Fatalf("Advance returned %v, want %v", got, want)
	}
	if now := f.Now(); !now.Equal(want) {
		t.Fatalf("Now() after Advance = %v, want %v", now, want)
	}

	later := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	f.Set(later)
	if now := f.Now(); !now.Equal(later) {
		t.Fatalf("Now() after Set = %v, want %v", now, later)
	}
}

func TestFake_ConvertsToUTC(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	f := clock.NewFake(time.Date(2024, 3, 1, 7, 0, 0, 0, est))
	if loc := f.Now().Location(); loc != time.UTC {
		t.Fatalf("location = %v, want UTC", loc)
	}
}

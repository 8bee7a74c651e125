package utils

import (
	"testing"
	"time"
)

func TestClamp(t *testing.T) {
	tests := []struct{ v, lo, hi, want float64 }{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
			t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
		}
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0, 6, 0.5); got != 3 {
		t.Errorf("Lerp = %v, want 3", got)
	}
}

func TestManualClock(t *testing.T) {
	c := &ManualClock{}
	c.Advance(1500 * time.Millisecond)
	if got := c.NowMillis(); got != 1500 {
		t.Errorf("NowMillis = %d, want 1500", got)
	}
}

func TestSystemClockIsMonotonic(t *testing.T) {
	c := NewSystemClock()
	a := c.NowMillis()
	b := c.NowMillis()
	if a < 0 || b < a {
		t.Errorf("clock went backwards: %d then %d", a, b)
	}
}

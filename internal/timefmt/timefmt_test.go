package timefmt

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name    string
		seconds float64
		want    string
	}{
		{"zero", 0, "00:00"},
		{"fraction floors", 0.99, "00:00"},
		{"thirty seconds", 30.0, "00:30"},
		{"one minute", 60, "01:00"},
		{"three minutes", 180.0, "03:00"},
		{"mixed", 170.4, "02:50"},
		{"beyond an hour", 75*60 + 5, "75:05"},
		{"three digit minutes", 100 * 60, "100:00"},
		{"NaN", math.NaN(), "00:00"},
		{"positive infinity", math.Inf(1), "00:00"},
		{"negative infinity", math.Inf(-1), "00:00"},
		{"negative", -3, "00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.seconds); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.seconds, got, tt.want)
			}
		})
	}
}

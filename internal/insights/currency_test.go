package insights

import (
	"math"
	"testing"
)

func TestCurrencyFallback(t *testing.T) {
	f := NewCurrencyFormatter()

	amounts := []float64{0, 6.45, 142.8, 2354.7, -125.4, 1000000}
	badCodes := []string{"", "N/A", "NOT_A_CODE", "XYZ", "$"}

	for _, amount := range amounts {
		wantNatural := f.Format(amount, "USD")
		wantWhole := f.FormatWhole(amount, "USD")
		for _, code := range badCodes {
			if got := f.Format(amount, code); got != wantNatural {
				t.Errorf("Format(%v, %q) = %q, want USD fallback %q", amount, code, got, wantNatural)
			}
			if got := f.FormatWhole(amount, code); got != wantWhole {
				t.Errorf("FormatWhole(%v, %q) = %q, want USD fallback %q", amount, code, got, wantWhole)
			}
		}
	}
}

func TestCurrencyFormat(t *testing.T) {
	f := NewCurrencyFormatter()

	tests := []struct {
		name   string
		amount float64
		code   string
		whole  bool
		want   string
	}{
		{"natural digits", 6.45, "USD", false, "$6.45"},
		{"natural pads to scale", 45, "USD", false, "$45.00"},
		{"whole rounds", 2354.7, "USD", true, "$2,355"},
		{"grouping", 1234567.89, "USD", false, "$1,234,567.89"},
		{"negative", -125.4, "USD", false, "-$125.40"},
		{"zero", 0, "USD", true, "$0"},
		{"pound symbol", 142.8, "GBP", false, "£142.80"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			if tt.whole {
				got = f.FormatWhole(tt.amount, tt.code)
			} else {
				got = f.Format(tt.amount, tt.code)
			}
			if got != tt.want {
				t.Errorf("format(%v, %q) = %q, want %q", tt.amount, tt.code, got, tt.want)
			}
		})
	}
}

func TestCurrencyNeverPanics(t *testing.T) {
	f := NewCurrencyFormatter()

	// Formatting must be total even on garbage input.
	for _, amount := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := f.Format(amount, "USD"); got != "$0.00" {
			t.Errorf("Format(%v, USD) = %q, want %q", amount, got, "$0.00")
		}
	}
}

func TestCurrencyZeroDecimalUnit(t *testing.T) {
	f := NewCurrencyFormatter()

	// JPY has no minor units, so the natural-digit policy and the whole-unit
	// policy must agree.
	if got, want := f.Format(1200, "JPY"), f.FormatWhole(1200, "JPY"); got != want {
		t.Errorf("Format(1200, JPY) = %q, FormatWhole = %q; want equal", got, want)
	}
}

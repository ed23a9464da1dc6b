package money

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSplitEvenly(t *testing.T) {
	tests := []struct {
		name          string
		total         string
		n             int
		places        int32
		wantShare     string
		wantRemainder string
	}{
		{name: "exact rupiah split", total: "10000", n: 2, places: 0, wantShare: "5000", wantRemainder: "0"},
		{name: "inexact rupiah split", total: "10000", n: 3, places: 0, wantShare: "3333", wantRemainder: "1"},
		{name: "inexact cents split", total: "10.00", n: 3, places: 2, wantShare: "3.33", wantRemainder: "0.01"},
		{name: "zero total", total: "0", n: 4, places: 2, wantShare: "0", wantRemainder: "0"},
		{name: "total smaller than parts", total: "2", n: 3, places: 0, wantShare: "0", wantRemainder: "2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := decimal.RequireFromString(tt.total)
			share, rem, err := SplitEvenly(total, tt.n, tt.places)
			if err != nil {
				t.Fatalf("SplitEvenly() error = %v", err)
			}
			if !share.Equal(decimal.RequireFromString(tt.wantShare)) {
				t.Errorf("share = %s, want %s", share, tt.wantShare)
			}
			if !rem.Equal(decimal.RequireFromString(tt.wantRemainder)) {
				t.Errorf("remainder = %s, want %s", rem, tt.wantRemainder)
			}
			back := share.Mul(decimal.NewFromInt(int64(tt.n))).Add(rem)
			if !back.Equal(total) {
				t.Errorf("share*n + remainder = %s, want %s", back, total)
			}
		})
	}
}

func TestSplitEvenlyZeroParts(t *testing.T) {
	_, _, err := SplitEvenly(decimal.NewFromInt(10), 0, 2)
	if !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("expected ErrDivisionByZero, got %v", err)
	}
}

func TestPlaces(t *testing.T) {
	tests := map[string]int32{
		"IDR": 0,
		"idr": 0,
		"USD": 2,
		"":    0, // default currency is IDR
		"XYZ": 2,
	}
	for code, want := range tests {
		if got := Places(code); got != want {
			t.Errorf("Places(%q) = %d, want %d", code, got, want)
		}
	}
}

func TestNormalizeCurrency(t *testing.T) {
	if got := NormalizeCurrency(" usd ", "IDR"); got != "USD" {
		t.Errorf("got %q, want USD", got)
	}
	if got := NormalizeCurrency("", "sgd"); got != "SGD" {
		t.Errorf("got %q, want SGD", got)
	}
	if got := NormalizeCurrency("", ""); got != DefaultCurrency {
		t.Errorf("got %q, want %s", got, DefaultCurrency)
	}
}

func TestLineAndSum(t *testing.T) {
	line := Line(decimal.NewFromInt(25000), 2)
	if !line.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("Line = %s, want 50000", line)
	}
	if got := Sum(line, decimal.NewFromInt(10000)); !got.Equal(decimal.NewFromInt(60000)) {
		t.Errorf("Sum = %s, want 60000", got)
	}
	if got := Sum(); !got.IsZero() {
		t.Errorf("empty Sum = %s, want 0", got)
	}
}

package cli

import (
	"testing"
	"time"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{45.5, "$45.50"},
		{0.1 + 0.2, "$0.30"},
		{1234.5, "$1,234.50"},
		{1000000, "$1,000,000.00"},
		{-5, "-$5.00"},
		{2.005, "$2.01"},
	}
	for _, tt := range tests {
		if got := FormatMoney(tt.in, "$"); got != tt.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := FormatMoney(3, "€"); got != "€3.00" {
		t.Errorf("FormatMoney(€) = %q", got)
	}
}

func TestFormatMoneyShort(t *testing.T) {
	if got := FormatMoneyShort(1234.5, "$"); got != "$1,235" {
		t.Errorf("got %q, want $1,235", got)
	}
	if got := FormatMoneyShort(99.5, "$"); got != "$99.50" {
		t.Errorf("got %q, want $99.50", got)
	}
}

func TestFormatNumber(t *testing.T) {
	tests := map[int64]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for in, want := range tests {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatRemaining(t *testing.T) {
	if got := FormatRemaining(120, "$"); got != "$120.00 left" {
		t.Errorf("got %q", got)
	}
	if got := FormatRemaining(-30, "$"); got != "$30.00 over" {
		t.Errorf("got %q", got)
	}
}

func TestFormatPercentAndRatio(t *testing.T) {
	if got := FormatPercent(42); got != "42%" {
		t.Errorf("FormatPercent = %q", got)
	}
	if got := FormatRatio(0.456); got != "46%" {
		t.Errorf("FormatRatio = %q", got)
	}
	if got := FormatMonth(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)); got != "March 2024" {
		t.Errorf("FormatMonth = %q", got)
	}
}

// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatMoney formats an amount with a currency symbol, two decimals and
// thousands separators: 1234.5 -> "$1,234.50", -5 -> "-$5.00".
func FormatMoney(amount float64, symbol string) string {
	d := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	whole := d.Truncate(0)
	cents := d.Sub(whole).Shift(2).IntPart()
	return fmt.Sprintf("%s%s%s.%02d", sign, symbol, FormatNumber(whole.IntPart()), cents)
}

// FormatMoneyShort drops the cents at or above 1000: 1234.5 -> "$1,235".
func FormatMoneyShort(amount float64, symbol string) string {
	if amount >= 1000 || amount <= -1000 {
		d := decimal.NewFromFloat(amount).Round(0)
		sign := ""
		if d.IsNegative() {
			sign = "-"
			d = d.Neg()
		}
		return sign + symbol + FormatNumber(d.IntPart())
	}
	return FormatMoney(amount, symbol)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	head := len(s) % 3
	if head > 0 {
		result.WriteString(s[:head])
	}
	for i := head; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats an integer share: 42 -> "42%".
func FormatPercent(p int) string {
	return strconv.Itoa(p) + "%"
}

// FormatRatio formats a 0-1 ratio as a whole percentage: 0.456 -> "46%".
func FormatRatio(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatRemaining describes the budget headroom: "$120.00 left" or "$30.00 over".
func FormatRemaining(remaining float64, symbol string) string {
	if remaining >= 0 {
		return FormatMoney(remaining, symbol) + " left"
	}
	return FormatMoney(-remaining, symbol) + " over"
}

// FormatMonth returns the full month name with year, e.g. "March 2024".
func FormatMonth(t time.Time) string {
	return t.Format("January 2006")
}

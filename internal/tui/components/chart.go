package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/theirongolddev/cyros/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// Sparkline renders a unicode sparkline from values.
func Sparkline(values []float64, color lipgloss.Color) string {
	if len(values) == 0 {
		return ""
	}
	t := theme.Active

	peak := values[0]
	for _, v := range values[1:] {
		peak = max(peak, v)
	}
	if peak <= 0 {
		peak = 1
	}

	var buf strings.Builder
	for _, v := range values {
		idx := int(v / peak * float64(len(sparkBlocks)-1))
		idx = min(max(idx, 0), len(sparkBlocks)-1)
		buf.WriteRune(sparkBlocks[idx])
	}
	return lipgloss.NewStyle().Foreground(color).Background(t.Surface).Render(buf.String())
}

// BarChart renders one vertical bar per value with labels underneath.
// When limit is positive a dotted line marks it and bars above it turn red.
func BarChart(values []float64, labels []string, limit float64, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	if width < 15 || height < 3 {
		return Sparkline(values, theme.Active.Accent)
	}
	t := theme.Active

	ceiling := max(limit, 0)
	for _, v := range values {
		ceiling = max(ceiling, v)
	}
	if ceiling <= 0 {
		ceiling = 1
	}
	ceiling = niceCeiling(ceiling)

	midLabel := FormatAxis(ceiling * float64(height/2) / float64(height))
	yLabelW := max(len(FormatAxis(ceiling))+1, len(midLabel)+1, 4)
	n := len(values)
	chartW := max(width-yLabelW-1, n*2)
	slot := chartW / n
	barW := min(max(slot-1, 1), 8)

	limitRow := -1
	if limit > 0 {
		limitRow = int(math.Round(limit / ceiling * float64(height)))
	}

	axisStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	blank := lipgloss.NewStyle().Background(t.Surface)
	okStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	overStyle := lipgloss.NewStyle().Foreground(t.Red).Background(t.Surface)
	limitStyle := lipgloss.NewStyle().Foreground(t.Orange).Background(t.Surface)

	var b strings.Builder
	for row := height; row >= 1; row-- {
		top := ceiling * float64(row) / float64(height)
		bottom := ceiling * float64(row-1) / float64(height)

		label := ""
		switch row {
		case height:
			label = FormatAxis(ceiling)
		case height / 2:
			label = midLabel
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s│", yLabelW, label)))

		for _, v := range values {
			style := okStyle
			if limit > 0 && v > limit {
				style = overStyle
			}
			var cell string
			switch {
			case v >= top:
				cell = style.Render(strings.Repeat("█", barW))
			case v > bottom:
				frac := (v - bottom) / (top - bottom)
				idx := min(max(int(frac*float64(len(sparkBlocks))), 1), len(sparkBlocks)) - 1
				cell = style.Render(strings.Repeat(string(sparkBlocks[idx]), barW))
			case row == limitRow:
				cell = limitStyle.Render(strings.Repeat("┄", barW))
			default:
				cell = blank.Render(strings.Repeat(" ", barW))
			}
			b.WriteString(cell)

			if row == limitRow {
				b.WriteString(limitStyle.Render(strings.Repeat("┄", slot-barW)))
			} else {
				b.WriteString(blank.Render(strings.Repeat(" ", slot-barW)))
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s└", yLabelW, "0")))
	b.WriteString(axisStyle.Render(strings.Repeat("─", slot*n)))

	if len(labels) == n {
		b.WriteString("\n")
		b.WriteString(blank.Render(strings.Repeat(" ", yLabelW+1)))
		for _, lbl := range labels {
			if len(lbl) > slot {
				lbl = lbl[:slot]
			}
			b.WriteString(axisStyle.Render(fmt.Sprintf("%-*s", slot, lbl)))
		}
	}
	return b.String()
}

// niceCeiling rounds v up to 1, 2 or 5 times a power of ten.
func niceCeiling(v float64) float64 {
	base := math.Pow(10, math.Floor(math.Log10(v)))
	if base*10 <= v {
		// Log10 can land just under an exact power of ten.
		base *= 10
	}
	for _, m := range []float64{1, 2, 5, 10} {
		if v <= m*base {
			return m * base
		}
	}
	return 10 * base
}

// FormatAxis formats a compact axis label: 1500 -> "1.5k", 2000 -> "2k".
func FormatAxis(v float64) string {
	switch {
	case v >= 1e6:
		return trimZero(fmt.Sprintf("%.1f", v/1e6)) + "M"
	case v >= 1e3:
		return trimZero(fmt.Sprintf("%.1f", v/1e3)) + "k"
	case v >= 1:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

func trimZero(s string) string {
	return strings.TrimSuffix(s, ".0")
}

// CategoryBar renders "label ████░░░░ value share" for a category breakdown row.
func CategoryBar(label, value string, share float64, labelW, barW int) string {
	t := theme.Active
	share = min(max(share, 0), 1)
	filled := int(math.Round(share * float64(barW)))

	labelStyle := lipgloss.NewStyle().Foreground(t.TextPrimary).Background(t.Surface)
	barStyle := lipgloss.NewStyle().Foreground(t.Accent).Background(t.Surface)
	emptyStyle := lipgloss.NewStyle().Foreground(t.TextDim).Background(t.Surface)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface)
	space := lipgloss.NewStyle().Background(t.Surface).Render(" ")

	if len([]rune(label)) > labelW {
		label = string([]rune(label)[:max(labelW-1, 0)]) + "…"
	}

	return labelStyle.Render(fmt.Sprintf("%-*s", labelW, label)) + space +
		barStyle.Render(strings.Repeat("█", filled)) +
		emptyStyle.Render(strings.Repeat("░", barW-filled)) + space +
		valueStyle.Render(value)
}

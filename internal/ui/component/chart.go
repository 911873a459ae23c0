package component

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rovshanmuradov/coinfolio/internal/format"
	"github.com/rovshanmuradov/coinfolio/internal/market"
	"github.com/rovshanmuradov/coinfolio/internal/ui/style"
)

var sparkChars = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// PriceChart draws a price history as a block chart with a min/max price
// axis and time labels under it.
type PriceChart struct {
	points []market.PricePoint
	days   int
	width  int
	height int
	styles style.Styles
}

// NewPriceChart creates a chart of the given size.
func NewPriceChart(styles style.Styles, width, height int) *PriceChart {
	return &PriceChart{styles: styles, width: width, height: height}
}

// SetStyles replaces the styles, used on theme change.
func (c *PriceChart) SetStyles(styles style.Styles) *PriceChart {
	c.styles = styles
	return c
}

// SetData sets the history and the range in days it covers.
func (c *PriceChart) SetData(points []market.PricePoint, days int) *PriceChart {
	c.points = points
	c.days = days
	return c
}

// SetSize sets the plot area size, axes excluded.
func (c *PriceChart) SetSize(width, height int) *PriceChart {
	if width > 0 {
		c.width = width
	}
	if height > 0 {
		c.height = height
	}
	return c
}

// Resample reduces values to n buckets by averaging, or returns them as is
// when there are no more than n.
func Resample(values []float64, n int) []float64 {
	if n <= 0 || len(values) <= n {
		return values
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		lo := i * len(values) / n
		hi := (i + 1) * len(values) / n
		sum := 0.0
		for _, v := range values[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}

// Change is the percentage change from the first to the last sample.
func (c *PriceChart) Change() float64 {
	if len(c.points) < 2 || c.points[0].Price == 0 {
		return 0
	}
	first, last := c.points[0].Price, c.points[len(c.points)-1].Price
	return (last - first) / first * 100
}

// View renders the chart
func (c *PriceChart) View() string {
	if len(c.points) == 0 {
		return c.styles.Muted.Render("No price data")
	}

	prices := make([]float64, len(c.points))
	for i, p := range c.points {
		prices[i] = p.Price
	}
	values := Resample(prices, c.width)
	lo, hi := minMax(values)

	height := c.height
	if height < 1 {
		height = 1
	}
	levels := height * len(sparkChars)

	// Each column is filled up to its level, from the bottom row.
	rows := make([]strings.Builder, height)
	for _, v := range values {
		level := levels / 2
		if hi > lo {
			level = int(math.Round((v - lo) / (hi - lo) * float64(levels-1)))
		}
		for r := 0; r < height; r++ {
			rowFloor := (height - 1 - r) * len(sparkChars)
			switch {
			case level >= rowFloor+len(sparkChars):
				rows[r].WriteRune('█')
			case level >= rowFloor:
				rows[r].WriteRune(sparkChars[level-rowFloor])
			default:
				rows[r].WriteRune(' ')
			}
		}
	}

	lineStyle := c.styles.Change(c.Change())
	maxLabel := format.USD(hi)
	minLabel := format.USD(lo)
	axisWidth := lipgloss.Width(maxLabel)
	if w := lipgloss.Width(minLabel); w > axisWidth {
		axisWidth = w
	}
	axis := lipgloss.NewStyle().Width(axisWidth).Align(lipgloss.Right).Inherit(c.styles.Muted)

	var out strings.Builder
	for r := range rows {
		label := ""
		switch r {
		case 0:
			label = maxLabel
		case height - 1:
			label = minLabel
		}
		out.WriteString(axis.Render(label))
		out.WriteString(" ┤")
		out.WriteString(lineStyle.Render(rows[r].String()))
		out.WriteString("\n")
	}

	first := format.ChartLabel(c.points[0].Time, c.days)
	last := format.ChartLabel(c.points[len(c.points)-1].Time, c.days)
	gap := len(values) - lipgloss.Width(first) - lipgloss.Width(last)
	if gap < 1 {
		gap = 1
	}
	out.WriteString(strings.Repeat(" ", axisWidth+2))
	out.WriteString(c.styles.Muted.Render(first + strings.Repeat(" ", gap) + last))
	return out.String()
}

func minMax(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

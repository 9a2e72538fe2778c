// Package termchart draws the per-issuer averages as horizontal bars for the
// terminal. One bar per issuer, in series order, length proportional to the
// average.
package termchart

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/ports"
)

const (
	Title   = "Average transit days by issuer"
	Caption = "average days"

	DefaultWidth     = 40
	DefaultPrecision = 2

	barRune = "█"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	barStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

// Render returns the chart text. width is the length of the longest bar and
// precision the number of decimals printed after each bar.
func Render(series []domain.IssuerAverage, width, precision int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	if precision < 0 {
		precision = DefaultPrecision
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(Title))
	b.WriteString("\n\n")

	labelWidth := 0
	maxAvg := 0.0
	for _, s := range series {
		labelWidth = max(labelWidth, lipgloss.Width(s.Issuer))
		maxAvg = math.Max(maxAvg, s.AverageDays)
	}

	for _, s := range series {
		label := s.Issuer + strings.Repeat(" ", labelWidth-lipgloss.Width(s.Issuer))
		n := barLen(s.AverageDays, maxAvg, width)

		b.WriteString(labelStyle.Render(label))
		b.WriteString(" ")
		if n > 0 {
			b.WriteString(barStyle.Render(strings.Repeat(barRune, n)))
			b.WriteString(" ")
		}
		b.WriteString(valueStyle.Render(fmt.Sprintf("%.*f", precision, s.AverageDays)))
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat(" ", labelWidth+1))
	b.WriteString(captionStyle.Render(Caption))
	return b.String()
}

func barLen(v, maxV float64, width int) int {
	if maxV <= 0 || v <= 0 {
		return 0
	}
	n := int(math.Round(v / maxV * float64(width)))
	return max(n, 1)
}

// Canvas is a ChartRenderer that keeps the last rendering in memory, for
// views that draw the chart themselves.
type Canvas struct {
	width     int
	precision int

	mu   sync.Mutex
	last string
}

func NewCanvas(width, precision int) *Canvas {
	return &Canvas{width: width, precision: precision}
}

var _ ports.ChartRenderer = (*Canvas)(nil)

func (c *Canvas) RenderChart(series []domain.IssuerAverage) error {
	out := Render(series, c.width, c.precision)

	c.mu.Lock()
	c.last = out
	c.mu.Unlock()
	return nil
}

func (c *Canvas) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

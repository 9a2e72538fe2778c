// Package render formats records and averages as static lipgloss tables for
// command output and read-only panels.
package render

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	numberStyle = cellStyle.Align(lipgloss.Right)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
)

// RecordHeaders are the column titles shared by every record listing.
var RecordHeaders = []string{"Issuer", "Carrier", "Issue Date", "Shipment Date", "Days"}

// RecordRow is the display form of one record, in RecordHeaders order.
func RecordRow(r domain.ShipmentRecord) []string {
	return []string{
		r.Issuer,
		r.Carrier,
		domain.FormatDate(r.IssueDate),
		domain.FormatDate(r.ShipmentDate),
		strconv.Itoa(r.TransitDays),
	}
}

func Records(records []domain.ShipmentRecord) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, RecordRow(r))
	}
	return newTable(RecordHeaders, rows, len(RecordHeaders)-1)
}

// Averages renders one row per issuer with the mean printed using precision
// decimals.
func Averages(series []domain.IssuerAverage, precision int) string {
	rows := make([][]string, 0, len(series))
	for _, s := range series {
		rows = append(rows, []string{
			s.Issuer,
			fmt.Sprintf("%.*f", precision, s.AverageDays),
			strconv.Itoa(s.Records),
		})
	}
	return newTable([]string{"Issuer", "Average Days", "Records"}, rows, 1, 2)
}

// headerRow is the row index lipgloss/table hands StyleFunc for the header.
const headerRow = 0

func newTable(headers []string, rows [][]string, numericCols ...int) string {
	numeric := map[int]bool{}
	for _, c := range numericCols {
		numeric[c] = true
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == headerRow:
				return headerStyle
			case numeric[col]:
				return numberStyle
			default:
				return cellStyle
			}
		}).
		Render()
}

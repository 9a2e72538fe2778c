// Package xlsxchart saves the per-issuer averages as a workbook holding the
// aggregate table and a native column chart.
package xlsxchart

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/infra/xlsxfile"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/ports"
)

const (
	Sheet       = "Averages"
	Title       = "Average transit days by issuer"
	AxisTitle   = "Average days"
	chartAnchor = "E2"
)

// Writer renders a chart to a fixed destination. Written reports the final
// path once RenderChart succeeds.
type Writer struct {
	path    string
	written string
}

func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

var _ ports.ChartRenderer = (*Writer)(nil)

func (w *Writer) Written() string { return w.written }

func (w *Writer) RenderChart(series []domain.IssuerAverage) error {
	if len(series) == 0 {
		return &domain.OpError{
			Op:   "xlsxchart.render",
			Kind: domain.KindNoData,
			Err:  domain.ErrNoData,
		}
	}

	f, err := xlsxfile.NewSheet("xlsxchart.sheet", Sheet)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := fill(f, series); err != nil {
		return &domain.OpError{
			Op:   "xlsxchart.fill",
			Kind: domain.KindWriteFailure,
			Path: w.path,
			Err:  err,
		}
	}

	written, err := xlsxfile.Save("xlsxchart.save", f, w.path)
	if err != nil {
		return err
	}
	w.written = written
	return nil
}

func fill(f *excelize.File, series []domain.IssuerAverage) error {
	header := []interface{}{"Issuer", AxisTitle, "Records"}
	if err := f.SetSheetRow(Sheet, "A1", &header); err != nil {
		return err
	}
	for i, s := range series {
		row := []interface{}{s.Issuer, s.AverageDays, s.Records}
		if err := f.SetSheetRow(Sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}

	style, err := xlsxfile.HeaderStyle(f)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(Sheet, "A1", "C1", style); err != nil {
		return err
	}
	if err := f.SetColWidth(Sheet, "A", "B", 20); err != nil {
		return err
	}

	last := len(series) + 1
	return f.AddChart(Sheet, chartAnchor, &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$B$1", Sheet),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", Sheet, last),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", Sheet, last),
		}},
		Title:  []excelize.RichTextRun{{Text: Title}},
		Legend: excelize.ChartLegend{Position: "bottom"},
		YAxis: excelize.ChartAxis{
			Title: []excelize.RichTextRun{{Text: AxisTitle}},
		},
		Dimension: excelize.ChartDimension{Width: 640, Height: 360},
	})
}

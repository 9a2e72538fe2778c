// Package xlsxexport writes shipment records to a single-sheet workbook.
package xlsxexport

import (
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/infra/xlsxfile"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/ports"
)

const defaultSheet = "Shipments"

// Header is the first row of every export, in column order.
var Header = []string{"Issuer", "Carrier", "Issue Date", "Shipment Date", "Days"}

type Exporter struct {
	sheet string
}

func New(cfg domain.ExportConfig) *Exporter {
	sheet := strings.TrimSpace(cfg.Sheet)
	if sheet == "" {
		sheet = defaultSheet
	}
	return &Exporter{sheet: sheet}
}

var _ ports.Exporter = (*Exporter)(nil)

// Export writes records in order below the header row and returns the path
// actually written, which always ends in .xlsx.
func (e *Exporter) Export(records []domain.ShipmentRecord, path string) (string, error) {
	if len(records) == 0 {
		return "", &domain.OpError{
			Op:   "xlsxexport.export",
			Kind: domain.KindEmptyDataset,
			Path: path,
			Err:  domain.ErrEmptyDataset,
		}
	}

	f, err := xlsxfile.NewSheet("xlsxexport.sheet", e.sheet)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := e.fill(f, records); err != nil {
		return "", &domain.OpError{
			Op:   "xlsxexport.fill",
			Kind: domain.KindWriteFailure,
			Path: path,
			Err:  err,
		}
	}

	return xlsxfile.Save("xlsxexport.save", f, path)
}

func (e *Exporter) fill(f *excelize.File, records []domain.ShipmentRecord) error {
	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(e.sheet, "A1", &header); err != nil {
		return err
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			r.Issuer,
			r.Carrier,
			domain.FormatDate(r.IssueDate),
			domain.FormatDate(r.ShipmentDate),
			r.TransitDays,
		}
		if err := f.SetSheetRow(e.sheet, cell, &row); err != nil {
			return err
		}
	}

	style, err := xlsxfile.HeaderStyle(f)
	if err != nil {
		return err
	}
	last, err := excelize.ColumnNumberToName(len(Header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(e.sheet, "A1", last+"1", style); err != nil {
		return err
	}
	return f.SetColWidth(e.sheet, "A", "D", 18)
}

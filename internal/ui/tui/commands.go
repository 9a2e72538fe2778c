package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/infra/xlsxchart"
)

func cmdExportAll(deps Deps, path string) tea.Cmd {
	n := len(deps.Records.List())
	return func() tea.Msg {
		written, err := deps.Export.ExportAll(path)
		return exportDoneMsg{path: written, records: n, err: err}
	}
}

// cmdExportView exports the rows on screen. records is the caller's snapshot
// and is not read again from the store.
func cmdExportView(deps Deps, records []domain.ShipmentRecord, path string) tea.Cmd {
	snapshot := append([]domain.ShipmentRecord(nil), records...)
	return func() tea.Msg {
		written, err := deps.Export.ExportView(snapshot, path)
		return exportDoneMsg{path: written, records: len(snapshot), err: err}
	}
}

func cmdSaveChart(deps Deps, path string) tea.Cmd {
	newFile := deps.ChartFile
	if newFile == nil {
		newFile = func(p string) ChartFileRenderer { return xlsxchart.NewWriter(p) }
	}
	return func() tea.Msg {
		r := newFile(path)
		if _, err := deps.Chart.Execute(r); err != nil {
			return chartSavedMsg{err: err}
		}
		return chartSavedMsg{path: r.Written()}
	}
}

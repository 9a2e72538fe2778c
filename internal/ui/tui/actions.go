package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/ui/render"
)

// refresh re-reads the store into the table. An active date filter is
// re-applied so the view keeps matching its bounds after a mutation. Rows are
// rebuilt, so any selection is dropped along with the cursor highlight.
func (m *model) refresh() {
	records := m.deps.Records.List()
	if m.filtered {
		view, err := m.deps.Queries.FilterByIssueDateRange(m.filterStart, m.filterEnd)
		if err == nil {
			records = view
		} else {
			m.filtered = false
		}
	}
	m.view = records
	m.table.render(records)
	m.table.highlight(false)
	m.selected = 0
}

func (m *model) selectCursor() {
	id := m.table.cursorID()
	if id == 0 {
		return
	}
	rec, err := m.deps.Records.Get(id)
	if err != nil {
		m.selected = 0
		m.table.highlight(false)
		return
	}
	m.selected = id
	m.table.highlight(true)
	m.form.fill(rec.Input())
}

// fail opens the error modal. The store is never touched on a failure path,
// so there is nothing to roll back here.
func (m model) fail(err error) model {
	if m.deps.Logger != nil {
		m.deps.Logger.Info("tui.error", "kind", string(domain.KindOf(err)), "err", err)
	}
	body := m.withLogPath(userMessage(err))
	if m.deps.Debug {
		body += "\n\n" + err.Error()
	}
	m.modal = &notice{title: "Error", body: body, isErr: true}
	return m
}

// withLogPath points a "(see logs)" hint at the actual log file when one is
// open.
func (m model) withLogPath(msg string) string {
	if m.deps.LogPath == "" {
		return msg
	}
	return strings.Replace(msg, "(see logs)", "(see "+m.deps.LogPath+")", 1)
}

func (m model) add() model {
	rec, err := m.deps.Records.Create(m.form.record())
	if err != nil {
		return m.fail(err)
	}
	m.form.clearRecord()
	m.refresh()
	m.status = fmt.Sprintf("Added %s (%d days)", rec.Issuer, rec.TransitDays)
	return m
}

func (m model) edit() model {
	rec, err := m.deps.Records.Update(m.selected, m.form.record())
	if err != nil {
		return m.fail(err)
	}
	m.form.clearRecord()
	m.refresh()
	m.status = fmt.Sprintf("Updated %s (%d days)", rec.Issuer, rec.TransitDays)
	return m
}

func (m model) remove() model {
	if err := m.deps.Records.Delete(m.selected); err != nil {
		return m.fail(err)
	}
	m.form.clearRecord()
	m.refresh()
	m.status = "Record deleted"
	return m
}

func (m model) applyFilter() model {
	start, end := m.form.value(fieldRangeStart), m.form.value(fieldRangeEnd)
	if _, err := m.deps.Queries.FilterByIssueDateRange(start, end); err != nil {
		return m.fail(err)
	}
	m.filtered = true
	m.filterStart, m.filterEnd = start, end
	m.refresh()
	m.status = fmt.Sprintf("%d record(s) issued between %s and %s", len(m.view), start, end)
	return m
}

func (m model) clearFilter() model {
	m.filtered = false
	m.filterStart, m.filterEnd = "", ""
	m.refresh()
	m.status = ""
	return m
}

func (m model) average() model {
	avg, err := m.deps.Queries.AverageTransitDays(m.form.value(fieldAverageIssuer))
	if err != nil {
		return m.fail(err)
	}
	m.status = fmt.Sprintf("Average days: %.*f", m.precision(), avg)
	return m
}

func (m model) startExport(kind promptKind) (tea.Model, tea.Cmd) {
	var err error
	if kind == promptExportView {
		if len(m.view) == 0 {
			err = &domain.OpError{Op: "records.export", Kind: domain.KindEmptyDataset, Err: domain.ErrEmptyDataset}
		}
	} else {
		err = m.deps.Export.CheckExportable()
	}
	if err != nil {
		return m.fail(err), nil
	}
	cmd := m.openPrompt(kind, m.defaultPath(m.deps.Config.Export.Filename))
	return m, cmd
}

func (m model) openChart() model {
	canvas := m.chartCanvas()
	series, err := m.deps.Chart.Execute(canvas)
	if err != nil {
		if domain.IsKind(err, domain.KindNoData) {
			m.modal = &notice{title: "Chart", body: "Nothing to chart"}
			return m
		}
		return m.fail(err)
	}
	m.scr = screenChart
	m.chart = canvas.String()
	m.chartTable = render.Averages(series, m.precision())
	return m
}

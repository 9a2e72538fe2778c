package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.table.setHeight(msg.Height - 24)
		return m, nil

	case exportDoneMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.modal = &notice{
			title: "Export complete",
			body:  fmt.Sprintf("Exported %d record(s) to %s", msg.records, msg.path),
		}
		return m, nil

	case chartSavedMsg:
		m.busy = false
		if msg.err != nil {
			return m.fail(msg.err), nil
		}
		m.modal = &notice{title: "Chart saved", body: "Chart saved to " + msg.path}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.modal != nil {
			if key.Matches(msg, m.keys.Confirm, m.keys.Back) {
				m.modal = nil
			}
			return m, nil
		}
		if m.busy {
			return m, nil
		}
		if m.promptKind != promptNone {
			return m.updatePrompt(msg)
		}
		if m.scr == screenChart {
			return m.updateChart(msg)
		}
		if m.form.active {
			return m.updateForm(msg)
		}
		return m.updateTable(msg)
	}

	return m, nil
}

func (m model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Form):
		cmd := m.form.activate()
		return m, cmd
	case key.Matches(msg, k.Select):
		m.selectCursor()
		return m, nil
	case key.Matches(msg, k.Add):
		return m.add(), nil
	case key.Matches(msg, k.Edit):
		return m.edit(), nil
	case key.Matches(msg, k.Delete):
		return m.remove(), nil
	case key.Matches(msg, k.Filter):
		return m.applyFilter(), nil
	case key.Matches(msg, k.ClearFilter):
		return m.clearFilter(), nil
	case key.Matches(msg, k.Average):
		return m.average(), nil
	case key.Matches(msg, k.ExportAll):
		return m.startExport(promptExportAll)
	case key.Matches(msg, k.ExportView):
		return m.startExport(promptExportView)
	case key.Matches(msg, k.Chart):
		return m.openChart(), nil
	}

	before := m.table.t.Cursor()
	cmd := m.table.update(msg)
	if m.table.t.Cursor() != before {
		m.selectCursor()
	}
	return m, cmd
}

func (m model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm, m.keys.Back):
		m.form.deactivate()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		cmd := m.form.move(1)
		return m, cmd
	case key.Matches(msg, m.keys.Prev):
		cmd := m.form.move(-1)
		return m, cmd
	}
	cmd := m.form.update(msg)
	return m, cmd
}

func (m model) updateChart(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.scr = screenHome
		m.chart, m.chartTable = "", ""
		return m, nil
	case key.Matches(msg, m.keys.SaveChart):
		cmd := m.openPrompt(promptSaveChart, m.defaultPath(m.deps.Config.Chart.Filename))
		return m, cmd
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back):
		m.closePrompt()
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		kind, path := m.promptKind, m.prompt.Value()
		m.closePrompt()
		m.busy = true

		switch kind {
		case promptExportAll:
			return m, cmdExportAll(m.deps, path)
		case promptExportView:
			return m, cmdExportView(m.deps, m.view, path)
		case promptSaveChart:
			return m, cmdSaveChart(m.deps, path)
		}
		m.busy = false
		return m, nil
	}

	var cmd tea.Cmd
	m.prompt, cmd = m.prompt.Update(msg)
	return m, cmd
}

func (m *model) openPrompt(kind promptKind, initial string) tea.Cmd {
	m.promptKind = kind
	m.prompt.SetValue(initial)
	m.prompt.CursorEnd()
	return m.prompt.Focus()
}

func (m *model) closePrompt() {
	m.promptKind = promptNone
	m.prompt.Blur()
	m.prompt.Reset()
}

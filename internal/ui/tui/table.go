package tui

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/ui/render"
)

const cellLimit = 20

// recordTable shows one row per record. Rows are rebuilt from scratch on every
// render and ids[i] is the RecordID behind row i, so a selection always maps
// back to a store key rather than a position.
type recordTable struct {
	t   table.Model
	ids []domain.RecordID

	// highlighted is false while no record is selected, so the cursor row is
	// drawn like any other row.
	highlighted bool
}

func newRecordTable() recordTable {
	cols := make([]table.Column, 0, len(render.RecordHeaders)+1)
	cols = append(cols, table.Column{Title: "#", Width: 4})
	for i, h := range render.RecordHeaders {
		w := cellLimit
		if i == len(render.RecordHeaders)-1 {
			w = 6
		} else if i >= 2 {
			w = 13
		}
		cols = append(cols, table.Column{Title: h, Width: w})
	}

	km := table.DefaultKeyMap()
	km.PageDown.SetKeys("pgdown")
	km.PageUp.SetKeys("pgup")
	km.HalfPageDown.SetKeys("ctrl+d")
	km.HalfPageUp.SetKeys("ctrl+u")
	km.GotoTop.SetKeys("home")
	km.GotoBottom.SetKeys("end")

	rt := recordTable{
		t: table.New(
			table.WithColumns(cols),
			table.WithFocused(true),
			table.WithHeight(10),
			table.WithKeyMap(km),
		),
	}
	rt.highlight(false)
	return rt
}

func (rt *recordTable) highlight(on bool) {
	styles := table.DefaultStyles()
	if !on {
		styles.Selected = lipgloss.NewStyle()
	}
	rt.t.SetStyles(styles)
	rt.highlighted = on
}

func (rt *recordTable) render(records []domain.ShipmentRecord) {
	rows := make([]table.Row, 0, len(records))
	ids := make([]domain.RecordID, 0, len(records))
	for _, r := range records {
		cells := render.RecordRow(r)
		row := table.Row{itoa(uint64(r.ID))}
		for _, c := range cells {
			row = append(row, clampString(c, cellLimit))
		}
		rows = append(rows, row)
		ids = append(ids, r.ID)
	}

	rt.t.SetRows(rows)
	rt.ids = ids

	switch c := rt.t.Cursor(); {
	case len(ids) == 0:
	case c < 0:
		rt.t.SetCursor(0)
	case c >= len(ids):
		rt.t.SetCursor(len(ids) - 1)
	}
}

// cursorID is the record under the cursor, or 0 when the table is empty.
func (rt *recordTable) cursorID() domain.RecordID {
	c := rt.t.Cursor()
	if c < 0 || c >= len(rt.ids) {
		return 0
	}
	return rt.ids[c]
}

func (rt *recordTable) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	rt.t, cmd = rt.t.Update(msg)
	return cmd
}

func (rt *recordTable) setHeight(h int) {
	rt.t.SetHeight(max(h, 3))
}

func (rt *recordTable) count() int { return len(rt.ids) }

func (rt *recordTable) view() string { return rt.t.View() }

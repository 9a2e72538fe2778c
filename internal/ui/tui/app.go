package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/app/template"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/infra/termchart"
)

type screen int

const (
	screenHome screen = iota
	screenChart
)

type promptKind int

const (
	promptNone promptKind = iota
	promptExportAll
	promptExportView
	promptSaveChart
)

// notice is a blocking modal. While one is open every key other than
// confirm/back is ignored.
type notice struct {
	title string
	body  string
	isErr bool
}

type model struct {
	theme Theme
	keys  keyMap
	deps  Deps

	scr   screen
	form  form
	table recordTable

	// selected is the record chosen in the table; 0 means nothing selected.
	selected domain.RecordID

	// view is what the table currently shows. filterStart/filterEnd are set
	// only while a date filter is active.
	view        []domain.ShipmentRecord
	filtered    bool
	filterStart string
	filterEnd   string

	prompt     textinput.Model
	promptKind promptKind

	modal  *notice
	status string
	busy   bool

	chart      string
	chartTable string

	width int
}

func Run(deps Deps) error {
	p := tea.NewProgram(wrapSafe(newModel(deps), deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	prompt := textinput.New()
	prompt.Prompt = "Path: "
	prompt.Width = 60

	m := model{
		theme:  DefaultTheme(),
		keys:   defaultKeys(),
		deps:   deps,
		scr:    screenHome,
		form:   newForm(),
		table:  newRecordTable(),
		prompt: prompt,
	}
	m.refresh()
	return m
}

func (m model) Init() tea.Cmd { return nil }

func (m model) precision() int {
	return m.deps.Config.Display.Precision
}

// defaultPath expands placeholders in name and places it under the configured
// export directory, anchored at the workspace root when the directory is
// relative.
func (m model) defaultPath(name string) string {
	now := time.Now
	if m.deps.Now != nil {
		now = m.deps.Now
	}
	if rendered, err := template.RenderString(name, template.FileNameVars(now())); err == nil {
		name = rendered
	}

	dir := m.deps.Config.Export.Dir
	if !filepath.IsAbs(dir) && m.deps.WorkspaceRoot != "" {
		dir = filepath.Join(m.deps.WorkspaceRoot, dir)
	}
	return filepath.Join(dir, name)
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	header := m.theme.Title.Render("shiplog") + "\n" +
		m.theme.Subtitle.Render("Shipment transit times by issuer") + "\n"

	if m.modal != nil {
		return wrap.Render(header + "\n" + m.modalView())
	}

	var body string
	switch m.scr {
	case screenChart:
		body = m.theme.Card.Render(m.chart) + "\n" + m.chartTable + "\n"
		if m.promptKind != promptNone {
			body += m.promptView()
		} else {
			body += m.theme.Help.Render("s save chart • esc back")
		}

	default:
		title := fmt.Sprintf("Records (%d)", m.table.count())
		if m.filtered {
			title = fmt.Sprintf("Records issued %s to %s (%d)", m.filterStart, m.filterEnd, m.table.count())
		}
		body = m.theme.Title.Render(title) + "\n" +
			m.theme.Card.Render(m.table.view()) + "\n" +
			m.theme.Card.Render(m.form.view(m.theme)) + "\n"

		if m.status != "" {
			body += m.theme.Status.Render(m.status) + "\n"
		}
		switch {
		case m.promptKind != promptNone:
			body += m.promptView()
		case m.busy:
			body += m.theme.Help.Render("Working…")
		case m.form.active:
			body += m.theme.Help.Render("tab/shift+tab move • enter/esc back to table")
		default:
			body += m.theme.Help.Render(
				"↑/↓ move • enter select • tab form • a add • e edit • d delete • " +
					"f filter • r clear • m average • x export • v export view • c chart • q quit")
		}
	}

	return wrap.Render(header + "\n" + body)
}

func (m model) modalView() string {
	style := m.theme.Notice
	if m.modal.isErr {
		style = m.theme.Error
	}
	return style.Render(
		m.theme.Title.Render(m.modal.title) + "\n\n" +
			m.modal.body + "\n\n" +
			m.theme.Help.Render("enter/esc dismiss"),
	)
}

func (m model) promptView() string {
	return m.prompt.View() + "\n" + m.theme.Help.Render("enter confirm • esc cancel")
}

// chartCanvas builds the terminal renderer sized from config.
func (m model) chartCanvas() *termchart.Canvas {
	return termchart.NewCanvas(m.deps.Config.Chart.Width, m.precision())
}

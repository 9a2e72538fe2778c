package tui

import (
	"fmt"
	"io"
	"log/slog"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
)

// safeModel turns a panic in Update or View into an error modal. The record
// store lives outside the model, so whatever was committed before the panic
// stays committed; the model only drops the half-finished interaction.
type safeModel struct {
	m   model
	log *slog.Logger
}

func wrapSafe(m model, log *slog.Logger) safeModel {
	if log == nil {
		log = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return safeModel{m: m, log: log}
}

func (s safeModel) Init() tea.Cmd {
	return s.m.Init()
}

func (s safeModel) Update(msg tea.Msg) (tm tea.Model, cmd tea.Cmd) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		s.log.Error("tui.panic",
			"phase", "update",
			"msg", fmt.Sprintf("%T", msg),
			"screen", s.m.scr,
			"selected", uint64(s.m.selected),
			"filtered", s.m.filtered,
			"panic", fmt.Sprint(r),
			"stack", string(debug.Stack()),
		)
		s.m = s.m.recoverFromPanic()
		tm, cmd = s, nil
	}()

	inner, c := s.m.Update(msg)
	if mm, ok := inner.(model); ok {
		s.m = mm
	}
	return s, c
}

func (s safeModel) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("tui.panic",
				"phase", "view",
				"screen", s.m.scr,
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()),
			)
			out = s.m.withLogPath("Unexpected error (see logs)")
		}
	}()
	return s.m.View()
}

// recoverFromPanic returns to the record table with any prompt closed, the
// form left as typed, and the selection cleared since it may be stale.
func (m model) recoverFromPanic() model {
	m.scr = screenHome
	m.closePrompt()
	m.busy = false
	m.selected = 0
	m.table.highlight(false)
	m.modal = &notice{title: "Error", body: m.withLogPath("Unexpected error (see logs)"), isErr: true}
	return m
}

var _ tea.Model = (*safeModel)(nil)

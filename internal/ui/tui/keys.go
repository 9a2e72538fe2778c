package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Add         key.Binding
	Edit        key.Binding
	Delete      key.Binding
	Select      key.Binding
	Form        key.Binding
	Average     key.Binding
	Filter      key.Binding
	ClearFilter key.Binding
	ExportAll   key.Binding
	ExportView  key.Binding
	Chart       key.Binding
	SaveChart   key.Binding
	Next        key.Binding
	Prev        key.Binding
	Confirm     key.Binding
	Back        key.Binding
	Quit        key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Add:         key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:        key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Delete:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Select:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		Form:        key.NewBinding(key.WithKeys("tab", "i"), key.WithHelp("tab", "form")),
		Average:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "average")),
		Filter:      key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		ClearFilter: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "clear filter")),
		ExportAll:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export")),
		ExportView:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "export view")),
		Chart:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "chart")),
		SaveChart:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save chart")),
		Next:        key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:        key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Confirm:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Back:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

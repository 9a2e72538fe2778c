package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Guilherme-Sai/Assistente-de-controladoria-embarque-transportadora/internal/domain"
)

// Field order is also the tab order.
const (
	fieldIssuer = iota
	fieldCarrier
	fieldIssueDate
	fieldShipmentDate
	fieldAverageIssuer
	fieldRangeStart
	fieldRangeEnd
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Issuer",
	"Carrier",
	"Issue date",
	"Shipment date",
	"Average issuer",
	"Range start",
	"Range end",
}

type form struct {
	inputs [fieldCount]textinput.Model
	focus  int
	active bool
}

func newForm() form {
	var f form
	for i := range f.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Width = 24
		in.CharLimit = 64
		switch i {
		case fieldIssueDate, fieldShipmentDate, fieldRangeStart, fieldRangeEnd:
			in.Placeholder = "DD/MM/YYYY"
			in.CharLimit = len(domain.DateLayout)
		case fieldAverageIssuer:
			in.Placeholder = "all issuers"
		}
		f.inputs[i] = in
	}
	return f
}

func (f *form) activate() tea.Cmd {
	f.active = true
	return f.inputs[f.focus].Focus()
}

func (f *form) deactivate() {
	f.active = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

func (f *form) move(delta int) tea.Cmd {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + fieldCount) % fieldCount
	return f.inputs[f.focus].Focus()
}

func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) value(field int) string {
	return f.inputs[field].Value()
}

func (f *form) record() domain.RecordInput {
	return domain.RecordInput{
		Issuer:       strings.TrimSpace(f.value(fieldIssuer)),
		Carrier:      strings.TrimSpace(f.value(fieldCarrier)),
		IssueDate:    f.value(fieldIssueDate),
		ShipmentDate: f.value(fieldShipmentDate),
	}
}

func (f *form) fill(in domain.RecordInput) {
	f.inputs[fieldIssuer].SetValue(in.Issuer)
	f.inputs[fieldCarrier].SetValue(in.Carrier)
	f.inputs[fieldIssueDate].SetValue(in.IssueDate)
	f.inputs[fieldShipmentDate].SetValue(in.ShipmentDate)
}

// clearRecord empties the four record fields and leaves the query fields alone.
func (f *form) clearRecord() {
	for _, i := range []int{fieldIssuer, fieldCarrier, fieldIssueDate, fieldShipmentDate} {
		f.inputs[i].Reset()
	}
}

func (f *form) view(t Theme) string {
	var b strings.Builder
	for i := range f.inputs {
		label := fieldLabels[i]
		if f.active && i == f.focus {
			label = "> " + label
		}
		b.WriteString(t.Label.Render(label))
		b.WriteString(f.inputs[i].View())
		if i < fieldCount-1 {
			b.WriteByte('\n')
		}
		if i == fieldShipmentDate {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Package tui is the terminal front end for the client-record store.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aussiebroadwan/salario/internal/salario/domain"
	"github.com/aussiebroadwan/salario/internal/salario/store"
)

// focusList is the focus index of the client table; lower indexes are inputs.
const focusList = 3

var formFields = []domain.Field{domain.FieldName, domain.FieldSalary, domain.FieldTenure}

// opDoneMsg reports that a store operation finished. The store already holds
// the outcome; the model only needs to re-read it.
type opDoneMsg struct{}

type pendingDelete struct {
	id   string
	name string
}

// Model renders a store and turns key presses into store intents.
type Model struct {
	ctx   context.Context
	store *store.Store

	snap    store.Snapshot
	inputs  []textinput.Model
	table   table.Model
	focus   int
	busy    bool
	confirm *pendingDelete

	width  int
	styles Styles
}

// New builds the model. ctx bounds every request the model starts.
func New(ctx context.Context, s *store.Store) Model {
	m := Model{
		ctx:    ctx,
		store:  s,
		styles: DefaultStyles(),
		busy:   true, // Init issues the initial load
	}

	placeholders := []string{"Client name", "Monthly salary", "Years of service"}
	for i := range formFields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		ti.Width = 32
		ti.Cursor.SetMode(cursor.CursorStatic)
		m.inputs = append(m.inputs, ti)
	}
	m.inputs[0].Focus()

	m.table = table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 24},
			{Title: "Salary", Width: 12},
			{Title: "Tenure", Width: 8},
			{Title: "Bonus", Width: 12},
		}),
		table.WithHeight(10),
	)

	m.sync()
	return m
}

func (m Model) Init() tea.Cmd {
	return m.run(m.store.LoadAll)
}

// run executes a network-backed store operation off the UI goroutine.
func (m Model) run(op func(context.Context)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		op(ctx)
		return opDoneMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case opDoneMsg:
		m.busy = false
		m.sync()
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.confirm != nil {
			return m.updateConfirm(msg)
		}
		if m.focus == focusList {
			return m.updateList(msg)
		}
		return m.updateForm(msg)
	}

	return m, nil
}

// updateConfirm gates deletion: only "y" deletes, any other key backs out.
func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	target := m.confirm
	m.confirm = nil

	if msg.String() != "y" && msg.String() != "Y" {
		return m, nil
	}
	if m.busy {
		return m, nil
	}

	m.busy = true
	return m, m.run(func(ctx context.Context) { m.store.Remove(ctx, target.id) })
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		m.setFocus(0)
		return m, nil
	case "shift+tab":
		m.setFocus(len(m.inputs) - 1)
		return m, nil
	case "q":
		return m, tea.Quit
	case "esc":
		if m.busy {
			return m, nil
		}
		m.store.Cancel()
		m.sync()
		return m, nil
	case "e":
		if m.busy {
			return m, nil
		}
		if c, ok := m.selected(); ok {
			m.store.BeginEdit(c.ID)
			m.sync()
			m.setFocus(0)
		}
		return m, nil
	case "d":
		if c, ok := m.selected(); ok {
			m.confirm = &pendingDelete{id: c.ID, name: c.Name}
		}
		return m, nil
	case "r":
		if m.busy {
			return m, nil
		}
		m.busy = true
		return m, m.run(m.store.LoadAll)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.setFocus(m.focus + 1)
		return m, nil
	case "shift+tab", "up":
		if m.focus == 0 {
			m.setFocus(focusList)
		} else {
			m.setFocus(m.focus - 1)
		}
		return m, nil
	case "esc":
		if m.busy {
			return m, nil
		}
		m.store.Cancel()
		m.sync()
		return m, nil
	case "enter":
		if m.busy {
			return m, nil
		}
		m.busy = true
		draft := m.store.Snapshot().Form
		return m, m.run(func(ctx context.Context) { m.store.Submit(ctx, draft) })
	}

	// the form is frozen while a request is in flight
	if m.busy {
		return m, nil
	}

	before := m.inputs[m.focus].Value()

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if value := m.inputs[m.focus].Value(); value != before {
		m.store.SetField(formFields[m.focus], value)
		m.snap = m.store.Snapshot()
	}
	return m, cmd
}

func (m *Model) setFocus(i int) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	if i == focusList {
		m.table.Focus()
	} else {
		m.table.Blur()
	}
}

// sync re-reads the store and pushes its state into the widgets.
func (m *Model) sync() {
	m.snap = m.store.Snapshot()

	for i, f := range formFields {
		if v := m.snap.Form.Get(f); m.inputs[i].Value() != v {
			m.inputs[i].SetValue(v)
		}
	}

	rows := make([]table.Row, 0, len(m.snap.Clientes))
	for _, c := range m.snap.Clientes {
		rows = append(rows, table.Row{c.Name, formatMoney(c.Salary), formatYears(c.TenureYears), formatMoney(c.Bonus)})
	}
	m.table.SetRows(rows)
	if n := len(rows); n > 0 && m.table.Cursor() >= n {
		m.table.SetCursor(n - 1)
	}
}

func (m Model) selected() (domain.Cliente, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.snap.Clientes) {
		return domain.Cliente{}, false
	}
	return m.snap.Clientes[i], true
}

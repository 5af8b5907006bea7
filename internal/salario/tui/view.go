package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aussiebroadwan/salario/internal/salario/domain"
	"github.com/aussiebroadwan/salario/internal/salario/store"
)

var fieldLabels = []string{"Name", "Salary", "Tenure"}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Detalle Salario · Client Manager"))
	b.WriteString("\n\n")

	if line := m.statusLine(); line != "" {
		b.WriteString(line)
		b.WriteString("\n\n")
	}

	formPanel := m.styles.Panel
	listPanel := m.styles.PanelFocus
	if m.focus != focusList {
		formPanel, listPanel = m.styles.PanelFocus, m.styles.Panel
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		formPanel.Render(m.formView()),
		" ",
		listPanel.Render(m.table.View()),
	))
	b.WriteString("\n")

	if m.confirm != nil {
		b.WriteString(m.styles.Confirm.Render(fmt.Sprintf("Delete %s? (y/n)", m.confirm.name)))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.help()))
	return b.String()
}

func (m Model) formView() string {
	var b strings.Builder

	title := "New client"
	if m.snap.Form.Mode == domain.FormEditing {
		title = "Editing " + m.snap.Form.Name
	}
	b.WriteString(m.styles.Section.Render(title))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(m.styles.Label.Render(fieldLabels[i]))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Label.Render("Bonus"))
	b.WriteString(m.styles.Bonus.Render(formatMoney(m.snap.Form.Bonus)))
	b.WriteString("\n\n")

	action := "Create"
	if m.snap.Form.Mode == domain.FormEditing {
		action = "Update"
	}
	b.WriteString(m.styles.Help.Render("[enter] " + action))
	return b.String()
}

func (m Model) statusLine() string {
	if m.busy {
		return m.styles.Help.Render("Working…")
	}
	switch m.snap.Status.Kind {
	case store.StatusError:
		return m.styles.StatusError.Render(m.snap.Status.Message)
	case store.StatusInfo:
		return m.styles.StatusInfo.Render(m.snap.Status.Message)
	}
	return ""
}

func (m Model) help() string {
	if m.focus == focusList {
		return "e edit · d delete · r reload · tab form · esc cancel edit · q quit"
	}
	return "enter submit · tab/↓ next field · esc cancel edit · ctrl+c quit"
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatYears(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/RichNSD/Payroll-Calculator/internal/money"
)

// View implements tea.Model.
func (m Model) View() string {
	left := m.styles.Panel.Render(m.formView())
	right := m.styles.Panel.Render(m.resultsView())
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)

	help := m.styles.StatusBar.Render(
		"tab/↑↓ move · space toggle · ←→ cycle · enter add item · ctrl+d delete item · ctrl+t theme · ctrl+r reset · esc quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Paycheck & Expense Calculator"),
		body,
		help,
	)
}

func (m Model) formView() string {
	var sb strings.Builder
	for i, r := range m.rows {
		focused := i == m.focus
		switch r.kind {
		case rowHeading:
			sb.WriteString(m.styles.Section.Render(r.label) + "\n")

		case rowText, rowItemLabel, rowItemValue:
			sb.WriteString(m.rowLabel(r.label, focused) + " " + r.input.View() + "\n")

		case rowToggle:
			mark := m.styles.ToggleOff.Render("[ ]")
			if m.form.Bool(r.fieldID) {
				mark = m.styles.ToggleOn.Render("[x]")
			}
			sb.WriteString(m.rowLabel(r.label, focused) + " " + mark + "\n")

		case rowEnum:
			value := m.form.Text(r.fieldID)
			sb.WriteString(m.rowLabel(r.label, focused) + " " + m.styles.Value.Render("‹ "+value+" ›") + "\n")

		case rowAddItem:
			sb.WriteString(m.rowLabel(r.label, focused) + "\n")
		}
	}
	return sb.String()
}

func (m Model) rowLabel(label string, focused bool) string {
	marker := "  "
	style := m.styles.Label
	if focused {
		marker = "> "
		style = m.styles.FocusedLabel
	}
	return style.Render(fmt.Sprintf("%s%-26s", marker, label))
}

func (m Model) resultsView() string {
	var sb strings.Builder
	line := func(label string, value string) {
		sb.WriteString(m.styles.ResultLabel.Render(label) + m.styles.ResultValue.Render(value) + "\n")
	}

	sb.WriteString(m.styles.Section.Render("Income") + "\n")
	line("Gross annual", money.FormatCurrency(m.income.Gross.Annual))
	line("Net annual", money.FormatCurrency(m.income.Net.Annual))
	line("Net monthly", money.FormatCurrency(m.income.Net.Monthly))
	line("Net bi-weekly", money.FormatCurrency(m.income.Net.BiWeekly))
	line("Net weekly", money.FormatCurrency(m.income.Net.Weekly))
	line("Net hourly", money.FormatCurrency(m.income.Net.Hourly))

	sb.WriteString(m.styles.Section.Render("Taxes (annual)") + "\n")
	line("Federal", money.FormatCurrency(m.income.Taxes.Federal))
	line("State", money.FormatCurrency(m.income.Taxes.State))
	line("Social Security", money.FormatCurrency(m.income.Taxes.SocialSecurity))
	line("Medicare", money.FormatCurrency(m.income.Taxes.Medicare))
	line("Total", money.FormatCurrency(m.income.Taxes.Total))
	line("Effective rate", money.FormatPercent(m.income.EffectiveTaxRate))

	sb.WriteString(m.styles.Section.Render("Expenses (monthly)") + "\n")
	line("Housing", money.FormatCurrency(m.expenses.Housing))
	line("Utilities", money.FormatCurrency(m.expenses.Utilities))
	line("Travel", money.FormatCurrency(m.expenses.Travel))
	line("Food", money.FormatCurrency(m.expenses.Food))
	line("Additional", money.FormatCurrency(m.expenses.Additional))
	line("Total", money.FormatCurrency(m.expenses.Grand))

	disposable := m.income.Net.Monthly.Sub(m.expenses.Grand)
	style := m.styles.ResultValue
	if disposable.IsNegative() {
		style = m.styles.Negative
	}
	sb.WriteString("\n" + m.styles.ResultLabel.Render("Disposable/month") + style.Render(money.FormatCurrency(disposable)) + "\n")
	return sb.String()
}

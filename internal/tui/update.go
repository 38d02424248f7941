package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RichNSD/Payroll-Calculator/internal/domain"
)

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		m.Flush()
		return m, tea.Quit

	case "tab", "down":
		m.moveFocus(1)
		return m, nil

	case "shift+tab", "up":
		m.moveFocus(-1)
		return m, nil

	case "ctrl+t":
		if m.form.Theme() == domain.ThemeDark {
			m.form.SetTheme(domain.ThemeLight)
		} else {
			m.form.SetTheme(domain.ThemeDark)
		}
		m.styles = NewStyles(m.form.Theme())
		m.scheduleSave()
		return m, nil

	case "ctrl+r":
		// Full reset: drop both persisted copies and start from defaults.
		m.saver.Stop()
		_ = m.store.Clear()
		m.form.Reset()
		m.styles = NewStyles(m.form.Theme())
		m.rebuild()
		return m, nil
	}

	if m.focus < 0 || m.focus >= len(m.rows) {
		return m, nil
	}

	switch r := &m.rows[m.focus]; r.kind {
	case rowToggle:
		if key := msg.String(); key == " " || key == "enter" {
			m.form.SetBool(r.fieldID, !m.form.Bool(r.fieldID))
			m.rebuild()
			m.scheduleSave()
		}
		return m, nil

	case rowEnum:
		switch msg.String() {
		case "left":
			m.cycleEnum(r, -1)
		case "right", " ", "enter":
			m.cycleEnum(r, 1)
		}
		return m, nil

	case rowAddItem:
		if key := msg.String(); key == " " || key == "enter" {
			m.form.AddCustomItem(r.cat, domain.CustomItem{})
			m.rebuild()
			m.scheduleSave()
		}
		return m, nil

	case rowText, rowItemLabel, rowItemValue:
		if msg.String() == "ctrl+d" && r.kind != rowText {
			m.form.RemoveCustomItem(r.cat, r.index)
			m.rebuild()
			m.scheduleSave()
			return m, nil
		}
		var cmd tea.Cmd
		r.input, cmd = r.input.Update(msg)
		m.applyInput(r)
		m.recompute()
		m.scheduleSave()
		return m, cmd
	}

	return m, nil
}

// applyInput writes an input row's current text back into the form.
func (m *Model) applyInput(r *row) {
	switch r.kind {
	case rowText:
		m.form.SetText(r.fieldID, r.input.Value())
	case rowItemLabel, rowItemValue:
		items := m.form.CustomItems(r.cat)
		if r.index < 0 || r.index >= len(items) {
			return
		}
		item := items[r.index]
		if r.kind == rowItemLabel {
			item.Label = r.input.Value()
		} else {
			item.Value = r.input.Value()
		}
		m.form.UpdateCustomItem(r.cat, r.index, item)
	}
}

// cycleEnum advances an enum row's value by delta, wrapping around, then
// rebuilds since enum values drive row visibility.
func (m *Model) cycleEnum(r *row, delta int) {
	if len(r.options) == 0 {
		return
	}
	current := 0
	value := m.form.Text(r.fieldID)
	for i, opt := range r.options {
		if opt == value {
			current = i
			break
		}
	}
	next := (current + delta + len(r.options)) % len(r.options)
	m.form.SetText(r.fieldID, r.options[next])
	m.rebuild()
	m.scheduleSave()
}

// rebuild regenerates the row list from the form and restores focus to
// the nearest focusable row.
func (m *Model) rebuild() {
	m.rows = m.buildRows()
	if m.focus >= len(m.rows) {
		m.focus = len(m.rows) - 1
	}
	for m.focus > 0 && m.rows[m.focus].kind == rowHeading {
		m.focus--
	}
	if m.rows[m.focus].kind == rowHeading {
		m.focusFirst()
	} else {
		m.setInputFocus()
	}
	m.recompute()
}

func (m *Model) focusFirst() {
	for i := range m.rows {
		if m.rows[i].kind != rowHeading {
			m.focus = i
			m.setInputFocus()
			return
		}
	}
}

// moveFocus advances to the next focusable row in direction dir, wrapping
// around the list.
func (m *Model) moveFocus(dir int) {
	if len(m.rows) == 0 {
		return
	}
	i := m.focus
	for range m.rows {
		i = (i + dir + len(m.rows)) % len(m.rows)
		if m.rows[i].kind != rowHeading {
			m.focus = i
			m.setInputFocus()
			return
		}
	}
}

// setInputFocus keeps exactly the focused row's textinput active.
func (m *Model) setInputFocus() {
	for i := range m.rows {
		switch m.rows[i].kind {
		case rowText, rowItemLabel, rowItemValue:
			if i == m.focus {
				m.rows[i].input.Focus()
			} else {
				m.rows[i].input.Blur()
			}
		}
	}
}

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/RichNSD/Payroll-Calculator/internal/domain"
)

// Styles holds the active color scheme's lipgloss styles.
type Styles struct {
	Title        lipgloss.Style
	Section      lipgloss.Style
	Label        lipgloss.Style
	FocusedLabel lipgloss.Style
	Value        lipgloss.Style
	Muted        lipgloss.Style
	ResultLabel  lipgloss.Style
	ResultValue  lipgloss.Style
	Negative     lipgloss.Style
	Panel        lipgloss.Style
	StatusBar    lipgloss.Style
	ToggleOn     lipgloss.Style
	ToggleOff    lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(theme domain.Theme) Styles {
	var (
		accent lipgloss.Color
		text   lipgloss.Color
		muted  lipgloss.Color
		border lipgloss.Color
	)
	if theme == domain.ThemeDark {
		accent = lipgloss.Color("86")
		text = lipgloss.Color("252")
		muted = lipgloss.Color("241")
		border = lipgloss.Color("240")
	} else {
		accent = lipgloss.Color("26")
		text = lipgloss.Color("235")
		muted = lipgloss.Color("245")
		border = lipgloss.Color("250")
	}

	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(accent).Padding(0, 1),
		Section:      lipgloss.NewStyle().Bold(true).Foreground(accent).MarginTop(1),
		Label:        lipgloss.NewStyle().Foreground(text),
		FocusedLabel: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Value:        lipgloss.NewStyle().Foreground(text),
		Muted:        lipgloss.NewStyle().Foreground(muted),
		ResultLabel:  lipgloss.NewStyle().Foreground(muted).Width(22),
		ResultValue:  lipgloss.NewStyle().Bold(true).Foreground(text),
		Negative:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),
		StatusBar: lipgloss.NewStyle().Foreground(muted).MarginTop(1),
		ToggleOn:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("40")),
		ToggleOff: lipgloss.NewStyle().Foreground(muted),
	}
}

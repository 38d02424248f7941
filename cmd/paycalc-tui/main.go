package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/RichNSD/Payroll-Calculator/internal/calculation"
	"github.com/RichNSD/Payroll-Calculator/internal/config"
	"github.com/RichNSD/Payroll-Calculator/internal/store"
	"github.com/RichNSD/Payroll-Calculator/internal/tui"
)

func main() {
	dir := os.Getenv("PAYCALC_STATE_DIR")
	if dir == "" {
		var err error
		dir, err = store.DefaultDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	s, err := store.Open(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening state store: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	engine := calculation.NewEngine()
	if tablesFile := os.Getenv("PAYCALC_TAX_TABLES"); tablesFile != "" {
		tables, err := config.LoadTaxTables(tablesFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading tax tables: %v\n", err)
			os.Exit(1)
		}
		engine = calculation.NewEngineWithTables(tables)
	}

	p := tea.NewProgram(
		tui.NewModel(s, engine),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

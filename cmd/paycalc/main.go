package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/RichNSD/Payroll-Calculator/internal/calculation"
	"github.com/RichNSD/Payroll-Calculator/internal/config"
	"github.com/RichNSD/Payroll-Calculator/internal/form"
	"github.com/RichNSD/Payroll-Calculator/internal/output"
	"github.com/RichNSD/Payroll-Calculator/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "paycalc",
	Short: "Paycheck and expense calculator CLI",
	Long:  "Computes gross/net pay across pay periods, monthly expense totals, and disposable income",
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Calculate a scenario from a YAML input file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		scenario, err := parser.LoadFromFile(args[0])
		if err != nil {
			log.Fatal(err)
		}

		f := form.New()
		scenario.Apply(f)

		engine := engineFromFlags(cmd)
		report := output.NewReport(engine.ComputeIncome(f.IncomeInput()), engine.ComputeExpenses(f.ExpenseInput()))

		outputFormat, _ := cmd.Flags().GetString("format")
		data, err := output.Generate(report, outputFormat)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))

		if save, _ := cmd.Flags().GetBool("save"); save {
			s := openStore(cmd)
			defer s.Close()
			if err := s.Save(f.Serialize()); err != nil {
				log.Fatal(err)
			}
			fmt.Fprintln(os.Stderr, "Saved scenario as current state")
		}
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Calculate from the saved state",
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore(cmd)
		defer s.Close()

		state, err := s.Load()
		if err != nil {
			log.Fatal(err)
		}
		f := form.New()
		f.Restore(state) // nil state restores defaults

		engine := engineFromFlags(cmd)
		report := output.NewReport(engine.ComputeIncome(f.IncomeInput()), engine.ComputeExpenses(f.ExpenseInput()))

		outputFormat, _ := cmd.Flags().GetString("format")
		data, err := output.Generate(report, outputFormat)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved state",
	Run: func(cmd *cobra.Command, args []string) {
		s := openStore(cmd)
		defer s.Close()
		if err := s.Clear(); err != nil {
			log.Fatal(err)
		}
		fmt.Println("Saved state cleared")
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "paycalc %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

// engineFromFlags builds the engine, loading a tax-table override file
// when one is given.
func engineFromFlags(cmd *cobra.Command) *calculation.Engine {
	tablesFile, _ := cmd.Flags().GetString("tax-tables")
	if tablesFile == "" {
		return calculation.NewEngine()
	}
	tables, err := config.LoadTaxTables(tablesFile)
	if err != nil {
		log.Fatal(err)
	}
	return calculation.NewEngineWithTables(tables)
}

func openStore(cmd *cobra.Command) *store.Store {
	dir, _ := cmd.Flags().GetString("state-dir")
	if dir == "" {
		var err error
		dir, err = store.DefaultDir()
		if err != nil {
			log.Fatal(err)
		}
	}
	s, err := store.Open(dir)
	if err != nil {
		log.Fatal(err)
	}
	return s
}

func init() {
	for _, cmd := range []*cobra.Command{calculateCmd, showCmd} {
		cmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
		cmd.Flags().String("tax-tables", "", "Path to a tax-tables override file")
	}
	calculateCmd.Flags().Bool("save", false, "Persist the scenario as the current state")
	for _, cmd := range []*cobra.Command{calculateCmd, showCmd, resetCmd} {
		cmd.Flags().String("state-dir", "", "State directory (default: per-user config dir)")
	}

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

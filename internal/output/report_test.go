package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/RichNSD/Payroll-Calculator/internal/domain"
)

func sampleReport() *Report {
	income := domain.IncomeResult{
		Gross: domain.PeriodBreakdown{
			Annual:   decimal.NewFromInt(100000),
			Monthly:  decimal.NewFromFloat(8333.33),
			BiWeekly: decimal.NewFromFloat(3846.15),
			Weekly:   decimal.NewFromFloat(1923.08),
			Hourly:   decimal.NewFromFloat(48.08),
		},
		Net: domain.PeriodBreakdown{
			Annual:   decimal.NewFromInt(78736),
			Monthly:  decimal.NewFromFloat(6561.33),
			BiWeekly: decimal.NewFromFloat(3028.31),
			Weekly:   decimal.NewFromFloat(1514.15),
			Hourly:   decimal.NewFromFloat(37.85),
		},
		Taxes: domain.TaxBreakdown{
			Federal:        decimal.NewFromInt(13614),
			State:          decimal.Zero,
			SocialSecurity: decimal.NewFromInt(6200),
			Medicare:       decimal.NewFromInt(1450),
			Total:          decimal.NewFromInt(21264),
		},
		EffectiveTaxRate: decimal.NewFromFloat(0.21264),
	}
	expenses := domain.ExpenseResult{
		Housing:    decimal.NewFromInt(1600),
		Utilities:  decimal.NewFromInt(225),
		Vehicle:    decimal.NewFromInt(600),
		Travel:     decimal.NewFromInt(600),
		Food:       decimal.NewFromInt(450),
		Additional: decimal.NewFromInt(100),
		Grand:      decimal.NewFromInt(2975),
	}
	return NewReport(income, expenses)
}

func TestNewReportDisposable(t *testing.T) {
	r := sampleReport()
	if got := r.DisposableMonthly.StringFixed(2); got != "3586.33" {
		t.Errorf("disposable monthly = %s, expected 3586.33", got)
	}
}

func TestGenerateConsole(t *testing.T) {
	out, err := Generate(sampleReport(), "console")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	text := string(out)

	for _, want := range []string{
		"PAYCHECK BREAKDOWN",
		"ANNUAL TAXES",
		"MONTHLY EXPENSES",
		"$100,000.00",
		"$6,561.33",
		"$21,264.00",
		"21.3%",
		"MONTHLY DISPOSABLE INCOME: $3,586.33",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("console output missing %q", want)
		}
	}
}

func TestGenerateJSON(t *testing.T) {
	out, err := Generate(sampleReport(), "json")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	var doc struct {
		Net struct {
			Monthly string `json:"monthly"`
		} `json:"net"`
		Taxes             map[string]string `json:"taxes"`
		EffectiveTaxRate  string            `json:"effective_tax_rate"`
		Expenses          map[string]string `json:"expenses"`
		DisposableMonthly string            `json:"disposable_monthly"`
	}
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if doc.Net.Monthly != "6561.33" {
		t.Errorf("net monthly = %s", doc.Net.Monthly)
	}
	if doc.Taxes["total"] != "21264.00" {
		t.Errorf("tax total = %s", doc.Taxes["total"])
	}
	if doc.EffectiveTaxRate != "0.2126" {
		t.Errorf("effective rate = %s", doc.EffectiveTaxRate)
	}
	if doc.Expenses["total"] != "2975.00" {
		t.Errorf("expense total = %s", doc.Expenses["total"])
	}
	if doc.DisposableMonthly != "3586.33" {
		t.Errorf("disposable = %s", doc.DisposableMonthly)
	}
}

func TestGenerateCSV(t *testing.T) {
	out, err := Generate(sampleReport(), "csv")
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(string(out))).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if rows[0][0] != "metric" || rows[0][1] != "amount" {
		t.Errorf("header = %v", rows[0])
	}

	byMetric := make(map[string]string, len(rows))
	for _, row := range rows[1:] {
		byMetric[row[0]] = row[1]
	}
	if byMetric["net_monthly"] != "6561.33" {
		t.Errorf("net_monthly = %s", byMetric["net_monthly"])
	}
	if byMetric["tax_total"] != "21264.00" {
		t.Errorf("tax_total = %s", byMetric["tax_total"])
	}
	if byMetric["disposable_monthly"] != "3586.33" {
		t.Errorf("disposable_monthly = %s", byMetric["disposable_monthly"])
	}
}

func TestGenerateUnsupportedFormat(t *testing.T) {
	if _, err := Generate(sampleReport(), "xml"); err == nil {
		t.Error("expected an error for an unsupported format")
	}
}

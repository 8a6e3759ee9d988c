// Package renderer renders ledger reports as markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/date"
)

//go:embed *.md
var templates embed.FS

// funcs are the helpers available to every template.
var funcs = template.FuncMap{
	"money":   func(m ledger.Money) string { return m.String() },
	"signed":  func(m ledger.Money) string { return m.SignedString() },
	"percent": func(p ledger.Percent) string { return p.String() },
	"date":    dateCell,
	"cell":    cell,
	"progress": func(b ledger.AccountBalance) string {
		p, ok := b.SavingsProgress()
		if !ok {
			return ""
		}
		return fmt.Sprintf("%s of %s", p, b.TargetBalance.In(b.Currency))
	},
}

// cell escapes a value for a markdown table cell.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

// dateCell formats a date, or a dash when it is missing.
func dateCell(d date.Date) string {
	if d.IsZero() {
		return "-"
	}
	return d.String()
}

// renderTemplate is a generic utility to render a main template that depends on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		var content []byte
		// An empty file name is a valid case, resulting in an empty template.
		if file != "" {
			content, err = fs.ReadFile(templates, file)
			if err != nil {
				return fmt.Sprintf("error reading partial template %q: %v", file, err)
			}
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}

// accountsView is the data of the accounts report.
type accountsView struct {
	Accounts []ledger.AccountBalance
	Total    ledger.Money
	Orphans  []string
}

// Accounts renders account balances, largest first, with their combined total.
//
// orphans are payment methods that match no account, they are listed as a warning.
func Accounts(balances []ledger.AccountBalance, orphans []string) string {
	view := accountsView{
		Accounts: ledger.SortByBalance(balances),
		Total:    ledger.CombinedBalance(balances),
		Orphans:  orphans,
	}
	return renderTemplate("accounts", "accounts.md", nil, view)
}

// cashFlowView is the data of the cash-flow report.
type cashFlowView struct {
	Granularity ledger.Granularity
	From, To    date.Date
	Buckets     []ledger.BucketView
	Income      ledger.Money
	Expense     ledger.Money
	Net         ledger.Money
}

func newCashFlowView(g ledger.Granularity, buckets []ledger.BucketView) cashFlowView {
	view := cashFlowView{Granularity: g, Buckets: buckets}
	if len(buckets) > 0 {
		view.From = buckets[0].Range.From
		view.To = buckets[len(buckets)-1].Range.To
	}
	for _, b := range buckets {
		view.Income = view.Income.Add(b.Income)
		view.Expense = view.Expense.Add(b.Expense)
		view.Net = view.Net.Add(b.Net)
	}
	return view
}

// CashFlow renders a cash-flow series.
func CashFlow(g ledger.Granularity, buckets []ledger.BucketView) string {
	partials := map[string]string{"cashflow_table": "cashflow_table.md"}
	return renderTemplate("cashflow", "cashflow.md", partials, newCashFlowView(g, buckets))
}

// investmentsView is the data of the investments report.
type investmentsView struct {
	Investments []ledger.Investment
	Cost        ledger.Money
	Value       ledger.Money
	Gain        ledger.Money
	ROI         ledger.Percent
}

// Investments renders investment positions with their gain and return.
func Investments(investments []ledger.Investment) string {
	view := investmentsView{Investments: investments}
	total := ledger.Investment{}
	for _, inv := range investments {
		total.TotalCost = total.TotalCost.Add(inv.TotalCost)
		total.CurrentValue = total.CurrentValue.Add(inv.CurrentValue)
	}
	view.Cost, view.Value, view.Gain, view.ROI = total.TotalCost, total.CurrentValue, total.Gain(), total.ROI()
	return renderTemplate("investments", "investments.md", nil, view)
}

// summaryView is the data of the dashboard.
type summaryView struct {
	On       date.Date
	Metrics  ledger.Metrics
	CashFlow cashFlowView
}

// Summary renders the dashboard: headline metrics, wealth allocation and cash flow.
func Summary(on date.Date, m ledger.Metrics, g ledger.Granularity, buckets []ledger.BucketView) string {
	partials := map[string]string{
		"summary_metrics":    "summary_metrics.md",
		"summary_allocation": "summary_allocation.md",
		"cashflow_table":     "cashflow_table.md",
	}
	view := summaryView{On: on, Metrics: m, CashFlow: newCashFlowView(g, buckets)}
	return renderTemplate("summary", "summary.md", partials, view)
}

// categoryGroup lists the categories of one type.
type categoryGroup struct {
	Type       ledger.CategoryType
	Categories []ledger.Category
}

// Categories renders the categories grouped by type.
func Categories(cs ledger.Categories) string {
	var groups []categoryGroup
	for _, t := range []ledger.CategoryType{ledger.IncomeCategory, ledger.ExpenseCategory, ledger.AssetCategory, ledger.LiabilityCategory} {
		g := categoryGroup{Type: t}
		for _, c := range cs {
			if c.Type == t {
				g.Categories = append(g.Categories, c)
			}
		}
		if len(g.Categories) > 0 {
			groups = append(groups, g)
		}
	}
	return renderTemplate("categories", "categories.md", nil, groups)
}

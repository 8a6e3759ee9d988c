package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/date"
	"github.com/etnz/ledger/renderer"
	"github.com/google/subcommands"
)

type registerCmd struct {
	search    string
	category  string
	timeRange string
	date      string
}

func (*registerCmd) Name() string { return "register" }
func (*registerCmd) Synopsis() string {
	return "list and total income, expenses, subscriptions, loans or investments"
}
func (*registerCmd) Usage() string {
	return `cfo register [-q <text>] [-c <category>] [-r <range>] [-d <date>] <kind>

  Lists the entries of a register (income, expenses, subscriptions, loans or
  investments) matching every filter, with their total and their share of the
  total of the register. Investments are filtered by asset type.

Usage Examples:
# Expenses mentioning rent over the last 30 days.
$ cfo register -q rent -r month expenses

# Crypto investments.
$ cfo register -c Crypto investments
`
}

func (c *registerCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "q", "", "Case insensitive text to search in the entries.")
	f.StringVar(&c.category, "c", ledger.AllCategories, "Category (or asset type) of the entries.")
	f.StringVar(&c.timeRange, "r", "all", "Time range ending on the reference date (all, today, week, month, year).")
	f.StringVar(&c.date, "d", date.Today().String(), "Reference date of the time range.")
}

func (c *registerCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := "expenses"
	if f.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "Only one register can be listed at a time")
		return subcommands.ExitUsageError
	}
	if f.NArg() == 1 {
		name = f.Arg(0)
	}
	kind, err := ledger.ParseKind(name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	r, err := ledger.ParseTimeRange(c.timeRange)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	today, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	a, err := newApp()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	l, err := a.decodeLedger()
	if err != nil {
		return fail("Error decoding ledger: %v", err)
	}

	q := ledger.Query{Search: c.search, Category: c.category, Range: r}
	printMarkdown(renderRegister(l, kind, q, today))
	return subcommands.ExitSuccess
}

// renderRegister analyzes and renders the register of the given kind.
func renderRegister(l *ledger.Ledger, kind ledger.Kind, q ledger.Query, today date.Date) string {
	switch kind {
	case ledger.KindIncome:
		return renderer.Register(ledger.Analyze(kind, l.Income, q, today), q)
	case ledger.KindExpense:
		return renderer.Register(ledger.Analyze(kind, l.Expenses, q, today), q)
	case ledger.KindSubscription:
		return renderer.Register(ledger.Analyze(kind, l.Subscriptions, q, today), q)
	case ledger.KindLoan:
		return renderer.Register(ledger.Analyze(kind, l.Loans, q, today), q)
	case ledger.KindInvestment:
		return renderer.Register(ledger.Analyze(kind, l.Investments, q, today), q)
	default:
		panic(fmt.Sprintf("unknown register %v", kind))
	}
}

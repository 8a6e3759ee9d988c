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

type cashflowCmd struct {
	date        string
	granularity string
	buckets     int
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "display income and expenses per period" }
func (*cashflowCmd) Usage() string {
	return `cfo cashflow [-d <date>] [-g <granularity>] [-n <count>]

  Displays income, expenses and net cash flow in calendar aligned periods
  ending on the given date: 30 days, 12 weeks (starting on Mondays),
  12 months or 5 years. Transactions dated after that date are ignored.

Usage Examples:
# Monthly cash flow of the last 12 months.
$ cfo cashflow

# Weekly cash flow of the 12 weeks ending on the last day of 2024.
$ cfo cashflow -g weeks -d 2024-12-31
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Reference date, the last period contains it.")
	f.StringVar(&c.granularity, "g", "months", "Period size (days, weeks, months, years).")
	f.IntVar(&c.buckets, "n", 0, "Number of periods. Defaults to 30 days, 12 weeks, 12 months or 5 years.")
}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	g, err := ledger.ParseGranularity(c.granularity)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	n := c.buckets
	if n == 0 {
		n = g.Buckets()
	}
	if n < 0 {
		fmt.Fprintf(os.Stderr, "Invalid number of periods %d\n", n)
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

	printMarkdown(renderer.CashFlow(g, ledger.BuildWindow(l.Income, l.Expenses, g, on, n)))
	return subcommands.ExitSuccess
}

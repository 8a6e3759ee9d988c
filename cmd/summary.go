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

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date        string
	granularity string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the dashboard: income, savings, allocation and cash flow" }
func (*summaryCmd) Usage() string {
	return `cfo summary [-d <date>] [-g <granularity>]

  Displays the headline metrics of the ledger (total income and expenses, net
  savings and savings rate, receivables, investments), the wealth allocation,
  and the cash flow of the period ending on the given date.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Reference date of the cash flow.")
	f.StringVar(&c.granularity, "g", "months", "Cash flow granularity (days, weeks, months, years).")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	a, err := newApp()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	l, err := a.decodeLedger()
	if err != nil {
		return fail("Error decoding ledger: %v", err)
	}

	printMarkdown(renderer.Summary(on, ledger.Summarize(l), g, l.Series(g, on)))
	return subcommands.ExitSuccess
}

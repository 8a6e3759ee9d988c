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

type syncCmd struct {
	dryRun bool
}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "update investment values from market quotes" }
func (*syncCmd) Usage() string {
	return `cfo sync [-n]

  Fetches the current price of every investment (by symbol, or by name when it
  has no symbol) from the configured quote source, and updates their current
  value. Cost bases never change. When the source fails, the ledger is left
  unchanged.

  The quote source is configured in the [quotes] section of the config file:
  'gemini' (needs GEMINI_API_KEY), 'http' (url and path) or 'file'.
`
}

func (c *syncCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.dryRun, "n", false, "Display the updated investments without saving them.")
}

func (c *syncCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	l, err := a.decodeLedger()
	if err != nil {
		return fail("Error decoding ledger: %v", err)
	}
	source, err := a.quoteSource(ctx)
	if err != nil {
		return fail("Error creating quote source: %v", err)
	}

	syncer := ledger.NewSyncer(source, ledger.WithLogger(a.log))
	investments, err := syncer.Sync(ctx, l.Investments, date.Today())
	if err != nil {
		return fail("Market data fetch failed: %v", err)
	}
	l.Investments = investments

	if !c.dryRun {
		if err := a.encodeLedger(l); err != nil {
			return fail("Error saving ledger: %v", err)
		}
		fmt.Fprintf(os.Stderr, "Successfully updated investments in %s\n", a.config.Ledger)
	}
	printMarkdown(renderer.Investments(l.Investments))
	return subcommands.ExitSuccess
}

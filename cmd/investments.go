package cmd

import (
	"context"
	"flag"

	"github.com/etnz/ledger/renderer"
	"github.com/google/subcommands"
)

type investmentsCmd struct{}

func (*investmentsCmd) Name() string     { return "investments" }
func (*investmentsCmd) Synopsis() string { return "display investments with their cost, value and return" }
func (*investmentsCmd) Usage() string {
	return `cfo investments

  Displays every investment with its cost basis, its current value as of its
  last sync, its unrealized gain and its return on investment. Use 'cfo sync'
  to refresh current values from market quotes.
`
}

func (c *investmentsCmd) SetFlags(f *flag.FlagSet) {}

func (c *investmentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	l, err := a.decodeLedger()
	if err != nil {
		return fail("Error decoding ledger: %v", err)
	}
	printMarkdown(renderer.Investments(l.Investments))
	return subcommands.ExitSuccess
}

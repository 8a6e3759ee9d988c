package cmd

import (
	"context"
	"flag"

	"github.com/etnz/ledger/renderer"
	"github.com/google/subcommands"
)

type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the categories of the ledger" }
func (*categoriesCmd) Usage() string {
	return `cfo categories

  Lists the income, expense, asset and liability categories of the ledger.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	l, err := a.decodeLedger()
	if err != nil {
		return fail("Error decoding ledger: %v", err)
	}
	printMarkdown(renderer.Categories(l.Categories))
	return subcommands.ExitSuccess
}

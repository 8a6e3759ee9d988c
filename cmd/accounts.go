package cmd

import (
	"context"
	"flag"

	"github.com/etnz/ledger/renderer"
	"github.com/google/subcommands"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "display the current balance of every account" }
func (*accountsCmd) Usage() string {
	return `cfo accounts

  Displays each account with its current balance: the opening balance, plus
  the income received into it, minus the expenses paid from it. Transactions
  reference accounts by name; those matching no account are reported.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	l, err := a.decodeLedger()
	if err != nil {
		return fail("Error decoding ledger: %v", err)
	}
	printMarkdown(renderer.Accounts(l.Balances(), l.Unattributed()))
	return subcommands.ExitSuccess
}

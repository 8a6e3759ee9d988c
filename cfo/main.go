package main

import (
	"context"
	"flag"
	"os"
	"path"
	"strings"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)
	cmd.Register(commander)

	// Exits when invoked by the shell to complete a command line, or to
	// install the completion (COMP_INSTALL=1).
	completion().Complete(name)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion describes the commands and their flags to the shell.
func completion() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flags(flag.CommandLine),
	}
	for _, c := range cmd.Commands {
		f := flag.NewFlagSet(c.Command.Name(), flag.ContinueOnError)
		c.Command.SetFlags(f)
		root.Sub[c.Command.Name()] = &complete.Command{Flags: flags(f), Args: args(c.Command.Name())}
	}
	root.Sub["help"] = &complete.Command{Args: names()}
	return root
}

// flags predicts the values of a flag set.
func flags(f *flag.FlagSet) map[string]complete.Predictor {
	predictors := map[string]complete.Predictor{}
	f.VisitAll(func(fl *flag.Flag) {
		predictors[fl.Name] = value(fl)
	})
	return predictors
}

func value(fl *flag.Flag) complete.Predictor {
	switch {
	case fl.Name == "ledger-file":
		return predict.Files("*.json")
	case fl.Name == "config":
		return predict.Files("*.toml")
	case fl.Name == "r":
		return predict.Set{"all", "today", "week", "month", "year"}
	case fl.Name == "g":
		return predict.Set{"days", "weeks", "months", "years"}
	case fl.Name == "t" && strings.Contains(fl.Usage, "Asset"):
		return predict.Set(strs(ledger.AssetTypes))
	case fl.Name == "t" && strings.Contains(fl.Usage, "account"):
		return predict.Set(strs(ledger.AccountTypes))
	case fl.Name == "t":
		return predict.Set{"Income", "Expense", "Asset", "Liability"}
	default:
		return predict.Nothing
	}
}

// args predicts the positional arguments of a command.
func args(command string) complete.Predictor {
	if command == "register" {
		return predict.Set{"income", "expenses", "subscriptions", "loans", "investments"}
	}
	return predict.Nothing
}

func names() complete.Predictor {
	var s predict.Set
	for _, c := range cmd.Commands {
		s = append(s, c.Command.Name())
	}
	return s
}

func strs[T ~string](values []T) []string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = string(v)
	}
	return s
}

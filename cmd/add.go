package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/ledger"
	"github.com/etnz/ledger/date"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// parseMoney parses an amount in the display currency.
func parseMoney(s string) (ledger.Money, error) {
	if strings.TrimSpace(s) == "" {
		return ledger.M(0, ledger.DefaultCurrency), nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return ledger.Money{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return ledger.M(d, ledger.DefaultCurrency), nil
}

// update loads the ledger, applies change and saves the ledger.
func update(change func(*app, *ledger.Ledger) error) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	l, err := a.decodeLedger()
	if err != nil {
		return fail("Error decoding ledger: %v", err)
	}
	if err := change(a, l); err != nil {
		return fail("Error: %v", err)
	}
	if err := a.encodeLedger(l); err != nil {
		return fail("Error saving ledger: %v", err)
	}
	return subcommands.ExitSuccess
}

// flowCmd holds the flags shared by income and expense entries.
type flowCmd struct {
	date     string
	category string
	account  string
	amount   string
	notes    string
}

func (c *flowCmd) setFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the entry (YYYY-MM-DD).")
	f.StringVar(&c.category, "c", "", "Category of the entry (required).")
	f.StringVar(&c.account, "a", "", "Name of the account the money goes through.")
	f.StringVar(&c.amount, "amount", "", "Amount of the entry, in the display currency (required).")
	f.StringVar(&c.notes, "m", "", "An optional note.")
}

func (c *flowCmd) parse() (date.Date, ledger.Money, error) {
	on, err := date.Parse(c.date)
	if err != nil {
		return on, ledger.Money{}, fmt.Errorf("invalid date: %w", err)
	}
	amount, err := parseMoney(c.amount)
	return on, amount, err
}

type addIncomeCmd struct {
	flowCmd
	source string
}

func (*addIncomeCmd) Name() string     { return "add-income" }
func (*addIncomeCmd) Synopsis() string { return "record an income" }
func (*addIncomeCmd) Usage() string {
	return `cfo add-income -s <source> -c <category> -amount <amount> [-a <account>] [-d <date>] [-m <note>]

  Records a one-off income. Its net amount is credited to the account whose
  name is given with -a.
`
}

func (c *addIncomeCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.source, "s", "", "Source of the income, an employer or a client (required).")
}

func (c *addIncomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, amount, err := c.parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	income, err := ledger.NewIncome(on, c.source, c.category, c.account, amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	income.Notes = c.notes
	return update(func(a *app, l *ledger.Ledger) error {
		warnUnknownAccount(a, l, c.account)
		l.Income = append(l.Income, income)
		fmt.Printf("Recorded income %s of %s from %s\n", income.ID, income.NetAmount, income.Source)
		return nil
	})
}

type addExpenseCmd struct {
	flowCmd
	vendor string
	fixed  bool
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record an expense" }
func (*addExpenseCmd) Usage() string {
	return `cfo add-expense -s <vendor> -c <category> -amount <amount> [-a <account>] [-fixed] [-d <date>] [-m <note>]

  Records an expense. Its amount is debited from the account whose name is
  given with -a.
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.vendor, "s", "", "Vendor or payee of the expense (required).")
	f.BoolVar(&c.fixed, "fixed", false, "Mark the expense as a fixed cost.")
}

func (c *addExpenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, amount, err := c.parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	expense, err := ledger.NewExpense(on, c.vendor, c.category, c.account, amount)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	expense.Description = c.notes
	expense.IsFixed = c.fixed
	return update(func(a *app, l *ledger.Ledger) error {
		warnUnknownAccount(a, l, c.account)
		l.Expenses = append(l.Expenses, expense)
		fmt.Printf("Recorded expense %s of %s to %s\n", expense.ID, expense.Amount, expense.Vendor)
		return nil
	})
}

// warnUnknownAccount logs when an entry names no known account: it will not
// count in any balance.
func warnUnknownAccount(a *app, l *ledger.Ledger, name string) {
	if _, ok := l.Account(name); !ok && name != "" {
		a.log.Warn().Str("account", name).Msg("no account with this name, the entry will not count in any balance")
	}
}

type addAccountCmd struct {
	institution string
	accountType string
	opening     string
	target      string
}

func (*addAccountCmd) Name() string     { return "add-account" }
func (*addAccountCmd) Synopsis() string { return "open a new account" }
func (*addAccountCmd) Usage() string {
	return `cfo add-account [-i <institution>] [-t <type>] [-opening <amount>] [-target <amount>] <name>

  Adds an account. Account types are Checking, Savings, Wallet, Credit Card
  and Cash. Income and expenses are attributed to the account by name.
`
}

func (c *addAccountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.institution, "i", "", "Bank or institution holding the account.")
	f.StringVar(&c.accountType, "t", string(ledger.Checking), "Type of the account.")
	f.StringVar(&c.opening, "opening", "", "Opening balance.")
	f.StringVar(&c.target, "target", "", "Optional savings target.")
}

func (c *addAccountCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one account name is required.")
		return subcommands.ExitUsageError
	}
	opening, err := parseMoney(c.opening)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	account, err := ledger.NewAccount(f.Arg(0), c.institution, ledger.AccountType(c.accountType), opening, ledger.DefaultCurrency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if c.target != "" {
		target, err := parseMoney(c.target)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		account.TargetBalance = &target
	}
	return update(func(a *app, l *ledger.Ledger) error {
		if _, ok := l.Account(account.Name); ok {
			return fmt.Errorf("account %q already exists", account.Name)
		}
		l.Accounts = append(l.Accounts, account)
		fmt.Printf("Opened account %q (%s)\n", account.Name, account.ID)
		return nil
	})
}

type addInvestmentCmd struct {
	date       string
	assetType  string
	symbol     string
	platform   string
	quantity   string
	price      string
	commission string
	notes      string
}

func (*addInvestmentCmd) Name() string     { return "add-investment" }
func (*addInvestmentCmd) Synopsis() string { return "record a purchase of an investment" }
func (*addInvestmentCmd) Usage() string {
	return `cfo add-investment -q <quantity> -p <price> [-s <symbol>] [-t <type>] [-f <commission>] [-platform <name>] [-d <date>] <name>

  Records an investment. Its cost basis is quantity x price + commission, and
  never changes afterwards. Its current value is updated by 'cfo sync'.
`
}

func (c *addInvestmentCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Purchase date (YYYY-MM-DD).")
	f.StringVar(&c.assetType, "t", string(ledger.Stock), "Asset type (Stock, Bond, Mutual Fund, ETF, Crypto, Real Estate, Other).")
	f.StringVar(&c.symbol, "s", "", "Ticker symbol used to fetch quotes.")
	f.StringVar(&c.platform, "platform", "", "Broker or platform holding the asset.")
	f.StringVar(&c.quantity, "q", "", "Quantity purchased (required).")
	f.StringVar(&c.price, "p", "", "Unit purchase price (required).")
	f.StringVar(&c.commission, "f", "", "Commission paid.")
	f.StringVar(&c.notes, "m", "", "An optional note.")
}

func (c *addInvestmentCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one investment name is required.")
		return subcommands.ExitUsageError
	}
	on, err := date.Parse(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}
	qty, err := decimal.NewFromString(c.quantity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing quantity %q: %v\n", c.quantity, err)
		return subcommands.ExitUsageError
	}
	price, err := parseMoney(c.price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	commission, err := parseMoney(c.commission)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	inv, err := ledger.NewInvestment(on, ledger.AssetType(c.assetType), c.symbol, f.Arg(0), c.platform, ledger.Q(qty), price, commission)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	inv.Notes = c.notes
	return update(func(a *app, l *ledger.Ledger) error {
		l.Investments = append(l.Investments, inv)
		fmt.Printf("Recorded investment %s in %s for %s\n", inv.ID, inv.Name, inv.TotalCost)
		return nil
	})
}

type addCategoryCmd struct {
	categoryType string
}

func (*addCategoryCmd) Name() string     { return "add-category" }
func (*addCategoryCmd) Synopsis() string { return "add a category" }
func (*addCategoryCmd) Usage() string {
	return `cfo add-category [-t <type>] <name>

  Adds a category of type Income, Expense, Asset or Liability.
`
}

func (c *addCategoryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.categoryType, "t", string(ledger.ExpenseCategory), "Type of the category.")
}

func (c *addCategoryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one category name is required.")
		return subcommands.ExitUsageError
	}
	category, err := ledger.NewCategory(f.Arg(0), ledger.CategoryType(c.categoryType))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	return update(func(a *app, l *ledger.Ledger) error {
		if slices.Contains(l.Categories.Names(category.Type), category.Name) {
			return fmt.Errorf("category %q already exists", category.Name)
		}
		l.Categories = append(l.Categories, category)
		fmt.Printf("Added %s category %q\n", category.Type, category.Name)
		return nil
	})
}

package ledger

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/ledger/date"
)

// Ledger is a snapshot of every record of a household.
//
// Records are kept in insertion order; derived values (balances, series,
// registers) are computed on demand and never stored.
type Ledger struct {
	Accounts      []Account      `json:"accounts"`
	Income        []Income       `json:"income"`
	Expenses      []Expense      `json:"expenses"`
	Subscriptions []Subscription `json:"subscriptions"`
	Loans         []Loan         `json:"loans"`
	Investments   []Investment   `json:"investments"`
	Categories    Categories     `json:"categories"`
}

// NewLedger returns an empty ledger with the default categories.
func NewLedger() *Ledger {
	return &Ledger{Categories: DefaultCategories()}
}

// Balances resolves the current balance of every account.
func (l *Ledger) Balances() []AccountBalance {
	return Resolve(l.Accounts, l.Income, l.Expenses)
}

// Series returns the cash-flow series ending on ref.
func (l *Ledger) Series(g Granularity, ref date.Date) []BucketView {
	return BuildSeries(l.Income, l.Expenses, g, ref)
}

// Account returns the first account with that name.
func (l *Ledger) Account(name string) (Account, bool) {
	for _, acc := range l.Accounts {
		if acc.Name == name {
			return acc, true
		}
	}
	return Account{}, false
}

// Unattributed returns the payment methods used by incomes or expenses that
// match no account, in order of appearance.
func (l *Ledger) Unattributed() []string {
	known := make(map[string]bool, len(l.Accounts))
	for _, acc := range l.Accounts {
		known[acc.Name] = true
	}
	var names []string
	add := func(name string) {
		if known[name] {
			return
		}
		known[name] = true
		names = append(names, name)
	}
	for _, in := range l.Income {
		add(in.PaymentMethod)
	}
	for _, ex := range l.Expenses {
		add(ex.PaymentMethod)
	}
	return names
}

// Undated returns the IDs of incomes and expenses without a valid date. They
// count in balances but in no time bucket.
func (l *Ledger) Undated() []string {
	var ids []string
	for _, in := range l.Income {
		if in.Date.IsZero() {
			ids = append(ids, in.ID)
		}
	}
	for _, ex := range l.Expenses {
		if ex.Date.IsZero() {
			ids = append(ids, ex.ID)
		}
	}
	return ids
}

// DecodeLedger reads a ledger snapshot in JSON.
//
// Missing collections are left empty. A ledger without categories gets the
// default ones.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	var l Ledger
	dec := json.NewDecoder(r)
	if err := dec.Decode(&l); err != nil {
		if err == io.EOF {
			return NewLedger(), nil
		}
		return nil, fmt.Errorf("cannot decode ledger: %w", err)
	}
	if len(l.Categories) == 0 {
		l.Categories = DefaultCategories()
	}
	return &l, nil
}

// EncodeLedger writes the ledger snapshot in indented JSON.
func EncodeLedger(w io.Writer, l *Ledger) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("cannot encode ledger: %w", err)
	}
	return nil
}

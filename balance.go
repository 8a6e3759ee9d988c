package ledger

import (
	"slices"

	"github.com/shopspring/decimal"
)

// AccountBalance is an account with its balance derived from the ledger.
type AccountBalance struct {
	Account
	CurrentBalance Money
}

// SavingsProgress returns how close the balance is to the account target,
// capped at 100%. ok is false when the account has no positive target.
func (b AccountBalance) SavingsProgress() (progress Percent, ok bool) {
	if b.TargetBalance == nil || !b.TargetBalance.IsPositive() {
		return 0, false
	}
	progress = percentOf(b.CurrentBalance.Decimal(), b.TargetBalance.Decimal())
	return min(progress, 100), true
}

// Resolve computes the current balance of each account.
//
// An account balance is its opening balance, plus the net amount of every
// income paid to it, minus the amount of every expense paid from it.
// Transactions reference accounts by exact name through their payment method;
// transactions that match no account are not counted anywhere.
//
// Accounts are returned in the same order, inputs are not modified.
func Resolve(accounts []Account, incomes []Income, expenses []Expense) []AccountBalance {
	// index accounts by name, several accounts may share a name.
	byName := make(map[string][]int, len(accounts))
	for i, acc := range accounts {
		byName[acc.Name] = append(byName[acc.Name], i)
	}

	deltas := make([]decimal.Decimal, len(accounts))
	for _, in := range incomes {
		for _, i := range byName[in.PaymentMethod] {
			deltas[i] = deltas[i].Add(in.NetAmount.Decimal())
		}
	}
	for _, ex := range expenses {
		for _, i := range byName[ex.PaymentMethod] {
			deltas[i] = deltas[i].Sub(ex.Amount.Decimal())
		}
	}

	balances := make([]AccountBalance, len(accounts))
	for i, acc := range accounts {
		balance := Money{value: acc.OpeningBalance.Decimal().Add(deltas[i]), cur: acc.Currency}
		balances[i] = AccountBalance{Account: acc, CurrentBalance: balance}
	}
	return balances
}

// SortByBalance returns the balances sorted from the largest to the smallest.
func SortByBalance(balances []AccountBalance) []AccountBalance {
	sorted := slices.Clone(balances)
	slices.SortStableFunc(sorted, func(a, b AccountBalance) int {
		return b.CurrentBalance.Decimal().Cmp(a.CurrentBalance.Decimal())
	})
	return sorted
}

// CombinedBalance returns the sum of all the balances.
func CombinedBalance(balances []AccountBalance) Money {
	var total decimal.Decimal
	for _, b := range balances {
		total = total.Add(b.CurrentBalance.Decimal())
	}
	return Money{value: total}
}

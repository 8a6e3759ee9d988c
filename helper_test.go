package ledger

import "github.com/etnz/ledger/date"

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const wit no currency set
func NO(v float64) Money { return M(v, "") }

// income is a helper for test to create an income into an account.
func income(on string, account string, net float64) Income {
	return Income{Date: mustDate(on), Source: "Employer", Category: "Salary", PaymentMethod: account, NetAmount: NO(net)}
}

// expense is a helper for test to create an expense paid from an account.
func expense(on string, account string, amount float64) Expense {
	return Expense{Date: mustDate(on), Vendor: "Shop", Category: "Food", PaymentMethod: account, Amount: NO(amount)}
}

// mustDate is a helper for test to parse a date from const.
func mustDate(s string) date.Date { return date.MustParse(s) }

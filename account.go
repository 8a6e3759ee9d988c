package ledger

// AccountType is the kind of money holder an Account represents.
type AccountType string

const (
	Checking   AccountType = "Checking"
	Savings    AccountType = "Savings"
	Wallet     AccountType = "Wallet"
	CreditCard AccountType = "Credit Card"
	Cash       AccountType = "Cash"
)

// AccountTypes lists the known account types.
var AccountTypes = []AccountType{Checking, Savings, Wallet, CreditCard, Cash}

// Account is a place where money is held.
//
// Transactions reference an account by its Name through their payment method.
type Account struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Institution    string      `json:"institution"`
	Type           AccountType `json:"type"`
	OpeningBalance Money       `json:"openingBalance"`
	TargetBalance  *Money      `json:"targetBalance,omitempty"` // savings goal, nil when none.
	Currency       string      `json:"currency"`
}

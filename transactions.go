package ledger

import (
	"fmt"
	"strings"

	"github.com/etnz/ledger/date"
)

// Kind identifies the variant of an Entry.
type Kind int

const (
	KindIncome Kind = iota
	KindExpense
	KindSubscription
	KindLoan
	KindInvestment
)

func (k Kind) String() string {
	switch k {
	case KindIncome:
		return "income"
	case KindExpense:
		return "expense"
	case KindSubscription:
		return "subscription"
	case KindLoan:
		return "loan"
	case KindInvestment:
		return "investment"
	default:
		panic(fmt.Sprintf("unknown entry kind %d", k))
	}
}

// IsOutflow reports whether a register of this kind is money going out,
// where a smaller share is the favorable outcome.
func (k Kind) IsOutflow() bool { return k == KindExpense || k == KindSubscription }

// ParseKind parses a register name such as "income" or "expenses".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "income", "incomes":
		return KindIncome, nil
	case "expense", "expenses":
		return KindExpense, nil
	case "subscription", "subscriptions":
		return KindSubscription, nil
	case "loan", "loans":
		return KindLoan, nil
	case "investment", "investments":
		return KindInvestment, nil
	default:
		return KindIncome, fmt.Errorf("unknown register %q", s)
	}
}

// Entry defines the common interface of every record listed in a register.
type Entry interface {
	What() Kind      // What returns the variant of the entry.
	When() date.Date // When returns the date the register filters on.
	Tag() string     // Tag returns the category, or the asset type for investments.
	Value() Money    // Value returns the representative amount of the entry.
	Text() string    // Text returns all the values of the entry flattened to text.
}

// Income is money received into an account.
type Income struct {
	ID            string    `json:"id"`
	Date          date.Date `json:"date"`
	Source        string    `json:"source"`
	Category      string    `json:"category"`
	Means         string    `json:"means,omitempty"` // Salary, Business, Freelance, Investment or Gift.
	PaymentMethod string    `json:"paymentMethod"`   // Name of the receiving Account.
	GrossAmount   Money     `json:"grossAmount"`
	Tax           Money     `json:"tax"`
	NetAmount     Money     `json:"netAmount"`
	Frequency     string    `json:"frequency,omitempty"` // One-off, Weekly, Monthly or Annual.
	Notes         string    `json:"notes,omitempty"`
}

func (t Income) What() Kind      { return KindIncome }
func (t Income) When() date.Date { return t.Date }
func (t Income) Tag() string     { return t.Category }
func (t Income) Value() Money    { return t.NetAmount }
func (t Income) Text() string {
	return joinText(t.ID, t.Date.String(), t.Source, t.Category, t.Means, t.PaymentMethod,
		t.GrossAmount.Decimal().String(), t.Tax.Decimal().String(), t.NetAmount.Decimal().String(), t.Frequency, t.Notes)
}

// Expense is money paid from an account.
type Expense struct {
	ID             string    `json:"id"`
	Date           date.Date `json:"date"`
	Category       string    `json:"category"`
	SubCategory    string    `json:"subCategory,omitempty"`
	Description    string    `json:"description,omitempty"`
	Vendor         string    `json:"vendor"`
	PaymentMethod  string    `json:"paymentMethod"` // Name of the paying Account.
	IsFixed        bool      `json:"isFixed"`
	IsEssential    bool      `json:"isEssential"`
	Amount         Money     `json:"amount"`
	SubscriptionID string    `json:"subscriptionId,omitempty"`
}

func (t Expense) What() Kind      { return KindExpense }
func (t Expense) When() date.Date { return t.Date }
func (t Expense) Tag() string     { return t.Category }
func (t Expense) Value() Money    { return t.Amount }
func (t Expense) Text() string {
	return joinText(t.ID, t.Date.String(), t.Category, t.SubCategory, t.Description, t.Vendor,
		t.PaymentMethod, t.Amount.Decimal().String(), t.SubscriptionID)
}

// Subscription is a recurring service paid from an account.
type Subscription struct {
	ID               string    `json:"id"`
	ServiceName      string    `json:"serviceName"`
	Category         string    `json:"category"`
	StartDate        date.Date `json:"startDate"`
	BillingFrequency string    `json:"billingFrequency"` // Monthly or Annual.
	MonthlyCost      Money     `json:"monthlyCost"`
	PaymentMethod    string    `json:"paymentMethod"`
	RenewalDate      date.Date `json:"renewalDate"`
	AutoRenew        bool      `json:"autoRenew"`
	Status           string    `json:"status"` // Active, Cancelled or Paused.
}

func (t Subscription) What() Kind      { return KindSubscription }
func (t Subscription) When() date.Date { return t.StartDate }
func (t Subscription) Tag() string     { return t.Category }

// Value of a subscription is zero: a register does not total monthly costs with one-off amounts.
func (t Subscription) Value() Money { return Money{} }
func (t Subscription) Text() string {
	return joinText(t.ID, t.ServiceName, t.Category, t.StartDate.String(), t.BillingFrequency,
		t.MonthlyCost.Decimal().String(), t.PaymentMethod, t.RenewalDate.String(), t.Status)
}

// LoanType tells who owes whom.
type LoanType string

const (
	Lent     LoanType = "Lent"
	Borrowed LoanType = "Borrowed"
)

// Loan is money lent to or borrowed from a counterparty.
type Loan struct {
	ID             string    `json:"id"`
	Counterparty   string    `json:"counterparty"`
	Type           LoanType  `json:"type"`
	Principal      Money     `json:"principal"`
	DateIssued     date.Date `json:"dateIssued"`
	ExpectedReturn date.Date `json:"expectedReturn"`
	Recovered      Money     `json:"recovered"`
	Outstanding    Money     `json:"outstanding"`
	Status         string    `json:"status"` // Open, Partially Repaid or Closed.
}

func (t Loan) What() Kind      { return KindLoan }
func (t Loan) When() date.Date { return t.DateIssued }

// Tag of a loan is empty: loans are not categorized.
func (t Loan) Tag() string  { return "" }
func (t Loan) Value() Money { return t.Principal }
func (t Loan) Text() string {
	return joinText(t.ID, t.Counterparty, string(t.Type), t.Principal.Decimal().String(), t.DateIssued.String(),
		t.ExpectedReturn.String(), t.Recovered.Decimal().String(), t.Outstanding.Decimal().String(), t.Status)
}

// joinText flattens non empty values into a single searchable line.
func joinText(values ...string) string {
	var b strings.Builder
	for _, v := range values {
		if v == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(v)
	}
	return b.String()
}

// check that every variant is an Entry.
var (
	_ Entry = Income{}
	_ Entry = Expense{}
	_ Entry = Subscription{}
	_ Entry = Loan{}
	_ Entry = Investment{}
)

package ledger

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/ledger/date"
	"github.com/google/uuid"
)

// newID returns a unique identifier with the given prefix.
func newID(prefix string) string { return prefix + "-" + uuid.NewString() }

// validateFlow checks the fields shared by incomes and expenses.
func validateFlow(counterparty, role, category string, amount Money) error {
	var errs error
	if !amount.IsPositive() {
		errs = errors.Join(errs, fmt.Errorf("valid positive amount is required, got %s", amount.Decimal()))
	}
	if strings.TrimSpace(category) == "" {
		errs = errors.Join(errs, errors.New("category is required"))
	}
	if strings.TrimSpace(counterparty) == "" {
		errs = errors.Join(errs, fmt.Errorf("%s is required", role))
	}
	return errs
}

// NewIncome records a one-off income received on 'on' into the named account.
//
// The amount is both gross and net, no tax is withheld.
func NewIncome(on date.Date, source, category, account string, amount Money) (Income, error) {
	if err := validateFlow(source, "source", category, amount); err != nil {
		return Income{}, fmt.Errorf("invalid income: %w", err)
	}
	return Income{
		ID:            newID("TRX"),
		Date:          on,
		Source:        strings.TrimSpace(source),
		Category:      category,
		PaymentMethod: account,
		GrossAmount:   amount,
		NetAmount:     amount,
		Frequency:     "One-off",
	}, nil
}

// NewExpense records an essential, variable expense paid on 'on' from the named account.
func NewExpense(on date.Date, vendor, category, account string, amount Money) (Expense, error) {
	if err := validateFlow(vendor, "vendor", category, amount); err != nil {
		return Expense{}, fmt.Errorf("invalid expense: %w", err)
	}
	return Expense{
		ID:            newID("TRX"),
		Date:          on,
		Category:      category,
		SubCategory:   category,
		Vendor:        strings.TrimSpace(vendor),
		PaymentMethod: account,
		IsEssential:   true,
		Amount:        amount,
	}, nil
}

// NewAccount creates an account, its balance starts at the opening balance.
func NewAccount(name, institution string, accountType AccountType, opening Money, currency string) (Account, error) {
	var errs error
	if strings.TrimSpace(name) == "" {
		errs = errors.Join(errs, errors.New("account name is required"))
	}
	if !slices.Contains(AccountTypes, accountType) {
		errs = errors.Join(errs, fmt.Errorf("unknown account type %q", accountType))
	}
	if errs != nil {
		return Account{}, fmt.Errorf("invalid account: %w", errs)
	}
	return Account{
		ID:             newID("ACC"),
		Name:           strings.TrimSpace(name),
		Institution:    institution,
		Type:           accountType,
		OpeningBalance: opening.In(currency),
		Currency:       currency,
	}, nil
}

// NewCategory creates a discretionary category.
func NewCategory(name string, categoryType CategoryType) (Category, error) {
	if strings.TrimSpace(name) == "" {
		return Category{}, errors.New("invalid category: name is required")
	}
	switch categoryType {
	case IncomeCategory, ExpenseCategory, AssetCategory, LiabilityCategory:
	default:
		return Category{}, fmt.Errorf("invalid category: unknown type %q", categoryType)
	}
	return Category{
		Code:            newID("CAT"),
		Name:            strings.TrimSpace(name),
		Type:            categoryType,
		IsDiscretionary: true,
	}, nil
}

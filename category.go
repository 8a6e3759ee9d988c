package ledger

// CategoryType groups categories by the side of the ledger they belong to.
type CategoryType string

const (
	IncomeCategory    CategoryType = "Income"
	ExpenseCategory   CategoryType = "Expense"
	AssetCategory     CategoryType = "Asset"
	LiabilityCategory CategoryType = "Liability"
)

// Category classifies income and expense entries.
type Category struct {
	Code            string       `json:"code"`
	Name            string       `json:"name"`
	Type            CategoryType `json:"type"`
	SubCategory     string       `json:"subCategory,omitempty"`
	IsDiscretionary bool         `json:"isDiscretionary"`
}

// Categories is a list of categories.
type Categories []Category

// Names returns the distinct category names of a given type, in order of appearance.
func (cs Categories) Names(t CategoryType) []string {
	seen := make(map[string]bool)
	names := make([]string, 0, len(cs))
	for _, c := range cs {
		if c.Type != t || seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		names = append(names, c.Name)
	}
	return names
}

// DefaultCategories returns the categories a new ledger starts with.
func DefaultCategories() Categories {
	return Categories{
		{Code: "INC01", Name: "Salary", Type: IncomeCategory},
		{Code: "INC02", Name: "Freelance", Type: IncomeCategory, IsDiscretionary: true},
		{Code: "INC03", Name: "Game Wins", Type: IncomeCategory, IsDiscretionary: true},
		{Code: "INC04", Name: "Investments", Type: IncomeCategory, IsDiscretionary: true},
		{Code: "EXP01", Name: "Housing", Type: ExpenseCategory, SubCategory: "Rent"},
		{Code: "EXP02", Name: "Food", Type: ExpenseCategory, SubCategory: "Groceries"},
		{Code: "EXP03", Name: "Food", Type: ExpenseCategory, SubCategory: "Dining Out", IsDiscretionary: true},
		{Code: "EXP04", Name: "Transport", Type: ExpenseCategory, SubCategory: "Fuel"},
	}
}

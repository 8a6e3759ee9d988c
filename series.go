package ledger

import (
	"fmt"
	"strings"

	"github.com/etnz/ledger/date"
	"github.com/shopspring/decimal"
)

// Granularity is the size of the buckets of a cash-flow series.
type Granularity int

const (
	Day   Granularity = iota // 30 daily buckets.
	Week                     // 12 weekly buckets, starting on Mondays.
	Month                    // 12 calendar months.
	Year                     // 5 calendar years.
)

func (g Granularity) String() string {
	switch g {
	case Day:
		return "days"
	case Week:
		return "weeks"
	case Month:
		return "months"
	case Year:
		return "years"
	default:
		panic(fmt.Sprintf("unknown granularity %d", g))
	}
}

// Period returns the calendar period of one bucket.
func (g Granularity) Period() date.Period {
	switch g {
	case Day:
		return date.Daily
	case Week:
		return date.Weekly
	case Month:
		return date.Monthly
	case Year:
		return date.Yearly
	default:
		panic(fmt.Sprintf("unknown granularity %d", g))
	}
}

// Buckets returns the number of buckets in the look-back window.
func (g Granularity) Buckets() int {
	switch g {
	case Day:
		return 30
	case Week, Month:
		return 12
	case Year:
		return 5
	default:
		panic(fmt.Sprintf("unknown granularity %d", g))
	}
}

// ParseGranularity parses "days", "week", "monthly"... into a Granularity.
func ParseGranularity(s string) (Granularity, error) {
	p, err := date.ParsePeriod(s)
	if err != nil {
		return Day, fmt.Errorf("unknown granularity %q", strings.TrimSpace(s))
	}
	switch p {
	case date.Weekly:
		return Week, nil
	case date.Monthly:
		return Month, nil
	case date.Yearly:
		return Year, nil
	default:
		return Day, nil
	}
}

// label returns the short display name of the bucket starting on 'start'.
func (g Granularity) label(start date.Date) string {
	switch g {
	case Day:
		return start.Format("Jan 2")
	case Week:
		return fmt.Sprintf("W%d %s", (start.Day()+6)/7, start.Format("Jan"))
	case Month:
		return start.Format("Jan 06")
	case Year:
		return start.Format("2006")
	default:
		panic(fmt.Sprintf("unknown granularity %d", g))
	}
}

// BucketView is one period of a cash-flow series.
type BucketView struct {
	Key     string     // Key identifies the period: a day, the Monday of a week, "2006-01" or "2006".
	Label   string     // Label is a short display name.
	Range   date.Range // Range holds the first and last day of the period.
	Income  Money      // Income is the sum of the net amounts received in the period.
	Expense Money      // Expense is the sum of the amounts paid in the period.
	Net     Money      // Net is Income - Expense.
}

// bucket accumulates the flows of a period.
type bucket struct {
	start           date.Date
	income, expense decimal.Decimal
}

// BuildSeries aggregates incomes and expenses into the buckets of the look-back
// window ending on ref, at the given granularity.
//
// It panics if g is not a known Granularity.
func BuildSeries(incomes []Income, expenses []Expense, g Granularity, ref date.Date) []BucketView {
	return BuildWindow(incomes, expenses, g, ref, g.Buckets())
}

// BuildWindow is like BuildSeries with an explicit number of buckets.
//
// Buckets are contiguous and sorted chronologically, the last one contains ref.
// Empty periods are still reported. Transactions dated after ref, with a zero
// date, or outside of the window are not counted.
//
// It panics if g is unknown or n is not positive.
func BuildWindow(incomes []Income, expenses []Expense, g Granularity, ref date.Date, n int) []BucketView {
	period := g.Period()
	if n < 1 {
		panic(fmt.Sprintf("invalid number of buckets %d", n))
	}

	// Step on period starts, stepping days of month directly would
	// collapse months when ref is a 31st.
	first := ref.StartOf(period).Step(period, -(n - 1))
	buckets := make([]bucket, n)
	index := make(map[date.Date]int, n)
	for i := range buckets {
		start := first.Step(period, i)
		buckets[i] = bucket{start: start}
		index[start] = i
	}

	find := func(on date.Date) (int, bool) {
		if on.IsZero() || on.After(ref) {
			return 0, false
		}
		i, ok := index[on.StartOf(period)]
		return i, ok
	}

	for _, in := range incomes {
		if i, ok := find(in.Date); ok {
			buckets[i].income = buckets[i].income.Add(in.NetAmount.Decimal())
		}
	}
	for _, ex := range expenses {
		if i, ok := find(ex.Date); ok {
			buckets[i].expense = buckets[i].expense.Add(ex.Amount.Decimal())
		}
	}

	views := make([]BucketView, n)
	for i, b := range buckets {
		r := date.NewRange(b.start, period)
		views[i] = BucketView{
			Key:     r.Identifier(period),
			Label:   g.label(b.start),
			Range:   r,
			Income:  Money{value: b.income},
			Expense: Money{value: b.expense},
			Net:     Money{value: b.income.Sub(b.expense)},
		}
	}
	return views
}

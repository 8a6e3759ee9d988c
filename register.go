package ledger

import (
	"fmt"
	"strings"

	"github.com/etnz/ledger/date"
	"github.com/shopspring/decimal"
)

// TimeRange is a look-back window relative to a given day.
type TimeRange int

const (
	AllTime   TimeRange = iota // No time filter.
	PastDay                    // Today only.
	PastWeek                   // The last 7 days, today included.
	PastMonth                  // The last 30 days, today included.
	PastYear                   // The last 365 days, today included.
)

func (r TimeRange) String() string {
	switch r {
	case AllTime:
		return "All"
	case PastDay:
		return "Today"
	case PastWeek:
		return "Week"
	case PastMonth:
		return "Month"
	case PastYear:
		return "Year"
	default:
		panic(fmt.Sprintf("unknown time range %d", r))
	}
}

// days returns the size of the window in days, 0 for AllTime.
func (r TimeRange) days() int {
	switch r {
	case AllTime:
		return 0
	case PastDay:
		return 1
	case PastWeek:
		return 7
	case PastMonth:
		return 30
	case PastYear:
		return 365
	default:
		panic(fmt.Sprintf("unknown time range %d", r))
	}
}

// ParseTimeRange parses "all", "today", "week", "month" or "year".
func ParseTimeRange(s string) (TimeRange, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return AllTime, nil
	case "today", "day":
		return PastDay, nil
	case "week":
		return PastWeek, nil
	case "month":
		return PastMonth, nil
	case "year":
		return PastYear, nil
	default:
		return AllTime, fmt.Errorf("unknown time range %q", s)
	}
}

// AllCategories is the category filter that matches every entry.
const AllCategories = "All"

// Query narrows down a register.
type Query struct {
	Search   string    // Case insensitive text searched in every value of the entry. Empty matches all.
	Category string    // Exact category (or asset type). Empty or AllCategories matches all.
	Range    TimeRange // Window relative to the day of the query.
}

// matchSearch reports whether e contains the search text.
func (q Query) matchSearch(e Entry) bool {
	if q.Search == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.Text()), strings.ToLower(q.Search))
}

func (q Query) matchCategory(e Entry) bool {
	if q.Category == "" || q.Category == AllCategories {
		return true
	}
	return e.Tag() == q.Category
}

// matchRange reports whether e is dated inside the window ending on today.
// Entries dated in the future or without a date never match a bounded window.
func (q Query) matchRange(e Entry, today date.Date) bool {
	n := q.Range.days()
	if n == 0 {
		return true
	}
	on := e.When()
	if on.IsZero() {
		return false
	}
	diff := today.Sub(on)
	return diff >= 0 && diff < n
}

// Match reports whether e passes every filter of the query.
func (q Query) Match(e Entry, today date.Date) bool {
	return q.matchSearch(e) && q.matchCategory(e) && q.matchRange(e, today)
}

// Register is a filtered view over a homogeneous list of entries.
type Register[T Entry] struct {
	Kind      Kind    // Kind of entries in the register.
	Items     []T     // Items that matched the query, in their original order.
	Count     int     // Count is len(Items).
	Total     Money   // Total is the sum of the Items values.
	All       Money   // All is the sum of the values of every entry, before filtering.
	Share     Percent // Share is Total relative to All, 0 when All is zero.
	Favorable bool    // Favorable is true when the share is good news for this kind of register.
}

// Filter returns the entries matching q, in their original order.
func Filter[T Entry](items []T, q Query, today date.Date) []T {
	var matched []T
	for _, item := range items {
		if q.Match(item, today) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Sum returns the sum of the entries values.
func Sum[T Entry](items []T) Money {
	var total decimal.Decimal
	for _, item := range items {
		total = total.Add(item.Value().Decimal())
	}
	return Money{value: total}
}

// Analyze filters items with q and computes the register analytics.
//
// The share compares the filtered total to the total of all items. A share
// strictly above half of the total is favorable, except for outflow registers
// (expenses, subscriptions) where a share strictly below half is.
//
// today is the reference day for the time range.
func Analyze[T Entry](kind Kind, items []T, q Query, today date.Date) Register[T] {
	matched := Filter(items, q, today)
	r := Register[T]{
		Kind:  kind,
		Items: matched,
		Count: len(matched),
		Total: Sum(matched),
		All:   Sum(items),
	}
	r.Share = percentOf(r.Total.Decimal(), r.All.Decimal())

	half := Money{value: r.All.value.Div(decimal.NewFromInt(2)), cur: r.All.cur}
	if kind.IsOutflow() {
		r.Favorable = r.Total.LessThan(half)
	} else {
		r.Favorable = r.Total.GreaterThan(half)
	}
	return r
}

package ledger

import (
	"slices"
	"testing"
)

func rentExpenses() []Expense {
	return []Expense{
		{ID: "TRX-1", Date: mustDate("2024-02-01"), Category: "Housing", Description: "February rent", Vendor: "Landlord LLC", PaymentMethod: "Chase", Amount: NO(1200)},
		{ID: "TRX-2", Date: mustDate("2024-02-10"), Category: "Health", Description: "Membership", Vendor: "Gym", PaymentMethod: "Chase", Amount: NO(45)},
	}
}

func TestAnalyze_Search(t *testing.T) {
	expenses := rentExpenses()
	q := Query{Search: "rent", Category: AllCategories, Range: AllTime}

	got := Analyze(KindExpense, expenses, q, mustDate("2024-02-29"))
	if len(got.Items) != 1 || got.Items[0].Vendor != "Landlord LLC" {
		t.Fatalf("Analyze() items = %v, want only the Landlord record", got.Items)
	}
	if !got.Total.Equal(NO(1200)) {
		t.Errorf("Analyze() total = %v, want 1200", got.Total.Decimal())
	}
	if !got.All.Equal(NO(1245)) {
		t.Errorf("Analyze() all = %v, want 1245", got.All.Decimal())
	}
}

func TestAnalyze_SearchIsCaseInsensitive(t *testing.T) {
	for _, search := range []string{"GYM", "gym", "Membership", "TRX-2", "45"} {
		got := Filter(rentExpenses(), Query{Search: search}, mustDate("2024-02-29"))
		if len(got) != 1 || got[0].ID != "TRX-2" {
			t.Errorf("Filter(%q) = %v, want the gym record", search, got)
		}
	}
}

func TestAnalyze_Category(t *testing.T) {
	testCases := []struct {
		category string
		want     []string
	}{
		{category: "", want: []string{"TRX-1", "TRX-2"}},
		{category: AllCategories, want: []string{"TRX-1", "TRX-2"}},
		{category: "Health", want: []string{"TRX-2"}},
		{category: "health", want: nil},
	}
	for _, tc := range testCases {
		t.Run(tc.category, func(t *testing.T) {
			got := Filter(rentExpenses(), Query{Category: tc.category}, mustDate("2024-02-29"))
			var ids []string
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			if !slices.Equal(ids, tc.want) {
				t.Errorf("Filter(category=%q) = %v, want %v", tc.category, ids, tc.want)
			}
		})
	}
}

func TestAnalyze_TimeRange(t *testing.T) {
	var incomes []Income
	for _, on := range []string{"2024-02-29", "2024-02-23", "2024-02-22", "2024-01-31", "2024-01-30", "2023-03-02", "2023-03-01", "2024-03-01"} {
		incomes = append(incomes, income(on, "Chase", 1))
	}
	incomes = append(incomes, Income{PaymentMethod: "Chase", NetAmount: NO(1)})

	testCases := []struct {
		r    TimeRange
		want int
	}{
		{r: AllTime, want: 9},
		{r: PastDay, want: 1},
		{r: PastWeek, want: 2},
		{r: PastMonth, want: 4},
		{r: PastYear, want: 6},
	}
	for _, tc := range testCases {
		t.Run(tc.r.String(), func(t *testing.T) {
			got := Analyze(KindIncome, incomes, Query{Range: tc.r}, mustDate("2024-02-29"))
			if got.Count != tc.want {
				t.Errorf("Analyze(%v) count = %d, want %d", tc.r, got.Count, tc.want)
			}
		})
	}
}

func TestAnalyze_OrderIndependence(t *testing.T) {
	today := mustDate("2024-02-29")
	expenses := append(rentExpenses(),
		Expense{ID: "TRX-3", Date: mustDate("2023-01-01"), Category: "Housing", Description: "Old rent", Vendor: "Landlord LLC", Amount: NO(1100)},
		Expense{ID: "TRX-4", Date: mustDate("2024-02-28"), Category: "Housing", Description: "Repairs", Vendor: "Plumber", Amount: NO(300)},
	)
	search := Query{Search: "rent"}
	category := Query{Category: "Housing"}
	window := Query{Range: PastMonth}

	want := Filter(expenses, Query{Search: "rent", Category: "Housing", Range: PastMonth}, today)
	if len(want) != 1 || want[0].ID != "TRX-1" {
		t.Fatalf("Filter() = %v, want TRX-1", want)
	}
	orders := [][]Query{
		{search, category, window},
		{search, window, category},
		{category, search, window},
		{category, window, search},
		{window, search, category},
		{window, category, search},
	}
	for _, order := range orders {
		got := expenses
		for _, q := range order {
			got = Filter(got, q, today)
		}
		if !slices.EqualFunc(got, want, func(a, b Expense) bool { return a.ID == b.ID }) {
			t.Errorf("Filter in order %v = %v, want %v", order, got, want)
		}
	}
}

func TestAnalyze_Share(t *testing.T) {
	incomes := []Income{
		{Date: mustDate("2024-02-01"), Category: "Salary", NetAmount: NO(600)},
		{Date: mustDate("2024-02-02"), Category: "Freelance", NetAmount: NO(300)},
		{Date: mustDate("2024-02-03"), Category: "Gift", NetAmount: NO(100)},
	}
	expenses := []Expense{
		{Date: mustDate("2024-02-01"), Category: "Housing", Amount: NO(600)},
		{Date: mustDate("2024-02-02"), Category: "Food", Amount: NO(400)},
	}
	today := mustDate("2024-02-29")

	testCases := []struct {
		name          string
		got           func() (Percent, bool)
		wantShare     Percent
		wantFavorable bool
	}{
		{
			name: "large income share is favorable",
			got: func() (Percent, bool) {
				r := Analyze(KindIncome, incomes, Query{Category: "Salary"}, today)
				return r.Share, r.Favorable
			},
			wantShare:     60,
			wantFavorable: true,
		},
		{
			name: "small income share is not favorable",
			got: func() (Percent, bool) {
				r := Analyze(KindIncome, incomes, Query{Category: "Gift"}, today)
				return r.Share, r.Favorable
			},
			wantShare:     10,
			wantFavorable: false,
		},
		{
			name: "large expense share is not favorable",
			got: func() (Percent, bool) {
				r := Analyze(KindExpense, expenses, Query{Category: "Housing"}, today)
				return r.Share, r.Favorable
			},
			wantShare:     60,
			wantFavorable: false,
		},
		{
			name: "small expense share is favorable",
			got: func() (Percent, bool) {
				r := Analyze(KindExpense, expenses, Query{Category: "Food"}, today)
				return r.Share, r.Favorable
			},
			wantShare:     40,
			wantFavorable: true,
		},
		{
			name: "expense share of exactly half is not favorable",
			got: func() (Percent, bool) {
				split := []Expense{
					{Date: mustDate("2024-02-01"), Category: "Housing", Amount: NO(500)},
					{Date: mustDate("2024-02-02"), Category: "Food", Amount: NO(500)},
				}
				r := Analyze(KindExpense, split, Query{Category: "Housing"}, today)
				return r.Share, r.Favorable
			},
			wantShare:     50,
			wantFavorable: false,
		},
		{
			name: "income share of exactly half is not favorable",
			got: func() (Percent, bool) {
				split := []Income{
					{Date: mustDate("2024-02-01"), Category: "Salary", NetAmount: NO(500)},
					{Date: mustDate("2024-02-02"), Category: "Gift", NetAmount: NO(500)},
				}
				r := Analyze(KindIncome, split, Query{Category: "Salary"}, today)
				return r.Share, r.Favorable
			},
			wantShare:     50,
			wantFavorable: false,
		},
		{
			name: "empty expense register is not favorable",
			got: func() (Percent, bool) {
				r := Analyze(KindExpense, []Expense{}, Query{}, today)
				return r.Share, r.Favorable
			},
			wantShare:     0,
			wantFavorable: false,
		},
		{
			name: "empty register has no share",
			got: func() (Percent, bool) {
				r := Analyze(KindIncome, []Income{}, Query{}, today)
				return r.Share, r.Favorable
			},
			wantShare:     0,
			wantFavorable: false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			share, favorable := tc.got()
			if !share.Equal(tc.wantShare) {
				t.Errorf("share = %v, want %v", share, tc.wantShare)
			}
			if favorable != tc.wantFavorable {
				t.Errorf("favorable = %v, want %v", favorable, tc.wantFavorable)
			}
		})
	}
}

func TestAnalyze_Values(t *testing.T) {
	today := mustDate("2024-02-29")
	loans := []Loan{
		{Counterparty: "Bob", Type: Lent, Principal: NO(500), Outstanding: NO(200), DateIssued: mustDate("2024-01-01")},
	}
	if got := Analyze(KindLoan, loans, Query{}, today); !got.Total.Equal(NO(500)) {
		t.Errorf("loan total = %v, want the principal 500", got.Total.Decimal())
	}

	subscriptions := []Subscription{
		{ServiceName: "Netflix", Category: "Entertainment", MonthlyCost: NO(15), StartDate: mustDate("2024-01-01")},
	}
	if got := Analyze(KindSubscription, subscriptions, Query{Category: "Entertainment"}, today); got.Count != 1 || !got.Total.IsZero() {
		t.Errorf("subscription register = %d items, total %v, want 1 item, total 0", got.Count, got.Total.Decimal())
	}

	investments := []Investment{
		{Type: Stock, Symbol: "AAPL", Name: "Apple", CurrentValue: NO(2000), Date: mustDate("2024-01-01")},
		{Type: Crypto, Symbol: "BTC", Name: "Bitcoin", CurrentValue: NO(500), Date: mustDate("2024-01-01")},
	}
	got := Analyze(KindInvestment, investments, Query{Category: string(Stock)}, today)
	if got.Count != 1 || !got.Total.Equal(NO(2000)) || !got.Share.Equal(80) {
		t.Errorf("investment register = %d items, total %v, share %v, want 1, 2000, 80%%", got.Count, got.Total.Decimal(), got.Share)
	}
}

func TestParseTimeRange(t *testing.T) {
	testCases := []struct {
		in      string
		want    TimeRange
		wantErr bool
	}{
		{in: "", want: AllTime},
		{in: "All", want: AllTime},
		{in: "today", want: PastDay},
		{in: "Week", want: PastWeek},
		{in: "month", want: PastMonth},
		{in: "YEAR", want: PastYear},
		{in: "decade", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseTimeRange(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseTimeRange(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseTimeRange(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

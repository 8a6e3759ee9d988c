package ledger

import (
	"testing"

	"github.com/etnz/ledger/date"
)

func TestBuildSeries_Keys(t *testing.T) {
	testCases := []struct {
		name      string
		g         Granularity
		ref       string
		wantLen   int
		wantFirst string
		wantLast  string
	}{
		{name: "months from a leap day", g: Month, ref: "2024-02-29", wantLen: 12, wantFirst: "2023-03", wantLast: "2024-02"},
		{name: "months from a 31st", g: Month, ref: "2024-03-31", wantLen: 12, wantFirst: "2023-04", wantLast: "2024-03"},
		{name: "days", g: Day, ref: "2024-02-29", wantLen: 30, wantFirst: "2024-01-31", wantLast: "2024-02-29"},
		{name: "weeks from a sunday", g: Week, ref: "2024-03-03", wantLen: 12, wantFirst: "2023-12-11", wantLast: "2024-02-26"},
		{name: "weeks from a monday", g: Week, ref: "2024-03-04", wantLen: 12, wantFirst: "2023-12-18", wantLast: "2024-03-04"},
		{name: "years", g: Year, ref: "2024-02-29", wantLen: 5, wantFirst: "2020", wantLast: "2024"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := BuildSeries(nil, nil, tc.g, mustDate(tc.ref))
			if len(got) != tc.wantLen {
				t.Fatalf("BuildSeries() returned %d buckets, want %d", len(got), tc.wantLen)
			}
			if got[0].Key != tc.wantFirst {
				t.Errorf("first key = %q, want %q", got[0].Key, tc.wantFirst)
			}
			if last := got[len(got)-1].Key; last != tc.wantLast {
				t.Errorf("last key = %q, want %q", last, tc.wantLast)
			}
			for i := 1; i < len(got); i++ {
				if !got[i-1].Range.To.Before(got[i].Range.From) {
					t.Errorf("bucket %d %v is not before bucket %d %v", i-1, got[i-1].Range, i, got[i].Range)
				}
				if next := got[i-1].Range.To.Add(1); next != got[i].Range.From {
					t.Errorf("bucket %d starts on %v, want %v (contiguous)", i, got[i].Range.From, next)
				}
			}
		})
	}
}

func TestBuildSeries_Conservation(t *testing.T) {
	incomes := []Income{
		income("2023-03-01", "Chase", 100),
		income("2023-07-15", "Chase", 250.25),
		income("2024-02-29", "Chase", 1000),
		income("2024-02-01", "Savings", 10),
	}
	expenses := []Expense{
		expense("2023-12-31", "Chase", 80),
		expense("2024-02-10", "Chase", 20.5),
	}

	got := BuildSeries(incomes, expenses, Month, mustDate("2024-02-29"))

	var totalIncome, totalExpense Money
	for _, b := range got {
		totalIncome = totalIncome.Add(b.Income)
		totalExpense = totalExpense.Add(b.Expense)
		if net := b.Income.Sub(b.Expense); !b.Net.Equal(net) {
			t.Errorf("bucket %s net = %v, want %v", b.Key, b.Net.Decimal(), net.Decimal())
		}
	}
	if want := NO(1360.25); !totalIncome.Equal(want) {
		t.Errorf("total income = %v, want %v", totalIncome.Decimal(), want.Decimal())
	}
	if want := NO(100.5); !totalExpense.Equal(want) {
		t.Errorf("total expense = %v, want %v", totalExpense.Decimal(), want.Decimal())
	}

	last := got[len(got)-1]
	if !last.Income.Equal(NO(1010)) || !last.Expense.Equal(NO(20.5)) || !last.Net.Equal(NO(989.5)) {
		t.Errorf("last bucket = %v/%v/%v, want 1010/20.5/989.5", last.Income.Decimal(), last.Expense.Decimal(), last.Net.Decimal())
	}
}

func TestBuildSeries_Exclusions(t *testing.T) {
	incomes := []Income{
		income("2024-03-01", "Chase", 1), // after the reference day
		income("2024-02-29", "Chase", 2), // on the reference day
		income("2023-02-28", "Chase", 4), // before the window
		{PaymentMethod: "Chase", NetAmount: NO(8)},
	}
	got := BuildSeries(incomes, nil, Month, mustDate("2024-02-29"))

	var total Money
	for _, b := range got {
		total = total.Add(b.Income)
	}
	if !total.Equal(NO(2)) {
		t.Errorf("total income = %v, want 2", total.Decimal())
	}
}

func TestBuildSeries_Labels(t *testing.T) {
	testCases := []struct {
		g    Granularity
		ref  string
		want string
	}{
		{g: Day, ref: "2024-02-29", want: "Feb 29"},
		{g: Week, ref: "2024-02-29", want: "W4 Feb"},
		{g: Week, ref: "2024-03-03", want: "W4 Feb"},
		{g: Week, ref: "2024-03-04", want: "W1 Mar"},
		{g: Month, ref: "2024-02-29", want: "Feb 24"},
		{g: Year, ref: "2024-02-29", want: "2024"},
	}
	for _, tc := range testCases {
		t.Run(tc.g.String()+" "+tc.ref, func(t *testing.T) {
			got := BuildSeries(nil, nil, tc.g, mustDate(tc.ref))
			if label := got[len(got)-1].Label; label != tc.want {
				t.Errorf("label = %q, want %q", label, tc.want)
			}
		})
	}
}

func TestBuildSeries_PanicsOnUnknownGranularity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("BuildSeries() did not panic on an unknown granularity")
		}
	}()
	BuildSeries(nil, nil, Granularity(42), date.New(2024, 2, 29))
}

func TestBuildWindow_PanicsOnEmptyWindow(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("BuildWindow() did not panic on a negative bucket count")
		}
	}()
	BuildWindow(nil, nil, Month, date.New(2024, 2, 29), -1)
}

func TestParseGranularity(t *testing.T) {
	testCases := []struct {
		in      string
		want    Granularity
		wantErr bool
	}{
		{in: "days", want: Day},
		{in: "Week", want: Week},
		{in: " monthly ", want: Month},
		{in: "years", want: Year},
		{in: "quarter", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseGranularity(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseGranularity(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseGranularity(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

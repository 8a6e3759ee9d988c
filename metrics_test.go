package ledger

import "testing"

func TestSummarize(t *testing.T) {
	l := &Ledger{
		Income:   []Income{{NetAmount: NO(4000)}, {NetAmount: NO(1000)}},
		Expenses: []Expense{{Amount: NO(1500)}, {Amount: NO(500)}},
		Loans: []Loan{
			{Type: Lent, Principal: NO(1000), Outstanding: NO(600)},
			{Type: Borrowed, Principal: NO(2000), Outstanding: NO(2000)},
		},
		Investments: []Investment{{CurrentValue: NO(3000)}, {CurrentValue: NO(2000)}},
	}

	m := Summarize(l)

	money := []struct {
		name string
		got  Money
		want float64
	}{
		{"TotalIncome", m.TotalIncome, 5000},
		{"TotalExpense", m.TotalExpense, 2000},
		{"NetSavings", m.NetSavings, 3000},
		{"OutstandingLoans", m.OutstandingLoans, 600},
		{"TotalInvested", m.TotalInvested, 5000},
	}
	for _, tc := range money {
		if !tc.got.Equal(NO(tc.want)) {
			t.Errorf("%s = %v, want %v", tc.name, tc.got.Decimal(), tc.want)
		}
	}
	if !m.SavingsRate.Equal(60) {
		t.Errorf("SavingsRate = %v, want 60%%", m.SavingsRate)
	}
	if !m.LiquidityRatio.Equal(50) {
		t.Errorf("LiquidityRatio = %v, want 50%%", m.LiquidityRatio)
	}
	if m.HighLiquidity() {
		t.Errorf("HighLiquidity() = true, want false at 50%%")
	}

	allocation := m.Allocation()
	wantNames := []string{"Savings & Cash", "Investments", "Receivables"}
	var total Percent
	for i, s := range allocation {
		if s.Name != wantNames[i] {
			t.Errorf("Allocation()[%d] = %q, want %q", i, s.Name, wantNames[i])
		}
		total += s.Share
	}
	if !total.Equal(100) {
		t.Errorf("Allocation() shares add up to %v, want 100%%", total)
	}
}

func TestSummarize_Empty(t *testing.T) {
	m := Summarize(NewLedger())
	if m.SavingsRate != 0 || m.LiquidityRatio != 0 {
		t.Errorf("Summarize() rates = %v, %v, want 0, 0", m.SavingsRate, m.LiquidityRatio)
	}
	for _, s := range m.Allocation() {
		if s.Share != 0 {
			t.Errorf("Allocation() %q share = %v, want 0", s.Name, s.Share)
		}
	}
}

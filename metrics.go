package ledger

// Metrics are the headline figures of a ledger.
type Metrics struct {
	TotalIncome      Money   // Sum of the income net amounts.
	TotalExpense     Money   // Sum of the expense amounts.
	NetSavings       Money   // TotalIncome - TotalExpense.
	SavingsRate      Percent // NetSavings relative to TotalIncome, 0 without income.
	OutstandingLoans Money   // Money lent and not yet recovered.
	TotalInvested    Money   // Current value of all the investments.
	LiquidityRatio   Percent // Share of cash in cash plus investments, 0 when both are zero.
}

// Slice is one part of the wealth allocation.
type Slice struct {
	Name  string
	Value Money
	Share Percent
}

// Summarize computes the headline metrics of a ledger.
//
// Cash is approximated by the total income received.
func Summarize(l *Ledger) Metrics {
	var m Metrics
	for _, in := range l.Income {
		m.TotalIncome = m.TotalIncome.Add(in.NetAmount)
	}
	for _, ex := range l.Expenses {
		m.TotalExpense = m.TotalExpense.Add(ex.Amount)
	}
	m.NetSavings = m.TotalIncome.Sub(m.TotalExpense)
	if m.TotalIncome.IsPositive() {
		m.SavingsRate = percentOf(m.NetSavings.Decimal(), m.TotalIncome.Decimal())
	}
	for _, loan := range l.Loans {
		if loan.Type == Lent {
			m.OutstandingLoans = m.OutstandingLoans.Add(loan.Outstanding)
		}
	}
	for _, inv := range l.Investments {
		m.TotalInvested = m.TotalInvested.Add(inv.CurrentValue)
	}
	assets := m.TotalInvested.Add(m.TotalIncome)
	if assets.IsPositive() {
		m.LiquidityRatio = percentOf(m.TotalIncome.Decimal(), assets.Decimal())
	}
	return m
}

// HighLiquidity reports whether more than half of the wealth sits in cash.
func (m Metrics) HighLiquidity() bool { return m.LiquidityRatio > 50 }

// Allocation splits the wealth into cash, investments and receivables.
func (m Metrics) Allocation() []Slice {
	parts := []Slice{
		{Name: "Savings & Cash", Value: m.TotalIncome},
		{Name: "Investments", Value: m.TotalInvested},
		{Name: "Receivables", Value: m.OutstandingLoans},
	}
	total := sumOf(m.TotalIncome, m.TotalInvested, m.OutstandingLoans)
	for i := range parts {
		parts[i].Share = percentOf(parts[i].Value.Decimal(), total.Decimal())
	}
	return parts
}

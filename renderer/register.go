package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/ledger"
)

// registerView is the data of a register report. Rows are already formatted.
type registerView struct {
	Title     string
	Filters   []string
	Columns   []string
	Align     []string
	Rows      [][]string
	Count     int
	Total     ledger.Money
	All       ledger.Money
	Share     ledger.Percent
	Favorable bool
}

var titles = map[ledger.Kind]string{
	ledger.KindIncome:       "Income",
	ledger.KindExpense:      "Expenses",
	ledger.KindSubscription: "Subscriptions",
	ledger.KindLoan:         "Loans",
	ledger.KindInvestment:   "Investments",
}

// columns of each register kind, with the markdown alignment of each column.
var columns = map[ledger.Kind][][2]string{
	ledger.KindIncome:       {{"Date", ":--"}, {"Source", ":--"}, {"Category", ":--"}, {"Account", ":--"}, {"Net Amount", "--:"}},
	ledger.KindExpense:      {{"Date", ":--"}, {"Vendor", ":--"}, {"Category", ":--"}, {"Account", ":--"}, {"Amount", "--:"}},
	ledger.KindSubscription: {{"Service", ":--"}, {"Category", ":--"}, {"Billing", ":--"}, {"Renewal", ":--"}, {"Status", ":--"}, {"Monthly Cost", "--:"}},
	ledger.KindLoan:         {{"Counterparty", ":--"}, {"Type", ":--"}, {"Issued", ":--"}, {"Status", ":--"}, {"Principal", "--:"}, {"Outstanding", "--:"}},
	ledger.KindInvestment:   {{"Asset", ":--"}, {"Type", ":--"}, {"Platform", ":--"}, {"Value", "--:"}, {"ROI", "--:"}},
}

// row formats one entry according to its kind.
func row(e ledger.Entry) []string {
	switch e := e.(type) {
	case ledger.Income:
		return []string{dateCell(e.Date), cell(e.Source), cell(e.Category), cell(e.PaymentMethod), e.NetAmount.String()}
	case ledger.Expense:
		return []string{dateCell(e.Date), cell(e.Vendor), cell(e.Category), cell(e.PaymentMethod), e.Amount.String()}
	case ledger.Subscription:
		return []string{cell(e.ServiceName), cell(e.Category), cell(e.BillingFrequency), dateCell(e.RenewalDate), cell(e.Status), e.MonthlyCost.String()}
	case ledger.Loan:
		return []string{cell(e.Counterparty), string(e.Type), dateCell(e.DateIssued), cell(e.Status), e.Principal.String(), e.Outstanding.String()}
	case ledger.Investment:
		return []string{cell(e.Ticker()), string(e.Type), cell(e.Platform), e.CurrentValue.String(), e.ROI().SignedString()}
	default:
		panic(fmt.Sprintf("unknown entry type %T", e))
	}
}

// Register renders a register with the filters that produced it.
func Register[T ledger.Entry](r ledger.Register[T], q ledger.Query) string {
	view := registerView{
		Title:     titles[r.Kind],
		Count:     r.Count,
		Total:     r.Total,
		All:       r.All,
		Share:     r.Share,
		Favorable: r.Favorable,
	}
	if q.Search != "" {
		view.Filters = append(view.Filters, fmt.Sprintf("matching %q", q.Search))
	}
	if q.Category != "" && q.Category != ledger.AllCategories {
		view.Filters = append(view.Filters, fmt.Sprintf("in %s", q.Category))
	}
	switch q.Range {
	case ledger.AllTime:
	case ledger.PastDay:
		view.Filters = append(view.Filters, "today")
	default:
		view.Filters = append(view.Filters, "over the past "+strings.ToLower(q.Range.String()))
	}
	for _, c := range columns[r.Kind] {
		view.Columns = append(view.Columns, c[0])
		view.Align = append(view.Align, c[1])
	}
	for _, item := range r.Items {
		view.Rows = append(view.Rows, row(item))
	}
	return renderTemplate("register", "register.md", nil, view)
}

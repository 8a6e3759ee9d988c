package ledger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

const snapshot = `{
  "accounts": [
    {"id": "ACC-1", "name": "Chase", "institution": "JPMorgan", "type": "Checking", "openingBalance": 1000, "targetBalance": 5000, "currency": "USD"}
  ],
  "income": [
    {"id": "TRX-1", "date": "2024-02-01", "source": "Acme", "category": "Salary", "paymentMethod": "Chase", "grossAmount": 600, "tax": 100, "netAmount": 500}
  ],
  "expenses": [
    {"id": "TRX-2", "date": "2024-02-03", "category": "Food", "vendor": "Market", "paymentMethod": "Chase", "amount": "200.50", "isFixed": false, "isEssential": true},
    {"id": "TRX-3", "date": "", "category": "Food", "vendor": "Kiosk", "paymentMethod": "Cash", "amount": 3}
  ],
  "subscriptions": [
    {"id": "SUB-1", "serviceName": "Netflix", "category": "Entertainment", "startDate": "2023-01-15", "billingFrequency": "Monthly", "monthlyCost": 15.99, "paymentMethod": "Chase", "renewalDate": "2024-03-15", "autoRenew": true, "status": "Active"}
  ],
  "loans": [
    {"id": "LN-1", "counterparty": "Bob", "type": "Lent", "principal": 500, "dateIssued": "2024-01-10", "expectedReturn": "2024-06-10", "recovered": 100, "outstanding": 400, "status": "Partially Repaid"}
  ],
  "investments": [
    {"id": "INV-1", "date": "2023-06-01", "type": "Stock", "symbol": "AAPL", "name": "Apple", "platform": "Robinhood", "quantity": 10, "unitPrice": 150, "commission": 0, "totalCost": 1500, "currentValue": 1800, "lastUpdated": null}
  ]
}`

func TestDecodeLedger(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader(snapshot))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}

	if len(l.Accounts) != 1 || len(l.Income) != 1 || len(l.Expenses) != 2 || len(l.Subscriptions) != 1 || len(l.Loans) != 1 || len(l.Investments) != 1 {
		t.Fatalf("DecodeLedger() = %+v, want one record of each kind and two expenses", l)
	}
	if len(l.Categories) == 0 {
		t.Errorf("DecodeLedger() did not set the default categories")
	}
	if acc := l.Accounts[0]; acc.TargetBalance == nil || !acc.TargetBalance.Equal(NO(5000)) {
		t.Errorf("TargetBalance = %v, want 5000", acc.TargetBalance)
	}
	if !l.Expenses[0].Amount.Equal(NO(200.5)) {
		t.Errorf("Amount = %v, want 200.5", l.Expenses[0].Amount.Decimal())
	}
	if !l.Expenses[1].Date.IsZero() {
		t.Errorf("Date = %v, want the zero date", l.Expenses[1].Date)
	}
	if !l.Investments[0].LastUpdated.IsZero() {
		t.Errorf("LastUpdated = %v, want the zero date", l.Investments[0].LastUpdated)
	}

	balances := l.Balances()
	if !balances[0].CurrentBalance.Equal(USD(1299.5)) {
		t.Errorf("Balances() = %v, want 1299.5", balances[0].CurrentBalance.Decimal())
	}
	if got := l.Unattributed(); len(got) != 1 || got[0] != "Cash" {
		t.Errorf("Unattributed() = %v, want [Cash]", got)
	}
	if acc, ok := l.Account("Chase"); !ok || acc.ID != "ACC-1" {
		t.Errorf("Account(Chase) = %v, %v", acc, ok)
	}
}

func TestDecodeLedger_Errors(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{name: "not json", data: "accounts"},
		{name: "date is not a string", data: `{"income": [{"date": 20240201}]}`},
		{name: "invalid amount", data: `{"expenses": [{"amount": "ten"}]}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeLedger(strings.NewReader(tc.data)); err == nil {
				t.Errorf("DecodeLedger() error = nil, want an error")
			}
		})
	}
}

func TestDecodeLedger_MalformedDate(t *testing.T) {
	data := `{
  "income": [
    {"id": "TRX-1", "date": "2024-02-01", "category": "Salary", "paymentMethod": "Chase", "netAmount": 100},
    {"id": "TRX-2", "date": "garbage", "category": "Salary", "paymentMethod": "Chase", "netAmount": 50}
  ],
  "accounts": [{"id": "ACC-1", "name": "Chase", "type": "Checking", "openingBalance": 0}]
}`
	l, err := DecodeLedger(strings.NewReader(data))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if len(l.Income) != 2 {
		t.Fatalf("DecodeLedger() income = %d entries, want 2", len(l.Income))
	}
	if !l.Income[1].Date.IsZero() {
		t.Errorf("malformed date decoded to %v, want the zero date", l.Income[1].Date)
	}
	if got := l.Undated(); len(got) != 1 || got[0] != "TRX-2" {
		t.Errorf("Undated() = %v, want [TRX-2]", got)
	}

	series := l.Series(Month, mustDate("2024-02-29"))
	last := series[len(series)-1]
	if !last.Income.Equal(NO(100)) {
		t.Errorf("last bucket income = %v, want 100", last.Income.Decimal())
	}
	var total Money
	for _, b := range series {
		total = total.Add(b.Income)
	}
	if !total.Equal(NO(100)) {
		t.Errorf("series income = %v, want 100, the undated entry is skipped", total.Decimal())
	}

	// Balances still count the undated entry.
	if got := l.Balances()[0].CurrentBalance; !got.Equal(NO(150)) {
		t.Errorf("balance = %v, want 150", got.Decimal())
	}
}

func TestDecodeLedger_Empty(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader(""))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if len(l.Accounts) != 0 || len(l.Categories) == 0 {
		t.Errorf("DecodeLedger() = %+v, want an empty ledger with default categories", l)
	}
}

func TestEncodeLedger(t *testing.T) {
	l, err := DecodeLedger(strings.NewReader(snapshot))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}

	// field names are kept so that the snapshot can be read by other tools.
	var raw map[string][]map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("EncodeLedger() wrote invalid json: %v", err)
	}
	for _, key := range []string{"paymentMethod", "netAmount", "grossAmount"} {
		if _, ok := raw["income"][0][key]; !ok {
			t.Errorf("income has no %q field: %v", key, raw["income"][0])
		}
	}
	if got := raw["expenses"][0]["amount"]; got != 200.5 {
		t.Errorf("amount = %v, want the number 200.5", got)
	}
	if got := raw["investments"][0]["currentValue"]; got != float64(1800) {
		t.Errorf("currentValue = %v, want 1800", got)
	}

	again, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger() of the encoded ledger error = %v", err)
	}
	if again.Income[0].Date != l.Income[0].Date || !again.Loans[0].Outstanding.Equal(l.Loans[0].Outstanding) {
		t.Errorf("decoded ledger differs: %+v != %+v", again, l)
	}
}

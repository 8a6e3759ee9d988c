package ledger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/ledger/date"
)

// AssetType is the class of an investment.
type AssetType string

const (
	Stock      AssetType = "Stock"
	Bond       AssetType = "Bond"
	MutualFund AssetType = "Mutual Fund"
	ETF        AssetType = "ETF"
	Crypto     AssetType = "Crypto"
	RealEstate AssetType = "Real Estate"
	OtherAsset AssetType = "Other"
)

// AssetTypes lists the known asset types, in display order.
var AssetTypes = []AssetType{Stock, Bond, MutualFund, ETF, Crypto, RealEstate, OtherAsset}

// Investment is a position bought once and valued over time.
//
// TotalCost is computed when the investment is created and never changes.
// CurrentValue only changes when market quotes are merged.
type Investment struct {
	ID           string    `json:"id"`
	Date         date.Date `json:"date"`
	Type         AssetType `json:"type"`
	Symbol       string    `json:"symbol,omitempty"`
	Name         string    `json:"name"`
	Platform     string    `json:"platform"`
	Quantity     Quantity  `json:"quantity"`
	UnitPrice    Money     `json:"unitPrice"`
	Commission   Money     `json:"commission"`
	TotalCost    Money     `json:"totalCost"`
	CurrentValue Money     `json:"currentValue"`
	LastUpdated  date.Date `json:"lastUpdated"` // zero when never synced.
	Notes        string    `json:"notes,omitempty"`
}

// NewInvestment creates an investment and freezes its cost basis to
// quantity × unitPrice + commission. The current value starts at that cost.
func NewInvestment(on date.Date, assetType AssetType, symbol, name, platform string, quantity Quantity, unitPrice, commission Money) (Investment, error) {
	var errs error
	if strings.TrimSpace(name) == "" {
		errs = errors.Join(errs, errors.New("asset name is required"))
	}
	if !quantity.IsPositive() {
		errs = errors.Join(errs, fmt.Errorf("quantity must be a positive number, got %s", quantity))
	}
	if !unitPrice.IsPositive() {
		errs = errors.Join(errs, fmt.Errorf("purchase price must be a positive number, got %s", unitPrice.Decimal()))
	}
	if commission.IsNegative() {
		errs = errors.Join(errs, fmt.Errorf("commission cannot be negative, got %s", commission.Decimal()))
	}
	if errs != nil {
		return Investment{}, fmt.Errorf("invalid investment: %w", errs)
	}

	cost := unitPrice.Mul(quantity).Add(commission)
	return Investment{
		ID:           newID("INV"),
		Date:         on,
		Type:         assetType,
		Symbol:       strings.ToUpper(strings.TrimSpace(symbol)),
		Name:         strings.TrimSpace(name),
		Platform:     platform,
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		Commission:   commission,
		TotalCost:    cost,
		CurrentValue: cost,
	}, nil
}

func (t Investment) What() Kind      { return KindInvestment }
func (t Investment) When() date.Date { return t.Date }
func (t Investment) Tag() string     { return string(t.Type) }
func (t Investment) Value() Money    { return t.CurrentValue }
func (t Investment) Text() string {
	return joinText(t.ID, t.Date.String(), string(t.Type), t.Symbol, t.Name, t.Platform, t.Quantity.String(),
		t.UnitPrice.Decimal().String(), t.Commission.Decimal().String(), t.TotalCost.Decimal().String(),
		t.CurrentValue.Decimal().String(), t.LastUpdated.String(), t.Notes)
}

// Gain returns the unrealized gain (or loss) of the investment.
func (t Investment) Gain() Money { return t.CurrentValue.Sub(t.TotalCost) }

// ROI returns the return on investment as a percentage of the cost basis.
//
// An investment without cost basis has an ROI of 0.
func (t Investment) ROI() Percent {
	if !t.TotalCost.IsPositive() {
		return 0
	}
	return percentOf(t.Gain().Decimal(), t.TotalCost.Decimal())
}

// Ticker returns the name used to look the investment up in a quote feed.
func (t Investment) Ticker() string {
	if t.Symbol != "" {
		return t.Symbol
	}
	return t.Name
}

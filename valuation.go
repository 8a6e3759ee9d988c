package ledger

import (
	"strings"

	"github.com/etnz/ledger/date"
)

// Quote is the market price of one unit of an asset.
type Quote struct {
	Symbol string `json:"symbol"`
	Price  Money  `json:"price"`
}

// valid reports whether the quote can be used to value an asset.
func (q Quote) valid() bool {
	return strings.TrimSpace(q.Symbol) != "" && q.Price.IsPositive()
}

// quoteIndex looks quotes up by case insensitive symbol.
type quoteIndex map[string]Quote

// newQuoteIndex indexes valid quotes. When a symbol is quoted twice, the first quote wins.
func newQuoteIndex(quotes []Quote) quoteIndex {
	index := make(quoteIndex, len(quotes))
	for _, q := range quotes {
		if !q.valid() {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(q.Symbol))
		if _, exists := index[key]; !exists {
			index[key] = q
		}
	}
	return index
}

// lookup finds the quote for an investment: by symbol first, then by name.
func (index quoteIndex) lookup(inv Investment) (Quote, bool) {
	if inv.Symbol != "" {
		if q, ok := index[strings.ToLower(strings.TrimSpace(inv.Symbol))]; ok {
			return q, true
		}
	}
	q, ok := index[strings.ToLower(strings.TrimSpace(inv.Name))]
	return q, ok
}

// MergeQuotes values investments with market quotes.
//
// Each investment matching a quote gets a CurrentValue of Quantity × Price and
// is stamped as updated on 'on'. Investments without a matching quote are
// returned unchanged, and so are all of them when quotes is empty.
// Quotes with an empty symbol or a non positive price are ignored.
// The input slice is never modified.
func MergeQuotes(investments []Investment, quotes []Quote, on date.Date) []Investment {
	index := newQuoteIndex(quotes)
	merged := make([]Investment, len(investments))
	for i, inv := range investments {
		if q, ok := index.lookup(inv); ok {
			inv.CurrentValue = q.Price.Mul(inv.Quantity)
			inv.LastUpdated = on
		}
		merged[i] = inv
	}
	return merged
}

// Tickers returns the distinct names to request from a quote feed, in order.
func Tickers(investments []Investment) []string {
	seen := make(map[string]bool)
	var tickers []string
	for _, inv := range investments {
		t := strings.TrimSpace(inv.Ticker())
		if t == "" || seen[strings.ToLower(t)] {
			continue
		}
		seen[strings.ToLower(t)] = true
		tickers = append(tickers, t)
	}
	return tickers
}

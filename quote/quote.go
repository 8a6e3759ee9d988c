// Package quote implements sources of market quotes used to value investments.
//
// Every source implements ledger.QuoteSource. Gemini asks a generative model
// grounded with Google Search, HTTP queries a JSON price API, and File reads
// quotes from a local JSON file.
package quote

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/ledger"
)

// Decode reads quotes from a JSON document.
//
// It accepts an array of {"symbol": "AAPL", "price": 185.2} objects, or an
// object mapping symbols to prices. Prices can be numbers or numeric strings.
// Markdown code fences around the document are ignored, and an empty document
// holds no quote.
func Decode(data []byte) ([]ledger.Quote, error) {
	data = trimFences(data)
	if len(data) == 0 {
		return nil, nil
	}

	switch data[0] {
	case '[':
		var quotes []ledger.Quote
		if err := json.Unmarshal(data, &quotes); err != nil {
			return nil, fmt.Errorf("malformed quote list: %w", err)
		}
		return quotes, nil
	case '{':
		var prices map[string]ledger.Money
		if err := json.Unmarshal(data, &prices); err != nil {
			return nil, fmt.Errorf("malformed quote map: %w", err)
		}
		quotes := make([]ledger.Quote, 0, len(prices))
		for symbol, price := range prices {
			quotes = append(quotes, ledger.Quote{Symbol: symbol, Price: price})
		}
		slices.SortFunc(quotes, func(a, b ledger.Quote) int { return strings.Compare(a.Symbol, b.Symbol) })
		return quotes, nil
	default:
		return nil, fmt.Errorf("malformed quotes: want a JSON array or object, got %q", abbrev(data))
	}
}

// trimFences removes blanks and a surrounding ```json fence.
func trimFences(data []byte) []byte {
	data = bytes.TrimSpace(data)
	if !bytes.HasPrefix(data, []byte("```")) {
		return data
	}
	data = bytes.TrimPrefix(data, []byte("```"))
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		data = data[i+1:] // language tag
	} else {
		data = nil
	}
	data = bytes.TrimSpace(data)
	data = bytes.TrimSuffix(data, []byte("```"))
	return bytes.TrimSpace(data)
}

func abbrev(data []byte) string {
	s := string(data)
	if len(s) > 40 {
		s = s[:40] + "..."
	}
	return strings.ToValidUTF8(s, "?")
}

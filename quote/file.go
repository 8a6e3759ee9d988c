package quote

import (
	"context"
	"fmt"
	"os"

	"github.com/etnz/ledger"
)

// File reads quotes from a JSON file, in any format accepted by Decode.
//
// The file is read on every call, so it can be edited between syncs.
type File string

// Quotes implements ledger.QuoteSource.
func (f File) Quotes(ctx context.Context, symbols []string) ([]ledger.Quote, error) {
	data, err := os.ReadFile(string(f))
	if err != nil {
		return nil, fmt.Errorf("cannot read quotes: %w", err)
	}
	quotes, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("cannot read quotes from %q: %w", string(f), err)
	}
	return quotes, nil
}

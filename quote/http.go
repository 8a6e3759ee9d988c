package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/ledger"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/time/rate"
)

// SymbolPlaceholder is replaced by the escaped symbol in an HTTP source URL.
const SymbolPlaceholder = "{symbol}"

// HTTP queries a JSON price API, one request per symbol.
//
// URL contains SymbolPlaceholder, and Path is the JSONPath of the price in the
// response, for instance "$.chart.result[0].meta.regularMarketPrice".
// Symbols unknown to the API (404) are skipped.
type HTTP struct {
	URL     string
	Path    string
	Client  *http.Client
	Limiter *rate.Limiter
	Log     zerolog.Logger
}

// NewHTTP creates an HTTP source sending at most perSecond requests per second.
// A non positive perSecond disables throttling.
func NewHTTP(urlTemplate, path string, perSecond float64) (*HTTP, error) {
	if !strings.Contains(urlTemplate, SymbolPlaceholder) {
		return nil, fmt.Errorf("quote url %q has no %s placeholder", urlTemplate, SymbolPlaceholder)
	}
	if path == "" {
		return nil, errors.New("quote price path is required")
	}
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &HTTP{
		URL:     urlTemplate,
		Path:    path,
		Client:  new(http.Client),
		Limiter: rate.NewLimiter(limit, 1),
		Log:     zerolog.Nop(),
	}, nil
}

// errNotFound is returned for symbols unknown to the API.
var errNotFound = errors.New("symbol not found")

// Quotes implements ledger.QuoteSource.
func (h *HTTP) Quotes(ctx context.Context, symbols []string) ([]ledger.Quote, error) {
	var quotes []ledger.Quote
	for _, symbol := range symbols {
		if h.Limiter != nil {
			if err := h.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}
		price, err := h.price(ctx, symbol)
		if errors.Is(err, errNotFound) {
			h.Log.Warn().Str("symbol", symbol).Msg("no quote")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("cannot get quote for %q: %w", symbol, err)
		}
		quotes = append(quotes, ledger.Quote{Symbol: symbol, Price: ledger.M(price, "")})
	}
	return quotes, nil
}

// price fetches the price of one symbol.
func (h *HTTP) price(ctx context.Context, symbol string) (decimal.Decimal, error) {
	addr := strings.ReplaceAll(h.URL, SymbolPlaceholder, url.PathEscape(symbol))
	var jobj any
	if err := h.jget(ctx, addr, &jobj); err != nil {
		return decimal.Zero, err
	}
	jval, err := jsonpath.Get(h.Path, jobj)
	if err != nil {
		return decimal.Zero, fmt.Errorf("cannot find price at %q: %w", h.Path, err)
	}
	return asDecimal(jval)
}

// jget performs an HTTP GET request and unmarshals the JSON response into data.
func (h *HTTP) jget(ctx context.Context, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	h.Log.Debug().Str("method", req.Method).Str("host", req.URL.Host).Str("path", req.URL.Path).Int("status", resp.StatusCode).Msg("http")
	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	dec := json.NewDecoder(&buf)
	dec.UseNumber()
	return dec.Decode(data)
}

// asDecimal converts a JSON value to a decimal price.
func asDecimal(jval any) (decimal.Decimal, error) {
	switch v := jval.(type) {
	case json.Number:
		return decimal.NewFromString(v.String())
	case float64:
		return decimal.NewFromFloat(v), nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		if err != nil {
			return decimal.Zero, fmt.Errorf("price %q is not a number", v)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("price has unexpected type %T", jval)
	}
}

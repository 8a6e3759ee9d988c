package quote

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/ledger"
	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// generator returns the text answer to a prompt.
type generator func(ctx context.Context, prompt string) (string, error)

// Gemini asks a Gemini model, grounded with Google Search, for current prices.
type Gemini struct {
	Model    string
	Log      zerolog.Logger
	generate generator
}

// NewGemini creates a Gemini source using the API key (GEMINI_API_KEY when empty).
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create Gemini client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	g := &Gemini{Model: model, Log: zerolog.Nop()}
	g.generate = func(ctx context.Context, prompt string) (string, error) {
		resp, err := client.Models.GenerateContent(ctx, g.Model, genai.Text(prompt), &genai.GenerateContentConfig{
			Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		})
		if err != nil {
			return "", err
		}
		return resp.Text(), nil
	}
	return g, nil
}

// prompt asks for a raw JSON array of prices.
func prompt(symbols []string) string {
	return fmt.Sprintf(`Return a raw JSON array of current market prices for these assets: %s.
Format: [{"symbol": "AAPL", "price": 185.20}, ...].
Use the symbol or name exactly as given. Only return the JSON array, no other text.`, strings.Join(symbols, ", "))
}

// Quotes implements ledger.QuoteSource.
func (g *Gemini) Quotes(ctx context.Context, symbols []string) ([]ledger.Quote, error) {
	if len(symbols) == 0 {
		return nil, nil
	}
	if g.generate == nil {
		return nil, errors.New("gemini source is not initialized, use NewGemini")
	}
	g.Log.Debug().Str("model", g.Model).Strs("symbols", symbols).Msg("asking gemini for prices")
	text, err := g.generate(ctx, prompt(symbols))
	if err != nil {
		return nil, fmt.Errorf("gemini market data fetch failed: %w", err)
	}
	quotes, err := Decode([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("gemini answer: %w", err)
	}
	g.Log.Debug().Int("quotes", len(quotes)).Msg("gemini answered")
	return quotes, nil
}

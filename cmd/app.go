// Package cmd implements the CLI application to review a household ledger.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/ledger"
	"github.com/etnz/ledger/quote"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// Commands lists the subcommands, grouped by topic.
var Commands = []struct {
	Command subcommands.Command
	Group   string
}{
	{&summaryCmd{}, "reports"},
	{&accountsCmd{}, "reports"},
	{&cashflowCmd{}, "reports"},
	{&registerCmd{}, "reports"},
	{&investmentsCmd{}, "reports"},
	{&categoriesCmd{}, "reports"},
	{&syncCmd{}, "market"},
	{&addIncomeCmd{}, "entries"},
	{&addExpenseCmd{}, "entries"},
	{&addAccountCmd{}, "entries"},
	{&addInvestmentCmd{}, "entries"},
	{&addCategoryCmd{}, "entries"},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd.Command, cmd.Group)
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	ledgerFile = flag.String("ledger-file", "", "Path to the ledger file (JSON). Defaults to $CFO_LEDGER_FILE, then the config file, then ledger.json.")
	configFile = flag.String("config", "", "Path to the TOML config file. Defaults to $CFO_CONFIG, then the user config dir.")
	currency   = flag.String("currency", "", "Currency used to display amounts. Defaults to $CFO_CURRENCY, then the config file, then USD.")
	verbose    = flag.Bool("v", false, "Log debug messages.")
	raw        = flag.Bool("raw", false, "Print raw markdown instead of rendering it for the terminal.")
)

// loadConfig resolves the configuration: flags over env over file over defaults.
func loadConfig() (*Config, error) {
	path, required := *configFile, true
	if path == "" {
		path = os.Getenv("CFO_CONFIG")
	}
	if path == "" {
		path, required = DefaultConfigPath(), false
	}
	config, err := LoadConfig(path, required)
	if err != nil {
		return nil, err
	}
	if *ledgerFile != "" {
		config.Ledger = *ledgerFile
	}
	if *currency != "" {
		config.Currency = *currency
	}
	if *verbose {
		config.Logging.Level = "debug"
	}
	ledger.DefaultCurrency = config.Currency
	return config, nil
}

// newLogger returns a console logger on stderr at the configured level.
func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.WarnLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// app is the environment shared by all commands.
type app struct {
	config *Config
	log    zerolog.Logger
}

// newApp loads the configuration and creates the logger.
func newApp() (*app, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, err
	}
	return &app{config: config, log: newLogger(config.Logging.Level)}, nil
}

// decodeLedger reads the ledger file. A missing file is an empty ledger.
func (a *app) decodeLedger() (*ledger.Ledger, error) {
	f, err := os.Open(a.config.Ledger)
	if errors.Is(err, fs.ErrNotExist) {
		a.log.Warn().Str("file", a.config.Ledger).Msg("ledger does not exist, using an empty ledger instead")
		return ledger.NewLedger(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	l, err := ledger.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", a.config.Ledger, err)
	}
	if undated := l.Undated(); len(undated) > 0 {
		a.log.Warn().Strs("ids", undated).Msg("entries without a valid date are left out of the cash flow")
	}
	a.log.Debug().Str("file", a.config.Ledger).Int("accounts", len(l.Accounts)).Int("income", len(l.Income)).
		Int("expenses", len(l.Expenses)).Int("investments", len(l.Investments)).Msg("ledger loaded")
	return l, nil
}

// encodeLedger writes the ledger file, through a temporary file so that it is
// never left half written.
func (a *app) encodeLedger(l *ledger.Ledger) error {
	tmp, err := os.CreateTemp(filepath.Dir(a.config.Ledger), ".ledger-*.json")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if err := ledger.EncodeLedger(tmp, l); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), a.config.Ledger); err != nil {
		return err
	}
	a.log.Debug().Str("file", a.config.Ledger).Msg("ledger saved")
	return nil
}

// quoteSource builds the configured quote source.
func (a *app) quoteSource(ctx context.Context) (ledger.QuoteSource, error) {
	q := a.config.Quotes
	switch q.Source {
	case "gemini":
		g, err := quote.NewGemini(ctx, os.Getenv("GEMINI_API_KEY"), q.Model)
		if err != nil {
			return nil, err
		}
		g.Log = a.log
		return g, nil
	case "http":
		h, err := quote.NewHTTP(q.URL, q.Path, q.Rate)
		if err != nil {
			return nil, err
		}
		h.Log = a.log
		if q.Cache {
			h.Client.Transport = &quote.DailyCache{Log: a.log}
		}
		return h, nil
	case "file":
		if q.File == "" {
			return nil, errors.New("quotes.file is required for the file source")
		}
		return quote.File(q.File), nil
	default:
		return nil, fmt.Errorf("unknown quote source %q, want gemini, http or file", q.Source)
	}
}

// printMarkdown prints markdown rendered for the terminal, or raw with -raw.
func printMarkdown(md string) {
	if *raw {
		fmt.Println(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// fail prints an error and returns the failure status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}

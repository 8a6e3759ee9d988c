package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/etnz/ledger/date"
	"github.com/rs/zerolog"
)

// QuoteSource provides market quotes for a list of symbols or asset names.
type QuoteSource interface {
	Quotes(ctx context.Context, symbols []string) ([]Quote, error)
}

// ErrSyncInProgress is returned when a sync is requested while another one is running.
var ErrSyncInProgress = errors.New("sync already in progress")

// SyncState is the state of a Syncer.
type SyncState int

const (
	Idle SyncState = iota
	Syncing
	Failed
)

func (s SyncState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Syncing:
		return "syncing"
	case Failed:
		return "failed"
	default:
		panic(fmt.Sprintf("unknown sync state %d", s))
	}
}

// Syncer refreshes investment valuations from a QuoteSource.
//
// At most one sync runs at a time. A failed sync leaves investments unchanged.
type Syncer struct {
	source QuoteSource
	log    zerolog.Logger

	mu    sync.Mutex
	state SyncState
	err   error // last sync error
}

// SyncOption configures a Syncer.
type SyncOption func(*Syncer)

// WithLogger sets the logger of a Syncer.
func WithLogger(log zerolog.Logger) SyncOption {
	return func(s *Syncer) { s.log = log }
}

// NewSyncer returns an idle Syncer reading quotes from source.
func NewSyncer(source QuoteSource, opts ...SyncOption) *Syncer {
	s := &Syncer{source: source, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current state and the error of the last failed sync.
func (s *Syncer) State() (SyncState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state, s.err
}

// start moves the Syncer to Syncing, unless it is already syncing.
func (s *Syncer) start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Syncing {
		return ErrSyncInProgress
	}
	s.state, s.err = Syncing, nil
	return nil
}

func (s *Syncer) finish(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state, s.err = Failed, err
		return
	}
	s.state = Idle
}

// Sync fetches quotes for the investments and returns them valued on 'on'.
//
// On error, investments are returned unchanged along with the error.
// When no investment has a symbol or a name, the source is not called.
func (s *Syncer) Sync(ctx context.Context, investments []Investment, on date.Date) ([]Investment, error) {
	if err := s.start(); err != nil {
		s.log.Warn().Msg("sync rejected, another sync is running")
		return investments, err
	}

	tickers := Tickers(investments)
	if len(tickers) == 0 {
		s.log.Debug().Msg("no investment to sync")
		s.finish(nil)
		return investments, nil
	}

	s.log.Info().Strs("symbols", tickers).Msg("fetching quotes")
	quotes, err := s.source.Quotes(ctx, tickers)
	if err != nil {
		err = fmt.Errorf("cannot fetch quotes: %w", err)
		s.log.Error().Err(err).Msg("sync failed")
		s.finish(err)
		return investments, err
	}

	merged := MergeQuotes(investments, quotes, on)
	updated := 0
	for i := range merged {
		if merged[i].LastUpdated == on && investments[i].LastUpdated != on {
			updated++
		}
	}
	s.log.Info().Int("quotes", len(quotes)).Int("updated", updated).Msg("sync done")
	s.finish(nil)
	return merged, nil
}

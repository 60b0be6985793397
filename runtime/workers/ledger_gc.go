package workers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
)

const gcDiscardRatio = 0.5

// LedgerGCWorker reclaims badger value-log space on a fixed interval.
type LedgerGCWorker struct {
	db       *badger.DB
	log      *slog.Logger
	interval time.Duration
}

func NewLedgerGCWorker(db *badger.DB, log *slog.Logger, interval time.Duration) *LedgerGCWorker {
	return &LedgerGCWorker{
		db:       db,
		log:      log,
		interval: interval,
	}
}

func (w *LedgerGCWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := w.collect(); err != nil {
				return err
			}
		}
	}
}

// collect runs GC until badger has nothing left to rewrite.
func (w *LedgerGCWorker) collect() error {
	rounds := 0
	for {
		err := w.db.RunValueLogGC(gcDiscardRatio)
		switch {
		case err == nil:
			rounds++
		case errors.Is(err, badger.ErrNoRewrite), errors.Is(err, badger.ErrRejected):
			if rounds > 0 {
				w.log.Debug("Ledger value log collected", "rounds", rounds)
			}
			return nil
		default:
			return err
		}
	}
}

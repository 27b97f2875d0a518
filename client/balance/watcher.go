// Package balance keeps the connected account's balance fresh while a
// session is open.
package balance

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Source is the slice of the transport the watcher needs.
type Source interface {
	GetBalance(ctx context.Context, account string, asset string) (int64, error)
}

// Watcher polls an account balance on a fixed interval and reports changes.
type Watcher struct {
	source   Source
	account  string
	asset    string
	interval time.Duration
	log      *zap.Logger
}

func NewWatcher(source Source, account, asset string, interval time.Duration, log *zap.Logger) *Watcher {
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{source: source, account: account, asset: asset, interval: interval, log: log}
}

// Start begins polling in a goroutine until ctx is cancelled. onChange is
// invoked with the scaled balance on the first fetch and whenever the value
// moves. Fetch errors are logged and retried on the next tick.
func (w *Watcher) Start(ctx context.Context, onChange func(int64)) {
	go w.run(ctx, onChange)
}

func (w *Watcher) run(ctx context.Context, onChange func(int64)) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	var last int64
	seen := false

	fetch := func() {
		amount, err := w.source.GetBalance(ctx, w.account, w.asset)
		if err != nil {
			w.log.Debug("balance fetch failed, will retry",
				zap.String("account", w.account), zap.Error(err))
			return
		}
		if !seen || amount != last {
			seen = true
			last = amount
			onChange(amount)
		}
	}

	fetch()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fetch()
		}
	}
}

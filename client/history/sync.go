// Package history mirrors the on-chain donation ledger into memory for
// display. The chain is the single source of truth: every refresh replaces
// the local copy wholesale instead of merging.
package history

import (
	"context"
	"fmt"
	"sync"

	"github.com/CosmWasm/tinyjson/jlexer"
	"go.uber.org/zap"

	"buymeacoffee/contract"
	"buymeacoffee/pkg/errno"
	"buymeacoffee/pkg/monitor"
)

// LedgerReader is the slice of the transport history needs.
type LedgerReader interface {
	ReadContract(ctx context.Context, contractID string, method string, payload string) ([]byte, error)
}

// Synchronizer keeps the latest successfully fetched donation list. On a
// failed refresh the previous list is retained, so the UI keeps showing
// stale data instead of going blank.
type Synchronizer struct {
	reader     LedgerReader
	contractID string
	log        *zap.Logger

	mu   sync.RWMutex
	last contract.SaleList
	subs []func(contract.SaleList)
}

func NewSynchronizer(reader LedgerReader, contractID string, log *zap.Logger) *Synchronizer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Synchronizer{reader: reader, contractID: contractID, log: log}
}

// Refresh fetches the full ledger and replaces the local copy. On error it
// returns the retained list together with ErrLedgerUnreachable.
func (s *Synchronizer) Refresh(ctx context.Context) (contract.SaleList, error) {
	raw, err := s.reader.ReadContract(ctx, s.contractID, "coffee_list", "")
	if err != nil {
		s.countRefresh("error")
		s.log.Warn("donation history refresh failed, keeping previous list",
			zap.Error(err))
		return s.Current(), fmt.Errorf("%w: %v", errno.ErrLedgerUnreachable, err)
	}

	var list contract.SaleList
	lex := jlexer.Lexer{Data: raw}
	list.UnmarshalTinyJSON(&lex)
	if err := lex.Error(); err != nil {
		s.countRefresh("error")
		return s.Current(), fmt.Errorf("%w: decode ledger: %v", errno.ErrLedgerUnreachable, err)
	}

	s.mu.Lock()
	s.last = list
	subs := make([]func(contract.SaleList), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	s.countRefresh("ok")
	s.log.Debug("donation history refreshed", zap.Int("records", len(list)))

	for _, fn := range subs {
		fn(list)
	}
	return list, nil
}

// Current returns the last successfully fetched list.
func (s *Synchronizer) Current() contract.SaleList {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(contract.SaleList, len(s.last))
	copy(out, s.last)
	return out
}

// OnUpdate registers a callback invoked after every successful refresh.
func (s *Synchronizer) OnUpdate(fn func(contract.SaleList)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Synchronizer) countRefresh(result string) {
	if monitor.Business != nil {
		monitor.Business.HistoryRefreshTotal.WithLabelValues(result).Inc()
	}
}

// Package poller turns the node's eventually-available receipts into a
// single confirmation verdict per transaction.
package poller

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"buymeacoffee/client/transport"
	"buymeacoffee/pkg/errno"
)

// Outcome is the poller's verdict for one transaction.
type Outcome uint8

const (
	// OutcomePending means no verdict yet (context cancelled mid-wait).
	OutcomePending Outcome = iota
	OutcomeSuccess
	OutcomeReverted
	// OutcomeTimedOut means the bound elapsed without a receipt. The
	// transaction may still confirm later, so this is not a failure verdict.
	OutcomeTimedOut
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeReverted:
		return "reverted"
	case OutcomeTimedOut:
		return "timeout"
	default:
		return "pending"
	}
}

// ReceiptSource is the slice of the transport the poller needs.
type ReceiptSource interface {
	GetReceipt(ctx context.Context, txID string) (*transport.Receipt, error)
}

type Poller struct {
	source   ReceiptSource
	interval time.Duration
	maxWait  time.Duration
	log      *zap.Logger
}

func New(source ReceiptSource, interval, maxWait time.Duration, log *zap.Logger) *Poller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Poller{source: source, interval: interval, maxWait: maxWait, log: log}
}

// Await polls for the receipt of txID until it shows up, the wait bound
// elapses, or ctx is cancelled. Transient transport errors are logged and
// retried on the next tick; they never end the wait early.
func (p *Poller) Await(ctx context.Context, txID string) (Outcome, error) {
	if txID == "" {
		return OutcomePending, fmt.Errorf("empty transaction id")
	}

	if outcome, done := p.probe(ctx, txID); done {
		return outcome, outcomeErr(outcome)
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	deadline := time.NewTimer(p.maxWait)
	defer deadline.Stop()

	for {
		select {
		case <-ctx.Done():
			return OutcomePending, ctx.Err()
		case <-deadline.C:
			p.log.Warn("confirmation wait bound elapsed",
				zap.String("tx_id", txID),
				zap.Duration("max_wait", p.maxWait))
			return OutcomeTimedOut, errno.ErrConfirmationTimeout
		case <-ticker.C:
			if outcome, done := p.probe(ctx, txID); done {
				return outcome, outcomeErr(outcome)
			}
		}
	}
}

func (p *Poller) probe(ctx context.Context, txID string) (Outcome, bool) {
	rcpt, err := p.source.GetReceipt(ctx, txID)
	if err != nil {
		p.log.Debug("receipt probe failed, will retry",
			zap.String("tx_id", txID), zap.Error(err))
		return OutcomePending, false
	}
	if rcpt == nil {
		return OutcomePending, false
	}
	if rcpt.Reverted {
		p.log.Info("transaction reverted",
			zap.String("tx_id", txID),
			zap.Uint64("block_height", rcpt.BlockHeight))
		return OutcomeReverted, true
	}
	p.log.Info("transaction confirmed",
		zap.String("tx_id", txID),
		zap.Uint64("block_height", rcpt.BlockHeight))
	return OutcomeSuccess, true
}

func outcomeErr(o Outcome) error {
	if o == OutcomeReverted {
		return errno.ErrReverted
	}
	return nil
}

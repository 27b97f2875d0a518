package coffee

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"buymeacoffee/client/history"
	"buymeacoffee/client/poller"
	"buymeacoffee/pkg/monitor"
)

// DonationKind selects the donation target.
type DonationKind string

const (
	KindBuy  DonationKind = "buy"
	KindSend DonationKind = "send"
)

// DonationRequest is one donation the user asked for.
type DonationRequest struct {
	Kind      DonationKind
	Recipient string
	Name      string
	Message   string
}

// DonationResult reports where a donation ended up.
type DonationResult struct {
	TxID    string
	Outcome poller.Outcome
	State   LifecycleState
}

// Flow drives a donation end to end: submit, track, await confirmation,
// refresh history. One donation at a time per flow.
type Flow struct {
	svc       *Service
	poller    *poller.Poller
	tracker   *poller.Tracker
	history   *history.Synchronizer
	lifecycle *Lifecycle
	log       *zap.Logger
}

func NewFlow(svc *Service, p *poller.Poller, hist *history.Synchronizer, log *zap.Logger) *Flow {
	if log == nil {
		log = zap.NewNop()
	}
	return &Flow{
		svc:       svc,
		poller:    p,
		tracker:   poller.NewTracker(),
		history:   hist,
		lifecycle: NewLifecycle(),
		log:       log,
	}
}

// State exposes the lifecycle of the donation currently in flight.
func (f *Flow) State() LifecycleState {
	return f.lifecycle.State()
}

// Donate runs one donation to completion. The returned error carries the
// failure classification; the result is still populated so callers can show
// the transaction id even on timeout.
func (f *Flow) Donate(ctx context.Context, req DonationRequest) (DonationResult, error) {
	attempt := uuid.NewString()
	log := f.log.With(
		zap.String("attempt", attempt),
		zap.String("kind", string(req.Kind)))

	f.lifecycle.Reset()

	txID, err := f.submit(ctx, req)
	if err != nil {
		return DonationResult{State: f.lifecycle.State()}, err
	}

	f.tracker.Track(txID)
	if err := f.lifecycle.Transition(StatePending); err != nil {
		return DonationResult{TxID: txID, State: f.lifecycle.State()}, err
	}
	log.Info("awaiting confirmation", zap.String("tx_id", txID))

	started := time.Now()
	outcome, waitErr := f.poller.Await(ctx, txID)

	// A newer donation may have superseded this one while we waited. Its
	// verdict then belongs to nobody: leave state and history alone.
	if !f.tracker.IsCurrent(txID) {
		log.Info("confirmation for superseded transaction dropped",
			zap.String("tx_id", txID),
			zap.String("outcome", outcome.String()))
		return DonationResult{TxID: txID, Outcome: outcome, State: f.lifecycle.State()}, waitErr
	}
	defer f.tracker.Clear(txID)

	f.observeOutcome(outcome, time.Since(started))

	switch outcome {
	case poller.OutcomeSuccess:
		if err := f.lifecycle.Transition(StateSuccess); err != nil {
			return DonationResult{TxID: txID, Outcome: outcome, State: f.lifecycle.State()}, err
		}
		if f.history != nil {
			if _, err := f.history.Refresh(ctx); err != nil {
				log.Warn("history refresh after confirmation failed", zap.Error(err))
			}
		}
	case poller.OutcomeReverted:
		if err := f.lifecycle.Transition(StateReverted); err != nil {
			return DonationResult{TxID: txID, Outcome: outcome, State: f.lifecycle.State()}, err
		}
	default:
		// Timeout or cancellation: no verdict, the donation stays pending.
	}

	return DonationResult{TxID: txID, Outcome: outcome, State: f.lifecycle.State()}, waitErr
}

func (f *Flow) submit(ctx context.Context, req DonationRequest) (string, error) {
	if req.Kind == KindSend {
		return f.svc.SendCoffee(ctx, req.Recipient, req.Name, req.Message)
	}
	return f.svc.BuyCoffee(ctx, req.Name, req.Message)
}

func (f *Flow) observeOutcome(outcome poller.Outcome, took time.Duration) {
	if monitor.Business == nil {
		return
	}
	monitor.Business.ConfirmationsTotal.WithLabelValues(outcome.String()).Inc()
	if outcome == poller.OutcomeSuccess || outcome == poller.OutcomeReverted {
		monitor.Business.ConfirmationDuration.Observe(took.Seconds())
	}
}

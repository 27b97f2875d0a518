package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buymeacoffee/client/transport"
	"buymeacoffee/pkg/errno"
)

// scriptedSource replays a fixed sequence of probe results, repeating the
// last one once the script runs out.
type scriptedSource struct {
	mu     sync.Mutex
	script []probeStep
	calls  int
}

type probeStep struct {
	rcpt *transport.Receipt
	err  error
}

func (s *scriptedSource) GetReceipt(ctx context.Context, txID string) (*transport.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	step := s.script[len(s.script)-1]
	if s.calls < len(s.script) {
		step = s.script[s.calls]
	}
	s.calls++
	return step.rcpt, step.err
}

func (s *scriptedSource) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func TestAwaitSuccess(t *testing.T) {
	src := &scriptedSource{script: []probeStep{
		{nil, nil},
		{nil, nil},
		{&transport.Receipt{TxID: "tx-1", BlockHeight: 7}, nil},
	}}
	p := New(src, 5*time.Millisecond, time.Second, nil)

	outcome, err := p.Await(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, outcome)
	assert.GreaterOrEqual(t, src.callCount(), 3)
}

func TestAwaitReverted(t *testing.T) {
	src := &scriptedSource{script: []probeStep{
		{&transport.Receipt{TxID: "tx-1", Reverted: true}, nil},
	}}
	p := New(src, 5*time.Millisecond, time.Second, nil)

	outcome, err := p.Await(context.Background(), "tx-1")
	assert.Equal(t, OutcomeReverted, outcome)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errno.ErrReverted))
}

func TestAwaitTimesOutAfterBound(t *testing.T) {
	src := &scriptedSource{script: []probeStep{{nil, nil}}}
	maxWait := 40 * time.Millisecond
	p := New(src, 5*time.Millisecond, maxWait, nil)

	started := time.Now()
	outcome, err := p.Await(context.Background(), "tx-1")
	elapsed := time.Since(started)

	assert.Equal(t, OutcomeTimedOut, outcome)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errno.ErrConfirmationTimeout))
	// never gives up before the configured bound
	assert.GreaterOrEqual(t, elapsed, maxWait)
}

func TestAwaitRetriesTransientErrors(t *testing.T) {
	src := &scriptedSource{script: []probeStep{
		{nil, errors.New("connection refused")},
		{nil, errors.New("connection refused")},
		{&transport.Receipt{TxID: "tx-1"}, nil},
	}}
	p := New(src, 5*time.Millisecond, time.Second, nil)

	outcome, err := p.Await(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSuccess, outcome)
}

func TestAwaitStopsOnCancel(t *testing.T) {
	src := &scriptedSource{script: []probeStep{{nil, nil}}}
	p := New(src, 5*time.Millisecond, time.Minute, nil)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(15 * time.Millisecond)
		cancel()
	}()

	outcome, err := p.Await(ctx, "tx-1")
	assert.Equal(t, OutcomePending, outcome)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAwaitRejectsEmptyTxID(t *testing.T) {
	p := New(&scriptedSource{script: []probeStep{{nil, nil}}}, time.Millisecond, time.Second, nil)
	_, err := p.Await(context.Background(), "")
	require.Error(t, err)
}

func TestTrackerSupersedes(t *testing.T) {
	tr := NewTracker()

	tr.Track("tx-1")
	assert.True(t, tr.IsCurrent("tx-1"))

	tr.Track("tx-2")
	assert.False(t, tr.IsCurrent("tx-1"), "an older transaction loses tracking when a newer one starts")
	assert.True(t, tr.IsCurrent("tx-2"))

	// clearing the stale id must not disturb the current one
	tr.Clear("tx-1")
	assert.True(t, tr.IsCurrent("tx-2"))

	tr.Clear("tx-2")
	assert.False(t, tr.IsCurrent("tx-2"))
	assert.False(t, tr.IsCurrent(""))
}

package coffee

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buymeacoffee/client/session"
	"buymeacoffee/client/transport"
	"buymeacoffee/pkg/errno"
	"buymeacoffee/sdk"
)

// recordingSigner captures every clause set handed to the wallet.
type recordingSigner struct {
	mu      sync.Mutex
	calls   [][]transport.Clause
	nextTx  string
	nextErr error
}

func (s *recordingSigner) SignAndSend(ctx context.Context, clauses []transport.Clause) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, clauses)
	if s.nextErr != nil {
		return "", s.nextErr
	}
	return s.nextTx, nil
}

func (s *recordingSigner) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func newTestService(signer *recordingSigner) *Service {
	sess := session.New("hive:alice", signer)
	return NewService(sess, "contract:coffee", nil)
}

func TestBuyCoffeeBuildsSingleClause(t *testing.T) {
	signer := &recordingSigner{nextTx: "tx-1"}
	svc := newTestService(signer)

	txID, err := svc.BuyCoffee(context.Background(), "Alice", "great work")
	require.NoError(t, err)
	assert.Equal(t, "tx-1", txID)
	require.Equal(t, 1, signer.callCount(), "exactly one broadcast per donation")

	clauses := signer.calls[0]
	require.Len(t, clauses, 1)
	clause := clauses[0]
	assert.Equal(t, "contract:coffee", clause.To)
	assert.Equal(t, "1.000", clause.Value)

	var cd callData
	require.NoError(t, json.Unmarshal([]byte(clause.Data), &cd))
	assert.Equal(t, "coffee_buy", cd.Action)
	require.Len(t, cd.Intents, 1)
	assert.Equal(t, "transfer.allow", cd.Intents[0].Type)
	assert.Equal(t, "1.000", cd.Intents[0].Args["limit"])
	assert.Equal(t, sdk.AssetHive.String(), cd.Intents[0].Args["token"])

	var args map[string]string
	require.NoError(t, json.Unmarshal([]byte(cd.Payload), &args))
	assert.Equal(t, "Alice", args["name"])
	assert.Equal(t, "great work", args["message"])
}

func TestSendCoffeeTargetsRecipient(t *testing.T) {
	signer := &recordingSigner{nextTx: "tx-2"}
	svc := newTestService(signer)

	txID, err := svc.SendCoffee(context.Background(), "hive:barista", "Bob", "cheers")
	require.NoError(t, err)
	assert.Equal(t, "tx-2", txID)

	var cd callData
	require.NoError(t, json.Unmarshal([]byte(signer.calls[0][0].Data), &cd))
	assert.Equal(t, "coffee_send", cd.Action)

	var args map[string]string
	require.NoError(t, json.Unmarshal([]byte(cd.Payload), &args))
	assert.Equal(t, "hive:barista", args["to"])
}

func TestValidationHappensBeforeBroadcast(t *testing.T) {
	cases := []struct {
		name string
		call func(svc *Service) error
		want errno.Errno
	}{
		{"empty name", func(svc *Service) error {
			_, err := svc.BuyCoffee(context.Background(), "", "msg")
			return err
		}, errno.ErrInvalidPayload},
		{"blank message", func(svc *Service) error {
			_, err := svc.BuyCoffee(context.Background(), "Alice", "   ")
			return err
		}, errno.ErrInvalidPayload},
		{"empty recipient", func(svc *Service) error {
			_, err := svc.SendCoffee(context.Background(), "", "Alice", "msg")
			return err
		}, errno.ErrInvalidRecipient},
		{"garbage recipient", func(svc *Service) error {
			_, err := svc.SendCoffee(context.Background(), "not-an-address", "Alice", "msg")
			return err
		}, errno.ErrInvalidRecipient},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			signer := &recordingSigner{nextTx: "tx-x"}
			svc := newTestService(signer)
			err := tc.call(svc)
			assert.ErrorIs(t, err, tc.want)
			assert.Zero(t, signer.callCount(), "invalid requests must never reach the wallet")
		})
	}
}

func TestNoSessionNoBroadcast(t *testing.T) {
	svc := NewService(session.New("", nil), "contract:coffee", nil)
	_, err := svc.BuyCoffee(context.Background(), "Alice", "msg")
	assert.ErrorIs(t, err, errno.ErrNotConnected)
}

func TestSignerErrorsPropagate(t *testing.T) {
	signer := &recordingSigner{nextErr: errno.ErrUserRejected}
	svc := newTestService(signer)

	_, err := svc.BuyCoffee(context.Background(), "Alice", "msg")
	assert.ErrorIs(t, err, errno.ErrUserRejected)
	assert.Equal(t, 1, signer.callCount(), "a rejection is not retried")

	signer = &recordingSigner{nextErr: errors.New("network down")}
	svc = newTestService(signer)
	_, err = svc.BuyCoffee(context.Background(), "Alice", "msg")
	require.Error(t, err)
	assert.Equal(t, 1, signer.callCount())
}

package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buymeacoffee/client/transport"
	"buymeacoffee/pkg/errno"
)

func testClauses() []transport.Clause {
	return []transport.Clause{{To: "contract:coffee", Value: "1.000", Data: "{}"}}
}

func TestSignAndSendReturnsTxID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/sign", r.URL.Path)
		var req signRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Clauses, 1)
		assert.Equal(t, "contract:coffee", req.Clauses[0].To)
		_ = json.NewEncoder(w).Encode(signResponse{TxID: "tx-99"})
	}))
	defer srv.Close()

	signer := NewAgentSigner(srv.URL, time.Second)
	txID, err := signer.SignAndSend(context.Background(), testClauses())
	require.NoError(t, err)
	assert.Equal(t, "tx-99", txID)
}

func TestSignAndSendUserRejection(t *testing.T) {
	for _, status := range []int{http.StatusForbidden, http.StatusConflict} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		signer := NewAgentSigner(srv.URL, time.Second)
		_, err := signer.SignAndSend(context.Background(), testClauses())
		assert.ErrorIs(t, err, errno.ErrUserRejected)
		srv.Close()
	}
}

func TestSignAndSendBroadcastFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	signer := NewAgentSigner(srv.URL, time.Second)
	_, err := signer.SignAndSend(context.Background(), testClauses())
	assert.ErrorIs(t, err, errno.ErrBroadcastFailed)

	// unreachable agent maps the same way
	signer = NewAgentSigner("http://127.0.0.1:1", 50*time.Millisecond)
	_, err = signer.SignAndSend(context.Background(), testClauses())
	assert.ErrorIs(t, err, errno.ErrBroadcastFailed)
}

func TestSessionWithoutWallet(t *testing.T) {
	sess := New("", nil)
	assert.False(t, sess.Connected())
	_, err := sess.SignAndSend(context.Background(), testClauses())
	assert.ErrorIs(t, err, errno.ErrNotConnected)

	connected := New("hive:alice", NewAgentSigner("http://localhost:8550", time.Second))
	assert.True(t, connected.Connected())
	assert.Equal(t, "hive:alice", connected.Address())
}

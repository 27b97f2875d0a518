package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *RESTClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRESTClient(srv.URL, time.Second)
}

func TestGetReceiptFound(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/receipts/tx-1", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_ = json.NewEncoder(w).Encode(Receipt{TxID: "tx-1", BlockHeight: 42, Reverted: false})
	})

	rcpt, err := client.GetReceipt(context.Background(), "tx-1")
	require.NoError(t, err)
	require.NotNil(t, rcpt)
	assert.Equal(t, "tx-1", rcpt.TxID)
	assert.Equal(t, uint64(42), rcpt.BlockHeight)
	assert.False(t, rcpt.Reverted)
}

func TestGetReceiptPendingIsNotAnError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	rcpt, err := client.GetReceipt(context.Background(), "tx-unknown")
	require.NoError(t, err)
	assert.Nil(t, rcpt)
}

func TestGetReceiptServerError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetReceipt(context.Background(), "tx-1")
	require.Error(t, err)
}

func TestGetBalance(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/balances/hive:alice", r.URL.Path)
		assert.Equal(t, "hive", r.URL.Query().Get("asset"))
		_ = json.NewEncoder(w).Encode(balanceResponse{Account: "hive:alice", Asset: "hive", Amount: 12345})
	})

	amount, err := client.GetBalance(context.Background(), "hive:alice", "hive")
	require.NoError(t, err)
	assert.Equal(t, int64(12345), amount)
}

func TestReadContract(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/contracts/contract:coffee/read", r.URL.Path)

		var req readRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "coffee_list", req.Method)

		_ = json.NewEncoder(w).Encode(readResponse{Result: `[]`})
	})

	raw, err := client.ReadContract(context.Background(), "contract:coffee", "coffee_list", "")
	require.NoError(t, err)
	assert.Equal(t, "[]", string(raw))
}

func TestContextCancellation(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := client.GetReceipt(ctx, "tx-1")
	require.Error(t, err)
}

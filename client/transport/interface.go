// Package transport is the only channel between the client and the chain
// node. Everything network-facing goes through the Client interface so tests
// can swap in fakes.
package transport

import "context"

type Client interface {
	// GetReceipt fetches the receipt for a transaction id. A (nil, nil)
	// return means the transaction is not finalized yet, which is not an
	// error: the poller keeps waiting.
	GetReceipt(ctx context.Context, txID string) (*Receipt, error)

	// GetBalance returns an account balance in scaled milli-units.
	GetBalance(ctx context.Context, account string, asset string) (int64, error)

	// ReadContract performs a view-only contract call and returns the raw
	// result bytes.
	ReadContract(ctx context.Context, contractID string, method string, payload string) ([]byte, error)
}

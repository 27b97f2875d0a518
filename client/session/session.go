// Package session holds the connected wallet identity. All signing goes
// through a Signer so the key material never enters this process.
package session

import (
	"context"

	"buymeacoffee/client/transport"
	"buymeacoffee/pkg/errno"
)

// Signer signs a set of clauses as one transaction and broadcasts it,
// returning the transaction id.
type Signer interface {
	SignAndSend(ctx context.Context, clauses []transport.Clause) (string, error)
}

// Session is the wallet connection of the current user.
type Session struct {
	address string
	signer  Signer
}

func New(address string, signer Signer) *Session {
	return &Session{address: address, signer: signer}
}

// Connected reports whether a wallet address is attached and able to sign.
func (s *Session) Connected() bool {
	return s != nil && s.address != "" && s.signer != nil
}

// Address returns the connected wallet address.
func (s *Session) Address() string {
	if s == nil {
		return ""
	}
	return s.address
}

// SignAndSend forwards the clauses to the wallet for signing and broadcast.
func (s *Session) SignAndSend(ctx context.Context, clauses []transport.Clause) (string, error) {
	if !s.Connected() {
		return "", errno.ErrNotConnected
	}
	return s.signer.SignAndSend(ctx, clauses)
}

// Package coffee implements the donation flow on top of a wallet session
// and the chain transport.
package coffee

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/CosmWasm/tinyjson/jwriter"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"buymeacoffee/client/session"
	"buymeacoffee/client/transport"
	"buymeacoffee/contract"
	"buymeacoffee/pkg/errno"
	"buymeacoffee/pkg/monitor"
	"buymeacoffee/sdk"
)

// Service builds and broadcasts donation transactions. Validation happens
// before anything leaves the process: a request the contract would revert is
// rejected here without spending a transaction.
type Service struct {
	session    *session.Session
	contractID string
	log        *zap.Logger
}

func NewService(sess *session.Session, contractID string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{session: sess, contractID: contractID, log: log}
}

// callData is the contract invocation envelope the wallet signs.
type callData struct {
	Action  string       `json:"action"`
	Payload string       `json:"payload"`
	Intents []sdk.Intent `json:"intents"`
}

// BuyCoffee sends one coffee to the contract owner. Returns the broadcast
// transaction id.
func (s *Service) BuyCoffee(ctx context.Context, name, message string) (string, error) {
	if err := s.validateText(name, message); err != nil {
		return "", err
	}
	w := jwriter.Writer{}
	contract.BuyArgs{Name: name, Message: message}.MarshalTinyJSON(&w)
	payload, err := w.BuildBytes()
	if err != nil {
		return "", fmt.Errorf("%w: %v", errno.ErrInvalidPayload, err)
	}
	return s.submit(ctx, "buy", "coffee_buy", string(payload))
}

// SendCoffee sends one coffee to an arbitrary recipient address.
func (s *Service) SendCoffee(ctx context.Context, recipient, name, message string) (string, error) {
	if recipient == "" || !sdk.Address(recipient).IsValid() {
		return "", errno.ErrInvalidRecipient
	}
	if err := s.validateText(name, message); err != nil {
		return "", err
	}
	w := jwriter.Writer{}
	contract.SendArgs{To: recipient, Name: name, Message: message}.MarshalTinyJSON(&w)
	payload, err := w.BuildBytes()
	if err != nil {
		return "", fmt.Errorf("%w: %v", errno.ErrInvalidPayload, err)
	}
	return s.submit(ctx, "send", "coffee_send", string(payload))
}

func (s *Service) validateText(name, message string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(message) == "" {
		return errno.ErrInvalidPayload
	}
	return nil
}

// priceValue renders the fixed coffee price for the clause value field.
func priceValue() string {
	return decimal.New(int64(contract.CoffeePrice), -3).StringFixed(3)
}

// submit builds the single clause for one donation and hands it to the
// wallet exactly once.
func (s *Service) submit(ctx context.Context, kind, action, payload string) (string, error) {
	if !s.session.Connected() {
		return "", errno.ErrNotConnected
	}

	data, err := json.Marshal(callData{
		Action:  action,
		Payload: payload,
		Intents: []sdk.Intent{{
			Type: "transfer.allow",
			Args: map[string]string{
				"limit": priceValue(),
				"token": string(contract.DonationAsset),
			},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", errno.ErrInvalidPayload, err)
	}

	clause := transport.Clause{
		To:      s.contractID,
		Value:   priceValue(),
		Data:    string(data),
		Comment: fmt.Sprintf("%s sent a coffee", s.session.Address()),
	}

	txID, err := s.session.SignAndSend(ctx, []transport.Clause{clause})
	if err != nil {
		s.log.Warn("donation submission failed",
			zap.String("kind", kind), zap.Error(err))
		return "", err
	}

	if monitor.Business != nil {
		monitor.Business.DonationsSubmittedTotal.WithLabelValues(kind).Inc()
	}
	s.log.Info("donation broadcast",
		zap.String("kind", kind),
		zap.String("tx_id", txID))
	return txID, nil
}

package contract

import (
	"strconv"

	"buymeacoffee/sdk"
)

// MockENV serves a configurable environment snapshot. Tests call NextTx before
// each contract call so the per-tx env cache rolls over like it would on chain.
type MockENV struct {
	Sender    sdk.Address
	Timestamp string
	TxId      string
	Intents   []sdk.Intent

	txSeq uint64
}

func NewMockENV() *MockENV {
	return &MockENV{
		Sender:    "hive:test_sender",
		Timestamp: "2025-01-01T00:00:00",
		TxId:      "tx-0",
	}
}

// NextTx stamps a fresh tx id and swaps in the given sender and intents.
func (m *MockENV) NextTx(sender sdk.Address, intents ...sdk.Intent) {
	m.txSeq++
	m.TxId = "tx-" + strconv.FormatUint(m.txSeq, 10)
	m.Sender = sender
	m.Intents = intents
}

func (m *MockENV) GetEnv() sdk.Env {
	return sdk.Env{
		ContractId:  "contract:coffee-test",
		TxId:        m.TxId,
		BlockId:     "block-test",
		BlockHeight: m.txSeq,
		Timestamp:   m.Timestamp,
		Sender:      sdk.Sender{Address: m.Sender, RequiredAuths: []sdk.Address{m.Sender}},
		Intents:     m.Intents,
	}
}

func (m *MockENV) GetEnvKey(key string) *string {
	switch key {
	case "block.timestamp":
		return &m.Timestamp
	case "tx.id":
		return &m.TxId
	default:
		return nil
	}
}

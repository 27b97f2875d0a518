package contract

import "buymeacoffee/sdk"

// DrawRecord captures one draw from the current sender into the contract.
type DrawRecord struct {
	Amount int64
	Asset  sdk.Asset
}

// TransferRecord captures one outgoing transfer from the contract.
type TransferRecord struct {
	To     sdk.Address
	Amount int64
	Asset  sdk.Asset
}

// MockFunds records every token movement instead of touching the host ledger.
type MockFunds struct {
	Draws     []DrawRecord
	Transfers []TransferRecord
	Balances  map[string]int64
}

func NewMockFunds() *MockFunds {
	return &MockFunds{
		Balances: map[string]int64{},
	}
}

func (m *MockFunds) Draw(amount int64, asset sdk.Asset) {
	m.Draws = append(m.Draws, DrawRecord{Amount: amount, Asset: asset})
}

func (m *MockFunds) Transfer(to sdk.Address, amount int64, asset sdk.Asset) {
	m.Transfers = append(m.Transfers, TransferRecord{To: to, Amount: amount, Asset: asset})
}

func (m *MockFunds) Balance(address sdk.Address, asset sdk.Asset) int64 {
	return m.Balances[address.String()+"/"+asset.String()]
}

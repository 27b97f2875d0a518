package contract

// MockHost bundles the three host mocks so tests and the debug harness can
// drive a full contract call without a chain.
type MockHost struct {
	State *MockState
	Env   *MockENV
	Funds *MockFunds
}

// UseMocks swaps every host singleton for a fresh mock and returns the bundle.
func UseMocks() *MockHost {
	h := &MockHost{
		State: NewMockState(),
		Env:   NewMockENV(),
		Funds: NewMockFunds(),
	}
	state = h.State
	envInterface = h.Env
	fundsInterface = h.Funds
	resetTxCache()
	return h
}

package contract

import "buymeacoffee/sdk"

// FundsInterface abstracts the host token capabilities (draw from sender,
// transfer out, balance lookup) so tests can observe money movement.
type FundsInterface interface {
	Draw(amount int64, asset sdk.Asset)
	Transfer(to sdk.Address, amount int64, asset sdk.Asset)
	Balance(address sdk.Address, asset sdk.Asset) int64
}

// RealFunds implements the funds interface using the actual host SDK.
type RealFunds struct{}

func (RealFunds) Draw(amount int64, asset sdk.Asset) {
	sdk.HiveDraw(amount, asset)
}

func (RealFunds) Transfer(to sdk.Address, amount int64, asset sdk.Asset) {
	sdk.HiveTransfer(to, amount, asset)
}

func (RealFunds) Balance(address sdk.Address, asset sdk.Asset) int64 {
	return sdk.GetBalance(address, asset)
}

var fundsInterface FundsInterface

func InitFunds(localDebug bool) {
	if localDebug {
		fundsInterface = NewMockFunds()
	} else {
		fundsInterface = RealFunds{}
	}
}

func getFunds() FundsInterface {
	if fundsInterface == nil {
		fundsInterface = RealFunds{}
	}
	return fundsInterface
}

package contract

import (
	"fmt"
	"strconv"

	"buymeacoffee/sdk"
)

// Accumulated donation funds per asset. The contract keeps every drawn payment
// in its own balance; there is intentionally no withdrawal entry point.

// getContractFunds retrieves the accumulated balance of a specific asset.
func getContractFunds(asset sdk.Asset) Amount {
	ptr := getState().Get(fundsKeyPrefix + asset.String())
	if ptr == nil {
		return 0
	}
	balance, err := strconv.ParseInt(*ptr, 10, 64)
	if err != nil {
		return 0
	}
	return Amount(balance)
}

// setContractFunds sets the accumulated balance of a specific asset.
func setContractFunds(asset sdk.Asset, amount Amount) {
	getState().Set(fundsKeyPrefix+asset.String(), fmt.Sprintf("%d", amount))
}

// addContractFunds adds a drawn donation to the asset's accumulated balance.
func addContractFunds(asset sdk.Asset, amount Amount) {
	current := getContractFunds(asset)
	setContractFunds(asset, current+amount)
}

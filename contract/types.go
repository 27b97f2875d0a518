////////////////////////////////////////////////////////////////////////////////
// Buy Me a Coffee: a micro donation ledger for the vsc network
////////////////////////////////////////////////////////////////////////////////

package contract

import (
	"math"

	"buymeacoffee/sdk"
)

const AmountScale = 1000

type Amount int64

// CoffeePrice is the fixed donation size: exactly one unit of the donation
// asset. The contract rejects any other attached amount so the client's
// fixed-price assumption stays valid.
const CoffeePrice Amount = 1 * AmountScale

// DonationAsset is the only asset coffees can be paid in.
const DonationAsset = sdk.AssetHive

// FloatToAmount scales human floats by AmountScale and rounds to int64 so storage stays precise.
// Example payload: FloatToAmount(1.234)
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

// AmountToFloat converts back to float64 for reporting or events.
func AmountToFloat(v Amount) float64 {
	return float64(v) / AmountScale
}

// AmountToInt64 exposes the raw scaled int64 for hive transfer functions.
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// SaleRecord is one completed donation. Records are append-only: once written
// they are never mutated or removed, and their index is their insertion order.
// Name and Message are untrusted display data and stored verbatim.
type SaleRecord struct {
	Timestamp int64
	From      sdk.Address
	To        sdk.Address
	Value     Amount
	Name      string
	Message   string
}

// SaleList wraps the full ordered ledger for JSON transport.
type SaleList []SaleRecord

// ContractConfig holds the one-time contract setup. Owner is the account that
// called contract_init and cannot be changed afterwards.
type ContractConfig struct {
	Owner sdk.Address
}

// BuyArgs is the decoded coffee_buy payload.
type BuyArgs struct {
	Name    string
	Message string
}

// SendArgs is the decoded coffee_send payload.
type SendArgs struct {
	To      string
	Name    string
	Message string
}

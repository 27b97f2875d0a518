////////////////////////////////////////////////////////////////////////////////
// Buy Me a Coffee: a micro donation ledger for the vsc network
////////////////////////////////////////////////////////////////////////////////

package contract

import (
	"strings"

	"buymeacoffee/sdk"

	"github.com/CosmWasm/tinyjson"
)

// -----------------------------------------------------------------------------
// Contract Initialization
// -----------------------------------------------------------------------------

// Init initializes the contract with the caller as owner.
// Must be called before any other function. The owner is immutable afterwards;
// there is no transfer-ownership path.
func Init(payload *string) *string {
	if isContractInitialized() {
		sdk.Abort("contract already initialized")
	}

	cfg := ContractConfig{
		Owner: getSenderAddress(),
	}
	saveContractConfig(&cfg)

	emitInitEvent(cfg.Owner.String())
	return strptr("initialized")
}

// -----------------------------------------------------------------------------
// Donations
// -----------------------------------------------------------------------------

// BuyCoffee records a donation to the contract owner.
// Payload: {"name":..., "message":...} plus a transfer.allow intent of exactly
// one unit of the donation asset. Returns the new record index.
func BuyCoffee(payload *string) *string {
	requireInitialized()

	args := decodeBuyArgs(payload)
	requireDonationText(args.Name, args.Message)

	owner := *getContractOwner()
	idx := takeDonation(owner, args.Name, args.Message)

	rec, _ := loadSale(idx)
	emitCoffeeBought(idx, rec.From.String(), rec.To.String(), rec.Value)
	return strptr(UInt64ToString(idx))
}

// SendCoffee records a donation towards an arbitrary recipient address.
// Payload: {"to":..., "name":..., "message":...} plus the same payment intent.
func SendCoffee(payload *string) *string {
	requireInitialized()

	args := decodeSendArgs(payload)
	recipient := sdk.Address(strings.TrimSpace(args.To))
	if recipient == "" || !recipient.IsValid() {
		sdk.Revert("recipient must be a valid address", "invalid_recipient")
	}
	requireDonationText(args.Name, args.Message)

	idx := takeDonation(recipient, args.Name, args.Message)

	rec, _ := loadSale(idx)
	emitCoffeeSent(idx, rec.From.String(), rec.To.String(), rec.Value)
	return strptr(UInt64ToString(idx))
}

// -----------------------------------------------------------------------------
// Read Accessors
// -----------------------------------------------------------------------------

// ListSales returns the full ordered donation history as a JSON array.
// No pagination or filtering; the ledger is small enough to ship wholesale.
func ListSales(payload *string) *string {
	requireInitialized()

	data, err := tinyjson.Marshal(listSales())
	if err != nil {
		sdk.Abort("failed to marshal sales: " + err.Error())
	}
	return strptr(string(data))
}

// CountSales returns the ledger length as decimal text.
func CountSales(payload *string) *string {
	requireInitialized()
	return strptr(UInt64ToString(salesCount()))
}

// -----------------------------------------------------------------------------
// Internals
// -----------------------------------------------------------------------------

// requireDonationText enforces the client-side precondition on chain: both
// display fields must be non-empty. A correct client never trips this.
func requireDonationText(name, message string) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(message) == "" {
		sdk.Revert("name and message required", "invalid_payload")
	}
}

// takeDonation draws the fixed coffee price from the sender and appends the
// ledger record. The attached allowance must cover exactly one unit; anything
// else is rejected so duplicate or partial pricing can never be recorded.
func takeDonation(to sdk.Address, name, message string) uint64 {
	ta := getFirstTransferAllow()
	if ta == nil || ta.Token != DonationAsset || FloatToAmount(ta.Limit) != CoffeePrice {
		sdk.Revert("payment must be exactly 1 unit of "+DonationAsset.String(), "insufficient_payment")
	}

	getFunds().Draw(AmountToInt64(CoffeePrice), DonationAsset)
	addContractFunds(DonationAsset, CoffeePrice)

	rec := &SaleRecord{
		Timestamp: nowUnix(),
		From:      getSenderAddress(),
		To:        to,
		Value:     CoffeePrice,
		Name:      name,
		Message:   message,
	}
	return appendSale(rec)
}

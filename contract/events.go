package contract

import (
	"fmt"

	"buymeacoffee/sdk"
)

// Events are terse pipe-delimited log lines so indexing bots can follow the
// ledger without scanning storage diffs. Donor-supplied name/message text is
// untrusted display data and deliberately never echoed into events.

// emitInitEvent marks the one-time contract setup with the owner address.
func emitInitEvent(ownerAddress string) {
	sdk.Log(fmt.Sprintf(
		"in|owner:%s",
		ownerAddress,
	))
}

// emitCoffeeBought logs a donation to the contract owner.
func emitCoffeeBought(idx uint64, from string, to string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"cb|id:%d|from:%s|to:%s|am:%f",
		idx,
		from,
		to,
		AmountToFloat(amount),
	))
}

// emitCoffeeSent mirrors the buy log for donations towards arbitrary recipients.
func emitCoffeeSent(idx uint64, from string, to string, amount Amount) {
	sdk.Log(fmt.Sprintf(
		"cs|id:%d|from:%s|to:%s|am:%f",
		idx,
		from,
		to,
		AmountToFloat(amount),
	))
}

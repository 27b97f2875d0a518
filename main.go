//go:build !wasm

////////////////////////////////////////////////////////////////////////////////
// Buy Me a Coffee: a micro donation ledger for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import (
	"fmt"

	"buymeacoffee/contract"
	"buymeacoffee/sdk"
)

// Host-side debug harness: pokes the contract against the in-memory mock host
// so storage layout changes can be inspected without a chain.
func main() {
	host := contract.UseMocks()
	host.State.PersistTo("state.json")
	host.State.LoadFromFile()

	host.Env.NextTx("hive:owner")
	fmt.Println(*contract.Init(nil))

	intent := sdk.Intent{Type: "transfer.allow", Args: map[string]string{"limit": "1.000", "token": "hive"}}
	payload := `{"name":"Ada","message":"Thanks for the coffee!"}`
	host.Env.NextTx("hive:donor", intent)
	fmt.Println("recorded index:", *contract.BuyCoffee(&payload))

	fmt.Println(*contract.ListSales(nil))
}

//go:build wasm

////////////////////////////////////////////////////////////////////////////////
// Buy Me a Coffee: a micro donation ledger for the vsc network
////////////////////////////////////////////////////////////////////////////////

package main

import "buymeacoffee/contract"

// main is left empty on purpose
func main() {

}

//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	return contract.Init(payload)
}

//go:wasmexport coffee_buy
func CoffeeBuy(payload *string) *string {
	return contract.BuyCoffee(payload)
}

//go:wasmexport coffee_send
func CoffeeSend(payload *string) *string {
	return contract.SendCoffee(payload)
}

//go:wasmexport coffee_list
func CoffeeList(payload *string) *string {
	return contract.ListSales(payload)
}

//go:wasmexport coffee_count
func CoffeeCount(payload *string) *string {
	return contract.CountSales(payload)
}

//go:build !wasm

package sdk

import "fmt"

// Native stand-ins for the wasm host imports so the contract package links on
// a regular toolchain. Real state/env/funds access goes through the contract's
// host interfaces, which tests swap for mocks; these defaults only cover code
// paths that bypass the interfaces (logging, hard aborts).

func log(s *string) *string {
	fmt.Println("SDK log:", *s)
	return s
}

func stateSetObject(key *string, value *string) *string {
	return nil
}

func stateGetObject(key *string) *string {
	return nil
}

func stateDeleteObject(key *string) *string {
	return nil
}

func getEnv(arg *string) *string {
	dummy := `{
		"msg.sender": "mock_sender",
		"msg.required_auths": [],
		"msg.required_posting_auths": []
	}`
	return &dummy
}

func getEnvKey(arg *string) *string {
	return nil
}

func getBalance(arg1 *string, arg2 *string) *string {
	dummy := "0"
	return &dummy
}

func hiveDraw(arg1 *string, arg2 *string) *string {
	fmt.Println("HiveDraw:", *arg1, *arg2)
	return nil
}

func hiveTransfer(arg1 *string, arg2 *string, arg3 *string) *string {
	fmt.Println("HiveTransfer:", *arg1, *arg2, *arg3)
	return nil
}

func abort(msg, file *string, line, column *int32) {
	fmt.Println("SDK abort:", *msg)
}

func revert(msg, symbol *string) {
	fmt.Println("SDK revert:", *symbol, *msg)
}

package sdk

import (
	"encoding/json"
	"strconv"
)

// Env is the per-transaction execution environment snapshot handed to the
// contract by the host. Timestamp keeps the raw string since the host flips
// between unix seconds and ISO formats depending on the node version.
type Env struct {
	ContractId  string `json:"contract.id"`
	TxId        string `json:"tx.id"`
	Index       int64  `json:"tx.index"`
	OpIndex     int64  `json:"tx.op_index"`
	BlockId     string `json:"block.id"`
	BlockHeight uint64 `json:"block.height"`
	Timestamp   string `json:"block.timestamp"`
	Sender      Sender `json:"-"`
	Intents     []Intent
}

// Log writes a message to the wasm console so we can trace contract steps.
// Example payload: sdk.Log("coffee recorded")
func Log(s string) {
	log(&s)
}

// Abort stops execution immediately and surfaces the message to the chain, so use sparingly.
// Example payload: sdk.Abort("not initialized")
func Abort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}

// Revert throws a named error back to the caller (like revert in solidity) with a short symbol.
// Example payload: sdk.Revert("payment must be exactly 1 unit", "insufficient_payment")
func Revert(msg string, symbol string) {
	revert(&msg, &symbol)
	panic(symbol + ": " + msg)
}

// StateSetObject stores a key/value string pair into contract kv storage.
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
func StateDeleteObject(key string) {
	stateDeleteObject(&key)
}

// GetEnv pulls the JSON env blob from the chain and maps it to the Env struct.
func GetEnv() Env {
	envStr := *getEnv(nil)
	env := Env{}
	json.Unmarshal([]byte(envStr), &env)

	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	sender := Sender{}
	if v, ok := envMap["msg.sender"].(string); ok {
		sender.Address = Address(v)
	}
	if auths, ok := envMap["msg.required_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if addr, ok := auth.(string); ok {
				sender.RequiredAuths = append(sender.RequiredAuths, Address(addr))
			}
		}
	}
	if auths, ok := envMap["msg.required_posting_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if addr, ok := auth.(string); ok {
				sender.RequiredPostingAuths = append(sender.RequiredPostingAuths, Address(addr))
			}
		}
	}
	env.Sender = sender
	return env
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
// Example payload: sdk.GetEnvKey("block.timestamp")
func GetEnvKey(key string) *string {
	return getEnvKey(&key)
}

// GetBalance queries the hive balance for the given account+asset combo.
// Example payload: sdk.GetBalance(sdk.Address("hive:foo"), sdk.AssetHive)
func GetBalance(address Address, asset Asset) int64 {
	addr := address.String()
	as := asset.String()
	balStr := *getBalance(&addr, &as)
	bal, err := strconv.ParseInt(balStr, 10, 64)
	if err != nil {
		panic(err)
	}
	return bal
}

// HiveDraw pulls tokens from the caller to the contract within the transfer.allow limit.
// Example payload: sdk.HiveDraw(1000, sdk.AssetHive)
func HiveDraw(amount int64, asset Asset) {
	amt := strconv.FormatInt(amount, 10)
	as := asset.String()
	hiveDraw(&amt, &as)
}

// HiveTransfer sends tokens from the contract towards a user address.
// Example payload: sdk.HiveTransfer(sdk.Address("hive:foo"), 500, sdk.AssetHive)
func HiveTransfer(to Address, amount int64, asset Asset) {
	toaddr := to.String()
	amt := strconv.FormatInt(amount, 10)
	as := asset.String()
	hiveTransfer(&toaddr, &amt, &as)
}

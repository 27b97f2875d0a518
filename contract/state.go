package contract

import "buymeacoffee/sdk"

type State interface {
	Set(key, value string)
	Get(key string) *string
	Delete(key string)
}

// singleton state used everywhere
var state State

func InitState(localDebug bool) {
	if localDebug {
		state = NewMockState()
	} else {
		state = WasmState{}
	}
}

func getState() State {
	if state == nil {
		state = WasmState{}
	}
	return state
}

// WasmState routes all kv access to the host contract storage.
type WasmState struct{}

func (WasmState) Set(key, value string) {
	sdk.StateSetObject(key, value)
}

func (WasmState) Get(key string) *string {
	return sdk.StateGetObject(key)
}

func (WasmState) Delete(key string) {
	sdk.StateDeleteObject(key)
}

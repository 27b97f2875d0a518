package contract

import "buymeacoffee/sdk"

// ENVInterface abstracts the host execution environment so tests can pin the
// sender, timestamp and intents of a call.
type ENVInterface interface {
	GetEnv() sdk.Env
	GetEnvKey(key string) *string
}

// RealENV implements the ENV interface using the actual host SDK.
type RealENV struct{}

func (r *RealENV) GetEnv() sdk.Env {
	return sdk.GetEnv()
}

// GetEnvKey returns a single execution environment variable by key.
func (r *RealENV) GetEnvKey(key string) *string {
	e := sdk.GetEnv()
	switch key {
	case "block.timestamp":
		return &e.Timestamp
	case "tx.id":
		return &e.TxId
	default:
		return sdk.GetEnvKey(key)
	}
}

var envInterface ENVInterface

func InitENV(localDebug bool) {
	if localDebug {
		envInterface = NewMockENV()
	} else {
		envInterface = &RealENV{}
	}
}

func getENV() ENVInterface {
	if envInterface == nil {
		envInterface = &RealENV{}
	}
	return envInterface
}

package contract

import (
	"strings"

	"buymeacoffee/sdk"
)

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true if the contract has been initialized.
func isContractInitialized() bool {
	ptr := getState().Get(ContractConfigKey)
	return ptr != nil && *ptr != ""
}

// requireInitialized aborts if the contract has not been initialized.
func requireInitialized() {
	if !isContractInitialized() {
		sdk.Abort("contract not initialized")
	}
}

// loadContractConfig loads the contract configuration from state.
func loadContractConfig() *ContractConfig {
	ptr := getState().Get(ContractConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	return decodeContractConfig(*ptr)
}

// saveContractConfig stores the contract configuration to state.
func saveContractConfig(cfg *ContractConfig) {
	getState().Set(ContractConfigKey, encodeContractConfig(cfg))
}

// getContractOwner returns the contract owner address, or nil if not initialized.
func getContractOwner() *sdk.Address {
	cfg := loadContractConfig()
	if cfg == nil {
		return nil
	}
	return &cfg.Owner
}

// -----------------------------------------------------------------------------
// Contract Config Encoding
// -----------------------------------------------------------------------------

// encodeContractConfig serializes ContractConfig to a pipe-delimited string.
// Format: owner
func encodeContractConfig(cfg *ContractConfig) string {
	return cfg.Owner.String()
}

// decodeContractConfig deserializes the stored string to ContractConfig.
func decodeContractConfig(data string) *ContractConfig {
	owner := strings.TrimSpace(data)
	if owner == "" {
		return nil
	}
	return &ContractConfig{Owner: sdk.Address(owner)}
}

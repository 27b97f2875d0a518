package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Chain  ChainConfig  `mapstructure:"chain"`
	Wallet WalletConfig `mapstructure:"wallet"`
	Poller PollerConfig `mapstructure:"poller"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ChainConfig struct {
	// APIURL is the node REST endpoint used for receipts, reads and balances.
	APIURL string `mapstructure:"api_url"`
	// ContractID is the deployed coffee contract address. Written by the
	// `register` command after deployment (config sync).
	ContractID string `mapstructure:"contract_id"`
	// RequestTimeoutMS bounds every single transport call.
	RequestTimeoutMS int `mapstructure:"request_timeout_ms"`
}

type WalletConfig struct {
	// AgentURL is the local wallet agent that holds keys and signs clauses.
	AgentURL string `mapstructure:"agent_url"`
	// Account is the connected address shown as the donation sender.
	Account string `mapstructure:"account"`
}

type PollerConfig struct {
	IntervalMS int `mapstructure:"interval_ms"`
	MaxWaitMS  int `mapstructure:"max_wait_ms"`
}

var Global Config

func Init() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("coffee")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("Warning: config file not found, using defaults and environment variables")
		} else {
			log.Fatalf("Fatal error config file: %s \n", err)
		}
	}

	if err := viper.Unmarshal(&Global); err != nil {
		log.Fatalf("Unable to decode config into struct, %v", err)
	}
}

func setDefaults() {
	viper.SetDefault("app.env", "development")
	viper.SetDefault("chain.api_url", "http://localhost:1337")
	viper.SetDefault("chain.request_timeout_ms", 10000)
	viper.SetDefault("wallet.agent_url", "http://localhost:8550")
	// one block period between receipt probes, bounded by roughly ten blocks
	viper.SetDefault("poller.interval_ms", 3000)
	viper.SetDefault("poller.max_wait_ms", 30000)
}

// RequestTimeout returns the transport timeout as a duration.
func (c ChainConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMS) * time.Millisecond
}

// Interval returns the receipt probe interval as a duration.
func (c PollerConfig) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// MaxWait returns the confirmation bound as a duration.
func (c PollerConfig) MaxWait() time.Duration {
	return time.Duration(c.MaxWaitMS) * time.Millisecond
}

// SaveContractID persists a freshly deployed contract address back into the
// shared config file so every later command picks it up. This is the config
// sync step that deployment tooling calls once per deployment.
func SaveContractID(contractID string) error {
	viper.Set("chain.contract_id", contractID)
	if err := viper.WriteConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return viper.SafeWriteConfig()
		}
		return fmt.Errorf("write config: %w", err)
	}
	Global.Chain.ContractID = contractID
	return nil
}

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"buymeacoffee/client/coffee"
	"buymeacoffee/client/history"
	"buymeacoffee/client/poller"
	"buymeacoffee/client/session"
	"buymeacoffee/client/transport"
	"buymeacoffee/pkg/config"
	"buymeacoffee/pkg/logger"
	"buymeacoffee/pkg/monitor"
)

var rootCmd = &cobra.Command{
	Use:   "coffee-cli",
	Short: "Buy someone a coffee on chain",
	Long:  "coffee-cli sends fixed-price donations to the coffee contract and browses the public donation ledger.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Init()
		logger.Init(config.Global.App.Env)
		monitor.InitBusinessMetrics()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newClient builds the node transport from the loaded config.
func newClient() *transport.RESTClient {
	return transport.NewRESTClient(config.Global.Chain.APIURL, config.Global.Chain.RequestTimeout())
}

// newSession attaches the configured account to the local wallet agent.
func newSession() *session.Session {
	signer := session.NewAgentSigner(config.Global.Wallet.AgentURL, config.Global.Chain.RequestTimeout())
	return session.New(config.Global.Wallet.Account, signer)
}

// newFlow wires the full donation pipeline for one CLI invocation.
func newFlow() (*coffee.Flow, error) {
	contractID := config.Global.Chain.ContractID
	if contractID == "" {
		return nil, fmt.Errorf("no contract registered, run `coffee-cli register` first")
	}
	client := newClient()
	svc := coffee.NewService(newSession(), contractID, logger.Log)
	p := poller.New(client, config.Global.Poller.Interval(), config.Global.Poller.MaxWait(), logger.Log)
	hist := history.NewSynchronizer(client, contractID, logger.Log)
	return coffee.NewFlow(svc, p, hist, logger.Log), nil
}

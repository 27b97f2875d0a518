package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"buymeacoffee/client/balance"
	"buymeacoffee/contract"
	"buymeacoffee/pkg/config"
	"buymeacoffee/pkg/logger"
)

var balanceWatch bool

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Show the configured account balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		account := config.Global.Wallet.Account
		if account == "" {
			return fmt.Errorf("no wallet account configured")
		}
		client := newClient()
		asset := string(contract.DonationAsset)

		if !balanceWatch {
			amount, err := client.GetBalance(cmd.Context(), account, asset)
			if err != nil {
				return err
			}
			printBalance(account, amount)
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()
		w := balance.NewWatcher(client, account, asset, config.Global.Poller.Interval(), logger.Log)
		w.Start(ctx, func(amount int64) {
			printBalance(account, amount)
		})
		<-ctx.Done()
		return nil
	},
}

func printBalance(account string, amount int64) {
	fmt.Printf("%s: %.3f %s\n", account, contract.AmountToFloat(contract.Amount(amount)), contract.DonationAsset)
}

func init() {
	balanceCmd.Flags().BoolVarP(&balanceWatch, "watch", "w", false, "keep polling and print every change")
	rootCmd.AddCommand(balanceCmd)
}

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"buymeacoffee/client/history"
	"buymeacoffee/contract"
	"buymeacoffee/pkg/config"
	"buymeacoffee/pkg/logger"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the public donation ledger",
	RunE: func(cmd *cobra.Command, args []string) error {
		contractID := config.Global.Chain.ContractID
		if contractID == "" {
			return fmt.Errorf("no contract registered, run `coffee-cli register` first")
		}
		sync := history.NewSynchronizer(newClient(), contractID, logger.Log)
		list, err := sync.Refresh(cmd.Context())
		if err != nil {
			return err
		}
		printSales(list)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func printSales(list contract.SaleList) {
	if len(list) == 0 {
		fmt.Println("no donations yet")
		return
	}
	for i, rec := range list {
		when := time.Unix(rec.Timestamp, 0).UTC().Format(time.RFC3339)
		fmt.Printf("#%d %s %s -> %s %.3f\n   %s: %s\n",
			i, when, rec.From, rec.To, contract.AmountToFloat(rec.Value), rec.Name, rec.Message)
	}
}

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"buymeacoffee/client/coffee"
	"buymeacoffee/pkg/errno"
)

var (
	buyName    string
	buyMessage string
)

var buyCmd = &cobra.Command{
	Use:   "buy",
	Short: "Buy the contract owner a coffee",
	RunE: func(cmd *cobra.Command, args []string) error {
		flow, err := newFlow()
		if err != nil {
			return err
		}
		return runDonation(cmd.Context(), flow, coffee.DonationRequest{
			Kind:    coffee.KindBuy,
			Name:    buyName,
			Message: buyMessage,
		})
	},
}

func init() {
	buyCmd.Flags().StringVarP(&buyName, "name", "n", "", "display name shown in the ledger")
	buyCmd.Flags().StringVarP(&buyMessage, "message", "m", "", "message shown in the ledger")
	_ = buyCmd.MarkFlagRequired("name")
	_ = buyCmd.MarkFlagRequired("message")
	rootCmd.AddCommand(buyCmd)
}

func runDonation(ctx context.Context, flow *coffee.Flow, req coffee.DonationRequest) error {
	res, err := flow.Donate(ctx, req)
	if res.TxID != "" {
		fmt.Printf("transaction: %s\n", res.TxID)
	}
	if err != nil {
		code, msg := errno.Decode(err)
		return fmt.Errorf("donation %s (code %d): %s", res.State, code, msg)
	}
	fmt.Printf("donation %s\n", res.State)
	return nil
}

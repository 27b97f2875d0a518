package cmd

import (
	"github.com/spf13/cobra"

	"buymeacoffee/client/coffee"
)

var (
	sendTo      string
	sendName    string
	sendMessage string
)

var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send a coffee to any address",
	RunE: func(cmd *cobra.Command, args []string) error {
		flow, err := newFlow()
		if err != nil {
			return err
		}
		return runDonation(cmd.Context(), flow, coffee.DonationRequest{
			Kind:      coffee.KindSend,
			Recipient: sendTo,
			Name:      sendName,
			Message:   sendMessage,
		})
	},
}

func init() {
	sendCmd.Flags().StringVarP(&sendTo, "to", "t", "", "recipient address (like hive:alice)")
	sendCmd.Flags().StringVarP(&sendName, "name", "n", "", "display name shown in the ledger")
	sendCmd.Flags().StringVarP(&sendMessage, "message", "m", "", "message shown in the ledger")
	_ = sendCmd.MarkFlagRequired("to")
	_ = sendCmd.MarkFlagRequired("name")
	_ = sendCmd.MarkFlagRequired("message")
	rootCmd.AddCommand(sendCmd)
}

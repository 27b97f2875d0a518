package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"buymeacoffee/pkg/config"
)

var registerCmd = &cobra.Command{
	Use:   "register <contract-id>",
	Short: "Record a deployed contract address in the config",
	Long:  "register writes the contract id back into the config file so every later command targets the same deployment.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.SaveContractID(args[0]); err != nil {
			return err
		}
		fmt.Printf("contract %s registered\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

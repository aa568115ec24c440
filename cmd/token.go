package cmd

import (
	"fmt"

	"github.com/Mohsinsiddi/plzscan/internal/contract"
	"github.com/Mohsinsiddi/plzscan/internal/ui"
	"github.com/spf13/cobra"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Query the PLZToken contract",
}

var tokenBalanceCmd = &cobra.Command{
	Use:   "balance <address>",
	Short: "Show an account's PLZ balance and last faucet request",
	Long: `Read balanceOf and lastRequestedAt from PLZToken for one account.

Examples:
  plzscan token balance 0x70997970C51812dc3A010C7d01b50e0d17dc79C8`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		account := args[0]
		if err := contract.ValidateAddress(account); err != nil {
			return err
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		info, err := s.TokenInfo(cmd.Context(), account)
		if err != nil {
			return queryError(err)
		}

		last := "never"
		if !info.LastRequestedAt.IsZero() {
			last = ui.FormatTime(info.LastRequestedAt)
		}
		tokenAddr, _ := s.Contracts().Address(contract.PLZToken)
		printBlock(cmd.OutOrStdout(), "☕ PLZToken", [][2]string{
			{"Account", ui.Addr(account)},
			{"User Balance", ui.Val(fmt.Sprintf("%s PLZ", info.BalancePLZ))},
			{"Last Requested At", last},
			{"Contract", ui.Meta(tokenAddr)},
		})
		return nil
	},
}

func init() {
	tokenCmd.AddCommand(tokenBalanceCmd)
}

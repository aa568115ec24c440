package cmd

import (
	"fmt"

	"github.com/Mohsinsiddi/plzscan/internal/contract"
	"github.com/Mohsinsiddi/plzscan/internal/ui"
	"github.com/spf13/cobra"
)

var nftCmd = &cobra.Command{
	Use:   "nft",
	Short: "Query the PLZNFT contract",
}

var nftInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the ETH balance held by the PLZNFT contract",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		info, err := s.NFTInfo(cmd.Context())
		if err != nil {
			return fmt.Errorf("Failed to fetch contract balance: %w", err)
		}
		printBlock(cmd.OutOrStdout(), "🖼  PLZNFT", [][2]string{
			{"Contract", ui.Addr(info.Address)},
			{"Contract Balance", ui.Val(info.BalanceETH + " ETH")},
		})
		return nil
	},
}

var nftOwnsCmd = &cobra.Command{
	Use:   "owns <address>",
	Short: "Check whether an account holds a PLZNFT",
	Long: `Check whether an account holds at least one PLZNFT (balanceOf > 0).

Examples:
  plzscan nft owns 0x70997970C51812dc3A010C7d01b50e0d17dc79C8`,
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
		owns, err := s.OwnsNFT(cmd.Context(), account)
		if err != nil {
			return queryError(err)
		}

		out := cmd.OutOrStdout()
		if owns {
			fmt.Fprintln(out, ui.Success("User owns the NFT"))
		} else {
			fmt.Fprintln(out, ui.Warn("User does not own the NFT"))
		}
		return nil
	},
}

func init() {
	nftCmd.AddCommand(nftInfoCmd, nftOwnsCmd)
}

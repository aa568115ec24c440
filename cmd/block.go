package cmd

import (
	"fmt"
	"strconv"

	"github.com/Mohsinsiddi/plzscan/internal/ui"
	"github.com/spf13/cobra"
)

var blockCmd = &cobra.Command{
	Use:   "block [number]",
	Short: "Show the latest block number, or one block's transactions",
	Long: `Without an argument, print the latest block number of the connected chain.
With a block number, list that block's transactions with their calls decoded.

Examples:
  plzscan block
  plzscan block 42
  plzscan block --rpc sepolia`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var num uint64
		if len(args) == 1 {
			n, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid block number %q", args[0])
			}
			num = n
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			latest, err := s.LatestBlock(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching block number: %w", err)
			}
			fmt.Fprintf(out, "Latest Block Number: %s\n", ui.Val(fmt.Sprintf("#%d", latest)))
			return nil
		}

		b, txs, err := s.Block(cmd.Context(), num)
		if err != nil {
			return fmt.Errorf("fetching block: %w", err)
		}

		printBlock(out, fmt.Sprintf("🧱 Block #%d", b.Number), [][2]string{
			{"Hash", b.Hash},
			{"Timestamp", ui.FormatTime(b.Time())},
			{"Transactions", strconv.Itoa(len(txs))},
		})
		if len(txs) == 0 {
			return nil
		}
		t := ui.NewTable(ui.TxColumns())
		for _, tx := range txs {
			t.AddRow(ui.TxRow(tx))
		}
		fmt.Fprintln(out, t.Render())
		return nil
	},
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/plzscan/internal/explorer"
	"github.com/Mohsinsiddi/plzscan/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var txCmd = &cobra.Command{
	Use:   "tx",
	Short: "Transaction utilities",
}

var txDecodeCmd = &cobra.Command{
	Use:   "decode <calldata>",
	Short: "Decode call input against the PLZCoffee ABIs",
	Long: `Decode raw transaction input offline. The first 4 bytes select a function
from the Ordering, PLZToken and PLZNFT ABIs (searched in that order); the
rest is ABI-decoded into named parameters. Input that matches nothing, or
fails to decode, prints N/A.

Examples:
  plzscan tx decode 0xa9059cbb000000000000000000000000...
  plzscan tx decode 0x6311e8300000000000000000000000000000000000000000000000000000000000000003`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := consoleLogger(cmd)
		if err != nil {
			return err
		}
		call := explorer.NewDecoder(log.With(zap.String("cmd", "tx decode"))).DecodeHex(strings.TrimSpace(args[0]))

		out := cmd.OutOrStdout()
		if call.IsUnknown() {
			printBlock(out, "Decoded Call", [][2]string{{"Function", ui.Func(call.Name)}})
			return nil
		}
		printBlock(out, "Decoded Call", [][2]string{
			{"Contract", call.Contract},
			{"Function", ui.Func(call.Name)},
			{"Selector", call.Selector},
		})
		fmt.Fprintln(out, ui.StyleHeader.Render("Params"))
		fmt.Fprintln(out, call.ParamsJSON())
		return nil
	},
}

func init() {
	txCmd.AddCommand(txDecodeCmd)
}

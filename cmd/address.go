package cmd

import (
	"strings"

	"github.com/Mohsinsiddi/plzscan/internal/contract"
	"github.com/Mohsinsiddi/plzscan/internal/ui"
	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
)

var addressCmd = &cobra.Command{
	Use:     "address <address>",
	Aliases: []string{"checksum"},
	Short:   "Validate an address and show its EIP-55 form",
	Long: `Validate an address the way the token and NFT lookups do, print its
EIP-55 checksummed form, and name it if it is a known PLZCoffee contract.

Examples:
  plzscan address 0x5fbdb2315678afecb367f032d93f642f64180aa3
  plzscan address 0xD8DA6BF26964AF9D7EED9E03E53415D37AA96045`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := strings.TrimSpace(args[0])
		if err := contract.ValidateAddress(input); err != nil {
			return err
		}

		checksummed := toChecksumAddress(input)
		pairs := [][2]string{
			{"Input", input},
			{"Checksummed", ui.Addr(checksummed)},
		}

		switch {
		case input == checksummed:
			pairs = append(pairs, [2]string{"Valid", ui.Success("address is correctly checksummed")})
		case input == strings.ToLower(input) || input == "0x"+strings.ToUpper(input[2:]):
			pairs = append(pairs, [2]string{"Valid", ui.Warn("valid address but not checksummed")})
		default:
			pairs = append(pairs, [2]string{"Valid", ui.Err("checksum mismatch")})
		}

		table, err := contractTable()
		if err != nil {
			return err
		}
		if name, ok := table.NameOf(input); ok {
			pairs = append(pairs, [2]string{"Contract", name})
		}

		printBlock(cmd.OutOrStdout(), "EIP-55 Checksum", pairs)
		return nil
	},
}

// toChecksumAddress returns the EIP-55 mixed-case form of a hex address,
// with or without the 0x prefix.
func toChecksumAddress(addr string) string {
	if !strings.HasPrefix(addr, "0x") && !strings.HasPrefix(addr, "0X") {
		addr = "0x" + addr
	}
	return common.HexToAddress(addr).Hex()
}


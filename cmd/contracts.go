package cmd

import (
	"fmt"
	"strconv"

	"github.com/Mohsinsiddi/plzscan/internal/contract"
	"github.com/Mohsinsiddi/plzscan/internal/ui"
	"github.com/spf13/cobra"
)

var contractsCmd = &cobra.Command{
	Use:   "contracts",
	Short: "Show the PLZCoffee contract address table",
	Long: `Show the contracts plzscan knows, their addresses and how many functions
each ABI declares. Addresses default to a fresh hardhat deployment and can
be overridden in contracts.yaml inside the config directory:

  contracts:
    plztoken: 0x...
    plznft:   0x...
    ordering: 0x...`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := contractTable()
		if err != nil {
			return err
		}

		t := ui.NewTable([]ui.Column{
			{Title: "ID", Width: 9},
			{Title: "NAME", Width: 9},
			{Title: "ADDRESS", Width: 42},
			{Title: "FUNCS", Width: 5},
			{Title: "DESCRIPTION", Width: 44},
		})
		for _, d := range table.All() {
			b, _ := contract.GetBuiltin(d.ID)
			t.AddRow(ui.Row{d.ID, d.Name, d.Address, strconv.Itoa(len(b.ABI.Functions())), b.Description})
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, t.Render())
		fmt.Fprintln(out, ui.Meta("Overrides: "+cfg.ContractsPath()))
		return nil
	},
}

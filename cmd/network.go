package cmd

import (
	"fmt"

	"github.com/Mohsinsiddi/plzscan/internal/chain"
	"github.com/Mohsinsiddi/plzscan/internal/ui"
	"github.com/spf13/cobra"
)

var networkCmd = &cobra.Command{
	Use:   "network",
	Short: "Known networks",
}

var networkListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the networks that --rpc and connect accept by name",
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := chain.NewRegistry()
		t := ui.NewTable([]ui.Column{
			{Title: "#", Width: 3},
			{Title: "Name", Width: 10},
			{Title: "Display", Width: 10},
			{Title: "Chain ID", Width: 10},
			{Title: "Currency", Width: 8},
			{Title: "Default RPC", Width: 44},
		})

		for i, n := range reg.All() {
			t.AddRow(ui.Row{
				fmt.Sprintf("%d", i+1),
				n.Name,
				n.DisplayName,
				fmt.Sprintf("%d", n.ChainID),
				n.NativeCurrency,
				n.RPC,
			})
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, t.Render())
		fmt.Fprintln(out, ui.Meta(fmt.Sprintf("%d networks. Any other http(s) URL works too.", len(reg.All()))))
		return nil
	},
}

func init() {
	networkCmd.AddCommand(networkListCmd)
}

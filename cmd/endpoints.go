package cmd

import (
	"fmt"
	"slices"

	"github.com/Mohsinsiddi/plzscan/internal/chain"
	"github.com/Mohsinsiddi/plzscan/internal/rpc"
	"github.com/Mohsinsiddi/plzscan/internal/ui"
	"github.com/spf13/cobra"
)

var (
	endpointsUse   bool
	endpointsPlain bool
)

var endpointsCmd = &cobra.Command{
	Use:     "endpoints [url-or-network...]",
	Aliases: []string{"bench"},
	Short:   "Benchmark RPC endpoints and pick the fastest",
	Long: `Ping RPC endpoints concurrently and report latency, latest block and
chain. Without arguments the configured endpoint, the recent endpoints and
the local node are measured.

Nodes more than a few blocks behind the best node on the same chain are
marked stale and never picked. --use saves the fastest healthy endpoint as
the default, like connect --save.

Examples:
  plzscan endpoints
  plzscan endpoints localhost sepolia https://my.node:8545 --use`,
	RunE: func(cmd *cobra.Command, args []string) error {
		urls := endpointCandidates(args)

		spin := ui.NewSpinnerTo(cmd.ErrOrStderr(), fmt.Sprintf("Benchmarking %d endpoint(s)…", len(urls)))
		spin.Start()
		results := rpc.Benchmark(cmd.Context(), urls, cfg.Timeout())
		spin.Stop()

		best, bestErr := rpc.Fastest(results)
		reg := chain.NewRegistry()
		top := make(map[uint64]uint64)
		for _, r := range results {
			if r.Healthy && r.BlockNumber > top[r.ChainID] {
				top[r.ChainID] = r.BlockNumber
			}
		}

		t := ui.NewTable([]ui.Column{
			{Title: "", Width: 1},
			{Title: "RPC URL", Width: 40},
			{Title: "CHAIN", Width: 12},
			{Title: "LATENCY", Width: 8},
			{Title: "BLOCK #", Width: 10},
			{Title: "STATUS", Width: 10},
		})
		for _, r := range results {
			mark, chainName, latency, block := "", "—", "—", "—"
			status := ui.Err("down")
			if r.Healthy {
				chainName = reg.Label(r.ChainID)
				latency = fmt.Sprintf("%dms", r.Latency.Milliseconds())
				block = fmt.Sprintf("%d", r.BlockNumber)
				status = ui.Success("healthy")
				if rpc.Stale(r, top[r.ChainID]) {
					status = ui.Warn("stale")
				}
			}
			if best != nil && r.URL == best.URL {
				mark = "★"
			}
			t.AddRow(ui.Row{mark, r.URL, chainName, latency, block, status})
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, t.Render())
		if bestErr != nil {
			return bestErr
		}
		fmt.Fprintln(out, ui.Info("Fastest: "+best.URL))

		if !endpointsUse {
			return nil
		}
		fileCfg.Remember(best.URL)
		if err := saveEndpoint(best.URL, endpointsPlain); err != nil {
			return err
		}
		if err := fileCfg.Save(); err != nil {
			return err
		}
		fmt.Fprintln(out, ui.Success("Saved as the default endpoint"))
		return nil
	},
}

// endpointCandidates resolves the URLs to measure, without duplicates.
func endpointCandidates(args []string) []string {
	reg := chain.NewRegistry()
	var urls []string
	add := func(u string) {
		if u != "" && !slices.Contains(urls, u) {
			urls = append(urls, u)
		}
	}

	if len(args) > 0 {
		for _, a := range args {
			add(reg.ResolveRPC(a))
		}
		return urls
	}

	if rpcFlag != "" {
		add(reg.ResolveRPC(rpcFlag))
	}
	add(cfg.RPCURL)
	for _, u := range cfg.Recent {
		add(u)
	}
	add(reg.ResolveRPC("localhost"))
	return urls
}

func init() {
	endpointsCmd.Flags().BoolVar(&endpointsUse, "use", false, "save the fastest endpoint as the default")
	endpointsCmd.Flags().BoolVar(&endpointsPlain, "plain", false, "with --use, store the URL in config.json instead of the keychain")
}

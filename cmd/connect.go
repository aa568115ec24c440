package cmd

import (
	"fmt"
	"time"

	"github.com/Mohsinsiddi/plzscan/internal/chain"
	"github.com/Mohsinsiddi/plzscan/internal/explorer"
	"github.com/Mohsinsiddi/plzscan/internal/ui"
	"github.com/spf13/cobra"
)

var (
	connectSave  bool
	connectPlain bool
)

var connectCmd = &cobra.Command{
	Use:   "connect <url-or-network>",
	Short: "Check an RPC endpoint and optionally save it",
	Long: `Connect to a JSON-RPC endpoint, print its chain and latest block, and
add it to the recent endpoints list.

With --save the endpoint becomes the default. Hosted endpoints usually embed
an API key, so the URL is stored in the OS keychain and config.json only
keeps a reference to it. Use --plain to write the URL to config.json instead.

Examples:
  plzscan connect http://127.0.0.1:8545
  plzscan connect localhost --save
  plzscan connect https://eth-sepolia.g.alchemy.com/v2/<key> --save`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := chain.NewRegistry()
		url := reg.ResolveRPC(args[0])

		log, err := consoleLogger(cmd)
		if err != nil {
			return err
		}
		opts, err := sessionOptions(log)
		if err != nil {
			return err
		}

		spin := ui.NewSpinnerTo(cmd.ErrOrStderr(), fmt.Sprintf("Connecting to %s…", url))
		spin.Start()
		s, err := explorer.Connect(cmd.Context(), url, opts)
		if err != nil {
			spin.Stop()
			return err
		}
		latency, block, err := s.Ping(cmd.Context())
		if err != nil {
			spin.Stop()
			return fmt.Errorf("%w (%v)", explorer.ErrConnect, err)
		}
		chainID, err := s.ChainID(cmd.Context())
		spin.Stop()

		chainLabel := "unknown"
		if err == nil {
			chainLabel = fmt.Sprintf("%s (%d)", reg.Label(chainID), chainID)
		}

		out := cmd.OutOrStdout()
		printBlock(out, "🔌 Connected", [][2]string{
			{"Endpoint", url},
			{"Chain", chainLabel},
			{"Latest Block Number", ui.Val(fmt.Sprintf("#%d", block))},
			{"Latency", latency.Round(time.Millisecond).String()},
		})

		fileCfg.Remember(url)
		if connectSave {
			if err := saveEndpoint(url, connectPlain); err != nil {
				return err
			}
		}
		if err := fileCfg.Save(); err != nil {
			return err
		}
		if connectSave {
			fmt.Fprintln(out, ui.Success("Saved as the default endpoint"))
		}
		return nil
	},
}

// saveEndpoint makes url the default endpoint in fileCfg. plain writes
// the URL itself instead of a keychain reference.
func saveEndpoint(url string, plain bool) error {
	if plain {
		fileCfg.RPCURL = url
		fileCfg.RPCRef = ""
		return nil
	}
	ref, err := openKeystore(fileCfg.Dir()).Store("default", url)
	if err != nil {
		return fmt.Errorf("saving endpoint to keychain: %w (retry with --plain)", err)
	}
	fileCfg.RPCURL = ""
	fileCfg.RPCRef = ref
	return nil
}

func init() {
	connectCmd.Flags().BoolVar(&connectSave, "save", false, "use this endpoint by default")
	connectCmd.Flags().BoolVar(&connectPlain, "plain", false, "with --save, store the URL in config.json instead of the keychain")
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mohsinsiddi/plzscan/internal/config"
	"github.com/Mohsinsiddi/plzscan/internal/ui"
	"github.com/spf13/cobra"
)

// Version is the current release. Overridable via build ldflags:
//
//	go build -ldflags "-X github.com/Mohsinsiddi/plzscan/cmd.Version=1.2.3" .
var Version = "0.1.0"

var (
	cfgDir  string
	rpcFlag string
	verbose bool

	// fileCfg is config.json as stored; commands that persist edit this one.
	fileCfg *config.Config
	// cfg is fileCfg with PLZSCAN_* environment overrides applied.
	cfg *config.Config
)

// rootCmd is the top-level command.
var rootCmd = &cobra.Command{
	Use:   "plzscan",
	Short: "PLZCoffee block explorer for the terminal",
	Long: `plzscan: block explorer for the PLZCoffee contracts.

  Connect to any JSON-RPC endpoint, list recent transactions with their
  function calls decoded against the PLZToken, PLZNFT and Ordering ABIs,
  and query balances, NFT ownership and beverage orders.

The endpoint comes from --rpc, then PLZSCAN_RPC_URL, then the one saved
with: plzscan connect <url> --save`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Load config (skip for commands that don't need it).
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		var err error
		fileCfg, err = config.Load(cfgDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg, err = fileCfg.Effective()
		if err != nil {
			return err
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprint(cmd.OutOrStdout(), ui.Banner())
		return cmd.Help()
	},
}

// Execute runs the root command. SIGINT and SIGTERM cancel the command's
// context so in-flight RPC calls return promptly.
func Execute() {
	ui.Version = Version
	rootCmd.Version = Version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Err(err.Error()))
		stop()
		os.Exit(1)
	}
}

func init() {
	// PLZSCAN_CONFIG_DIR env var overrides --config flag.
	if envDir := os.Getenv(config.EnvPrefix + "_CONFIG_DIR"); envDir != "" {
		cfgDir = envDir
	}

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", cfgDir, "config directory (default: ~/.plzscan)")
	rootCmd.PersistentFlags().StringVar(&rpcFlag, "rpc", "", "RPC endpoint URL or network name (e.g. localhost, sepolia)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Register all sub-commands.
	rootCmd.AddCommand(
		connectCmd,
		endpointsCmd,
		blockCmd,
		txsCmd,
		txCmd,
		selectorCmd,
		selectorsCmd,
		addressCmd,
		tokenCmd,
		nftCmd,
		orderingCmd,
		contractsCmd,
		exploreCmd,
		networkCmd,
		configCmd,
	)
}

package cmd

import (
	"context"
	"fmt"

	"github.com/Mohsinsiddi/plzscan/internal/explorer"
	"github.com/Mohsinsiddi/plzscan/internal/logger"
	"github.com/Mohsinsiddi/plzscan/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var exploreOrders int

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Open the interactive explorer",
	Long: `Open a full-screen explorer with tabs for recent transactions, PLZNFT,
PLZToken and Ordering.

If an endpoint is configured (or passed with --rpc) the explorer connects
immediately; otherwise it asks for an RPC URL. Press esc to switch
endpoints. Logs go to the log file, never to the screen.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logger.NewFile(cfg.LogPath(), logger.Options{Level: cfg.LogLevel, Verbose: verbose})
		if err != nil {
			return err
		}
		defer log.Sync() //nolint:errcheck

		url, err := endpoint()
		if err != nil {
			// The connect form still works; it just starts empty.
			log.Warn("saved endpoint unavailable", zap.Error(err))
			url = ""
		}

		opts, err := sessionOptions(log)
		if err != nil {
			return err
		}

		err = ui.RunExplore(ui.ExploreOptions{
			Connect:    sessionConnector(opts),
			URL:        url,
			Recent:     cfg.Recent,
			TxLimit:    cfg.TxLimit,
			OrderLimit: exploreOrders,
			OnConnect: func(url string) {
				fileCfg.Remember(url)
				if err := fileCfg.Save(); err != nil {
					log.Warn("saving recent endpoints", zap.Error(err))
				}
			},
			Logger: log,
		})
		if err != nil {
			return fmt.Errorf("explorer: %w", err)
		}
		return nil
	},
}

// sessionConnector adapts explorer.Connect to the explorer UI.
func sessionConnector(opts explorer.Options) ui.Connector {
	return func(ctx context.Context, url string) (ui.Source, error) {
		s, err := explorer.Connect(ctx, url, opts)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

func init() {
	exploreCmd.Flags().IntVar(&exploreOrders, "orders", 50, "orders shown on the Ordering tab (0: all)")
}

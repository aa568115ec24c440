package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Mohsinsiddi/plzscan/internal/explorer"
	"github.com/Mohsinsiddi/plzscan/internal/ui"
	"github.com/spf13/cobra"
)

var (
	txsLimit       int
	txsInteractive bool
	txsDetails     bool
	txsJSON        bool
)

var txsCmd = &cobra.Command{
	Use:   "txs",
	Short: "List recent transactions with decoded function calls",
	Long: `Walk back from the latest block and list recent transactions, newest
first. Calls to PLZToken, PLZNFT and Ordering are decoded into their
function name and parameters; anything else shows N/A.

Examples:
  plzscan txs
  plzscan txs --limit 20 --details
  plzscan txs --interactive
  plzscan txs --json | jq '.[0].params'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit := cfg.TxLimit
		if cmd.Flags().Changed("limit") {
			limit = txsLimit
		}
		if limit < 1 {
			return fmt.Errorf("--limit must be at least 1")
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}

		spin := ui.NewSpinnerTo(cmd.ErrOrStderr(), fmt.Sprintf("Fetching last %d transactions…", limit))
		spin.Start()
		txs, latest, err := s.RecentTransactions(cmd.Context(), limit)
		spin.Stop()
		if err != nil {
			return fmt.Errorf("Failed to fetch transactions: %w", err)
		}

		out := cmd.OutOrStdout()
		switch {
		case txsJSON:
			return writeTxsJSON(out, txs)
		case txsInteractive:
			return ui.RunTxList(fmt.Sprintf("Transactions · Latest Block Number: #%d", latest), txs)
		}

		if len(txs) == 0 {
			fmt.Fprintln(out, ui.Meta("No transactions found."))
			return nil
		}

		fmt.Fprintf(out, "%s  %s\n\n", ui.StyleTitle.Render("Recent Transactions"),
			ui.Meta(fmt.Sprintf("(latest block #%d, %s)", latest, s.URL())))
		if txsDetails {
			for _, tx := range txs {
				fmt.Fprintln(out, ui.TxDetail(tx))
			}
			return nil
		}

		t := ui.NewTable(ui.TxColumns())
		for _, tx := range txs {
			t.AddRow(ui.TxRow(tx))
		}
		fmt.Fprintln(out, t.Render())
		fmt.Fprintln(out, ui.Meta(fmt.Sprintf("%d transaction(s). Use --details for decoded parameters.", len(txs))))
		return nil
	},
}

// txJSON is the machine-readable form of one transaction. Params keep the
// ABI declaration order.
type txJSON struct {
	Hash     string          `json:"hash"`
	Block    uint64          `json:"block"`
	Index    uint64          `json:"index"`
	Time     int64           `json:"timestamp"`
	From     string          `json:"from"`
	To       string          `json:"to"`
	ValueETH string          `json:"value_eth"`
	Contract string          `json:"contract,omitempty"`
	Function string          `json:"function"`
	Params   json.RawMessage `json:"params"`
}

func toTxJSON(tx explorer.TxView) txJSON {
	return txJSON{
		Hash:     tx.Hash,
		Block:    tx.Block,
		Index:    tx.Index,
		Time:     tx.Time.Unix(),
		From:     tx.From,
		To:       tx.To,
		ValueETH: tx.ValueETH,
		Contract: tx.Call.Contract,
		Function: tx.Call.Name,
		Params:   json.RawMessage(tx.Call.ParamsJSON()),
	}
}

func writeTxsJSON(w io.Writer, txs []explorer.TxView) error {
	rows := make([]txJSON, 0, len(txs))
	for _, tx := range txs {
		rows = append(rows, toTxJSON(tx))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

func init() {
	txsCmd.Flags().IntVarP(&txsLimit, "limit", "n", 0, "number of transactions (default: tx_limit from config)")
	txsCmd.Flags().BoolVarP(&txsInteractive, "interactive", "i", false, "browse the list interactively")
	txsCmd.Flags().BoolVarP(&txsDetails, "details", "d", false, "print every transaction with its decoded parameters")
	txsCmd.Flags().BoolVar(&txsJSON, "json", false, "print JSON")
	txsCmd.MarkFlagsMutuallyExclusive("interactive", "json", "details")
}

package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Mohsinsiddi/plzscan/internal/contract"
	"github.com/Mohsinsiddi/plzscan/internal/ui"
	"github.com/spf13/cobra"
)

var (
	orderingLimit int
	orderJSON     bool
)

var orderingCmd = &cobra.Command{
	Use:     "ordering",
	Aliases: []string{"orders"},
	Short:   "Query the Ordering contract (menu and orders)",
}

var orderingBeveragesCmd = &cobra.Command{
	Use:   "beverages",
	Short: "List the beverages on the menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		menu, err := s.Beverages(cmd.Context())
		if err != nil {
			return queryError(err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, ui.StyleTitle.Render("Beverages"))
		if len(menu) == 0 {
			fmt.Fprintln(out, ui.Meta("The menu is empty."))
			return nil
		}
		for _, b := range menu {
			fmt.Fprintf(out, "  ☕ %s\n", b)
		}
		return nil
	},
}

var orderingOrderCmd = &cobra.Command{
	Use:   "order <id>",
	Short: "Show one order",
	Long: `Read orders(id) from the Ordering contract.

Examples:
  plzscan ordering order 0
  plzscan ordering order 3 --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			return contract.ErrOrderNotFound
		}

		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		order, err := s.Order(cmd.Context(), id)
		if err != nil {
			return queryError(err)
		}

		out := cmd.OutOrStdout()
		if orderJSON {
			data, err := json.MarshalIndent(order, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		}
		printBlock(out, fmt.Sprintf("Order #%d", order.ID), [][2]string{
			{"Customer", ui.Addr(order.Customer)},
			{"Beverage", order.Beverage},
			{"Status", orderStatus(order.Fulfilled)},
		})
		return nil
	},
}

var orderingListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders, oldest first",
	Long: `List orders from the Ordering contract. The contract has no order count,
so orders are read by index until a call reverts. A network error stops the
listing with an error rather than a short list.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		orders, err := s.Orders(cmd.Context(), orderingLimit)
		if err != nil {
			return fmt.Errorf("Failed to fetch orders: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(orders) == 0 {
			fmt.Fprintln(out, ui.Meta("No orders yet."))
			return nil
		}
		fmt.Fprintln(out, ui.OrderTable(orders).Render())
		fmt.Fprintln(out, ui.Meta(fmt.Sprintf("%d order(s)", len(orders))))
		return nil
	},
}

func orderStatus(fulfilled bool) string {
	if fulfilled {
		return ui.Success("fulfilled")
	}
	return ui.Warn("pending")
}

func init() {
	orderingOrderCmd.Flags().BoolVar(&orderJSON, "json", false, "print JSON")
	orderingListCmd.Flags().IntVarP(&orderingLimit, "limit", "n", 0, "maximum number of orders (0: all)")
	orderingCmd.AddCommand(orderingBeveragesCmd, orderingOrderCmd, orderingListCmd)
}

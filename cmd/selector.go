package cmd

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/plzscan/internal/abi"
	"github.com/Mohsinsiddi/plzscan/internal/contract"
	"github.com/Mohsinsiddi/plzscan/internal/decoder"
	"github.com/Mohsinsiddi/plzscan/internal/explorer"
	"github.com/Mohsinsiddi/plzscan/internal/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var selectorCmd = &cobra.Command{
	Use:   "selector <signature-or-selector>",
	Short: "Compute or look up a 4-byte function selector",
	Long: `Compute a 4-byte function selector from a signature, or look up a
selector in the PLZCoffee ABIs.

Examples:
  plzscan selector "transfer(address,uint256)"      # → 0xa9059cbb
  plzscan selector "placeOrder(string beverage)"    # → 0x453217f8
  plzscan selector 0x6311e830                       # → Ordering.fulfillOrder`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input := strings.TrimSpace(args[0])
		dec := explorer.NewDecoder(zap.NewNop())
		out := cmd.OutOrStdout()

		// If input starts with 0x, it's a selector to look up.
		if strings.HasPrefix(input, "0x") || strings.HasPrefix(input, "0X") {
			sel, err := parseSelector(input)
			if err != nil {
				return err
			}
			pairs := [][2]string{{"Selector", "0x" + hex.EncodeToString(sel[:])}}
			if sig, ok := dec.Lookup(sel); ok {
				pairs = append(pairs,
					[2]string{"Contract", sig.Contract},
					[2]string{"Function", ui.Func(sig.Entry.Signature())})
			} else {
				pairs = append(pairs, [2]string{"Function", ui.Func(decoder.Unknown)})
			}
			printBlock(out, "Selector Lookup", pairs)
			return nil
		}

		// Otherwise, compute selector from signature.
		sig := normalizeSignature(input)
		hash := abi.Keccak256([]byte(sig))
		var sel [4]byte
		copy(sel[:], hash[:4])

		pairs := [][2]string{
			{"Signature", sig},
			{"Selector", ui.Val("0x" + hex.EncodeToString(sel[:]))},
			{"Full Hash", "0x" + hex.EncodeToString(hash)},
		}
		if known, ok := dec.Lookup(sel); ok {
			pairs = append(pairs, [2]string{"Known As", known.Contract + "." + known.Entry.Name})
		}
		printBlock(out, "Function Selector", pairs)
		return nil
	},
}

var selectorsCmd = &cobra.Command{
	Use:   "selectors [contract]",
	Short: "List the selector table used to decode transactions",
	Long: `List every function selector the decoder recognises, in lookup order.
Pass a contract ID (plztoken, plznft, ordering) to show only its functions.

When two contracts share a selector, the first one listed owns it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var only string
		if len(args) == 1 {
			b, ok := contract.GetBuiltin(strings.ToLower(args[0]))
			if !ok {
				return fmt.Errorf("unknown contract %q (want plztoken, plznft or ordering)", args[0])
			}
			only = b.Name
		}

		t := ui.NewTable([]ui.Column{
			{Title: "CONTRACT", Width: 10},
			{Title: "SELECTOR", Width: 10},
			{Title: "SIGNATURE", Width: 48},
			{Title: "MUTABILITY", Width: 10},
		})
		n := 0
		for _, sig := range explorer.NewDecoder(zap.NewNop()).Signatures() {
			if only != "" && sig.Contract != only {
				continue
			}
			mut := sig.Entry.StateMutability
			if mut == "" {
				mut = "—"
			}
			t.AddRow(ui.Row{sig.Contract, sig.Hex(), sig.Entry.Signature(), mut})
			n++
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, t.Render())
		fmt.Fprintln(out, ui.Meta(fmt.Sprintf("%d selector(s)", n)))
		return nil
	},
}

// parseSelector reads a 0x-prefixed 4-byte selector. Longer input is
// treated as calldata and its first 4 bytes are used.
func parseSelector(s string) ([4]byte, error) {
	var sel [4]byte
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X"))
	if err != nil {
		return sel, fmt.Errorf("invalid selector %q: %w", s, err)
	}
	if len(raw) < 4 {
		return sel, fmt.Errorf("invalid selector %q: need 4 bytes, got %d", s, len(raw))
	}
	copy(sel[:], raw[:4])
	return sel, nil
}

// normalizeSignature removes parameter names, keeping only types.
// "transfer(address to, uint256 amount)" → "transfer(address,uint256)"
func normalizeSignature(sig string) string {
	parenIdx := strings.Index(sig, "(")
	if parenIdx < 0 || !strings.HasSuffix(sig, ")") {
		return sig
	}

	name := strings.TrimSpace(sig[:parenIdx])
	paramStr := sig[parenIdx+1 : len(sig)-1]

	if strings.TrimSpace(paramStr) == "" {
		return name + "()"
	}

	params := strings.Split(paramStr, ",")
	var types []string
	for _, p := range params {
		// Take only the first word (the type), skip the name.
		parts := strings.Fields(p)
		if len(parts) > 0 {
			types = append(types, parts[0])
		}
	}

	return name + "(" + strings.Join(types, ",") + ")"
}

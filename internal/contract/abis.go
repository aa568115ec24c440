package contract

import (
	"sort"

	"github.com/Mohsinsiddi/plzscan/internal/abi"
)

// BuiltinKind describes a PLZCoffee contract whose ABI is embedded in the
// binary. Each built-in registers itself via init() in its own
// <name>_abi.go file.
type BuiltinKind struct {
	ID          string  // machine key, e.g. "plztoken"
	Name        string  // display name, e.g. "PLZToken"
	Description string  // one-line summary shown in `plzscan contracts`
	Order       int     // position in the decoder search order
	ABI         abi.ABI // full ABI, ready to use
}

var builtinRegistry = map[string]BuiltinKind{}

// RegisterBuiltin adds a built-in ABI to the global registry.
// Call this from init() in the file that defines the ABI.
func RegisterBuiltin(b BuiltinKind) {
	builtinRegistry[b.ID] = b
}

// GetBuiltin returns a built-in by ID. ok is false if not found.
func GetBuiltin(id string) (BuiltinKind, bool) {
	b, ok := builtinRegistry[id]
	return b, ok
}

// GetBuiltinABI returns the ABI for a built-in ID, or nil if unknown.
func GetBuiltinABI(id string) abi.ABI {
	b, ok := builtinRegistry[id]
	if !ok {
		return nil
	}
	return b.ABI
}

// AllBuiltins returns all registered built-ins in decoder search order
// (Ordering, PLZToken, PLZNFT). Ties fall back to ID.
func AllBuiltins() []BuiltinKind {
	out := make([]BuiltinKind, 0, len(builtinRegistry))
	for _, b := range builtinRegistry {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Order != out[j].Order {
			return out[i].Order < out[j].Order
		}
		return out[i].ID < out[j].ID
	})
	return out
}

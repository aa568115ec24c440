package contract

import "github.com/Mohsinsiddi/plzscan/internal/abi"

// Ordering takes beverage orders paid in PLZToken. orders is the public
// getter of an append-only array, so it reverts past the last index; the
// contract exposes no count.
//
// Function selectors:
//
//	getAllValidBeverages()   → 0xae812b97
//	orders(uint256)          → 0xa85c38ef
//	placeOrder(string)       → 0x453217f8
//	fulfillOrder(uint256)    → 0x6311e830
//	addBeverage(string)      → 0x0495fb3f
//	removeBeverage(string)   → 0xf1fd27b5
//	owner()                  → 0x8da5cb5b
func init() {
	RegisterBuiltin(BuiltinKind{
		ID:          Ordering,
		Name:        "Ordering",
		Description: "Beverage menu and order book; orders are paid in PLZ.",
		Order:       0,
		ABI:         orderingABI,
	})
}

var orderingABI = abi.ABI{
	// ── read ─────────────────────────────────────────────────────────────────
	{
		Name: "getAllValidBeverages", Type: "function",
		Outputs:         []abi.Param{{Type: "string[]"}},
		StateMutability: "view",
	},
	{
		Name: "orders", Type: "function",
		Inputs: []abi.Param{{Type: "uint256"}},
		Outputs: []abi.Param{
			{Name: "customer", Type: "address"},
			{Name: "beverage", Type: "string"},
			{Name: "fulfilled", Type: "bool"},
		},
		StateMutability: "view",
	},
	{
		Name: "owner", Type: "function",
		Outputs:         []abi.Param{{Type: "address"}},
		StateMutability: "view",
	},
	// ── write ────────────────────────────────────────────────────────────────
	{
		Name: "placeOrder", Type: "function",
		Inputs:          []abi.Param{{Name: "beverage", Type: "string"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "fulfillOrder", Type: "function",
		Inputs:          []abi.Param{{Name: "orderId", Type: "uint256"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "addBeverage", Type: "function",
		Inputs:          []abi.Param{{Name: "beverage", Type: "string"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "removeBeverage", Type: "function",
		Inputs:          []abi.Param{{Name: "beverage", Type: "string"}},
		StateMutability: "nonpayable",
	},
	// ── events ───────────────────────────────────────────────────────────────
	{
		Name: "OrderPlaced", Type: "event",
		Inputs: []abi.Param{
			{Name: "orderId", Type: "uint256", Indexed: true},
			{Name: "customer", Type: "address", Indexed: true},
			{Name: "beverage", Type: "string"},
		},
	},
	{
		Name: "OrderFulfilled", Type: "event",
		Inputs: []abi.Param{
			{Name: "orderId", Type: "uint256", Indexed: true},
		},
	},
}

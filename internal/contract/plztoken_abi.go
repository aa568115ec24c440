package contract

import "github.com/Mohsinsiddi/plzscan/internal/abi"

// PLZToken is the PLZCoffee payment token: an ERC-20 with a rate-limited
// faucet. lastRequestedAt stores the unix time of an account's last faucet
// claim (zero when it never claimed).
//
// Function selectors:
//
//	name()                → 0x06fdde03
//	symbol()              → 0x95d89b41
//	decimals()            → 0x313ce567
//	totalSupply()         → 0x18160ddd
//	balanceOf(address)    → 0x70a08231
//	allowance(a,a)        → 0xdd62ed3e
//	transfer(a,u256)      → 0xa9059cbb
//	approve(a,u256)       → 0x095ea7b3
//	transferFrom(a,a,u)   → 0x23b872dd
//	lastRequestedAt(a)    → 0xa0662d89
//	requestTokens()       → 0x359cf2b7
//	owner()               → 0x8da5cb5b
func init() {
	RegisterBuiltin(BuiltinKind{
		ID:          PLZToken,
		Name:        "PLZToken",
		Description: "ERC-20 payment token with a faucet (requestTokens / lastRequestedAt).",
		Order:       1,
		ABI:         plzTokenABI,
	})
}

var plzTokenABI = abi.ABI{
	// ── ERC-20 read ──────────────────────────────────────────────────────────
	{
		Name: "name", Type: "function",
		Outputs:         []abi.Param{{Type: "string"}},
		StateMutability: "view",
	},
	{
		Name: "symbol", Type: "function",
		Outputs:         []abi.Param{{Type: "string"}},
		StateMutability: "view",
	},
	{
		Name: "decimals", Type: "function",
		Outputs:         []abi.Param{{Type: "uint8"}},
		StateMutability: "view",
	},
	{
		Name: "totalSupply", Type: "function",
		Outputs:         []abi.Param{{Type: "uint256"}},
		StateMutability: "view",
	},
	{
		Name: "balanceOf", Type: "function",
		Inputs:          []abi.Param{{Name: "account", Type: "address"}},
		Outputs:         []abi.Param{{Type: "uint256"}},
		StateMutability: "view",
	},
	{
		Name: "allowance", Type: "function",
		Inputs: []abi.Param{
			{Name: "owner", Type: "address"},
			{Name: "spender", Type: "address"},
		},
		Outputs:         []abi.Param{{Type: "uint256"}},
		StateMutability: "view",
	},
	// ── ERC-20 write ─────────────────────────────────────────────────────────
	{
		Name: "transfer", Type: "function",
		Inputs: []abi.Param{
			{Name: "to", Type: "address"},
			{Name: "value", Type: "uint256"},
		},
		Outputs:         []abi.Param{{Type: "bool"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "approve", Type: "function",
		Inputs: []abi.Param{
			{Name: "spender", Type: "address"},
			{Name: "value", Type: "uint256"},
		},
		Outputs:         []abi.Param{{Type: "bool"}},
		StateMutability: "nonpayable",
	},
	{
		Name: "transferFrom", Type: "function",
		Inputs: []abi.Param{
			{Name: "from", Type: "address"},
			{Name: "to", Type: "address"},
			{Name: "value", Type: "uint256"},
		},
		Outputs:         []abi.Param{{Type: "bool"}},
		StateMutability: "nonpayable",
	},
	// ── faucet ───────────────────────────────────────────────────────────────
	{
		Name: "lastRequestedAt", Type: "function",
		Inputs:          []abi.Param{{Type: "address"}},
		Outputs:         []abi.Param{{Type: "uint256"}},
		StateMutability: "view",
	},
	{
		Name: "requestTokens", Type: "function",
		StateMutability: "nonpayable",
	},
	// ── ownable ──────────────────────────────────────────────────────────────
	{
		Name: "owner", Type: "function",
		Outputs:         []abi.Param{{Type: "address"}},
		StateMutability: "view",
	},
	// ── events ───────────────────────────────────────────────────────────────
	{
		Name: "Transfer", Type: "event",
		Inputs: []abi.Param{
			{Name: "from", Type: "address", Indexed: true},
			{Name: "to", Type: "address", Indexed: true},
			{Name: "value", Type: "uint256"},
		},
	},
	{
		Name: "Approval", Type: "event",
		Inputs: []abi.Param{
			{Name: "owner", Type: "address", Indexed: true},
			{Name: "spender", Type: "address", Indexed: true},
			{Name: "value", Type: "uint256"},
		},
	},
}

package contract

import "github.com/Mohsinsiddi/plzscan/internal/abi"

// PLZNFT is the PLZCoffee membership NFT, a plain ERC-721 with an owner-only
// mint. Selectors shared with PLZToken (balanceOf, approve, transferFrom)
// decode as PLZToken because PLZToken is searched first.
//
// Function selectors:
//
//	balanceOf(address)         → 0x70a08231
//	ownerOf(uint256)           → 0x6352211e
//	tokenURI(uint256)          → 0xc87b56dd
//	getApproved(uint256)       → 0x081812fc
//	isApprovedForAll(a,a)      → 0xe985e9c5
//	setApprovalForAll(a,bool)  → 0xa22cb465
//	safeTransferFrom(a,a,u)    → 0x42842e0e
//	safeTransferFrom(a,a,u,b)  → 0xb88d4fde
//	supportsInterface(bytes4)  → 0x01ffc9a7
//	mint(address)              → 0x6a627842
func init() {
	RegisterBuiltin(BuiltinKind{
		ID:          PLZNFT,
		Name:        "PLZNFT",
		Description: "ERC-721 membership NFT; holding one marks a PLZCoffee member.",
		Order:       2,
		ABI:         plzNFTABI,
	})
}

var plzNFTABI = abi.ABI{
	// ── metadata ─────────────────────────────────────────────────────────────
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
		Name: "tokenURI", Type: "function",
		Inputs:          []abi.Param{{Name: "tokenId", Type: "uint256"}},
		Outputs:         []abi.Param{{Type: "string"}},
		StateMutability: "view",
	},
	{
		Name: "supportsInterface", Type: "function",
		Inputs:          []abi.Param{{Name: "interfaceId", Type: "bytes4"}},
		Outputs:         []abi.Param{{Type: "bool"}},
		StateMutability: "view",
	},
	// ── ERC-721 read ─────────────────────────────────────────────────────────
	{
		Name: "balanceOf", Type: "function",
		Inputs:          []abi.Param{{Name: "owner", Type: "address"}},
		Outputs:         []abi.Param{{Type: "uint256"}},
		StateMutability: "view",
	},
	{
		Name: "ownerOf", Type: "function",
		Inputs:          []abi.Param{{Name: "tokenId", Type: "uint256"}},
		Outputs:         []abi.Param{{Type: "address"}},
		StateMutability: "view",
	},
	{
		Name: "getApproved", Type: "function",
		Inputs:          []abi.Param{{Name: "tokenId", Type: "uint256"}},
		Outputs:         []abi.Param{{Type: "address"}},
		StateMutability: "view",
	},
	{
		Name: "isApprovedForAll", Type: "function",
		Inputs: []abi.Param{
			{Name: "owner", Type: "address"},
			{Name: "operator", Type: "address"},
		},
		Outputs:         []abi.Param{{Type: "bool"}},
		StateMutability: "view",
	},
	// ── ERC-721 write ────────────────────────────────────────────────────────
	{
		Name: "approve", Type: "function",
		Inputs: []abi.Param{
			{Name: "to", Type: "address"},
			{Name: "tokenId", Type: "uint256"},
		},
		StateMutability: "nonpayable",
	},
	{
		Name: "setApprovalForAll", Type: "function",
		Inputs: []abi.Param{
			{Name: "operator", Type: "address"},
			{Name: "approved", Type: "bool"},
		},
		StateMutability: "nonpayable",
	},
	{
		Name: "transferFrom", Type: "function",
		Inputs: []abi.Param{
			{Name: "from", Type: "address"},
			{Name: "to", Type: "address"},
			{Name: "tokenId", Type: "uint256"},
		},
		StateMutability: "nonpayable",
	},
	{
		Name: "safeTransferFrom", Type: "function",
		Inputs: []abi.Param{
			{Name: "from", Type: "address"},
			{Name: "to", Type: "address"},
			{Name: "tokenId", Type: "uint256"},
		},
		StateMutability: "nonpayable",
	},
	{
		Name: "safeTransferFrom", Type: "function",
		Inputs: []abi.Param{
			{Name: "from", Type: "address"},
			{Name: "to", Type: "address"},
			{Name: "tokenId", Type: "uint256"},
			{Name: "data", Type: "bytes"},
		},
		StateMutability: "nonpayable",
	},
	{
		Name: "mint", Type: "function",
		Inputs:          []abi.Param{{Name: "to", Type: "address"}},
		StateMutability: "nonpayable",
	},
	// ── events ───────────────────────────────────────────────────────────────
	{
		Name: "Transfer", Type: "event",
		Inputs: []abi.Param{
			{Name: "from", Type: "address", Indexed: true},
			{Name: "to", Type: "address", Indexed: true},
			{Name: "tokenId", Type: "uint256", Indexed: true},
		},
	},
}

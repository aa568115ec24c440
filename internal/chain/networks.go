package chain

import (
	"errors"
	"strconv"
	"strings"
)

// ErrNetworkNotFound is returned when a network is not in the registry.
var ErrNetworkNotFound = errors.New("network not found")

// Network holds the metadata plzscan knows about a chain it can explore.
type Network struct {
	Name           string `json:"name"`
	DisplayName    string `json:"display_name"`
	ChainID        uint64 `json:"chain_id"`
	NativeCurrency string `json:"native_currency"`
	RPC            string `json:"rpc"`
	Explorer       string `json:"explorer,omitempty"`
}

// Registry is a lookup table of known networks.
type Registry struct {
	networks []Network
	byName   map[string]*Network
	byID     map[uint64]*Network
}

// NewRegistry returns the registry of networks PLZCoffee is deployed to.
func NewRegistry() *Registry {
	networks := allNetworks()
	r := &Registry{
		networks: networks,
		byName:   make(map[string]*Network, len(networks)),
		byID:     make(map[uint64]*Network, len(networks)),
	}
	for i := range r.networks {
		n := &r.networks[i]
		r.byName[n.Name] = n
		if _, dup := r.byID[n.ChainID]; !dup {
			r.byID[n.ChainID] = n
		}
	}
	return r
}

// All returns every network in the registry.
func (r *Registry) All() []Network {
	return r.networks
}

// GetByName finds a network by its slug (e.g. "localhost", "sepolia").
func (r *Registry) GetByName(name string) (*Network, error) {
	n, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, ErrNetworkNotFound
	}
	return n, nil
}

// GetByChainID finds a network by its numeric chain ID.
func (r *Registry) GetByChainID(id uint64) (*Network, error) {
	n, ok := r.byID[id]
	if !ok {
		return nil, ErrNetworkNotFound
	}
	return n, nil
}

// ResolveRPC turns a network slug into its default RPC URL. Anything that
// is not a known slug is returned unchanged and treated as a URL.
func (r *Registry) ResolveRPC(nameOrURL string) string {
	if n, err := r.GetByName(nameOrURL); err == nil {
		return n.RPC
	}
	return strings.TrimSpace(nameOrURL)
}

// Label renders a short human name for a chain ID, falling back to the number.
func (r *Registry) Label(id uint64) string {
	if n, err := r.GetByChainID(id); err == nil {
		return n.DisplayName
	}
	return "chain " + strconv.FormatUint(id, 10)
}

// --- network data ---

func allNetworks() []Network {
	return []Network{
		{
			Name: "localhost", DisplayName: "Localhost", ChainID: 31337,
			NativeCurrency: "ETH",
			RPC:            "http://127.0.0.1:8545",
		},
		{
			Name: "ganache", DisplayName: "Ganache", ChainID: 1337,
			NativeCurrency: "ETH",
			RPC:            "http://127.0.0.1:7545",
		},
		{
			Name: "sepolia", DisplayName: "Sepolia", ChainID: 11155111,
			NativeCurrency: "ETH",
			RPC:            "https://rpc.sepolia.org",
			Explorer:       "https://sepolia.etherscan.io",
		},
		{
			Name: "holesky", DisplayName: "Holesky", ChainID: 17000,
			NativeCurrency: "ETH",
			RPC:            "https://ethereum-holesky-rpc.publicnode.com",
			Explorer:       "https://holesky.etherscan.io",
		},
		{
			Name: "ethereum", DisplayName: "Ethereum", ChainID: 1,
			NativeCurrency: "ETH",
			RPC:            "https://ethereum-rpc.publicnode.com",
			Explorer:       "https://etherscan.io",
		},
	}
}

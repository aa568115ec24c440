package chain_test

import (
	"testing"

	"github.com/Mohsinsiddi/plzscan/internal/chain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryGetByName(t *testing.T) {
	registry := chain.NewRegistry()

	tests := []struct {
		name    string
		chainID uint64
	}{
		{"localhost", 31337},
		{"ganache", 1337},
		{"sepolia", 11155111},
		{"holesky", 17000},
		{"ethereum", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := registry.GetByName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.chainID, n.ChainID)
			assert.NotEmpty(t, n.RPC)
		})
	}
}

func TestRegistryNameIsCaseInsensitive(t *testing.T) {
	n, err := chain.NewRegistry().GetByName("  Sepolia ")
	require.NoError(t, err)
	assert.Equal(t, "sepolia", n.Name)
}

func TestRegistryUnknownNetwork(t *testing.T) {
	registry := chain.NewRegistry()

	_, err := registry.GetByName("plasma")
	assert.ErrorIs(t, err, chain.ErrNetworkNotFound)

	_, err = registry.GetByChainID(424242)
	assert.ErrorIs(t, err, chain.ErrNetworkNotFound)
}

func TestResolveRPC(t *testing.T) {
	registry := chain.NewRegistry()

	assert.Equal(t, "http://127.0.0.1:8545", registry.ResolveRPC("localhost"))
	assert.Equal(t, "http://10.0.0.5:8545", registry.ResolveRPC(" http://10.0.0.5:8545 "))
}

func TestLabel(t *testing.T) {
	registry := chain.NewRegistry()

	assert.Equal(t, "Localhost", registry.Label(31337))
	assert.Equal(t, "chain 99", registry.Label(99))
}

func TestNetworkChainIDsUnique(t *testing.T) {
	seen := map[uint64]string{}
	for _, n := range chain.NewRegistry().All() {
		if prev, dup := seen[n.ChainID]; dup {
			t.Errorf("chain id %d used by %s and %s", n.ChainID, prev, n.Name)
		}
		seen[n.ChainID] = n.Name
	}
}

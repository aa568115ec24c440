package secrets

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const endpoint = "https://eth-sepolia.g.alchemy.com/v2/secret-api-key"

func TestInMemoryKeystoreRoundTrip(t *testing.T) {
	ks := NewInMemoryKeystore()

	ref, err := ks.Store("default", endpoint)
	require.NoError(t, err)
	assert.Equal(t, "plzscan.default", ref)

	got, err := ks.Retrieve(ref)
	require.NoError(t, err)
	assert.Equal(t, endpoint, got)

	require.NoError(t, ks.Delete(ref))
	_, err = ks.Retrieve(ref)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestKeystoreWithArrayBackend(t *testing.T) {
	ks := &Keystore{ring: keyring.NewArrayKeyring(nil)}

	ref, err := ks.Store("default", endpoint)
	require.NoError(t, err)

	got, err := ks.Retrieve(ref)
	require.NoError(t, err)
	assert.Equal(t, endpoint, got)

	require.NoError(t, ks.Delete(ref))
	_, err = ks.Retrieve(ref)
	assert.ErrorIs(t, err, ErrNotFound)

	// deleting twice is fine
	assert.NoError(t, ks.Delete(ref))
}

func TestKeystoreNilRing(t *testing.T) {
	ks := &Keystore{}

	_, err := ks.Store("default", endpoint)
	assert.Error(t, err)

	_, err = ks.Retrieve("plzscan.default")
	assert.Error(t, err)

	assert.NoError(t, ks.Delete("plzscan.default"))
}

func TestResolveEndpoint(t *testing.T) {
	ks := NewInMemoryKeystore()
	ref, _ := ks.Store("default", endpoint)

	tests := []struct {
		name    string
		url     string
		ref     string
		want    string
		wantErr bool
	}{
		{"explicit url wins", "http://127.0.0.1:8545", ref, "http://127.0.0.1:8545", false},
		{"keychain ref", "", ref, endpoint, false},
		{"nothing configured", "", "", "", false},
		{"dangling ref", "", "plzscan.gone", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveEndpoint(ks, tt.url, tt.ref)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

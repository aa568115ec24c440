package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohsinsiddi/plzscan/internal/contract"
)

func TestToChecksumAddress_VitalikAddress(t *testing.T) {
	// Known EIP-55 checksum for vitalik's address.
	assert.Equal(t, "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045",
		toChecksumAddress("d8da6bf26964af9d7eed9e03e53415d37aa96045"))
}

func TestToChecksumAddress_PLZToken(t *testing.T) {
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		toChecksumAddress("0x5fbdb2315678afecb367f032d93f642f64180aa3"))
}

func TestToChecksumAddress_ZeroAddress(t *testing.T) {
	assert.Equal(t, "0x0000000000000000000000000000000000000000",
		toChecksumAddress("0000000000000000000000000000000000000000"))
}

func TestAddressCmd_NotChecksummed(t *testing.T) {
	out, err := run(t, "address", "0x5fbdb2315678afecb367f032d93f642f64180aa3")

	require.NoError(t, err)
	assert.Contains(t, out, "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	assert.Contains(t, out, "not checksummed")
	assert.Contains(t, out, "PLZToken")
}

func TestAddressCmd_Checksummed(t *testing.T) {
	out, err := run(t, "address", "0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045")

	require.NoError(t, err)
	assert.Contains(t, out, "correctly checksummed")
	assert.NotContains(t, out, "Contract")
}

func TestAddressCmd_Mismatch(t *testing.T) {
	out, err := run(t, "address", "0xD8dA6BF26964aF9D7eEd9e03E53415D37aA96045")

	require.NoError(t, err)
	assert.Contains(t, out, "checksum mismatch")
}

func TestAddressCmd_Invalid(t *testing.T) {
	_, err := run(t, "address", "0x1234")
	assert.ErrorIs(t, err, contract.ErrInvalidAddress)
}

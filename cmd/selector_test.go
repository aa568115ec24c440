package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// normalizeSignature
// ---------------------------------------------------------------------------

func TestNormalizeSignature_AlreadyCanonical(t *testing.T) {
	assert.Equal(t, "transfer(address,uint256)", normalizeSignature("transfer(address,uint256)"))
}

func TestNormalizeSignature_WithNames(t *testing.T) {
	assert.Equal(t, "transfer(address,uint256)", normalizeSignature("transfer(address to, uint256 amount)"))
}

func TestNormalizeSignature_NoParams(t *testing.T) {
	assert.Equal(t, "getAllValidBeverages()", normalizeSignature("getAllValidBeverages()"))
	assert.Equal(t, "requestTokens()", normalizeSignature("requestTokens( )"))
}

func TestNormalizeSignature_SingleParam(t *testing.T) {
	assert.Equal(t, "placeOrder(string)", normalizeSignature("placeOrder(string beverage)"))
}

func TestNormalizeSignature_NoParens(t *testing.T) {
	assert.Equal(t, "noop", normalizeSignature("noop"))
	assert.Equal(t, "broken(uint256", normalizeSignature("broken(uint256"))
}

func TestNormalizeSignature_ExtraSpaces(t *testing.T) {
	assert.Equal(t, "approve(address,uint256)", normalizeSignature("approve(  address  spender ,  uint256  amount  )"))
}

// ---------------------------------------------------------------------------
// parseSelector
// ---------------------------------------------------------------------------

func TestParseSelector(t *testing.T) {
	sel, err := parseSelector("0xa9059cbb")
	require.NoError(t, err)
	assert.Equal(t, [4]byte{0xa9, 0x05, 0x9c, 0xbb}, sel)

	// calldata: first 4 bytes only
	sel, err = parseSelector("0X6311e830" + "0000000000000000000000000000000000000000000000000000000000000003")
	require.NoError(t, err)
	assert.Equal(t, [4]byte{0x63, 0x11, 0xe8, 0x30}, sel)
}

func TestParseSelector_Invalid(t *testing.T) {
	_, err := parseSelector("0xa905")
	assert.ErrorContains(t, err, "need 4 bytes")

	_, err = parseSelector("0xzzzzzzzz")
	assert.Error(t, err)
}

// ---------------------------------------------------------------------------
// selector / selectors commands
// ---------------------------------------------------------------------------

func TestSelectorCmd_ComputesAndRecognises(t *testing.T) {
	out, err := run(t, "selector", "placeOrder(string beverage)")

	require.NoError(t, err)
	assert.Contains(t, out, "placeOrder(string)")
	assert.Contains(t, out, "0x453217f8")
	assert.Contains(t, out, "Ordering.placeOrder")
}

func TestSelectorCmd_Lookup(t *testing.T) {
	out, err := run(t, "selector", "0x6311e830")

	require.NoError(t, err)
	assert.Contains(t, out, "Ordering")
	assert.Contains(t, out, "fulfillOrder(uint256)")
}

func TestSelectorCmd_LookupUnknown(t *testing.T) {
	out, err := run(t, "selector", "0xdeadbeef")

	require.NoError(t, err)
	assert.Contains(t, out, "N/A")
}

func TestSelectorsCmd_FiltersByContract(t *testing.T) {
	out, err := run(t, "selectors", "ordering")

	require.NoError(t, err)
	assert.Contains(t, out, "getAllValidBeverages()")
	assert.NotContains(t, out, "requestTokens()")

	_, err = run(t, "selectors", "weth")
	assert.ErrorContains(t, err, "unknown contract")
}

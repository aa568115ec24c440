package contract_test

import (
	"context"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mohsinsiddi/plzscan/internal/chain"
	"github.com/Mohsinsiddi/plzscan/internal/contract"
)

const (
	tokenAddr    = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	nftAddr      = "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"
	orderingAddr = "0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0"
	alice        = "0x1111111111111111111111111111111111111111"
)

func TestCallerPacksArguments(t *testing.T) {
	tokenABI := contract.GetBuiltinABI(contract.PLZToken)
	b := newFakeBackend()

	var gotArgs []byte
	b.on(t, tokenABI, "balanceOf", func(args []byte) ([]byte, error) {
		gotArgs = args
		return common.LeftPadBytes(big.NewInt(7).Bytes(), 32), nil
	})

	c := contract.NewCaller(b, tokenAddr, tokenABI)
	out, err := c.Call(context.Background(), "balanceOf", common.HexToAddress(alice))

	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "7", out[0].(*big.Int).String())
	assert.Equal(t, "0000000000000000000000001111111111111111111111111111111111111111", hex.EncodeToString(gotArgs))
	assert.Equal(t, []string{tokenAddr + ":0x70a08231"}, b.calls)
}

func TestCallerRefusesWriteFunction(t *testing.T) {
	b := newFakeBackend()
	c := contract.NewCaller(b, tokenAddr, contract.GetBuiltinABI(contract.PLZToken))

	_, err := c.Call(context.Background(), "requestTokens")

	assert.ErrorIs(t, err, contract.ErrNotReadOnly)
	assert.Zero(t, b.callCount())
}

func TestCallerUnknownFunction(t *testing.T) {
	c := contract.NewCaller(newFakeBackend(), tokenAddr, contract.GetBuiltinABI(contract.PLZToken))

	_, err := c.Call(context.Background(), "brew")

	assert.ErrorIs(t, err, contract.ErrFunctionNotFound)
}

func TestCallerBadArgument(t *testing.T) {
	c := contract.NewCaller(newFakeBackend(), tokenAddr, contract.GetBuiltinABI(contract.PLZToken))

	_, err := c.Call(context.Background(), "balanceOf", "not-an-address")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "encoding balanceOf call")
}

func TestCallerEmptyResult(t *testing.T) {
	tokenABI := contract.GetBuiltinABI(contract.PLZToken)
	b := newFakeBackend()
	b.on(t, tokenABI, "totalSupply", func([]byte) ([]byte, error) { return nil, nil })

	_, err := contract.NewCaller(b, tokenAddr, tokenABI).Call(context.Background(), "totalSupply")

	assert.ErrorIs(t, err, contract.ErrNoCode)
}

func TestCallerPassesRevertThrough(t *testing.T) {
	tokenABI := contract.GetBuiltinABI(contract.PLZToken)
	b := newFakeBackend()
	b.on(t, tokenABI, "totalSupply", func([]byte) ([]byte, error) {
		return nil, &chain.RPCError{Code: chain.CodeExecution, Message: "execution reverted"}
	})

	_, err := contract.NewCaller(b, tokenAddr, tokenABI).Call(context.Background(), "totalSupply")

	require.Error(t, err)
	assert.True(t, chain.IsRevert(err))
}

func TestCallerHas(t *testing.T) {
	c := contract.NewCaller(newFakeBackend(), orderingAddr, contract.GetBuiltinABI(contract.Ordering))

	assert.True(t, c.Has("orders"))
	assert.False(t, c.Has("placeOrder"))
	assert.False(t, c.Has("orderCount"))
}

func TestNewBuiltinCaller(t *testing.T) {
	c, err := contract.NewBuiltinCaller(newFakeBackend(), contract.PLZNFT, nftAddr)
	require.NoError(t, err)
	assert.Equal(t, nftAddr, c.Address())

	_, err = contract.NewBuiltinCaller(newFakeBackend(), "espresso", nftAddr)
	assert.Error(t, err)
}

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{alice, true},
		{"0x5fbdb2315678afecb367f032d93f642f64180aa3", true},
		{"  " + alice + " ", true},
		{"1111111111111111111111111111111111111111", false},
		{"0x1234", false},
		{"0xZZ11111111111111111111111111111111111111", false},
		{"", false},
		{"alice.eth", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := contract.ValidateAddress(tt.in)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, contract.ErrInvalidAddress)
			}
		})
	}
}

func TestInvalidAddressMessage(t *testing.T) {
	assert.Equal(t, "Invalid address. Please enter a valid Ethereum address.", contract.ErrInvalidAddress.Error())
}

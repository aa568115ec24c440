package contract

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/Mohsinsiddi/plzscan/internal/abi"
)

var (
	// ErrInvalidAddress is returned for input that is not a 20-byte hex address.
	ErrInvalidAddress = errors.New("Invalid address. Please enter a valid Ethereum address.")

	// ErrFunctionNotFound is returned when the ABI has no function by that name.
	ErrFunctionNotFound = errors.New("function not found in ABI")

	// ErrNotReadOnly is returned when asked to eth_call a state-changing function.
	ErrNotReadOnly = errors.New("not a read function")

	// ErrNoCode is returned when a call with declared outputs returns no data,
	// which is what a node answers for an address with no contract code.
	ErrNoCode = errors.New("empty call result (no contract at address?)")
)

// Backend executes a read-only eth_call. *chain.EVMClient satisfies it.
type Backend interface {
	Call(ctx context.Context, to string, data []byte) ([]byte, error)
}

// Caller calls read-only (view/pure) functions on one deployed contract.
type Caller struct {
	backend Backend
	address string
	abi     abi.ABI
}

// NewCaller creates a Caller for the contract at address.
func NewCaller(b Backend, address string, a abi.ABI) *Caller {
	return &Caller{backend: b, address: address, abi: a}
}

// NewBuiltinCaller creates a Caller for a registered built-in ABI.
func NewBuiltinCaller(b Backend, id, address string) (*Caller, error) {
	kind, ok := GetBuiltin(id)
	if !ok {
		return nil, fmt.Errorf("unknown built-in contract %q", id)
	}
	return NewCaller(b, address, kind.ABI), nil
}

// Address returns the contract address the caller targets.
func (c *Caller) Address() string { return c.address }

// Has reports whether the ABI declares a read function called name.
func (c *Caller) Has(name string) bool {
	fn, ok := c.abi.Function(name)
	return ok && fn.IsRead()
}

// Call packs args with the standard ABI encoding, runs eth_call and returns
// the unpacked outputs in declaration order. Revert and transport errors
// from the backend are wrapped, so chain.IsRevert / chain.IsTransport still
// classify them.
func (c *Caller) Call(ctx context.Context, method string, args ...any) ([]any, error) {
	fn, ok := c.abi.Function(method)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFunctionNotFound, method)
	}
	if !fn.IsRead() {
		return nil, fmt.Errorf("%w: %q (stateMutability: %s)", ErrNotReadOnly, method, fn.StateMutability)
	}

	inputs, err := abi.Arguments(fn.Inputs)
	if err != nil {
		return nil, fmt.Errorf("%s inputs: %w", method, err)
	}
	packed, err := inputs.Pack(args...)
	if err != nil {
		return nil, fmt.Errorf("encoding %s call: %w", method, err)
	}
	sel := fn.Selector()
	calldata := append(sel[:], packed...)

	out, err := c.backend.Call(ctx, c.address, calldata)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", method, err)
	}
	if len(fn.Outputs) == 0 {
		return nil, nil
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("calling %s: %w", method, ErrNoCode)
	}

	outputs, err := abi.Arguments(fn.Outputs)
	if err != nil {
		return nil, fmt.Errorf("%s outputs: %w", method, err)
	}
	values, err := outputs.UnpackValues(out)
	if err != nil {
		return nil, fmt.Errorf("decoding %s result: %w", method, err)
	}
	return values, nil
}

// ValidateAddress checks that s is a 0x-prefixed 20-byte hex address.
func ValidateAddress(s string) error {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return ErrInvalidAddress
	}
	if !common.IsHexAddress(s) {
		return ErrInvalidAddress
	}
	return nil
}

// parseAddress validates s and converts it for packing.
func parseAddress(s string) (common.Address, error) {
	if err := ValidateAddress(s); err != nil {
		return common.Address{}, err
	}
	return common.HexToAddress(strings.TrimSpace(s)), nil
}

// --- result helpers ---

func outBig(values []any, i int) (*big.Int, error) {
	if i >= len(values) {
		return nil, fmt.Errorf("missing output %d", i)
	}
	n, ok := values[i].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("output %d: expected *big.Int, got %T", i, values[i])
	}
	return n, nil
}

func outAddress(values []any, i int) (common.Address, error) {
	if i >= len(values) {
		return common.Address{}, fmt.Errorf("missing output %d", i)
	}
	a, ok := values[i].(common.Address)
	if !ok {
		return common.Address{}, fmt.Errorf("output %d: expected address, got %T", i, values[i])
	}
	return a, nil
}

func outString(values []any, i int) (string, error) {
	if i >= len(values) {
		return "", fmt.Errorf("missing output %d", i)
	}
	s, ok := values[i].(string)
	if !ok {
		return "", fmt.Errorf("output %d: expected string, got %T", i, values[i])
	}
	return s, nil
}

func outBool(values []any, i int) (bool, error) {
	if i >= len(values) {
		return false, fmt.Errorf("missing output %d", i)
	}
	b, ok := values[i].(bool)
	if !ok {
		return false, fmt.Errorf("output %d: expected bool, got %T", i, values[i])
	}
	return b, nil
}

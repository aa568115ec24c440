package contract_test

import (
	"context"
	"encoding/hex"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mohsinsiddi/plzscan/internal/abi"
)

// fakeBackend answers eth_call by selector. Handlers receive the call
// arguments (selector stripped) and return raw return data.
type fakeBackend struct {
	mu       sync.Mutex
	handlers map[string]func(args []byte) ([]byte, error)
	calls    []string // "to:0xselector" in call order
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{handlers: map[string]func([]byte) ([]byte, error){}}
}

func (f *fakeBackend) Call(_ context.Context, to string, data []byte) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(data) < 4 {
		return nil, fmt.Errorf("short calldata")
	}
	sel := "0x" + hex.EncodeToString(data[:4])
	f.calls = append(f.calls, to+":"+sel)
	h, ok := f.handlers[sel]
	if !ok {
		return nil, fmt.Errorf("unexpected selector %s", sel)
	}
	return h(data[4:])
}

// on registers a handler for fn of the given ABI.
func (f *fakeBackend) on(t *testing.T, a abi.ABI, fn string, h func(args []byte) ([]byte, error)) {
	t.Helper()
	entry, ok := a.Function(fn)
	require.True(t, ok, "function %s", fn)
	f.handlers[entry.SelectorHex()] = h
}

// returns registers a handler that ABI-encodes the given outputs.
func (f *fakeBackend) returns(t *testing.T, a abi.ABI, fn string, values ...any) {
	t.Helper()
	entry, ok := a.Function(fn)
	require.True(t, ok, "function %s", fn)
	out, err := abi.Arguments(entry.Outputs)
	require.NoError(t, err)
	packed, err := out.Pack(values...)
	require.NoError(t, err)
	f.handlers[entry.SelectorHex()] = func([]byte) ([]byte, error) { return packed, nil }
}

func (f *fakeBackend) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

package explorer_test

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mohsinsiddi/plzscan/internal/abi"
	"github.com/Mohsinsiddi/plzscan/internal/contract"
)

// mockNode is a tiny in-memory JSON-RPC node: a block list, balances and
// eth_call handlers keyed by selector.
type mockNode struct {
	mu        sync.Mutex
	blocks    map[uint64]map[string]any
	latest    uint64
	balances  map[string]string
	calls     map[string]func(args []byte) (string, *rpcErr)
	noListen  bool
	failBlock map[uint64]bool
	requests  map[string]int
}

type rpcErr struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var errRevert = &rpcErr{Code: 3, Message: "execution reverted"}

func newMockNode() *mockNode {
	return &mockNode{
		blocks:    map[uint64]map[string]any{},
		balances:  map[string]string{},
		calls:     map[string]func([]byte) (string, *rpcErr){},
		failBlock: map[uint64]bool{},
		requests:  map[string]int{},
	}
}

// addBlock appends block num with the given transactions.
func (m *mockNode) addBlock(num uint64, txs ...map[string]any) {
	list := make([]any, len(txs))
	for i, tx := range txs {
		tx["blockNumber"] = fmt.Sprintf("0x%x", num)
		tx["transactionIndex"] = fmt.Sprintf("0x%x", i)
		list[i] = tx
	}
	m.blocks[num] = map[string]any{
		"number":       fmt.Sprintf("0x%x", num),
		"hash":         fmt.Sprintf("0xb%d", num),
		"timestamp":    fmt.Sprintf("0x%x", 1_700_000_000+num*12),
		"transactions": list,
	}
	if num > m.latest {
		m.latest = num
	}
}

// onCall serves eth_call for fn of a built-in contract with packed outputs.
func (m *mockNode) onCall(t *testing.T, id, fn string, values ...any) {
	t.Helper()
	entry, ok := contract.GetBuiltinABI(id).Function(fn)
	require.True(t, ok, fn)
	outs, err := abi.Arguments(entry.Outputs)
	require.NoError(t, err)
	packed, err := outs.Pack(values...)
	require.NoError(t, err)
	m.calls[entry.SelectorHex()] = func([]byte) (string, *rpcErr) {
		return "0x" + hex.EncodeToString(packed), nil
	}
}

func (m *mockNode) onCallFunc(t *testing.T, id, fn string, h func(args []byte) (string, *rpcErr)) {
	t.Helper()
	entry, ok := contract.GetBuiltinABI(id).Function(fn)
	require.True(t, ok, fn)
	m.calls[entry.SelectorHex()] = h
}

func (m *mockNode) count(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests[method]
}

func (m *mockNode) serve(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     string            `json:"id"`
			Method string            `json:"method"`
			Params []json.RawMessage `json:"params"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}

		m.mu.Lock()
		m.requests[req.Method]++
		result, rerr := m.handle(req.Method, req.Params)
		m.mu.Unlock()

		resp := map[string]any{"jsonrpc": "2.0", "id": req.ID}
		if rerr != nil {
			resp["error"] = rerr
		} else {
			resp["result"] = result
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv
}

func (m *mockNode) handle(method string, params []json.RawMessage) (any, *rpcErr) {
	switch method {
	case "net_listening":
		if m.noListen {
			return nil, &rpcErr{Code: -32601, Message: "the method net_listening does not exist"}
		}
		return true, nil
	case "eth_blockNumber":
		return fmt.Sprintf("0x%x", m.latest), nil
	case "eth_chainId":
		return "0x7a69", nil
	case "eth_getBlockByNumber":
		var tag string
		json.Unmarshal(params[0], &tag) //nolint:errcheck
		n, _ := new(big.Int).SetString(strings.TrimPrefix(tag, "0x"), 16)
		if m.failBlock[n.Uint64()] {
			return nil, &rpcErr{Code: -32000, Message: "header not found"}
		}
		b, ok := m.blocks[n.Uint64()]
		if !ok {
			return nil, nil
		}
		return b, nil
	case "eth_getBalance":
		var addr string
		json.Unmarshal(params[0], &addr) //nolint:errcheck
		if bal, ok := m.balances[strings.ToLower(addr)]; ok {
			return bal, nil
		}
		return "0x0", nil
	case "eth_call":
		var call struct {
			Data string `json:"data"`
		}
		json.Unmarshal(params[0], &call) //nolint:errcheck
		data, _ := hex.DecodeString(strings.TrimPrefix(call.Data, "0x"))
		if len(data) < 4 {
			return nil, errRevert
		}
		h, ok := m.calls["0x"+hex.EncodeToString(data[:4])]
		if !ok {
			return nil, errRevert
		}
		out, rerr := h(data[4:])
		if rerr != nil {
			return nil, rerr
		}
		return out, nil
	}
	return nil, &rpcErr{Code: -32601, Message: "method not found"}
}

// tx builds a transaction object for addBlock.
func tx(hash, from, to, valueHex string, input []byte) map[string]any {
	m := map[string]any{
		"hash":  hash,
		"from":  from,
		"value": valueHex,
		"input": "0x" + hex.EncodeToString(input),
	}
	if to == "" {
		m["to"] = nil
	} else {
		m["to"] = to
	}
	return m
}

// calldata ABI-encodes a call to fn on a built-in contract.
func calldata(t *testing.T, id, fn string, args ...any) []byte {
	t.Helper()
	entry, ok := contract.GetBuiltinABI(id).Function(fn)
	require.True(t, ok, fn)
	ins, err := abi.Arguments(entry.Inputs)
	require.NoError(t, err)
	packed, err := ins.Pack(args...)
	require.NoError(t, err)
	sel := entry.Selector()
	return append(sel[:], packed...)
}

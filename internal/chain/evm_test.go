package chain

import (
	"context"
	"encoding/json"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

// rpcMock creates a test HTTP server that serves a fixed JSON-RPC response
// per method. Pass method→result pairs; any unknown method returns an RPC error.
func rpcMock(t *testing.T, responses map[string]interface{}) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string `json:"method"`
			ID     string `json:"id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if result, ok := responses[req.Method]; ok {
			json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
				"jsonrpc": "2.0",
				"id":      req.ID,
				"result":  result,
			})
		} else {
			json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
				"jsonrpc": "2.0",
				"id":      req.ID,
				"error":   map[string]interface{}{"code": -32601, "message": "method not found"},
			})
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

// rpcErrorServer creates a test HTTP server that always returns a JSON-RPC error.
func rpcErrorServer(t *testing.T, code int, msg string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{ //nolint:errcheck
			"jsonrpc": "2.0",
			"id":      "1",
			"error":   map[string]interface{}{"code": code, "message": msg},
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

// rpcBadJSON creates a server that returns malformed JSON.
func rpcBadJSON(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{not valid json`)) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv
}

// ---------------------------------------------------------------------------
// simple quantities
// ---------------------------------------------------------------------------

func TestBlockNumber(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{"eth_blockNumber": "0x1b4"})

	n, err := NewEVMClient(srv.URL).BlockNumber(context.Background())

	require.NoError(t, err)
	assert.Equal(t, uint64(436), n)
}

func TestBlockNumberUnparseable(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{"eth_blockNumber": "0xzz"})

	_, err := NewEVMClient(srv.URL).BlockNumber(context.Background())

	require.Error(t, err)
	assert.True(t, IsTransport(err))
}

func TestBalance(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{"eth_getBalance": "0xde0b6b3a7640000"})

	wei, err := NewEVMClient(srv.URL).Balance(context.Background(), "0x1111111111111111111111111111111111111111")

	require.NoError(t, err)
	assert.Equal(t, "1000000000000000000", wei.String())
}

func TestChainID(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{"eth_chainId": "0x7a69"})

	id, err := NewEVMClient(srv.URL).ChainID(context.Background())

	require.NoError(t, err)
	assert.Equal(t, uint64(31337), id)
}

func TestIsListening(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{"net_listening": true})

	ok, err := NewEVMClient(srv.URL).IsListening(context.Background())

	require.NoError(t, err)
	assert.True(t, ok)
}

func TestIsListeningMethodNotFound(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{})

	_, err := NewEVMClient(srv.URL).IsListening(context.Background())

	require.Error(t, err)
	assert.True(t, IsMethodNotFound(err))
	assert.False(t, IsTransport(err))
}

func TestPing(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{"eth_blockNumber": "0x10"})

	latency, n, err := NewEVMClient(srv.URL).Ping(context.Background())

	require.NoError(t, err)
	assert.Equal(t, uint64(16), n)
	assert.Greater(t, latency, time.Duration(0))
}

// ---------------------------------------------------------------------------
// eth_call
// ---------------------------------------------------------------------------

func TestCall(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_call": "0x000000000000000000000000000000000000000000000000000000000000002a",
	})

	out, err := NewEVMClient(srv.URL).Call(context.Background(), "0xabc", []byte{0x70, 0xa0, 0x82, 0x31})

	require.NoError(t, err)
	require.Len(t, out, 32)
	assert.Equal(t, int64(42), new(big.Int).SetBytes(out).Int64())
}

func TestCallRevertIsClassified(t *testing.T) {
	srv := rpcErrorServer(t, 3, "execution reverted")

	_, err := NewEVMClient(srv.URL).Call(context.Background(), "0xabc", nil)

	require.Error(t, err)
	assert.True(t, IsRevert(err))
	assert.False(t, IsTransport(err))
	assert.Contains(t, err.Error(), "execution reverted")
}

func TestCallRevertByMessage(t *testing.T) {
	srv := rpcErrorServer(t, -32000, "VM Exception while processing transaction: revert")

	_, err := NewEVMClient(srv.URL).Call(context.Background(), "0xabc", nil)

	assert.True(t, IsRevert(err))
}

func TestGenericRPCErrorIsNotRevert(t *testing.T) {
	srv := rpcErrorServer(t, -32000, "header not found")

	_, err := NewEVMClient(srv.URL).Call(context.Background(), "0xabc", nil)

	require.Error(t, err)
	assert.False(t, IsRevert(err))
	assert.False(t, IsTransport(err))
}

// ---------------------------------------------------------------------------
// blocks
// ---------------------------------------------------------------------------

func TestBlockByNumber(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_getBlockByNumber": map[string]interface{}{
			"number":    "0x64",
			"hash":      "0xblock",
			"timestamp": "0x65f0a000",
			"transactions": []interface{}{
				map[string]interface{}{
					"hash":             "0xaaa",
					"from":             "0x1111111111111111111111111111111111111111",
					"to":               "0x2222222222222222222222222222222222222222",
					"value":            "0x6f05b59d3b20000",
					"input":            "0xa9059cbb",
					"blockNumber":      "0x64",
					"transactionIndex": "0x1",
				},
				map[string]interface{}{
					"hash":  "0xbbb",
					"from":  "0x1111111111111111111111111111111111111111",
					"to":    nil,
					"value": "0x0",
					"input": "0x",
				},
			},
		},
	})

	b, err := NewEVMClient(srv.URL).BlockByNumber(context.Background(), 100)

	require.NoError(t, err)
	assert.Equal(t, uint64(100), b.Number)
	assert.Equal(t, uint64(0x65f0a000), b.Timestamp)
	assert.Equal(t, int64(0x65f0a000), b.Time().Unix())
	require.Len(t, b.Transactions, 2)

	tx := b.Transactions[0]
	assert.Equal(t, "0xaaa", tx.Hash)
	assert.Equal(t, "0.5", tx.ValueETH)
	assert.Equal(t, []byte{0xa9, 0x05, 0x9c, 0xbb}, tx.Input)
	assert.Equal(t, uint64(1), tx.Index)

	create := b.Transactions[1]
	assert.Empty(t, create.To)
	assert.Empty(t, create.Input)
	assert.Equal(t, "0", create.ValueETH)
}

func TestBlockByNumberHashOnlyTransactionsFail(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{
		"eth_getBlockByNumber": map[string]interface{}{
			"number":       "0x1",
			"timestamp":    "0x1",
			"transactions": []interface{}{"0xaaa", "0xbbb"},
		},
	})

	_, err := NewEVMClient(srv.URL, WithRetries(0)).BlockByNumber(context.Background(), 1)

	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.Contains(t, err.Error(), "block #1 tx 0")
}

func TestBlockByNumberNotFound(t *testing.T) {
	srv := rpcMock(t, map[string]interface{}{"eth_getBlockByNumber": nil})

	_, err := NewEVMClient(srv.URL).BlockByNumber(context.Background(), 999)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBlockNotFound)
}

// ---------------------------------------------------------------------------
// transport + retries
// ---------------------------------------------------------------------------

func TestBadJSONIsTransportError(t *testing.T) {
	srv := rpcBadJSON(t)

	_, err := NewEVMClient(srv.URL).BlockNumber(context.Background())

	require.Error(t, err)
	assert.True(t, IsTransport(err))
}

func TestUnreachableEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewEVMClient(url, WithTimeout(time.Second)).BlockNumber(context.Background())

	require.Error(t, err)
	assert.True(t, IsTransport(err))
}

func TestHTTPErrorStatusIsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "gateway", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	_, err := NewEVMClient(srv.URL).BlockNumber(context.Background())

	require.Error(t, err)
	assert.True(t, IsTransport(err))
	assert.Contains(t, err.Error(), "502")
}

func TestNoRetryByDefault(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	_, err := NewEVMClient(srv.URL).BlockNumber(context.Background())

	require.Error(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestRetriesRecoverTransportFailure(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits.Add(1) == 1 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":"1","result":"0x2"}`)) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)

	c := NewEVMClient(srv.URL, WithRetries(2), WithRetryDelay(time.Millisecond))
	n, err := c.BlockNumber(context.Background())

	require.NoError(t, err)
	assert.Equal(t, uint64(2), n)
	assert.Equal(t, int32(2), hits.Load())
}

func TestRetriesSkipRPCErrors(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jsonrpc":"2.0","id":"1","error":{"code":3,"message":"execution reverted"}}`)) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)

	c := NewEVMClient(srv.URL, WithRetries(3), WithRetryDelay(time.Millisecond))
	_, err := c.Call(context.Background(), "0xabc", nil)

	assert.True(t, IsRevert(err))
	assert.Equal(t, int32(1), hits.Load())
}

func TestRequestCarriesUniqueIDs(t *testing.T) {
	ids := make(chan string, 2)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ID     string        `json:"id"`
			Params []interface{} `json:"params"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.NotNil(t, req.Params)
		ids <- req.ID
		w.Write([]byte(`{"jsonrpc":"2.0","id":"x","result":"0x1"}`)) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)

	c := NewEVMClient(srv.URL)
	_, err := c.BlockNumber(context.Background())
	require.NoError(t, err)
	_, err = c.BlockNumber(context.Background())
	require.NoError(t, err)

	first, second := <-ids, <-ids
	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

// ---------------------------------------------------------------------------
// units
// ---------------------------------------------------------------------------

func TestWeiToETH(t *testing.T) {
	one := new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)
	thousand := new(big.Int).Mul(one, big.NewInt(1000))

	tests := []struct {
		name string
		wei  *big.Int
		want string
	}{
		{"zero", big.NewInt(0), "0"},
		{"nil", nil, "0"},
		{"one wei", big.NewInt(1), "0.000000000000000001"},
		{"one ether", one, "1"},
		{"half ether", new(big.Int).Div(one, big.NewInt(2)), "0.5"},
		{"thousand ether", thousand, "1000"},
		{"negative", big.NewInt(-1500000000000000000), "-1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeiToETH(tt.wei))
		})
	}
}

func TestFormatUnits(t *testing.T) {
	assert.Equal(t, "42", FormatUnits(big.NewInt(42), 0))
	assert.Equal(t, "1.5", FormatUnits(big.NewInt(1_500_000), 6))
	assert.Equal(t, "0.000001", FormatUnits(big.NewInt(1), 6))
}

func TestParseBigHex(t *testing.T) {
	n, ok := ParseBigHex("0x64")
	require.True(t, ok)
	assert.Equal(t, int64(100), n.Int64())

	_, ok = ParseBigHex("0x")
	assert.False(t, ok)

	_, ok = ParseBigHex("0xnope")
	assert.False(t, ok)
}

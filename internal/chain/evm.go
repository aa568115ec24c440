package chain

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"
)

// ErrBlockNotFound is returned when the node has no block at the requested height.
var ErrBlockNotFound = errors.New("block not found")

// Block holds a block header plus its full transactions.
type Block struct {
	Number       uint64
	Hash         string
	Timestamp    uint64
	Transactions []*Transaction
}

// Time returns the block timestamp as a time.Time.
func (b *Block) Time() time.Time { return time.Unix(int64(b.Timestamp), 0) }

// Transaction holds a simplified transaction record.
type Transaction struct {
	Hash     string
	From     string
	To       string // empty for contract creation
	Value    *big.Int
	ValueETH string
	Input    []byte
	BlockNum uint64
	Index    uint64
}

// IsListening reports whether the node is accepting peer connections
// (net_listening). Nodes that do not implement the method surface an
// *RPCError with CodeMethodNotFound.
func (c *EVMClient) IsListening(ctx context.Context) (bool, error) {
	raw, err := c.call(ctx, "net_listening")
	if err != nil {
		return false, err
	}
	var listening bool
	if err := json.Unmarshal(raw, &listening); err != nil {
		return false, fmt.Errorf("%w: parsing net_listening: %v", ErrTransport, err)
	}
	return listening, nil
}

// BlockNumber returns the latest block number.
func (c *EVMClient) BlockNumber(ctx context.Context) (uint64, error) {
	n, err := c.callBig(ctx, "eth_blockNumber")
	if err != nil {
		return 0, err
	}
	return n.Uint64(), nil
}

// ChainID returns the chain's ID.
func (c *EVMClient) ChainID(ctx context.Context) (uint64, error) {
	n, err := c.callBig(ctx, "eth_chainId")
	if err != nil {
		return 0, err
	}
	return n.Uint64(), nil
}

// Balance returns the native balance of address in wei.
func (c *EVMClient) Balance(ctx context.Context, address string) (*big.Int, error) {
	return c.callBig(ctx, "eth_getBalance", address, "latest")
}

// Call executes a read-only eth_call against the latest block and returns
// the raw return data.
func (c *EVMClient) Call(ctx context.Context, to string, data []byte) ([]byte, error) {
	raw, err := c.call(ctx, "eth_call", map[string]string{
		"to":   to,
		"data": "0x" + hex.EncodeToString(data),
	}, "latest")
	if err != nil {
		return nil, err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: unexpected eth_call result: %s", ErrTransport, string(raw))
	}
	out, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding eth_call result: %v", ErrTransport, err)
	}
	return out, nil
}

// BlockByNumber fetches a block with full transaction objects.
func (c *EVMClient) BlockByNumber(ctx context.Context, num uint64) (*Block, error) {
	raw, err := c.call(ctx, "eth_getBlockByNumber", fmt.Sprintf("0x%x", num), true)
	if err != nil {
		return nil, err
	}
	if isNull(raw) {
		return nil, fmt.Errorf("%w: #%d", ErrBlockNotFound, num)
	}

	var rb rawBlock
	if err := json.Unmarshal(raw, &rb); err != nil {
		return nil, fmt.Errorf("%w: parsing block #%d: %v", ErrTransport, num, err)
	}

	block := &Block{Number: num, Hash: rb.Hash}
	if n, ok := ParseBigHex(rb.Number); ok {
		block.Number = n.Uint64()
	}
	if ts, ok := ParseBigHex(rb.Timestamp); ok {
		block.Timestamp = ts.Uint64()
	}
	for i, txRaw := range rb.Transactions {
		var rt rawTx
		if err := json.Unmarshal(txRaw, &rt); err != nil {
			// A hash-only list means the node ignored fullTx.
			return nil, fmt.Errorf("%w: block #%d tx %d is not a transaction object: %v", ErrTransport, num, i, err)
		}
		block.Transactions = append(block.Transactions, rt.toTx())
	}
	return block, nil
}

// Ping measures a round trip and returns the latest block number.
func (c *EVMClient) Ping(ctx context.Context) (latency time.Duration, blockNum uint64, err error) {
	start := time.Now()
	blockNum, err = c.BlockNumber(ctx)
	return time.Since(start), blockNum, err
}

func (c *EVMClient) callBig(ctx context.Context, method string, params ...any) (*big.Int, error) {
	raw, err := c.call(ctx, method, params...)
	if err != nil {
		return nil, err
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("%w: unexpected %s result: %s", ErrTransport, method, string(raw))
	}
	n, ok := ParseBigHex(s)
	if !ok {
		return nil, fmt.Errorf("%w: could not parse %s result: %s", ErrTransport, method, s)
	}
	return n, nil
}

type rawBlock struct {
	Number       string            `json:"number"`
	Hash         string            `json:"hash"`
	Timestamp    string            `json:"timestamp"`
	Transactions []json.RawMessage `json:"transactions"`
}

type rawTx struct {
	Hash     string `json:"hash"`
	From     string `json:"from"`
	To       string `json:"to"`
	Value    string `json:"value"`
	Input    string `json:"input"`
	BlockNum string `json:"blockNumber"`
	Index    string `json:"transactionIndex"`
}

func (rt *rawTx) toTx() *Transaction {
	tx := &Transaction{
		Hash:  rt.Hash,
		From:  rt.From,
		To:    rt.To,
		Value: new(big.Int),
	}
	if v, ok := ParseBigHex(rt.Value); ok {
		tx.Value = v
	}
	tx.ValueETH = WeiToETH(tx.Value)
	if in, err := hex.DecodeString(strings.TrimPrefix(rt.Input, "0x")); err == nil {
		tx.Input = in
	}
	if bn, ok := ParseBigHex(rt.BlockNum); ok {
		tx.BlockNum = bn.Uint64()
	}
	if idx, ok := ParseBigHex(rt.Index); ok {
		tx.Index = idx.Uint64()
	}
	return tx
}

func isNull(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}

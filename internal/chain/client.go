package chain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	retry "github.com/avast/retry-go/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultTimeout    = 15 * time.Second
	defaultRetryDelay = 250 * time.Millisecond
)

// EVMClient is a minimal JSON-RPC client for EVM chains.
type EVMClient struct {
	url      string
	client   *http.Client
	attempts uint
	delay    time.Duration
	log      *zap.Logger
}

// Option configures an EVMClient.
type Option func(*EVMClient)

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *EVMClient) {
		if d > 0 {
			c.client.Timeout = d
		}
	}
}

// WithRetries sets how many extra attempts a request gets after a transport
// failure. JSON-RPC errors (including reverts) are never retried.
func WithRetries(n uint) Option {
	return func(c *EVMClient) { c.attempts = n + 1 }
}

// WithRetryDelay sets the base backoff delay between attempts.
func WithRetryDelay(d time.Duration) Option {
	return func(c *EVMClient) { c.delay = d }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *EVMClient) { c.client = hc }
}

// WithLogger attaches a logger for request tracing.
func WithLogger(l *zap.Logger) Option {
	return func(c *EVMClient) {
		if l != nil {
			c.log = l
		}
	}
}

// NewEVMClient creates a new EVM JSON-RPC client pointed at url.
func NewEVMClient(url string, opts ...Option) *EVMClient {
	c := &EVMClient{
		url:      url,
		client:   &http.Client{Timeout: defaultTimeout},
		attempts: 1,
		delay:    defaultRetryDelay,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL returns the endpoint the client talks to.
func (c *EVMClient) URL() string { return c.url }

// --- internal JSON-RPC plumbing ---

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
	ID      string `json:"id"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result"`
	Error   *RPCError       `json:"error"`
}

func (c *EVMClient) call(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	var result json.RawMessage
	err := retry.Do(
		func() error {
			var err error
			result, err = c.do(ctx, method, params)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(IsTransport),
		retry.OnRetry(func(n uint, err error) {
			c.log.Debug("retrying rpc request",
				zap.String("method", method),
				zap.Uint("attempt", n+1),
				zap.Error(err))
		}),
	)
	return result, err
}

func (c *EVMClient) do(ctx context.Context, method string, params []any) (json.RawMessage, error) {
	reqBody, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      uuid.NewString(),
	})
	if err != nil {
		return nil, fmt.Errorf("encoding %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: RPC request failed: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrTransport, err)
	}

	c.log.Debug("rpc",
		zap.String("method", method),
		zap.Int("status", resp.StatusCode),
		zap.Duration("took", time.Since(start)))

	var rpcResp rpcResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: HTTP %d", ErrTransport, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: parsing response: %v", ErrTransport, err)
	}
	if rpcResp.Error != nil {
		return nil, rpcResp.Error
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: HTTP %d", ErrTransport, resp.StatusCode)
	}
	return rpcResp.Result, nil
}

package chain

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTransport wraps failures to reach the node or to read its reply.
	ErrTransport = errors.New("rpc transport error")

	// ErrReverted matches RPC errors produced by a contract revert.
	ErrReverted = errors.New("execution reverted")
)

// JSON-RPC error codes the client cares about.
const (
	CodeMethodNotFound = -32601
	CodeExecution      = 3 // geth: execution reverted with data
)

// RPCError is a JSON-RPC error object returned by the node.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
}

// Is lets errors.Is(err, ErrReverted) match revert responses.
func (e *RPCError) Is(target error) bool {
	return target == ErrReverted && e.isRevert()
}

func (e *RPCError) isRevert() bool {
	return e.Code == CodeExecution || strings.Contains(strings.ToLower(e.Message), "revert")
}

// IsRevert reports whether err is a contract revert.
func IsRevert(err error) bool { return errors.Is(err, ErrReverted) }

// IsTransport reports whether err came from the transport rather than the node.
func IsTransport(err error) bool { return errors.Is(err, ErrTransport) }

// IsMethodNotFound reports whether the node does not implement the method.
func IsMethodNotFound(err error) bool {
	var rpcErr *RPCError
	return errors.As(err, &rpcErr) && rpcErr.Code == CodeMethodNotFound
}

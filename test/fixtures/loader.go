// Package fixtures loads recorded hardhat artifacts and JSON-RPC responses
// for the integration tests.
package fixtures

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Mohsinsiddi/plzscan/internal/abi"
)

// fixturesDir returns the absolute path to the fixtures directory.
func fixturesDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Dir(file)
}

// LoadArtifactABI parses the ABI of a hardhat artifact, e.g. "Ordering.json".
func LoadArtifactABI(t *testing.T, filename string) abi.ABI {
	t.Helper()
	path := filepath.Join(fixturesDir(), "artifacts", filename)
	data, err := os.ReadFile(path)
	require.NoError(t, err, "failed to load fixture artifact: %s", filename)

	parsed, err := abi.Parse(data)
	require.NoError(t, err, "failed to parse fixture artifact: %s", filename)
	return parsed
}

// LoadRPCResponse loads a recorded JSON-RPC result, keyed by method name.
func LoadRPCResponse(t *testing.T, filename string) map[string]json.RawMessage {
	t.Helper()
	path := filepath.Join(fixturesDir(), "rpc", filename)
	data, err := os.ReadFile(path)
	require.NoError(t, err, "failed to load fixture RPC response: %s", filename)

	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &resp))
	return resp
}

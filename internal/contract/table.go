package contract

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"gopkg.in/yaml.v3"
)

// Built-in contract IDs.
const (
	PLZToken = "plztoken"
	PLZNFT   = "plznft"
	Ordering = "ordering"
)

// Default deployment addresses: the first three contracts deployed by the
// default hardhat account on a fresh localhost node, in deploy order.
var defaultAddresses = map[string]string{
	PLZToken: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
	PLZNFT:   "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
	Ordering: "0x9fE46736679d2D9a65F0992F2272dE9f3c7fa6e0",
}

// Deployed is one known contract: its built-in kind and where it lives.
type Deployed struct {
	ID      string
	Name    string
	Address string
}

// Table maps the PLZCoffee contracts to addresses and back.
type Table struct {
	entries []Deployed
	byAddr  map[string]int // key: lowercase address
}

// tableFile is the on-disk shape of contracts.yaml.
type tableFile struct {
	Contracts map[string]string `yaml:"contracts"`
}

// DefaultTable returns the table with the built-in default addresses.
func DefaultTable() *Table {
	t, _ := newTable(nil)
	return t
}

// LoadTable reads a contracts.yaml override. A missing file yields the
// default table. Unknown IDs and malformed addresses are rejected.
func LoadTable(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultTable(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseTable(data)
}

// ParseTable builds a table from contracts.yaml content.
func ParseTable(data []byte) (*Table, error) {
	var f tableFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing contracts table: %w", err)
	}
	return newTable(f.Contracts)
}

func newTable(overrides map[string]string) (*Table, error) {
	addrs := make(map[string]string, len(defaultAddresses))
	for id, a := range defaultAddresses {
		addrs[id] = a
	}
	for id, a := range overrides {
		key := strings.ToLower(strings.TrimSpace(id))
		if _, ok := GetBuiltin(key); !ok {
			return nil, fmt.Errorf("contracts table: unknown contract %q", id)
		}
		if err := ValidateAddress(a); err != nil {
			return nil, fmt.Errorf("contracts table: %s: %w", id, err)
		}
		addrs[key] = common.HexToAddress(a).Hex()
	}

	t := &Table{byAddr: make(map[string]int)}
	for _, b := range AllBuiltins() {
		a, ok := addrs[b.ID]
		if !ok {
			continue
		}
		t.entries = append(t.entries, Deployed{ID: b.ID, Name: b.Name, Address: a})
	}
	for i, d := range t.entries {
		key := strings.ToLower(d.Address)
		if _, dup := t.byAddr[key]; !dup {
			t.byAddr[key] = i
		}
	}
	return t, nil
}

// All returns the known contracts in decoder search order.
func (t *Table) All() []Deployed {
	return t.entries
}

// Address returns the address of a contract by ID.
func (t *Table) Address(id string) (string, bool) {
	for _, d := range t.entries {
		if d.ID == id {
			return d.Address, true
		}
	}
	return "", false
}

// NameOf returns the friendly name for an address, matching case-insensitively.
func (t *Table) NameOf(address string) (string, bool) {
	i, ok := t.byAddr[strings.ToLower(strings.TrimSpace(address))]
	if !ok {
		return "", false
	}
	return t.entries[i].Name, true
}

// DisplayAddress returns the friendly contract name for a known address
// and the shortened address otherwise. Empty means contract creation.
func (t *Table) DisplayAddress(address string) string {
	if address == "" {
		return "(create)"
	}
	if name, ok := t.NameOf(address); ok {
		return name
	}
	return ShortAddress(address)
}

// ShortAddress shortens 0x1234567890abcdef... to 0x1234…cdef.
func ShortAddress(addr string) string {
	if len(addr) <= 12 {
		return addr
	}
	return addr[:6] + "…" + addr[len(addr)-4:]
}

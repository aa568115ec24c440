package abi

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"golang.org/x/crypto/sha3"
)

// Param is a parameter in an ABI entry.
type Param struct {
	Name       string  `json:"name"`
	Type       string  `json:"type"`
	Components []Param `json:"components,omitempty"`
	Indexed    bool    `json:"indexed,omitempty"`
}

// Entry is one ABI entry (function, event, constructor, ...).
type Entry struct {
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Inputs          []Param `json:"inputs"`
	Outputs         []Param `json:"outputs"`
	StateMutability string  `json:"stateMutability"`
}

// ABI is a contract description in declaration order.
type ABI []Entry

// Parse reads a standard JSON ABI (the array emitted by solc / hardhat).
// A hardhat-style artifact object with an "abi" field is accepted too.
func Parse(data []byte) (ABI, error) {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, "{") {
		var artifact struct {
			ABI ABI `json:"abi"`
		}
		if err := json.Unmarshal(data, &artifact); err != nil {
			return nil, fmt.Errorf("parsing ABI artifact: %w", err)
		}
		return artifact.ABI, nil
	}

	var a ABI
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing ABI: %w", err)
	}
	return a, nil
}

// IsFunction reports whether the entry is a callable function.
func (e Entry) IsFunction() bool { return e.Type == "function" }

// IsRead returns true if the function is read-only (view/pure).
func (e Entry) IsRead() bool {
	return e.IsFunction() &&
		(e.StateMutability == "view" || e.StateMutability == "pure")
}

// IsWrite returns true if the function modifies state.
func (e Entry) IsWrite() bool {
	return e.IsFunction() &&
		(e.StateMutability == "nonpayable" || e.StateMutability == "payable")
}

// Signature returns the canonical signature used for selector hashing,
// e.g. "transfer(address,uint256)". Parameter names are never part of it.
func (e Entry) Signature() string {
	types := make([]string, len(e.Inputs))
	for i, p := range e.Inputs {
		types[i] = canonicalType(p)
	}
	return e.Name + "(" + strings.Join(types, ",") + ")"
}

// Selector computes the 4-byte selector: keccak256(signature)[:4].
func (e Entry) Selector() [4]byte {
	var sel [4]byte
	copy(sel[:], Keccak256([]byte(e.Signature()))[:4])
	return sel
}

// SelectorHex returns the selector as a 0x-prefixed lowercase hex string.
func (e Entry) SelectorHex() string {
	sel := e.Selector()
	return "0x" + hex.EncodeToString(sel[:])
}

// Functions returns all function entries in declaration order.
func (a ABI) Functions() []Entry {
	var out []Entry
	for _, e := range a {
		if e.IsFunction() {
			out = append(out, e)
		}
	}
	return out
}

// Function finds a function entry by name. Overloads resolve to the first
// declaration.
func (a ABI) Function(name string) (Entry, bool) {
	for _, e := range a {
		if e.IsFunction() && e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Keccak256 hashes data with the legacy (pre-NIST) Keccak used by Ethereum.
func Keccak256(data []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	return h.Sum(nil)
}

// Arguments converts params into go-ethereum argument descriptors so values
// can be packed and unpacked with the standard encoding rules.
func Arguments(params []Param) (gethabi.Arguments, error) {
	args := make(gethabi.Arguments, 0, len(params))
	for _, p := range params {
		typ, err := gethabi.NewType(p.Type, "", marshaling(p.Components))
		if err != nil {
			return nil, fmt.Errorf("param %q: %w", p.Name, err)
		}
		args = append(args, gethabi.Argument{Name: p.Name, Type: typ, Indexed: p.Indexed})
	}
	return args, nil
}

func marshaling(params []Param) []gethabi.ArgumentMarshaling {
	if len(params) == 0 {
		return nil
	}
	out := make([]gethabi.ArgumentMarshaling, len(params))
	for i, p := range params {
		out[i] = gethabi.ArgumentMarshaling{
			Name:       p.Name,
			Type:       p.Type,
			Components: marshaling(p.Components),
			Indexed:    p.Indexed,
		}
	}
	return out
}

// canonicalType expands tuple types into their component list,
// keeping any array suffix: tuple[2] → (address,uint256)[2].
func canonicalType(p Param) string {
	if !strings.HasPrefix(p.Type, "tuple") {
		return p.Type
	}
	inner := make([]string, len(p.Components))
	for i, c := range p.Components {
		inner[i] = canonicalType(c)
	}
	return "(" + strings.Join(inner, ",") + ")" + strings.TrimPrefix(p.Type, "tuple")
}

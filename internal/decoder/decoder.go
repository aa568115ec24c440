// Package decoder classifies raw transaction input as a call to one of a
// fixed set of known contract functions and extracts its arguments for
// display. It never returns an error: input that cannot be attributed or
// decoded becomes the Unknown sentinel.
package decoder

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/Mohsinsiddi/plzscan/internal/abi"
	gethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"go.uber.org/zap"
)

// Unknown is the function name reported when input matches no known
// function or cannot be decoded.
const Unknown = "N/A"

// NamedABI pairs a contract's logical name with its ABI.
type NamedABI struct {
	Name string
	ABI  abi.ABI
}

// Signature is one selector table slot.
type Signature struct {
	Contract string
	Entry    abi.Entry
	Selector [4]byte

	args    gethabi.Arguments
	argsErr error
}

// Hex returns the slot's selector as 0x-prefixed hex.
func (s Signature) Hex() string { return "0x" + hex.EncodeToString(s.Selector[:]) }

// Decoder holds a selector lookup table built once from static ABIs.
// It is safe for concurrent use: the table is never mutated after New.
type Decoder struct {
	log   *zap.Logger
	table map[[4]byte]*Signature
	order []*Signature
}

// New builds the selector table. ABIs are walked in the given order and
// entries in declaration order; on a selector collision the first slot wins.
func New(log *zap.Logger, abis ...NamedABI) *Decoder {
	if log == nil {
		log = zap.NewNop()
	}
	d := &Decoder{
		log:   log,
		table: make(map[[4]byte]*Signature),
	}
	for _, named := range abis {
		for _, entry := range named.ABI {
			if !entry.IsFunction() {
				continue
			}
			sel := entry.Selector()
			if prev, taken := d.table[sel]; taken {
				log.Debug("selector collision, keeping first",
					zap.String("selector", "0x"+hex.EncodeToString(sel[:])),
					zap.String("kept", prev.Contract+"."+prev.Entry.Name),
					zap.String("dropped", named.Name+"."+entry.Name))
				continue
			}
			sig := &Signature{Contract: named.Name, Entry: entry, Selector: sel}
			sig.args, sig.argsErr = abi.Arguments(entry.Inputs)
			d.table[sel] = sig
			d.order = append(d.order, sig)
		}
	}
	return d
}

// Lookup returns the function registered for sel.
func (d *Decoder) Lookup(sel [4]byte) (Signature, bool) {
	sig, ok := d.table[sel]
	if !ok {
		return Signature{}, false
	}
	return *sig, true
}

// Signatures returns every table slot in registration order.
func (d *Decoder) Signatures() []Signature {
	out := make([]Signature, len(d.order))
	for i, s := range d.order {
		out[i] = *s
	}
	return out
}

// DecodeHex decodes 0x-prefixed (or bare) hex call input.
func (d *Decoder) DecodeHex(input string) DecodedCall {
	raw, err := hex.DecodeString(strings.TrimPrefix(strings.TrimPrefix(input, "0x"), "0X"))
	if err != nil {
		d.log.Debug("call input is not valid hex", zap.Error(err))
		return UnknownCall()
	}
	return d.Decode(raw)
}

// Decode classifies input and decodes its arguments.
func (d *Decoder) Decode(input []byte) (call DecodedCall) {
	if len(input) < 4 {
		return UnknownCall()
	}
	var sel [4]byte
	copy(sel[:], input[:4])

	sig, ok := d.table[sel]
	if !ok {
		return UnknownCall()
	}

	defer func() {
		if r := recover(); r != nil {
			d.log.Debug("decoding call input panicked",
				zap.String("function", sig.Entry.Signature()),
				zap.Any("panic", r))
			call = UnknownCall()
		}
	}()

	if sig.argsErr != nil {
		d.log.Debug("unsupported parameter types",
			zap.String("function", sig.Entry.Signature()),
			zap.Error(sig.argsErr))
		return UnknownCall()
	}

	values, err := sig.args.UnpackValues(input[4:])
	if err != nil {
		d.log.Debug("decoding call input failed",
			zap.String("function", sig.Entry.Signature()),
			zap.Int("len", len(input)),
			zap.Error(err))
		return UnknownCall()
	}
	if len(values) != len(sig.Entry.Inputs) {
		d.log.Debug("decoded value count mismatch",
			zap.String("function", sig.Entry.Signature()),
			zap.Int("want", len(sig.Entry.Inputs)),
			zap.Int("got", len(values)))
		return UnknownCall()
	}

	call = DecodedCall{
		Contract: sig.Contract,
		Name:     sig.Entry.Name,
		Selector: sig.Hex(),
		Keys:     make([]string, 0, len(values)),
		Params:   make(map[string]any, len(values)),
	}
	for i, v := range values {
		key := sig.Entry.Inputs[i].Name
		if _, dup := call.Params[key]; key == "" || dup {
			key = placeholder(call.Params, i)
		}
		call.Keys = append(call.Keys, key)
		call.Params[key] = normalize(v)
	}
	return call
}

// placeholder returns param<i>, or param<i>_<n> when a declared name
// already took it.
func placeholder(taken map[string]any, i int) string {
	key := fmt.Sprintf("param%d", i)
	for n := 1; ; n++ {
		if _, used := taken[key]; !used {
			return key
		}
		key = fmt.Sprintf("param%d_%d", i, n)
	}
}

package decoder

import (
	"bytes"
	"encoding/json"
	"math/big"
	"reflect"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// DecodedCall is the display form of one decoded call input.
type DecodedCall struct {
	Contract string         `json:"contract,omitempty"`
	Name     string         `json:"name"`
	Selector string         `json:"selector,omitempty"`
	Keys     []string       `json:"-"` // Params keys in declaration order
	Params   map[string]any `json:"params"`
}

// UnknownCall returns the sentinel for unattributable input.
func UnknownCall() DecodedCall {
	return DecodedCall{Name: Unknown, Params: map[string]any{}}
}

// IsUnknown reports whether c is the Unknown sentinel.
func (c DecodedCall) IsUnknown() bool { return c.Name == Unknown }

// ParamsJSON renders Params as indented JSON with keys in declaration order.
func (c DecodedCall) ParamsJSON() string {
	raw := orderedJSON(c.Keys, c.Params)

	var out bytes.Buffer
	if err := json.Indent(&out, raw, "", "  "); err != nil {
		return string(raw)
	}
	return out.String()
}

// Tuple is a decoded struct value whose keys keep component order.
type Tuple struct {
	Keys   []string
	Values map[string]any
}

// MarshalJSON writes the components in declaration order.
func (t Tuple) MarshalJSON() ([]byte, error) {
	return orderedJSON(t.Keys, t.Values), nil
}

func orderedJSON(keys []string, values map[string]any) []byte {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, _ := json.Marshal(k)
		vb, err := json.Marshal(values[k])
		if err != nil {
			vb = []byte(`null`)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes()
}

var (
	addressType = reflect.TypeOf(common.Address{})
	hashType    = reflect.TypeOf(common.Hash{})
)

// normalize converts an unpacked ABI value into a display-safe value.
// Every integer becomes a decimal string so no consumer can lose precision.
func normalize(v any) any {
	if v == nil {
		return nil
	}
	switch x := v.(type) {
	case *big.Int:
		if x == nil {
			return "0"
		}
		return x.String()
	case common.Address:
		return x.Hex()
	case common.Hash:
		return x.Hex()
	case []byte:
		return hexutil.Encode(x)
	case bool, string:
		return x
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	case reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 && rv.Type() != addressType && rv.Type() != hashType {
			b := make([]byte, rv.Len())
			reflect.Copy(reflect.ValueOf(b), rv)
			return hexutil.Encode(b)
		}
		return normalizeList(rv)
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return hexutil.Encode(rv.Bytes())
		}
		return normalizeList(rv)
	case reflect.Struct:
		out := Tuple{Keys: make([]string, 0, rv.NumField()), Values: make(map[string]any, rv.NumField())}
		for i := 0; i < rv.NumField(); i++ {
			f := rv.Type().Field(i)
			name := f.Tag.Get("json")
			if name == "" {
				name = f.Name
			}
			out.Keys = append(out.Keys, name)
			out.Values[name] = normalize(rv.Field(i).Interface())
		}
		return out
	case reflect.Ptr:
		if rv.IsNil() {
			return nil
		}
		return normalize(rv.Elem().Interface())
	}
	return v
}

func normalizeList(rv reflect.Value) []any {
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = normalize(rv.Index(i).Interface())
	}
	return out
}

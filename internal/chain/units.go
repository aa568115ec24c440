package chain

import (
	"math/big"
	"strings"
)

// WeiToETH converts a wei amount to an exact ETH decimal string with
// trailing zeros trimmed: 1500000000000000000 → "1.5".
func WeiToETH(wei *big.Int) string { return FormatUnits(wei, 18) }

// FormatUnits renders raw scaled by 10^decimals without floating point.
func FormatUnits(raw *big.Int, decimals int) string {
	if raw == nil {
		return "0"
	}
	if decimals <= 0 {
		return raw.String()
	}

	neg := raw.Sign() < 0
	abs := new(big.Int).Abs(raw)
	div := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	whole, frac := new(big.Int).QuoRem(abs, div, new(big.Int))

	s := whole.String()
	if frac.Sign() != 0 {
		fs := frac.String()
		fs = strings.Repeat("0", decimals-len(fs)) + fs
		s += "." + strings.TrimRight(fs, "0")
	}
	if neg {
		s = "-" + s
	}
	return s
}

// ParseBigHex parses a 0x-prefixed hex quantity.
func ParseBigHex(s string) (*big.Int, bool) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if s == "" {
		return nil, false
	}
	return new(big.Int).SetString(s, 16)
}

// Package common holds small boundary-encoding helpers shared by the das and
// crypto/kzg packages, in the style of go-ethereum's common/hexutil package
// but scoped to exactly what this module needs.
package common

import (
	"encoding/hex"
	"fmt"
)

// MarshalFixedText renders b as a "0x"-prefixed lowercase hex string, the
// same convention go-ethereum's hexutil.Bytes uses for MarshalText.
func MarshalFixedText(b []byte) []byte {
	out := make([]byte, 2+hex.EncodedLen(len(b)))
	out[0] = '0'
	out[1] = 'x'
	hex.Encode(out[2:], b)
	return out
}

// UnmarshalFixedText decodes a "0x"-prefixed hex string into a fixed-length
// byte slice, failing if the decoded length does not match exactly.
func UnmarshalFixedText(typeName string, input []byte, out []byte) error {
	raw, err := trimPrefix(input)
	if err != nil {
		return fmt.Errorf("%s: %w", typeName, err)
	}
	if len(raw) != hex.EncodedLen(len(out)) {
		return fmt.Errorf("%s: expected %d hex bytes, got %d", typeName, hex.EncodedLen(len(out)), len(raw))
	}
	if _, err := hex.Decode(out, raw); err != nil {
		return fmt.Errorf("%s: %w", typeName, err)
	}
	return nil
}

func trimPrefix(input []byte) ([]byte, error) {
	if len(input) < 2 || input[0] != '0' || (input[1] != 'x' && input[1] != 'X') {
		return nil, fmt.Errorf("hex string without 0x prefix")
	}
	return input[2:], nil
}

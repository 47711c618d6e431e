package addressing

import "encoding/hex"

// ParseHex decodes an even-length hex string into raw bytes.
//
// It fails with a KindInvalidInput error if the string has an odd
// number of digits or contains a non-hex character. Derivation applies
// it to the fixed prefix constants; it is also useful to consumers
// decoding address strings read back from state.
func ParseHex(s string) ([]byte, error) {
	const op = "parse_hex"

	if len(s)%2 != 0 {
		return nil, invalidInputf(op, "hex string has odd number of digits: %s", s)
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, invalidInputf(op, "string contains invalid hex: %s", s)
	}
	return raw, nil
}

package addressing

import "encoding/hex"

// Address is a 35-byte state address. The zero value is not a valid
// address of any entity type; addresses are obtained from the Compute
// operations or from the parsing helpers below.
type Address [AddressLength]byte

// String renders the address in canonical form: 70 lowercase hex
// characters.
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// Bytes returns the address as a fresh byte slice.
func (a Address) Bytes() []byte {
	b := make([]byte, AddressLength)
	copy(b, a[:])
	return b
}

// AddressFromBytes converts a raw 35-byte key back into an Address.
// Any other length fails with a KindInvalidInput error.
func AddressFromBytes(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLength {
		return a, invalidInputf("address_from_bytes", "address must be %d bytes, got %d", AddressLength, len(b))
	}
	copy(a[:], b)
	return a, nil
}

// AddressFromHex parses a canonical 70-character hex rendering back
// into an Address. Malformed hex or any other length fails with a
// KindInvalidInput error.
func AddressFromHex(s string) (Address, error) {
	var a Address
	raw, err := ParseHex(s)
	if err != nil {
		return a, err
	}
	if len(raw) != AddressLength {
		return a, invalidInputf("address_from_hex", "address must be %d hex characters, got %d", 2*AddressLength, len(s))
	}
	copy(a[:], raw)
	return a, nil
}

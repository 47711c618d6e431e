package hashing

import "golang.org/x/crypto/blake2b"

// BLAKE2b512 hashes with unkeyed BLAKE2b-512. Digest size matches
// SHA512, so all addressing slice lengths remain valid.
type BLAKE2b512 struct{}

// Hash returns the 64-byte BLAKE2b-512 digest of data. It never fails.
func (BLAKE2b512) Hash(data []byte) ([]byte, error) {
	sum := blake2b.Sum512(data)
	return sum[:], nil
}

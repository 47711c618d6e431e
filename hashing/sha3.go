package hashing

import "golang.org/x/crypto/sha3"

// SHA3512 hashes with SHA3-512. Digest size matches SHA512, so all
// addressing slice lengths remain valid.
type SHA3512 struct{}

// Hash returns the 64-byte SHA3-512 digest of data. It never fails.
func (SHA3512) Hash(data []byte) ([]byte, error) {
	sum := sha3.Sum512(data)
	return sum[:], nil
}

package hashing

// Hasher is the hash capability injected into address derivation.
//
// Implementations must be deterministic (the same input always yields
// the same digest), must emit a fixed digest size, and must be safe for
// concurrent use. Hash fails only on capability-level errors, never on
// input content.
type Hasher interface {
	// Hash computes the digest of data.
	Hash(data []byte) ([]byte, error)
}

// Func adapts an ordinary function to the Hasher interface.
//
// Example:
//
//	hasher := hashing.Func(func(data []byte) ([]byte, error) {
//	    return remote.Digest(data)
//	})
type Func func(data []byte) ([]byte, error)

// Hash implements Hasher by calling f.
func (f Func) Hash(data []byte) ([]byte, error) {
	return f(data)
}

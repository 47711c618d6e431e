// Package hashing defines the hash capability consumed by address
// derivation, plus thin providers adapting concrete algorithms.
//
// The addressing core never owns a hash implementation; it consumes the
// Hasher interface. SHA512 is the reference provider the golden address
// vectors are pinned to. SHA3512 and BLAKE2b512 are alternatives with
// the same 64-byte digest size, so every slice length used by the
// addressing package remains valid regardless of provider choice.
//
// All providers are stateless and safe for concurrent use.
package hashing

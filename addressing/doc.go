// Package addressing derives the state addresses under which ledger
// entities are stored in the global key/value state store.
//
// Every address is exactly 35 bytes, rendered canonically as 70
// lowercase hex characters: a fixed entity-type prefix followed by
// bytes sliced from the front of a hash digest of the entity's
// canonical identifier encoding.
//
// # Address layout
//
// The prefix identifies the entity family; the suffix makes the
// address collision-resistant within it:
//
//	entity type          prefix     suffix (digest bytes)
//	namespace registry   00ec00     32, from the first 6 namespace chars
//	contract registry    00ec01     32, from the contract name
//	contract             00ec02     32, from "name,version"
//	smart permission     00ec03     3 from the org id + 29 from the name
//	agent                cad11d00   31, from the agent name bytes
//	organization         cad11d01   31, from the org id
//
// Prefix plus suffix always totals 35 bytes. Suffixes are always taken
// from digest offset 0; the smart permission address is the only one
// assembled from two independent digests, so its organization bytes and
// permission bytes can each be re-derived without the other input.
//
// # Stability
//
// Addresses are a compatibility surface: the same identifier must map
// to the same address forever, across independent implementations.
// The byte offsets, slice lengths, and canonical encodings in this
// package therefore never change, and the contract encoding keeps its
// unescaped "name,version" join even though a comma inside either field
// makes the encoding ambiguous (still deterministic).
//
// # Hash capability
//
// Derivation consumes a hashing.Hasher rather than a fixed algorithm.
// The package-level Compute functions bind the SHA-512 reference
// provider; a Deriver accepts any provider with a digest of at least 32
// bytes. All operations are pure and safe for concurrent use.
//
// # Usage
//
//	addr, err := addressing.ComputeContractAddress("intkey", "1.0")
//	if err != nil {
//	    return err
//	}
//	entry, err := stateReader.Get(ctx, addr.String())
//
// With an injected provider:
//
//	deriver := addressing.NewDeriver(hashing.BLAKE2b512{})
//	addr, err := deriver.ComputeAgentAddress([]byte("alice"))
//
// # Errors
//
// Operations fail with a *Error of kind KindInvalidInput (identifier
// fails a structural precondition) or KindHashError (the injected hash
// capability failed). There are no partial results: a call returns a
// complete 35-byte address or an error.
package addressing

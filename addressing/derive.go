package addressing

import (
	"fmt"

	"github.com/statecraft-ledger/sdk/hashing"
)

// Deriver computes state addresses with an injected hash capability.
//
// A Deriver is stateless; a single instance may be shared freely across
// goroutines as long as its Hasher is concurrency-safe. Every operation
// is referentially transparent: identical inputs always yield identical
// addresses.
type Deriver struct {
	hasher hashing.Hasher
}

// NewDeriver creates a Deriver backed by the given hash capability.
// The capability's digest must be at least 32 bytes; shorter digests
// cause derivation to panic rather than silently mis-slice.
func NewDeriver(hasher hashing.Hasher) *Deriver {
	return &Deriver{hasher: hasher}
}

// defaultDeriver backs the package-level convenience functions.
var defaultDeriver = NewDeriver(hashing.SHA512{})

// ComputeNamespaceRegistryAddress derives the address of the registry
// entry for a namespace. Only the first 6 characters of namespace
// participate; a shorter string fails with KindInvalidInput.
func (d *Deriver) ComputeNamespaceRegistryAddress(namespace string) (Address, error) {
	const op = "compute_namespace_registry_address"

	if len(namespace) < namespaceLength {
		return Address{}, invalidInputf(op, "namespace %q is less than %d characters long", namespace, namespaceLength)
	}
	suffix, err := d.hashAndSlice(op, []byte(namespace[:namespaceLength]), namespaceRegistrySuffixLength)
	if err != nil {
		return Address{}, err
	}
	return assemble(op, NamespaceRegistryPrefix, suffix)
}

// ComputeContractRegistryAddress derives the address of the registry
// entry for the named contract.
func (d *Deriver) ComputeContractRegistryAddress(name string) (Address, error) {
	const op = "compute_contract_registry_address"

	suffix, err := d.hashAndSlice(op, []byte(name), contractRegistrySuffixLength)
	if err != nil {
		return Address{}, err
	}
	return assemble(op, ContractRegistryPrefix, suffix)
}

// ComputeContractAddress derives the address of a specific contract
// version. The canonical encoding is the literal join "name,version"
// with no escaping: a comma inside either field produces an ambiguous
// (though still deterministic) encoding. This is a known limitation
// kept for compatibility, since changing the join would re-address
// every contract already stored.
func (d *Deriver) ComputeContractAddress(name, version string) (Address, error) {
	const op = "compute_contract_address"

	suffix, err := d.hashAndSlice(op, []byte(name+","+version), contractSuffixLength)
	if err != nil {
		return Address{}, err
	}
	return assemble(op, ContractPrefix, suffix)
}

// ComputeSmartPermissionAddress derives the address of a smart
// permission owned by an organization.
//
// The organization id and permission name are hashed independently:
// the suffix is the first 3 bytes of the org-id digest followed by the
// first 29 bytes of the name digest. Consequently the first 3 suffix
// bytes depend only on orgID and the remaining 29 only on name, and
// either component can be re-derived without the other input.
func (d *Deriver) ComputeSmartPermissionAddress(orgID, name string) (Address, error) {
	const op = "compute_smart_permission_address"

	orgSuffix, err := d.hashAndSlice(op, []byte(orgID), smartPermissionOrgSuffixLength)
	if err != nil {
		return Address{}, err
	}
	nameSuffix, err := d.hashAndSlice(op, []byte(name), smartPermissionNameSuffixLength)
	if err != nil {
		return Address{}, err
	}
	return assemble(op, SmartPermissionPrefix, orgSuffix, nameSuffix)
}

// ComputeAgentAddress derives the address of an agent record from the
// agent's name bytes.
func (d *Deriver) ComputeAgentAddress(name []byte) (Address, error) {
	const op = "compute_agent_address"

	suffix, err := d.hashAndSlice(op, name, agentSuffixLength)
	if err != nil {
		return Address{}, err
	}
	return assemble(op, AgentPrefix, suffix)
}

// ComputeOrganizationAddress derives the address of an organization
// record from the organization id.
func (d *Deriver) ComputeOrganizationAddress(id string) (Address, error) {
	const op = "compute_organization_address"

	suffix, err := d.hashAndSlice(op, []byte(id), organizationSuffixLength)
	if err != nil {
		return Address{}, err
	}
	return assemble(op, OrganizationPrefix, suffix)
}

// hashAndSlice hashes input through the injected capability and returns
// the first n digest bytes. A capability failure surfaces as a
// KindHashError; a digest shorter than n is a misconfigured hasher and
// panics rather than truncating to the wrong length.
func (d *Deriver) hashAndSlice(op string, input []byte, n int) ([]byte, error) {
	digest, err := d.hasher.Hash(input)
	if err != nil {
		return nil, hashErrorf(op, err, "hash capability failed")
	}
	if len(digest) < n {
		panic(fmt.Sprintf("addressing: %s: digest is %d bytes, need at least %d", op, len(digest), n))
	}
	return digest[:n], nil
}

// assemble decodes the entity prefix and concatenates it with the
// suffix slices into a full address. Prefixes are fixed constants, so
// the decode cannot fail in practice, but the failure stays a catchable
// error to keep the operation contract uniform.
func assemble(op, prefix string, suffixes ...[]byte) (Address, error) {
	raw, err := ParseHex(prefix)
	if err != nil {
		return Address{}, err
	}

	var a Address
	n := copy(a[:], raw)
	for _, suffix := range suffixes {
		n += copy(a[n:], suffix)
	}
	if n != AddressLength {
		panic(fmt.Sprintf("addressing: %s: assembled %d bytes, want %d", op, n, AddressLength))
	}
	return a, nil
}

// ComputeNamespaceRegistryAddress derives a namespace registry address
// with the SHA-512 reference hasher.
func ComputeNamespaceRegistryAddress(namespace string) (Address, error) {
	return defaultDeriver.ComputeNamespaceRegistryAddress(namespace)
}

// ComputeContractRegistryAddress derives a contract registry address
// with the SHA-512 reference hasher.
func ComputeContractRegistryAddress(name string) (Address, error) {
	return defaultDeriver.ComputeContractRegistryAddress(name)
}

// ComputeContractAddress derives a contract address with the SHA-512
// reference hasher.
func ComputeContractAddress(name, version string) (Address, error) {
	return defaultDeriver.ComputeContractAddress(name, version)
}

// ComputeSmartPermissionAddress derives a smart permission address with
// the SHA-512 reference hasher.
func ComputeSmartPermissionAddress(orgID, name string) (Address, error) {
	return defaultDeriver.ComputeSmartPermissionAddress(orgID, name)
}

// ComputeAgentAddress derives an agent address with the SHA-512
// reference hasher.
func ComputeAgentAddress(name []byte) (Address, error) {
	return defaultDeriver.ComputeAgentAddress(name)
}

// ComputeOrganizationAddress derives an organization address with the
// SHA-512 reference hasher.
func ComputeOrganizationAddress(id string) (Address, error) {
	return defaultDeriver.ComputeOrganizationAddress(id)
}

package addressing

// Address prefixes, as fixed hex constants. These identify the entity
// family an address belongs to and are part of the wire-compatibility
// surface: they never change.
const (
	NamespaceRegistryPrefix = "00ec00"
	ContractRegistryPrefix  = "00ec01"
	ContractPrefix          = "00ec02"
	SmartPermissionPrefix   = "00ec03"
	AgentPrefix             = "cad11d00"
	OrganizationPrefix      = "cad11d01"
)

// AddressLength is the size of every state address, in bytes. The
// canonical hex rendering is twice this length.
const AddressLength = 35

// Byte layout per entity type. For every entity, prefix length plus
// suffix length(s) must total AddressLength; TestLayoutSumsToAddressLength
// enforces the sums.
const (
	registryPrefixLength = 3 // namespace registry, contract registry, contract, smart permission
	pikePrefixLength     = 4 // agent, organization

	namespaceRegistrySuffixLength = 32
	contractRegistrySuffixLength  = 32
	contractSuffixLength          = 32

	smartPermissionOrgSuffixLength  = 3
	smartPermissionNameSuffixLength = 29

	agentSuffixLength        = 31
	organizationSuffixLength = 31
)

// namespaceLength is how many leading characters of a namespace string
// participate in namespace registry derivation. Shorter inputs are
// rejected; longer inputs are truncated.
const namespaceLength = 6

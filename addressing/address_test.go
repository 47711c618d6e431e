package addressing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressHexRoundTrip(t *testing.T) {
	addr, err := ComputeOrganizationAddress("myorg")
	require.NoError(t, err)

	rendered := addr.String()
	assert.Len(t, rendered, 2*AddressLength)
	assert.Equal(t, strings.ToLower(rendered), rendered)

	parsed, err := AddressFromHex(rendered)
	require.NoError(t, err)
	assert.Equal(t, addr, parsed)
}

func TestAddressFromBytes(t *testing.T) {
	addr, err := ComputeAgentAddress([]byte("alice"))
	require.NoError(t, err)

	parsed, err := AddressFromBytes(addr.Bytes())
	require.NoError(t, err)
	assert.Equal(t, addr, parsed)

	_, err = AddressFromBytes(addr.Bytes()[:34])
	assert.True(t, IsInvalidInput(err), "short input should be invalid_input, got %v", err)

	_, err = AddressFromBytes(append(addr.Bytes(), 0x00))
	assert.True(t, IsInvalidInput(err), "long input should be invalid_input, got %v", err)
}

func TestAddressFromHexRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"odd length", strings.Repeat("a", 69)},
		{"too short", strings.Repeat("a", 68)},
		{"too long", strings.Repeat("a", 72)},
		{"non-hex", strings.Repeat("g", 70)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AddressFromHex(tt.input)
			assert.True(t, IsInvalidInput(err), "error = %v, want invalid_input", err)
		})
	}
}

func TestBytesReturnsCopy(t *testing.T) {
	addr, err := ComputeOrganizationAddress("myorg")
	require.NoError(t, err)

	b := addr.Bytes()
	b[0] ^= 0xff
	assert.NotEqual(t, b[0], addr[0], "mutating Bytes() must not affect the address")
}

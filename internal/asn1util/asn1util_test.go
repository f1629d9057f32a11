package asn1util

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNormalizeName(t *testing.T) {
	tests := map[string]string{
		"id-at-commonName":       "IDAtCommonName",
		"Certificate":            "Certificate",
		"tbsCertificate":         "TbsCertificate",
		"id-ce-basicConstraints": "IDCeBasicConstraints",
		"3des":                   "Des3",
		"joint-iso-ccitt":        "JointIsoCcitt",
		"dotted.name":            "Dotted_name",
	}
	for in, exp := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, exp, NormalizeName(in))
		})
	}
}

func TestIsIdentifier(t *testing.T) {
	for _, s := range []string{"a", "Certificate", "id-at-commonName", "v1", "x-1"} {
		assert.True(t, IsIdentifier(s), s)
	}
	for _, s := range []string{"", "1a", "-a", "a-", "a--b", "a.b", "?1", "a_b"} {
		assert.False(t, IsIdentifier(s), s)
	}
}

func TestParseUint32(t *testing.T) {
	tests := []struct {
		in  string
		exp uint32
	}{
		{"0", 0},
		{"16384", 16384},
		{"4294967295", 4294967295},
		{"0x1F", 31},
		{"0xFFFFFFFF", 4294967295},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			v, err := ParseUint32(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.exp, v)
		})
	}

	for _, in := range []string{"", "-1", "4294967296", "0x", "0x0102030405", "0xZZ", "ten"} {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := ParseUint32(in)
			assert.Error(t, err)
		})
	}
}

func TestIsNumber(t *testing.T) {
	assert.True(t, IsNumber("0"))
	assert.True(t, IsNumber("-12"))
	assert.False(t, IsNumber("-"))
	assert.False(t, IsNumber("v1"))
	assert.False(t, IsNumber(""))
}

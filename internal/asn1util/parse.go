package asn1util

import (
	"encoding/hex"
	"errors"
	"github.com/ansel1/merry"
	"strconv"
	"strings"
)

var ErrInvalidHexString = errors.New("invalid hex string")

// ParseUint32 parses an unsigned integer value from a string.  The string
// may be a decimal number, or a hex string, prefixed with "0x".
func ParseUint32(s string) (uint32, error) {
	if strings.HasPrefix(s, "0x") {
		b, err := hex.DecodeString(s[2:])
		if err != nil {
			return 0, merry.Here(ErrInvalidHexString).WithCause(err)
		}
		if len(b) > 4 {
			return 0, merry.Here(ErrInvalidHexString).Append("must be max 4 bytes (8 hex characters)")
		}
		var v uint32
		for _, c := range b {
			v = v<<8 | uint32(c)
		}
		return v, nil
	}
	i, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, merry.Wrap(err)
	}
	return uint32(i), nil
}

// IsNumber reports whether s is a decimal integer, optionally negative.
func IsNumber(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

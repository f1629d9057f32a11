package der

import (
	"encoding/hex"
	"github.com/ansel1/merry"
	"strings"
)

// ParseHex decodes a hex string.  Any non-hex characters, such as whitespace or
// separators, are stripped first.
func ParseHex(s string) ([]byte, error) {
	s = strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
			return r
		}
		return -1
	}, s)
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, merry.Here(ErrValueNotValid).WithCause(err).Append("invalid hex string")
	}
	return b, nil
}

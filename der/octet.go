package der

import (
	"github.com/ansel1/merry"
)

// AppendOctetString appends the length octets and the payload.  The tag is the caller's
// business, so this serves every string type with a byte copy content encoding.
func AppendOctetString(dst, payload []byte) []byte {
	dst = AppendLength(dst, len(payload))
	return append(dst, payload...)
}

func EncodeOctetString(payload []byte) []byte {
	return AppendOctetString(make([]byte, 0, LengthLen(len(payload))+len(payload)), payload)
}

// ParseOctetString reads a length prefixed payload from the start of b.  The returned
// payload aliases b.
func ParseOctetString(b []byte) (payload []byte, consumed int, err error) {
	l, ll, err := ParseLength(b)
	if err != nil {
		return nil, 0, err
	}
	if l == LengthIndefinite {
		return nil, 0, merry.Here(ErrDER).Append("indefinite length on primitive encoding")
	}
	if l > len(b)-ll {
		return nil, 0, merry.Here(ErrDER).Appendf("value truncated: need %d bytes, have %d", l, len(b)-ll)
	}
	return b[ll : ll+l], ll + l, nil
}

// ReadOctetString copies the length prefixed payload at the start of b into dst.
// If dst is too short, it returns ErrMem with the payload length attached.
func ReadOctetString(b, dst []byte) (n, consumed int, err error) {
	payload, consumed, err := ParseOctetString(b)
	if err != nil {
		return 0, 0, err
	}
	if len(payload) > len(dst) {
		return len(payload), consumed, WithRequiredLen(merry.Here(ErrMem).Appendf("need %d bytes, have %d", len(payload), len(dst)), len(payload))
	}
	return copy(dst, payload), consumed, nil
}

package der

import (
	"github.com/ansel1/merry"
	"math"
)

// LengthIndefinite is returned by ParseLength for the indefinite form (0x80).
const LengthIndefinite = -1

// LengthLen returns the number of length octets needed to encode n.
func LengthLen(n int) int {
	if n < 128 {
		return 1
	}
	l := 1
	for ; n > 0; n >>= 8 {
		l++
	}
	return l
}

// AppendLength appends the definite form length octets for n, which must not be negative.
func AppendLength(dst []byte, n int) []byte {
	if n < 0 {
		panic("der: negative length")
	}
	if n < 128 {
		return append(dst, byte(n))
	}
	k := LengthLen(n) - 1
	dst = append(dst, 0x80|byte(k))
	for i := k - 1; i >= 0; i-- {
		dst = append(dst, byte(n>>(8*uint(i))))
	}
	return dst
}

func EncodeLength(n int) []byte {
	return AppendLength(nil, n)
}

// ParseLength reads the length octets at the start of b.  It returns LengthIndefinite
// for the indefinite form.  The caller must check the length against the remaining input.
func ParseLength(b []byte) (length int, consumed int, err error) {
	if len(b) == 0 {
		return 0, 0, merry.Here(ErrDER).Append("length truncated")
	}
	if b[0] < 0x80 {
		return int(b[0]), 1, nil
	}
	k := int(b[0] & 0x7F)
	switch {
	case k == 0:
		return LengthIndefinite, 1, nil
	case k == 0x7F:
		return 0, 0, merry.Here(ErrDER).Append("reserved length octet 0xFF")
	case len(b) < k+1:
		return 0, 0, merry.Here(ErrDER).Append("length truncated")
	}
	for _, c := range b[1 : k+1] {
		if length > (math.MaxInt-int(c))>>8 {
			return 0, 0, merry.Here(ErrDER).Append("length overflow")
		}
		length = length<<8 | int(c)
	}
	return length, k + 1, nil
}

// ParseHeader reads the identifier and length octets at the start of b.
func ParseHeader(b []byte) (class Class, n uint32, length int, consumed int, err error) {
	class, n, tl, err := ParseTag(b)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	length, ll, err := ParseLength(b[tl:])
	if err != nil {
		return 0, 0, 0, 0, err
	}
	return class, n, length, tl + ll, nil
}

package der

import (
	"github.com/ansel1/merry"
	"math"
)

// Class is the top three bits of the first identifier octet: the two class
// bits plus the constructed bit.
type Class byte

const (
	ClassUniversal       Class = 0x00
	ClassApplication     Class = 0x40
	ClassContextSpecific Class = 0x80
	ClassPrivate         Class = 0xC0

	// ClassStructured is the constructed bit.  It is or'ed with one of the four classes.
	ClassStructured Class = 0x20
)

// classMask selects the class bits, dropping the constructed bit.
const classMask Class = 0xC0

// Universal tag numbers.
const (
	TagBoolean         uint32 = 1
	TagInteger         uint32 = 2
	TagBitString       uint32 = 3
	TagOctetString     uint32 = 4
	TagNull            uint32 = 5
	TagObjectID        uint32 = 6
	TagEnumerated      uint32 = 10
	TagSequence        uint32 = 16
	TagSet             uint32 = 17
	TagUTCTime         uint32 = 23
	TagGeneralizedTime uint32 = 24
	TagGeneralString   uint32 = 27
)

func (c Class) Constructed() bool {
	return c&ClassStructured != 0
}

// Base returns the class without the constructed bit.
func (c Class) Base() Class {
	return c & classMask
}

func (c Class) String() string {
	var s string
	switch c.Base() {
	case ClassUniversal:
		s = "UNIVERSAL"
	case ClassApplication:
		s = "APPLICATION"
	case ClassContextSpecific:
		s = "CONTEXT"
	default:
		s = "PRIVATE"
	}
	if c.Constructed() {
		s += "|STRUCTURED"
	}
	return s
}

// TagLen returns the number of identifier octets needed for tag number n.
func TagLen(n uint32) int {
	if n < 31 {
		return 1
	}
	l := 1
	for ; n > 0; n >>= 7 {
		l++
	}
	return l
}

// AppendTag appends the identifier octets for class and tag number n.  Numbers
// of 31 and greater use the high tag number form.
func AppendTag(dst []byte, class Class, n uint32) []byte {
	class &^= 0x1F
	if n < 31 {
		return append(dst, byte(class)|byte(n))
	}
	dst = append(dst, byte(class)|0x1F)
	for i := TagLen(n) - 2; i >= 0; i-- {
		b := byte(n>>(7*uint(i))) & 0x7F
		if i > 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}

func EncodeTag(class Class, n uint32) []byte {
	return AppendTag(nil, class, n)
}

// ParseTag reads the identifier octets at the start of b.  The returned class
// includes the constructed bit.
func ParseTag(b []byte) (class Class, n uint32, consumed int, err error) {
	if len(b) == 0 {
		return 0, 0, 0, merry.Here(ErrDER).Append("tag truncated")
	}
	class = Class(b[0] & 0xE0)
	if b[0]&0x1F != 0x1F {
		return class, uint32(b[0] & 0x1F), 1, nil
	}
	var v uint64
	for i := 1; ; i++ {
		if i >= len(b) {
			return 0, 0, 0, merry.Here(ErrDER).Append("tag truncated")
		}
		if i == 1 && b[i] == 0x80 {
			return 0, 0, 0, merry.Here(ErrDER).Append("tag number has leading zero octet")
		}
		v = v<<7 | uint64(b[i]&0x7F)
		if v > math.MaxUint32 {
			return 0, 0, 0, merry.Here(ErrDER).Append("tag number overflow")
		}
		if b[i]&0x80 == 0 {
			return class, uint32(v), i + 1, nil
		}
	}
}

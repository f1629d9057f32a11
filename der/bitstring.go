package der

import (
	"github.com/ansel1/merry"
)

// bitMask keeps the used bits of a final octet, indexed by the unused bit count.
var bitMask = [8]byte{0xFF, 0xFE, 0xFC, 0xF8, 0xF0, 0xE0, 0xC0, 0x80}

// BitStringContent returns the content octets for the first bitLen bits of
// bits: the unused bit count, then the bits with the trailing unused bits cleared.
// If bits is shorter than bitLen requires, it is padded with zeros.
func BitStringContent(bits []byte, bitLen int) []byte {
	nb := (bitLen + 7) / 8
	unused := nb*8 - bitLen
	content := make([]byte, 1+nb)
	content[0] = byte(unused)
	copy(content[1:], bits)
	if nb > 0 {
		content[nb] &= bitMask[unused]
	}
	return content
}

// AppendBitString appends the length and content octets of a BIT STRING.
func AppendBitString(dst, bits []byte, bitLen int) []byte {
	return AppendOctetString(dst, BitStringContent(bits, bitLen))
}

func EncodeBitString(bits []byte, bitLen int) []byte {
	return AppendBitString(nil, bits, bitLen)
}

// ParseBitStringContent splits BIT STRING content octets into the bit payload and the
// number of bits.  The payload aliases content.
func ParseBitStringContent(content []byte) (bits []byte, bitLen int, err error) {
	if len(content) == 0 {
		return nil, 0, merry.Here(ErrDER).Append("bit string missing unused bits octet")
	}
	unused := int(content[0])
	switch {
	case unused > 7:
		return nil, 0, merry.Here(ErrDER).Appendf("bit string has %d unused bits", unused)
	case len(content) == 1 && unused != 0:
		return nil, 0, merry.Here(ErrDER).Append("empty bit string with unused bits")
	}
	return content[1:], (len(content)-1)*8 - unused, nil
}

// ParseBitString reads a length prefixed BIT STRING from the start of b.
func ParseBitString(b []byte) (bits []byte, bitLen, consumed int, err error) {
	content, consumed, err := ParseOctetString(b)
	if err != nil {
		return nil, 0, 0, err
	}
	bits, bitLen, err = ParseBitStringContent(content)
	if err != nil {
		return nil, 0, 0, err
	}
	return bits, bitLen, consumed, nil
}

// ReadBitString copies the bits of the BIT STRING at the start of b into dst.
// If dst is too short, it returns ErrMem with the required length attached.
func ReadBitString(b, dst []byte) (bitLen, consumed int, err error) {
	bits, bitLen, consumed, err := ParseBitString(b)
	if err != nil {
		return 0, 0, err
	}
	if len(bits) > len(dst) {
		return bitLen, consumed, WithRequiredLen(merry.Here(ErrMem).Appendf("need %d bytes, have %d", len(bits), len(dst)), len(bits))
	}
	copy(dst, bits)
	return bitLen, consumed, nil
}

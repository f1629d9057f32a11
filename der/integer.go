package der

import (
	"github.com/ansel1/merry"
	"math/big"
)

var bigOne = big.NewInt(1)

// MinimalInteger strips redundant leading sign octets from a big endian two's
// complement integer.  The result aliases b.  An empty input yields a single zero octet.
func MinimalInteger(b []byte) []byte {
	if len(b) == 0 {
		return []byte{0}
	}
	for len(b) > 1 && ((b[0] == 0x00 && b[1]&0x80 == 0) || (b[0] == 0xFF && b[1]&0x80 != 0)) {
		b = b[1:]
	}
	return b
}

// IntegerContent returns the minimal two's complement content octets of i.
func IntegerContent(i *big.Int) []byte {
	switch i.Sign() {
	case 0:
		return []byte{0}
	case 1:
		b := i.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0}, b...)
		}
		return b
	default:
		// add 2^n, which gives the two's complement bytes of i in n bits
		n := uint(i.BitLen()/8+1) * 8
		j := new(big.Int).Lsh(bigOne, n)
		return MinimalInteger(j.Add(i, j).Bytes())
	}
}

// ParseIntegerContent interprets content octets as a big endian two's complement integer.
func ParseIntegerContent(content []byte) (*big.Int, error) {
	if len(content) == 0 {
		return nil, merry.Here(ErrDER).Append("empty integer")
	}
	i := new(big.Int).SetBytes(content)
	if content[0]&0x80 != 0 {
		i.Sub(i, new(big.Int).Lsh(bigOne, uint(len(content))*8))
	}
	return i, nil
}

package asn1der

import (
	"bytes"
	"github.com/ansel1/merry"
	"github.com/gemalto/asn1der/der"
	"math/big"
	"strings"
)

// New is the value which, written to a SEQUENCE OF or SET OF, appends an element.
const New = "NEW"

/*
Values are written and read as follows:

	NULL                    "NULL"
	BOOLEAN                 "TRUE" or "FALSE"
	INTEGER, ENUMERATED     decimal, "0x" hex, or the name of a named number
	OBJECT IDENTIFIER       dotted decimal
	UTCTime                 YYMMDDhhmm[ss](Z|+hhmm|-hhmm)
	GeneralizedTime         YYYYMMDDhh[mm[ss[.f]]][Z|+hh[mm]|-hh[mm]]
	OCTET STRING            raw bytes
	GeneralString           raw bytes
	BIT STRING              raw bytes, all bits used.  See WriteBits.
	ANY                     one complete encoding, tag included
	CHOICE                  the name of the alternative to keep
	SEQUENCE OF, SET OF     "NEW", to append an element
*/

// WriteValue stores a value in the node at path.  A nil value deletes an OPTIONAL
// node from the tree, and resets a DEFAULT node to its default.  Writing the default
// value to a DEFAULT node also resets it, so it is left out of the encoding.
//
// Writing into an alternative of a CHOICE selects that alternative.
func (n *Node) WriteValue(path string, value []byte) error {
	p, err := n.mustFind(path)
	if err != nil {
		return err
	}
	if err := p.writeValue(value); err != nil {
		return withElement(err, p)
	}
	if value != nil {
		p.selectAlternatives()
	}
	return nil
}

// selectAlternatives deletes, in every CHOICE above n, the alternatives not leading to n.
func (n *Node) selectAlternatives() {
	for p := n; p.parent != nil; p = p.parent {
		if p.parent.Type != TypeChoice {
			continue
		}
		for _, c := range p.parent.Components() {
			if c != p {
				c.Delete()
			}
		}
	}
}

func (n *Node) writeValue(value []byte) error {
	if value == nil {
		switch {
		case n.Flags&FlagOptional != 0:
			n.Delete()
			return nil
		case n.Flags&FlagDefault != 0:
			n.ClearValue()
			return nil
		}
		return merry.Here(ErrValueNotValid).Appendf("%s is not OPTIONAL, and can't be deleted", n.path())
	}

	switch n.Type {
	case TypeNull:
		if len(value) != 0 && string(value) != "NULL" {
			return merry.Here(ErrValueNotValid).Appendf("NULL value must be \"NULL\", was %q", value)
		}
		n.value = []byte{}
	case TypeBoolean:
		v, err := parseBoolean(string(value))
		if err != nil {
			return err
		}
		n.setUnlessDefault([]byte{v})
	case TypeInteger, TypeEnumerated:
		i, err := n.parseInteger(string(value))
		if err != nil {
			return err
		}
		return n.writeInteger(i)
	case TypeObjectID:
		if _, err := der.OIDContent(string(value)); err != nil {
			return err
		}
		n.setUnlessDefault(value)
	case TypeUTCTime:
		if err := der.ValidateUTCTime(string(value)); err != nil {
			return err
		}
		n.SetValue(value)
	case TypeGeneralizedTime:
		if err := der.ValidateGeneralizedTime(string(value)); err != nil {
			return err
		}
		n.SetValue(value)
	case TypeOctetString, TypeGeneralString:
		n.SetValue(value)
	case TypeBitString:
		return n.writeBits(value, len(value)*8)
	case TypeAny:
		l, err := der.TLVLength(value)
		if err != nil {
			return merry.Here(ErrValueNotValid).WithCause(err).Append("ANY value must be one complete encoding")
		}
		if l != len(value) {
			return merry.Here(ErrValueNotValid).Appendf("ANY value has %d trailing bytes", len(value)-l)
		}
		v, err := der.ToDefinite(value)
		if err != nil {
			return merry.Here(ErrValueNotValid).WithCause(err)
		}
		n.value = v
	case TypeChoice:
		alt := n.child(string(value))
		if alt == nil || alt.Type.annotation() {
			return merry.Here(ErrElementNotFound).Appendf("CHOICE %s has no alternative %q", n.path(), value)
		}
		for _, c := range n.Components() {
			if c != alt {
				c.Delete()
			}
		}
	case TypeSequenceOf, TypeSetOf:
		if string(value) != New {
			return merry.Here(ErrValueNotValid).Appendf("%v value must be %q, was %q", n.Type, New, value)
		}
		_, err := n.AppendSequenceSet()
		return err
	default:
		return merry.Here(ErrElementNotFound).Appendf("%s is a %v, which can't hold a value", n.path(), n.Type)
	}
	return nil
}

// setUnlessDefault stores v, or clears the value if v equals the node's default.
func (n *Node) setUnlessDefault(v []byte) {
	if def, ok := n.defaultValue(); ok && bytes.Equal(def, v) {
		n.ClearValue()
		return
	}
	n.SetValue(v)
}

func parseBoolean(s string) (byte, error) {
	switch s {
	case "TRUE":
		return 0xFF, nil
	case "FALSE":
		return 0x00, nil
	}
	return 0, merry.Here(ErrValueNotValid).Appendf("BOOLEAN value must be TRUE or FALSE, was %q", s)
}

// parseInteger parses a decimal or 0x prefixed hex number, or the name of one of the
// node's named numbers.
func (n *Node) parseInteger(s string) (*big.Int, error) {
	if strings.HasPrefix(s, "0x") {
		if i, ok := new(big.Int).SetString(s[2:], 16); ok {
			return i, nil
		}
		return nil, merry.Here(ErrValueNotValid).Appendf("invalid hex integer %q", s)
	}
	if i, ok := new(big.Int).SetString(s, 10); ok {
		return i, nil
	}
	for c := n.down; c != nil; c = c.next {
		if c.Type == TypeConstant && c.Name == s {
			if i, ok := new(big.Int).SetString(string(c.value), 10); ok {
				return i, nil
			}
		}
	}
	return nil, merry.Here(ErrValueNotValid).Appendf("must be a number, hex string, or named number of %s, was %q", n.path(), s)
}

// defaultValue returns the encoded content of the node's DEFAULT.
func (n *Node) defaultValue() ([]byte, bool) {
	if n.Flags&FlagDefault == 0 {
		return nil, false
	}
	d := n.childOfType(TypeDefault)
	if d == nil {
		return nil, false
	}
	s := string(d.value)
	switch n.Type {
	case TypeBoolean:
		v, err := parseBoolean(s)
		if err != nil {
			return nil, false
		}
		return []byte{v}, true
	case TypeInteger, TypeEnumerated:
		i, err := n.parseInteger(s)
		if err != nil {
			return nil, false
		}
		return der.IntegerContent(i), true
	default:
		return d.value, true
	}
}

// WriteInteger stores an INTEGER or ENUMERATED value.
func (n *Node) WriteInteger(path string, i *big.Int) error {
	p, err := n.mustFind(path)
	if err != nil {
		return err
	}
	if err := p.writeInteger(i); err != nil {
		return withElement(err, p)
	}
	p.selectAlternatives()
	return nil
}

func (n *Node) writeInteger(i *big.Int) error {
	switch n.Type {
	case TypeInteger:
	case TypeEnumerated:
		if i.Sign() < 0 {
			return merry.Here(ErrValueNotValid).Appendf("ENUMERATED value must not be negative, was %v", i)
		}
	default:
		return merry.Here(ErrValueNotValid).Appendf("%s is a %v, not an INTEGER", n.path(), n.Type)
	}
	n.setUnlessDefault(der.IntegerContent(i))
	return nil
}

// WriteBits stores the first bitLen bits of bits in a BIT STRING.
func (n *Node) WriteBits(path string, bits []byte, bitLen int) error {
	p, err := n.mustFind(path)
	if err != nil {
		return err
	}
	if err := p.writeBits(bits, bitLen); err != nil {
		return withElement(err, p)
	}
	p.selectAlternatives()
	return nil
}

func (n *Node) writeBits(bits []byte, bitLen int) error {
	if n.Type != TypeBitString {
		return merry.Here(ErrValueNotValid).Appendf("%s is a %v, not a BIT STRING", n.path(), n.Type)
	}
	if bitLen < 0 || (bitLen+7)/8 > len(bits) {
		return merry.Here(ErrValueNotValid).Appendf("bit length %d needs %d bytes, have %d", bitLen, (bitLen+7)/8, len(bits))
	}
	n.value = der.BitStringContent(bits, bitLen)
	return nil
}

// AppendElement appends a new element to the SEQUENCE OF or SET OF at path, and
// returns it.  It is the same as writing New to it.
func (n *Node) AppendElement(path string) (*Node, error) {
	p, err := n.mustFind(path)
	if err != nil {
		return nil, err
	}
	return p.AppendSequenceSet()
}

// DeleteElement removes the node at path from the tree.
func (n *Node) DeleteElement(path string) error {
	p, err := n.mustFind(path)
	if err != nil {
		return err
	}
	p.Delete()
	return nil
}

// NumberOfElements returns the number of elements in the SEQUENCE OF or SET OF at path.
func (n *Node) NumberOfElements(path string) (int, error) {
	p, err := n.mustFind(path)
	if err != nil {
		return 0, err
	}
	if p.Type != TypeSequenceOf && p.Type != TypeSetOf {
		return 0, merry.Here(ErrElementNotFound).Appendf("%s is a %v, not a SEQUENCE OF or SET OF", p.path(), p.Type)
	}
	return len(p.elements()), nil
}

// ReadValue returns the value of the node at path, in the form WriteValue takes,
// except INTEGER and ENUMERATED values, which are returned as two's complement bytes
// (see ReadInteger), and BIT STRING values, which are returned without their bit
// length (see ReadBits).  A DEFAULT node without a value reads as its default.
func (n *Node) ReadValue(path string) ([]byte, error) {
	p, err := n.mustFind(path)
	if err != nil {
		return nil, err
	}
	v, err := p.readValue()
	if err != nil {
		return nil, withElement(err, p)
	}
	return v, nil
}

func (n *Node) stored() ([]byte, error) {
	if n.value != nil {
		return n.value, nil
	}
	if def, ok := n.defaultValue(); ok {
		return def, nil
	}
	return nil, merry.Here(ErrValueNotFound).Appendf("%s has no value", n.path())
}

func (n *Node) readValue() ([]byte, error) {
	switch n.Type {
	case TypeNull:
		if n.value == nil {
			return nil, merry.Here(ErrValueNotFound).Appendf("%s has no value", n.path())
		}
		return []byte("NULL"), nil
	case TypeBoolean:
		v, err := n.stored()
		if err != nil {
			return nil, err
		}
		if len(v) == 1 && v[0] != 0 {
			return []byte("TRUE"), nil
		}
		return []byte("FALSE"), nil
	case TypeBitString:
		bits, _, err := n.readBits()
		return bits, err
	case TypeChoice:
		c := n.Components()
		if len(c) != 1 {
			return nil, merry.Here(ErrValueNotFound).Appendf("no alternative of CHOICE %s is selected", n.path())
		}
		return []byte(c[0].Name), nil
	case TypeSequence, TypeSet, TypeSequenceOf, TypeSetOf, TypeDefinitions:
		return nil, merry.Here(ErrElementNotFound).Appendf("%s is a %v, which has no value", n.path(), n.Type)
	default:
		v, err := n.stored()
		if err != nil {
			return nil, err
		}
		return append([]byte{}, v...), nil
	}
}

// ReadInteger returns the value of the INTEGER or ENUMERATED at path.
func (n *Node) ReadInteger(path string) (*big.Int, error) {
	p, err := n.mustFind(path)
	if err != nil {
		return nil, err
	}
	if p.Type != TypeInteger && p.Type != TypeEnumerated {
		return nil, withElement(merry.Here(ErrValueNotValid).Appendf("%s is a %v, not an INTEGER", p.path(), p.Type), p)
	}
	v, err := p.stored()
	if err != nil {
		return nil, withElement(err, p)
	}
	return der.ParseIntegerContent(v)
}

// ReadBits returns the bits of the BIT STRING at path, and the number of bits.
func (n *Node) ReadBits(path string) ([]byte, int, error) {
	p, err := n.mustFind(path)
	if err != nil {
		return nil, 0, err
	}
	bits, bitLen, err := p.readBits()
	if err != nil {
		return nil, 0, withElement(err, p)
	}
	return bits, bitLen, nil
}

func (n *Node) readBits() ([]byte, int, error) {
	if n.Type != TypeBitString {
		return nil, 0, merry.Here(ErrValueNotValid).Appendf("%s is a %v, not a BIT STRING", n.path(), n.Type)
	}
	v, err := n.stored()
	if err != nil {
		return nil, 0, err
	}
	bits, bitLen, err := der.ParseBitStringContent(v)
	if err != nil {
		return nil, 0, err
	}
	return append([]byte(nil), bits...), bitLen, nil
}

package asn1der

import (
	"fmt"
	"github.com/ansel1/merry"
	"strings"
)

// Type is the ASN.1 type of a Node.  Besides the universal and constructed
// types, some types describe schema annotations (TAG, SIZE, DEFAULT, CONSTANT)
// which are attached as children of the node they annotate.
type Type byte

const (
	TypeNull Type = iota + 1
	TypeBoolean
	TypeInteger
	TypeEnumerated
	TypeObjectID
	TypeUTCTime
	TypeGeneralizedTime
	TypeOctetString
	TypeGeneralString
	TypeBitString
	TypeSequence
	TypeSequenceOf
	TypeSet
	TypeSetOf
	TypeChoice
	TypeAny
	TypeTag
	TypeSize
	TypeDefault
	TypeConstant
	TypeIdentifier
	TypeDefinitions
)

var typeNames = map[Type]string{
	TypeNull:            "NULL",
	TypeBoolean:         "BOOLEAN",
	TypeInteger:         "INTEGER",
	TypeEnumerated:      "ENUMERATED",
	TypeObjectID:        "OBJECT IDENTIFIER",
	TypeUTCTime:         "UTCTime",
	TypeGeneralizedTime: "GeneralizedTime",
	TypeOctetString:     "OCTET STRING",
	TypeGeneralString:   "GeneralString",
	TypeBitString:       "BIT STRING",
	TypeSequence:        "SEQUENCE",
	TypeSequenceOf:      "SEQUENCE OF",
	TypeSet:             "SET",
	TypeSetOf:           "SET OF",
	TypeChoice:          "CHOICE",
	TypeAny:             "ANY",
	TypeTag:             "TAG",
	TypeSize:            "SIZE",
	TypeDefault:         "DEFAULT",
	TypeConstant:        "CONSTANT",
	TypeIdentifier:      "IDENTIFIER",
	TypeDefinitions:     "DEFINITIONS",
}

var typeValues = func() map[string]Type {
	m := make(map[string]Type, len(typeNames))
	for t, name := range typeNames {
		m[name] = t
	}
	return m
}()

// String returns the ASN.1 name of the type, e.g. "OCTET STRING".  Unknown
// types are rendered in hex.
func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("%#02x", byte(t))
}

func (t Type) MarshalText() (text []byte, err error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(text []byte) (err error) {
	*t, err = ParseType(string(text))
	return
}

// ParseType parses the name of a type, as returned by Type.String().
func ParseType(s string) (Type, error) {
	if t, ok := typeValues[s]; ok {
		return t, nil
	}
	return 0, merry.Here(ErrGeneric).Appendf("unknown type name %q", s)
}

// structured reports whether values of the type are encoded in constructed form.
func (t Type) structured() bool {
	switch t {
	case TypeSequence, TypeSequenceOf, TypeSet, TypeSetOf:
		return true
	}
	return false
}

// annotation reports whether nodes of this type describe their parent instead of
// being a component of it.
func (t Type) annotation() bool {
	switch t {
	case TypeTag, TypeSize, TypeDefault, TypeConstant:
		return true
	}
	return false
}

// Flags are the modifiers of a Node.
type Flags uint32

const (
	FlagOptional Flags = 1 << iota
	// FlagDefault marks a node which has a DEFAULT child.
	FlagDefault
	FlagExplicit
	FlagImplicit
	FlagUniversal
	FlagApplication
	FlagPrivate
	FlagContext
	// FlagTagged marks a node which has TAG children.
	FlagTagged
	// FlagSet marks the components of a SET.
	FlagSet
	// FlagNotUsed marks a component which was not found while decoding.
	FlagNotUsed
	// FlagAssign marks a value assignment, like an OBJECT IDENTIFIER constant.
	FlagAssign
	// FlagList marks a node whose CONSTANT children are named numbers or bits.
	FlagList
	FlagTrue
	FlagFalse
	// FlagDown and FlagRight only appear in a Definition array.  FlagDown means the
	// next entry is the first child, FlagRight means the next entry after this
	// entry's subtree is its next sibling.
	FlagDown
	FlagRight
)

var flagNames = []struct {
	f    Flags
	name string
}{
	{FlagOptional, "OPTIONAL"},
	{FlagDefault, "DEFAULT"},
	{FlagExplicit, "EXPLICIT"},
	{FlagImplicit, "IMPLICIT"},
	{FlagUniversal, "UNIVERSAL"},
	{FlagApplication, "APPLICATION"},
	{FlagPrivate, "PRIVATE"},
	{FlagContext, "CONTEXT"},
	{FlagTagged, "TAGGED"},
	{FlagSet, "SET"},
	{FlagNotUsed, "NOT_USED"},
	{FlagAssign, "ASSIGN"},
	{FlagList, "LIST"},
	{FlagTrue, "TRUE"},
	{FlagFalse, "FALSE"},
	{FlagDown, "DOWN"},
	{FlagRight, "RIGHT"},
}

// shapeFlags only have meaning in a Definition array.
const shapeFlags = FlagDown | FlagRight

// classFlags select the class of a TAG node.
const classFlags = FlagUniversal | FlagApplication | FlagPrivate | FlagContext

// String renders the set flags separated by '|', e.g. "OPTIONAL|EXPLICIT".
func (f Flags) String() string {
	var parts []string
	for _, fn := range flagNames {
		if f&fn.f != 0 {
			parts = append(parts, fn.name)
			f &^= fn.f
		}
	}
	if f != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint32(f)))
	}
	return strings.Join(parts, "|")
}

func (f Flags) MarshalText() (text []byte, err error) {
	return []byte(f.String()), nil
}

func (f *Flags) UnmarshalText(text []byte) (err error) {
	*f, err = ParseFlags(string(text))
	return
}

// ParseFlags parses flag names separated by '|' or whitespace.
func ParseFlags(s string) (Flags, error) {
	var f Flags
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ' ' }) {
		found := false
		for _, fn := range flagNames {
			if fn.name == part {
				f |= fn.f
				found = true
				break
			}
		}
		if !found {
			return 0, merry.Here(ErrGeneric).Appendf("unknown flag name %q", part)
		}
	}
	return f, nil
}

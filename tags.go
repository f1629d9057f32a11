package asn1der

import (
	"github.com/ansel1/merry"
	"github.com/gemalto/asn1der/der"
	"github.com/gemalto/asn1der/internal/asn1util"
)

type tagHeader struct {
	class  der.Class
	number uint32
}

// tagLayout is how a node appears on the wire: explicit wrappers, outermost first,
// around the node's own identifier.  Untagged CHOICE and ANY nodes have no identifier
// of their own.
type tagLayout struct {
	wrappers []tagHeader
	own      tagHeader
	hasOwn   bool
}

var universalTags = map[Type]uint32{
	TypeNull:            der.TagNull,
	TypeBoolean:         der.TagBoolean,
	TypeInteger:         der.TagInteger,
	TypeEnumerated:      der.TagEnumerated,
	TypeObjectID:        der.TagObjectID,
	TypeUTCTime:         der.TagUTCTime,
	TypeGeneralizedTime: der.TagGeneralizedTime,
	TypeOctetString:     der.TagOctetString,
	TypeGeneralString:   der.TagGeneralString,
	TypeBitString:       der.TagBitString,
	TypeSequence:        der.TagSequence,
	TypeSequenceOf:      der.TagSequence,
	TypeSet:             der.TagSet,
	TypeSetOf:           der.TagSet,
}

func tagClass(f Flags) der.Class {
	switch {
	case f&FlagApplication != 0:
		return der.ClassApplication
	case f&FlagUniversal != 0:
		return der.ClassUniversal
	case f&FlagPrivate != 0:
		return der.ClassPrivate
	default:
		return der.ClassContextSpecific
	}
}

// resolveTags works out a node's tags from its TAG children, which are listed
// outermost first.  An IMPLICIT tag replaces the tag which follows it, so the
// outermost of a run of IMPLICIT tags wins, and if the run ends at an EXPLICIT tag the
// wrapper carries the implicit tag.  CHOICE and ANY have no tag to replace, so an
// IMPLICIT tag on them is treated as EXPLICIT.
func resolveTags(n *Node) (tagLayout, error) {
	var ts tagLayout
	var implicit *tagHeader
	for c := n.down; c != nil; c = c.next {
		if c.Type != TypeTag {
			continue
		}
		num, err := asn1util.ParseUint32(string(c.value))
		if err != nil {
			return ts, merry.Here(ErrGeneric).WithCause(err).Appendf("invalid tag number %q", c.value)
		}
		h := tagHeader{class: tagClass(c.Flags), number: num}
		if c.Flags&FlagImplicit != 0 {
			if implicit == nil {
				implicit = &h
			}
			continue
		}
		if implicit != nil {
			h = *implicit
			implicit = nil
		}
		ts.wrappers = append(ts.wrappers, h)
	}

	num, ok := universalTags[n.Type]
	switch {
	case ok && implicit != nil:
		ts.own, ts.hasOwn = *implicit, true
	case ok:
		ts.own, ts.hasOwn = tagHeader{class: der.ClassUniversal, number: num}, true
	case implicit != nil:
		ts.wrappers = append(ts.wrappers, *implicit)
	}
	return ts, nil
}

// appendHeader appends the identifier and length octets which precede contentLen bytes of
// content: the explicit wrappers, then the node's own identifier.
func (ts tagLayout) appendHeader(dst []byte, constructed bool, contentLen int) []byte {
	// lengths of each wrapper's content, innermost last
	lens := make([]int, len(ts.wrappers))
	l := contentLen
	if ts.hasOwn {
		l += der.TagLen(ts.own.number) + der.LengthLen(contentLen)
	}
	for i := len(ts.wrappers) - 1; i >= 0; i-- {
		lens[i] = l
		l += der.TagLen(ts.wrappers[i].number) + der.LengthLen(l)
	}

	for i, w := range ts.wrappers {
		dst = der.AppendTag(dst, w.class|der.ClassStructured, w.number)
		dst = der.AppendLength(dst, lens[i])
	}
	if ts.hasOwn {
		class := ts.own.class
		if constructed {
			class |= der.ClassStructured
		}
		dst = der.AppendTag(dst, class, ts.own.number)
		dst = der.AppendLength(dst, contentLen)
	}
	return dst
}

// tagged reports whether n has TAG children.
func (n *Node) tagged() bool {
	return n.childOfType(TypeTag) != nil
}

package asn1der

import (
	"fmt"
	"github.com/gemalto/asn1der/der"
	"io"
)

// Print writes the tree rooted at n, one node per line, children indented under their
// parent.  Annotations, and the element type of a SEQUENCE OF, are left out.
func Print(w io.Writer, indent string, n *Node) (err error) {
	depth := 0
	first := true
	return walker{
		enter: func(n *Node) (bool, error) {
			if !first {
				if _, err := fmt.Fprint(w, "\n"); err != nil {
					return false, err
				}
			}
			first = false
			in := indent
			for i := 0; i < depth; i++ {
				in += "  "
			}
			if err := printNode(w, in, n); err != nil {
				return false, err
			}
			switch n.Type {
			case TypeSequence, TypeSet, TypeSequenceOf, TypeSetOf, TypeChoice, TypeDefinitions:
				depth++
				return true, nil
			}
			return false, nil
		},
		next: func(parent, prev *Node) (*Node, error) {
			if (parent.Type == TypeSequenceOf || parent.Type == TypeSetOf) && prev == nil {
				if prev = parent.template(); prev == nil {
					return nil, nil
				}
			}
			return nextComponent(parent, prev)
		},
		leave: func(n *Node) error {
			switch n.Type {
			case TypeSequence, TypeSet, TypeSequenceOf, TypeSetOf, TypeChoice, TypeDefinitions:
				depth--
			}
			return nil
		},
	}.walk(n)
}

func printNode(w io.Writer, indent string, n *Node) error {
	name := n.Name
	if name != "" {
		name += " "
	}
	if _, err := fmt.Fprintf(w, "%s%s(%v):", indent, name, n.Type); err != nil {
		return err
	}
	v := n.value
	if v == nil {
		def, ok := n.defaultValue()
		if !ok {
			return nil
		}
		v = def
		if _, err := fmt.Fprint(w, " DEFAULT"); err != nil {
			return err
		}
	}
	var err error
	switch n.Type {
	case TypeInteger, TypeEnumerated:
		i, perr := der.ParseIntegerContent(v)
		if perr != nil {
			_, err = fmt.Fprintf(w, " %#x", v)
			break
		}
		_, err = fmt.Fprint(w, " ", i.String())
		for c := n.down; c != nil; c = c.next {
			if c.Type == TypeConstant && string(c.value) == i.String() {
				_, err = fmt.Fprintf(w, " (%s)", c.Name)
				break
			}
		}
	case TypeBoolean:
		if len(v) == 1 && v[0] != 0 {
			_, err = fmt.Fprint(w, " TRUE")
		} else {
			_, err = fmt.Fprint(w, " FALSE")
		}
	case TypeBitString:
		bits, bitLen, perr := der.ParseBitStringContent(v)
		if perr != nil {
			_, err = fmt.Fprintf(w, " %#x", v)
			break
		}
		_, err = fmt.Fprintf(w, " %#x (%d bits)", bits, bitLen)
	case TypeNull:
		_, err = fmt.Fprint(w, " NULL")
	case TypeObjectID, TypeUTCTime, TypeGeneralizedTime, TypeIdentifier:
		_, err = fmt.Fprint(w, " ", string(v))
	case TypeGeneralString:
		_, err = fmt.Fprintf(w, " %q", v)
	default:
		_, err = fmt.Fprintf(w, " %#x", v)
	}
	return err
}

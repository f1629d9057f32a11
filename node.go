package asn1der

import (
	"strings"
)

// Node is one element of a schema tree or of a value tree.  A value tree is a
// copy of a schema which carries values: see CreateElement, DecodeDER and WriteValue.
//
// A node's children are the components of a constructed type, preceded by the
// annotations (TAG, SIZE, DEFAULT, CONSTANT) which describe the node itself.
//
// A nil value means no value was set.  A non-nil empty value is set, e.g. a NULL
// or an empty OCTET STRING.
type Node struct {
	Name  string
	Type  Type
	Flags Flags

	value []byte

	parent, prev, next, down *Node
}

func NewNode(name string, typ Type, flags Flags) *Node {
	return &Node{Name: name, Type: typ, Flags: flags}
}

// Value returns the stored value.  Do not modify the returned slice.
func (n *Node) Value() []byte {
	return n.value
}

func (n *Node) HasValue() bool {
	return n.value != nil
}

// SetValue stores a copy of v.  A nil v clears the value.
func (n *Node) SetValue(v []byte) {
	if v == nil {
		n.value = nil
		return
	}
	n.value = append(make([]byte, 0, len(v)), v...)
}

func (n *Node) ClearValue() {
	n.value = nil
}

// FirstChild returns the first child, including annotations.
func (n *Node) FirstChild() *Node {
	return n.down
}

func (n *Node) Next() *Node {
	return n.next
}

// Children returns the child nodes, annotations included.
func (n *Node) Children() []*Node {
	var c []*Node
	for p := n.down; p != nil; p = p.next {
		c = append(c, p)
	}
	return c
}

// Components returns the children which are components, not annotations.
func (n *Node) Components() []*Node {
	var c []*Node
	for p := n.firstComponent(); p != nil; p = p.nextComponent() {
		c = append(c, p)
	}
	return c
}

func (n *Node) firstComponent() *Node {
	p := n.down
	for p != nil && p.Type.annotation() {
		p = p.next
	}
	return p
}

func (n *Node) nextComponent() *Node {
	p := n.next
	for p != nil && p.Type.annotation() {
		p = p.next
	}
	return p
}

func (n *Node) lastChild() *Node {
	p := n.down
	for p != nil && p.next != nil {
		p = p.next
	}
	return p
}

// child returns the first child with the given name.
func (n *Node) child(name string) *Node {
	for p := n.down; p != nil; p = p.next {
		if p.Name == name {
			return p
		}
	}
	return nil
}

// childOfType returns the first annotation child of the given type.
func (n *Node) childOfType(t Type) *Node {
	for p := n.down; p != nil; p = p.next {
		if p.Type == t {
			return p
		}
	}
	return nil
}

// template returns the element type of a SEQUENCE OF or SET OF.
func (n *Node) template() *Node {
	return n.firstComponent()
}

// path returns the dotted names from the root down to n.  Unnamed
// ancestors are skipped.
func (n *Node) path() string {
	var names []string
	for p := n; p != nil; p = p.parent {
		if p.Name != "" {
			names = append(names, p.Name)
		}
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return strings.Join(names, ".")
}

func (n *Node) String() string {
	var sb strings.Builder
	_ = Print(&sb, "", n)
	return sb.String()
}

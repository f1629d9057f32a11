package asn1der

import (
	"github.com/ansel1/merry"
	"strconv"
	"strings"
)

// FindUp returns the parent of n, or nil if n is a root.
func (n *Node) FindUp() *Node {
	return n.parent
}

// FindLeft returns the previous sibling of n, or nil if n is a first child.
func (n *Node) FindLeft() *Node {
	return n.prev
}

// appendChild adds c as the last child of n.
func (n *Node) appendChild(c *Node) {
	c.parent = n
	c.next = nil
	last := n.lastChild()
	c.prev = last
	if last == nil {
		n.down = c
	} else {
		last.next = c
	}
}

// insertAfter links c into n's parent as the next sibling of n.
func (n *Node) insertAfter(c *Node) {
	c.parent = n.parent
	c.prev = n
	c.next = n.next
	if n.next != nil {
		n.next.prev = c
	}
	n.next = c
}

// replace puts c in n's place in the tree.
func (n *Node) replace(c *Node) {
	c.parent, c.prev, c.next = n.parent, n.prev, n.next
	if n.prev != nil {
		n.prev.next = c
	} else if n.parent != nil {
		n.parent.down = c
	}
	if n.next != nil {
		n.next.prev = c
	}
	n.parent, n.prev, n.next = nil, nil, nil
}

// detach unlinks n, and its subtree, from the tree.
func (n *Node) detach() {
	if n.prev != nil {
		n.prev.next = n.next
	} else if n.parent != nil {
		n.parent.down = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	}
	n.parent, n.prev, n.next = nil, nil, nil
}

// Delete removes n and its subtree from the tree, and clears every value in the
// subtree.
func (n *Node) Delete() {
	n.detach()
	destroy(n)
}

func destroy(n *Node) {
	for p := n.down; p != nil; {
		next := p.next
		destroy(p)
		p.parent, p.prev, p.next = nil, nil, nil
		p = next
	}
	n.down = nil
	n.value = nil
}

// CopyStructure returns a deep copy of the subtree rooted at n, values included.
// The copy has no parent or siblings.
func (n *Node) CopyStructure() *Node {
	c := &Node{Name: n.Name, Type: n.Type, Flags: n.Flags}
	c.SetValue(n.value)
	for p := n.down; p != nil; p = p.next {
		c.appendChild(p.CopyStructure())
	}
	return c
}

// AppendSequenceSet appends a new element to a SEQUENCE OF or SET OF node,
// copied from its element type, and returns it.  Elements are named "?1", "?2"
// and so on: one more than the number in the last element's name.
func (n *Node) AppendSequenceSet() (*Node, error) {
	if n.Type != TypeSequenceOf && n.Type != TypeSetOf {
		return nil, merry.Here(ErrElementNotFound).Appendf("%s is a %v, not a SEQUENCE OF or SET OF", n.path(), n.Type)
	}
	tmpl := n.template()
	if tmpl == nil {
		return nil, merry.Here(ErrElementNotFound).Appendf("%s has no element type", n.path())
	}
	c := tmpl.CopyStructure()
	idx := 1
	if last := n.lastChild(); last != tmpl && strings.HasPrefix(last.Name, "?") {
		if i, err := strconv.Atoi(last.Name[1:]); err == nil {
			idx = i + 1
		}
	}
	c.Name = "?" + strconv.Itoa(idx)
	n.appendChild(c)
	return c, nil
}

// elements returns the elements of a SEQUENCE OF or SET OF, skipping the element type.
func (n *Node) elements() []*Node {
	var e []*Node
	tmpl := n.template()
	if tmpl == nil {
		return nil
	}
	for p := tmpl.nextComponent(); p != nil; p = p.nextComponent() {
		e = append(e, p)
	}
	return e
}

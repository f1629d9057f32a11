package asn1der

import (
	"github.com/ansel1/merry"
	"strings"
)

// Last selects the last child in a path, usually the most recently added element
// of a SEQUENCE OF or SET OF: "extensions.?LAST.extnID".
const Last = "?LAST"

// Find returns the node at a dotted path relative to n.  If n is named, the first
// component of the path must be n's name.  Otherwise the path starts at n's
// children.  An empty path returns n.  Elements of a SEQUENCE OF are addressed
// by their names, "?1", "?2", and so on.  Returns nil if there is no such node.
func (n *Node) Find(path string) *Node {
	if n == nil {
		return nil
	}
	if path == "" {
		return n
	}
	parts := strings.Split(path, ".")
	p := n
	if n.Name != "" {
		if parts[0] != n.Name {
			return nil
		}
		parts = parts[1:]
	}
	for _, part := range parts {
		if part == Last {
			p = p.lastChild()
		} else {
			p = p.child(part)
		}
		if p == nil {
			return nil
		}
	}
	return p
}

func (n *Node) mustFind(path string) (*Node, error) {
	p := n.Find(path)
	if p == nil {
		return nil, merry.Here(ErrElementNotFound).Appendf("element %q not found", path)
	}
	return p, nil
}

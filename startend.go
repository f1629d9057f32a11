package asn1der

import (
	"github.com/ansel1/merry"
)

// DecodeDERStartEnd returns the offsets of the encoding of the element at path within b,
// which must be the encoding of root: b[start:end] is the element's complete encoding,
// explicit tags included.  root may be a decoded tree or a fresh one from CreateElement.
// It isn't modified.
func DecodeDERStartEnd(root *Node, b []byte, path string) (start, end int, err error) {
	target, err := root.mustFind(path)
	if err != nil {
		return 0, 0, err
	}
	if target == root {
		return 0, len(b), nil
	}

	c := root.CopyStructure()
	resetValues(c)
	d := newDecoder(b)
	if err := d.decode(c); err != nil {
		return 0, 0, err
	}
	t := c.Find(path)
	if t == nil {
		return 0, 0, merry.Here(ErrElementNotFound).Appendf("element %q is not in the encoding", path)
	}
	st := d.state[t]
	if st == nil || st.absent {
		return 0, 0, merry.Here(ErrElementNotFound).Appendf("element %q is not in the encoding", path)
	}
	return st.start, st.end, nil
}

// resetValues returns a value tree to its state before decoding: no values, and
// no elements in SEQUENCE OF and SET OF nodes.
func resetValues(n *Node) {
	_ = walker{
		enter: func(n *Node) (bool, error) {
			n.ClearValue()
			if n.Type == TypeSequenceOf || n.Type == TypeSetOf {
				for _, e := range n.elements() {
					e.Delete()
				}
			}
			return true, nil
		},
	}.walk(n)
}

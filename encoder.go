package asn1der

import (
	"github.com/ansel1/merry"
	"github.com/gemalto/asn1der/der"
)

// EncodeDER returns the DER encoding of the node at path, relative to root.
//
// OPTIONAL and DEFAULT nodes without a value are left out.  Any other node
// without a value is an ErrValueNotFound error.  Constructed nodes are encoded if
// they are in the tree, so an unwanted OPTIONAL SEQUENCE must be deleted, by writing
// a nil value to it.  The components of a SET are sorted by tag, and the elements of a
// SET OF by their encodings.
func EncodeDER(root *Node, path string) ([]byte, error) {
	n, err := root.mustFind(path)
	if err != nil {
		return nil, err
	}
	var e encoder
	if err := e.encode(n); err != nil {
		return nil, err
	}
	log.Debug("encoded", "element", n.path(), "len", len(e.b))
	return e.b, nil
}

// EncodeDERTo encodes like EncodeDER, into dst.  It returns the length of the
// encoding.  If dst is too small, it returns ErrMem, and the length needed, which
// is also attached to the error (see RequiredLen).
func EncodeDERTo(dst []byte, root *Node, path string) (int, error) {
	b, err := EncodeDER(root, path)
	if err != nil {
		return 0, err
	}
	if len(b) > len(dst) {
		return len(b), der.WithRequiredLen(merry.Here(ErrMem).Appendf("encoding needs %d bytes, have %d", len(b), len(dst)), len(b))
	}
	return copy(dst, b), nil
}

// encBuf accumulates the encoding.  Constructed values are written by marking where their
// content begins, writing the content, and then inserting the header in front of it once
// its length is known.
type encBuf struct {
	b []byte
}

func (h *encBuf) begin() int {
	return len(h.b)
}

func (h *encBuf) end(i int, ts tagLayout, constructed bool) {
	hdr := ts.appendHeader(nil, constructed, len(h.b)-i)
	h.b = append(h.b, hdr...)
	copy(h.b[i+len(hdr):], h.b[i:len(h.b)-len(hdr)])
	copy(h.b[i:], hdr)
}

type openNode struct {
	n     *Node
	start int
	ts    tagLayout
}

type encoder struct {
	encBuf
	open []openNode
}

func (e *encoder) encode(n *Node) error {
	return walker{
		enter: e.enter,
		next:  e.next,
		leave: e.leave,
	}.walk(n)
}

func (e *encoder) enter(n *Node) (bool, error) {
	ts, err := resolveTags(n)
	if err != nil {
		return false, withElement(err, n)
	}
	switch n.Type {
	case TypeSequence, TypeSet, TypeSequenceOf, TypeSetOf:
		e.open = append(e.open, openNode{n: n, start: e.begin(), ts: ts})
		return true, nil
	case TypeChoice:
		switch len(n.Components()) {
		case 1:
		case 0:
			return false, withElement(merry.Here(ErrValueNotFound).Appendf("CHOICE %s has no alternatives", n.path()), n)
		default:
			if n.Flags&FlagOptional != 0 {
				return false, nil
			}
			return false, withElement(merry.Here(ErrValueNotFound).Appendf("no alternative of CHOICE %s is selected", n.path()), n)
		}
		e.open = append(e.open, openNode{n: n, start: e.begin(), ts: ts})
		return true, nil
	}

	if n.value == nil {
		if n.Flags&(FlagOptional|FlagDefault) != 0 {
			return false, nil
		}
		return false, withElement(merry.Here(ErrValueNotFound).Appendf("value of %s not found", n.path()), n)
	}
	content, err := n.content()
	if err != nil {
		return false, withElement(err, n)
	}
	e.b = ts.appendHeader(e.b, false, len(content))
	e.b = append(e.b, content...)
	return false, nil
}

// content returns the content octets for the node's value.  For ANY, that
// is the whole stored encoding.
func (n *Node) content() ([]byte, error) {
	switch n.Type {
	case TypeObjectID:
		return der.OIDContent(string(n.value))
	case TypeBoolean:
		if len(n.value) != 1 {
			return nil, merry.Here(ErrValueNotValid).Appendf("BOOLEAN value has %d bytes", len(n.value))
		}
	case TypeInteger, TypeEnumerated:
		if len(n.value) == 0 {
			return nil, merry.Here(ErrValueNotValid).Append("empty INTEGER value")
		}
	case TypeBitString:
		if _, _, err := der.ParseBitStringContent(n.value); err != nil {
			return nil, merry.Here(ErrValueNotValid).WithCause(err)
		}
	}
	return n.value, nil
}

func (e *encoder) next(parent, prev *Node) (*Node, error) {
	switch parent.Type {
	case TypeSequenceOf, TypeSetOf:
		if prev == nil {
			tmpl := parent.template()
			if tmpl == nil {
				return nil, nil
			}
			// skip the element type
			prev = tmpl
		}
		return prev.nextComponent(), nil
	}
	return nextComponent(parent, prev)
}

func (e *encoder) leave(n *Node) error {
	top := len(e.open) - 1
	if top < 0 || e.open[top].n != n {
		return nil
	}
	o := e.open[top]
	e.open = e.open[:top]

	var err error
	switch n.Type {
	case TypeSet:
		err = der.SortSet(e.b[o.start:])
	case TypeSetOf:
		err = der.SortSetOf(e.b[o.start:])
	}
	if err != nil {
		return withElement(err, n)
	}
	e.end(o.start, o.ts, true)
	return nil
}

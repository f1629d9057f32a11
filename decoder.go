package asn1der

import (
	"github.com/ansel1/merry"
	"github.com/gemalto/asn1der/der"
)

// DecodeDER decodes b into schema, a value tree fresh from CreateElement, and returns
// it.  b may use BER's indefinite length form and constructed OCTET STRINGs.
//
// Each SEQUENCE OF and SET OF grows an element per encoded element, each CHOICE keeps
// only the alternative which was present, and OPTIONAL components which were absent
// are deleted.  Absent DEFAULT components are left without a value, and read as their
// default.  An ANY value holds the complete encoding of the element, converted to
// definite lengths.
//
// On error, schema is torn down, and must not be used again.
func DecodeDER(schema *Node, b []byte) (*Node, error) {
	d := newDecoder(b)
	if err := d.decode(schema); err != nil {
		log.Debug("decoding failed", "error", err, "offset", d.pos)
		schema.Delete()
		return nil, err
	}
	return schema, nil
}

// bound is the end of a constructed encoding's content.
type bound struct {
	end        int
	indefinite bool
}

// decodeState is what the decoder learned about a node.
type decodeState struct {
	// start and end delimit the node's encoding, explicit tags included
	start, end int
	// pushed counts the bounds opened for the node: one per explicit tag, plus
	// the content of a constructed value
	pushed int
	absent bool
}

type decoder struct {
	der     []byte
	pos     int
	bounds  []bound
	state   map[*Node]*decodeState
	notUsed []*Node
}

func newDecoder(b []byte) *decoder {
	return &decoder{
		der:    b,
		bounds: []bound{{end: len(b)}},
		state:  map[*Node]*decodeState{},
	}
}

func (d *decoder) decode(root *Node) error {
	if root.Flags&FlagOptional != 0 {
		return withElement(merry.Here(ErrGeneric).Append("root element can't be OPTIONAL"), root)
	}
	err := walker{
		enter: d.enter,
		next:  d.next,
		leave: d.leave,
	}.walk(root)
	if err != nil {
		return err
	}
	if d.pos != len(d.der) {
		return merry.Here(ErrDER).Appendf("%d trailing bytes after offset %d", len(d.der)-d.pos, d.pos)
	}
	for _, n := range d.notUsed {
		n.Delete()
	}
	return nil
}

// limit is the offset the current content can't extend past.
func (d *decoder) limit() int {
	for i := len(d.bounds) - 1; i >= 0; i-- {
		if !d.bounds[i].indefinite {
			return d.bounds[i].end
		}
	}
	return len(d.der)
}

// atEnd reports whether the current content is exhausted.
func (d *decoder) atEnd() bool {
	b := d.bounds[len(d.bounds)-1]
	if b.indefinite {
		return d.pos >= len(d.der) || isEOC(d.der[d.pos:])
	}
	return d.pos >= b.end
}

func isEOC(b []byte) bool {
	return len(b) >= 2 && b[0] == 0 && b[1] == 0
}

// readLength reads length octets, and checks the length fits the current content.
func (d *decoder) readLength() (int, error) {
	if d.pos > d.limit() {
		return 0, merry.Here(ErrDER).Appendf("offset %d: identifier overruns the enclosing content", d.pos)
	}
	l, n, err := der.ParseLength(d.der[d.pos:d.limit()])
	if err != nil {
		return 0, merry.Prependf(err, "offset %d", d.pos)
	}
	d.pos += n
	if l != der.LengthIndefinite && l > d.limit()-d.pos {
		return 0, merry.Here(ErrDER).Appendf("offset %d: length %d exceeds the enclosing content, %d bytes left", d.pos, l, d.limit()-d.pos)
	}
	return l, nil
}

func (d *decoder) push(st *decodeState, l int) {
	if l == der.LengthIndefinite {
		d.bounds = append(d.bounds, bound{indefinite: true})
	} else {
		d.bounds = append(d.bounds, bound{end: d.pos + l})
	}
	st.pushed++
}

func (d *decoder) pop() error {
	b := d.bounds[len(d.bounds)-1]
	d.bounds = d.bounds[:len(d.bounds)-1]
	switch {
	case b.indefinite && !isEOC(d.der[d.pos:]):
		return merry.Here(ErrDER).Appendf("offset %d: missing end-of-contents", d.pos)
	case b.indefinite:
		d.pos += 2
	case d.pos != b.end:
		return merry.Here(ErrDER).Appendf("offset %d: content should end at offset %d", d.pos, b.end)
	}
	return nil
}

// matches reports whether the element at off starts with n's tags.  An untagged ANY
// matches anything, and an untagged CHOICE matches any of its alternatives.
func (d *decoder) matches(n *Node, off int) (bool, error) {
	ts, err := resolveTags(n)
	if err != nil {
		return false, err
	}
	pos := off
	for _, w := range ts.wrappers {
		class, num, tl, err := der.ParseTag(d.der[pos:])
		if err != nil {
			return false, merry.Prependf(err, "offset %d", pos)
		}
		if class != w.class|der.ClassStructured || num != w.number {
			return false, nil
		}
		pos += tl
		_, ll, err := der.ParseLength(d.der[pos:])
		if err != nil {
			return false, merry.Prependf(err, "offset %d", pos)
		}
		pos += ll
	}
	if ts.hasOwn {
		class, num, _, err := der.ParseTag(d.der[pos:])
		if err != nil {
			return false, merry.Prependf(err, "offset %d", pos)
		}
		if class.Base() != ts.own.class || num != ts.own.number {
			return false, nil
		}
		switch {
		case n.Type == TypeOctetString:
			// BER allows the constructed form
			return true, nil
		case n.Type.structured():
			return class.Constructed(), nil
		default:
			return !class.Constructed(), nil
		}
	}
	if n.Type == TypeChoice {
		alt, err := d.alternative(n, pos)
		return alt != nil, err
	}
	return true, nil
}

// alternative returns the alternative of a CHOICE which matches the element at off, or nil.
func (d *decoder) alternative(n *Node, off int) (*Node, error) {
	for alt := n.firstComponent(); alt != nil; alt = alt.nextComponent() {
		if alt.Type == TypeAny && !alt.tagged() {
			return nil, merry.Here(ErrTypeAny).Appendf("CHOICE %s has an untagged ANY alternative", n.path())
		}
		ok, err := d.matches(alt, off)
		if err != nil {
			return nil, err
		}
		if ok {
			return alt, nil
		}
	}
	return nil, nil
}

func (d *decoder) enter(n *Node) (bool, error) {
	st := &decodeState{start: d.pos}
	d.state[n] = st
	if d.atEnd() {
		return false, d.absent(n, st)
	}
	ok, err := d.matches(n, d.pos)
	if err != nil {
		return false, withElement(err, n)
	}
	if !ok {
		log.Debug("tag mismatch", "element", n.path(), "offset", d.pos)
		return false, d.absent(n, st)
	}

	descend, err := d.consume(n, st)
	if err != nil {
		return false, withElement(err, n)
	}
	return descend, nil
}

// absent handles a component which isn't in the encoding.
func (d *decoder) absent(n *Node, st *decodeState) error {
	st.absent = true
	switch {
	case n.Flags&FlagOptional != 0:
		n.Flags |= FlagNotUsed
		d.notUsed = append(d.notUsed, n)
		return nil
	case n.Flags&FlagDefault != 0:
		n.ClearValue()
		return nil
	case d.atEnd():
		return withElement(merry.Here(ErrDER).Appendf("offset %d: content ended before %s", d.pos, n.path()), n)
	default:
		return withElement(merry.Here(ErrTag).Appendf("offset %d: tag doesn't match %s", d.pos, n.path()), n)
	}
}

// consume reads the element at the current offset into n, whose tags are
// known to match.
func (d *decoder) consume(n *Node, st *decodeState) (bool, error) {
	ts, err := resolveTags(n)
	if err != nil {
		return false, err
	}
	for range ts.wrappers {
		_, _, tl, _ := der.ParseTag(d.der[d.pos:])
		d.pos += tl
		l, err := d.readLength()
		if err != nil {
			return false, err
		}
		d.push(st, l)
	}
	var class der.Class
	if ts.hasOwn {
		var tl int
		class, _, tl, _ = der.ParseTag(d.der[d.pos:])
		d.pos += tl
	}

	switch n.Type {
	case TypeChoice:
		alt, err := d.alternative(n, d.pos)
		if err != nil {
			return false, err
		}
		if alt == nil {
			return false, merry.Here(ErrTag).Appendf("offset %d: no alternative of CHOICE %s matches", d.pos, n.path())
		}
		for _, c := range n.Components() {
			if c != alt {
				c.Delete()
			}
		}
		return true, nil
	case TypeAny:
		l, err := der.TLVLength(d.der[d.pos:d.limit()])
		if err != nil {
			return false, merry.Prependf(err, "offset %d", d.pos)
		}
		raw := d.der[d.pos : d.pos+l]
		v, err := der.ToDefinite(raw)
		if err != nil {
			return false, err
		}
		n.value = v
		d.pos += l
		return false, nil
	case TypeSequence, TypeSet, TypeSequenceOf, TypeSetOf:
		l, err := d.readLength()
		if err != nil {
			return false, err
		}
		d.push(st, l)
		if n.Type == TypeSet {
			for c := n.firstComponent(); c != nil; c = c.nextComponent() {
				c.Flags |= FlagNotUsed
			}
		}
		return true, nil
	}
	return false, d.scalar(n, class)
}

func (d *decoder) scalar(n *Node, class der.Class) error {
	l, err := d.readLength()
	if err != nil {
		return err
	}
	if class.Constructed() {
		// only OCTET STRING gets here in constructed form
		v, err := d.segments([]byte{}, l)
		if err != nil {
			return err
		}
		n.value = v
		return nil
	}
	if l == der.LengthIndefinite {
		return merry.Here(ErrDER).Appendf("offset %d: indefinite length on primitive encoding", d.pos)
	}
	content := d.der[d.pos : d.pos+l]
	d.pos += l

	switch n.Type {
	case TypeNull:
		if l != 0 {
			return merry.Here(ErrDER).Appendf("NULL with %d content bytes", l)
		}
		n.value = []byte{}
	case TypeBoolean:
		if l != 1 {
			return merry.Here(ErrDER).Appendf("BOOLEAN with %d content bytes", l)
		}
		v := byte(0x00)
		if content[0] != 0 {
			v = 0xFF
		}
		n.value = []byte{v}
	case TypeInteger, TypeEnumerated:
		if l == 0 {
			return merry.Here(ErrDER).Append("empty INTEGER")
		}
		n.SetValue(content)
	case TypeObjectID:
		s, err := der.OIDFromContent(content)
		if err != nil {
			return err
		}
		n.value = []byte(s)
	case TypeBitString:
		if _, _, err := der.ParseBitStringContent(content); err != nil {
			return err
		}
		n.SetValue(content)
	default:
		n.SetValue(content)
	}
	return nil
}

// segments appends the payload of a constructed OCTET STRING's content, of length l.
func (d *decoder) segments(dst []byte, l int) ([]byte, error) {
	end := d.pos + l
	for {
		if l == der.LengthIndefinite {
			if d.pos >= len(d.der) {
				return nil, merry.Here(ErrDER).Append("constructed OCTET STRING missing end-of-contents")
			}
			if isEOC(d.der[d.pos:]) {
				d.pos += 2
				return dst, nil
			}
		} else if d.pos >= end {
			return dst, nil
		}
		class, num, tl, err := der.ParseTag(d.der[d.pos:])
		if err != nil {
			return nil, merry.Prependf(err, "offset %d", d.pos)
		}
		if class.Base() != der.ClassUniversal || num != der.TagOctetString {
			return nil, merry.Here(ErrDER).Appendf("offset %d: constructed OCTET STRING segment has tag %v %d", d.pos, class, num)
		}
		d.pos += tl
		sl, n, err := der.ParseLength(d.der[d.pos:])
		if err != nil {
			return nil, merry.Prependf(err, "offset %d", d.pos)
		}
		d.pos += n
		max := d.limit()
		if l != der.LengthIndefinite {
			max = end
		}
		if sl != der.LengthIndefinite && sl > max-d.pos {
			return nil, merry.Here(ErrDER).Appendf("offset %d: segment length %d exceeds the enclosing content", d.pos, sl)
		}
		switch {
		case class.Constructed():
			dst, err = d.segments(dst, sl)
			if err != nil {
				return nil, err
			}
		case sl == der.LengthIndefinite:
			return nil, merry.Here(ErrDER).Appendf("offset %d: indefinite length on primitive encoding", d.pos)
		default:
			dst = append(dst, d.der[d.pos:d.pos+sl]...)
			d.pos += sl
		}
		if l != der.LengthIndefinite && d.pos > end {
			return nil, merry.Here(ErrDER).Appendf("offset %d: segments overrun the constructed OCTET STRING", d.pos)
		}
	}
}

func (d *decoder) next(parent, prev *Node) (*Node, error) {
	switch parent.Type {
	case TypeSequenceOf, TypeSetOf:
		if d.atEnd() {
			return nil, nil
		}
		return parent.AppendSequenceSet()
	case TypeSet:
		if d.atEnd() {
			return nil, nil
		}
		for c := parent.firstComponent(); c != nil; c = c.nextComponent() {
			if c.Flags&FlagNotUsed == 0 {
				continue
			}
			if c.Type == TypeAny && !c.tagged() {
				return nil, withElement(merry.Here(ErrTypeAny).Appendf("SET %s has an untagged ANY component", parent.path()), c)
			}
			ok, err := d.matches(c, d.pos)
			if err != nil {
				return nil, withElement(err, c)
			}
			if ok {
				c.Flags &^= FlagNotUsed
				return c, nil
			}
		}
		return nil, withElement(merry.Here(ErrTag).Appendf("offset %d: no component of SET %s matches", d.pos, parent.path()), parent)
	case TypeChoice:
		if prev != nil {
			return nil, nil
		}
		return parent.firstComponent(), nil
	}
	return nextComponent(parent, prev)
}

func (d *decoder) leave(n *Node) error {
	st := d.state[n]
	if st.absent {
		return nil
	}
	for ; st.pushed > 0; st.pushed-- {
		if err := d.pop(); err != nil {
			return withElement(err, n)
		}
	}
	st.end = d.pos

	if n.Type == TypeSet {
		for c := n.firstComponent(); c != nil; c = c.nextComponent() {
			if c.Flags&FlagNotUsed == 0 {
				continue
			}
			switch {
			case c.Flags&FlagOptional != 0:
				d.notUsed = append(d.notUsed, c)
			case c.Flags&FlagDefault != 0:
				c.Flags &^= FlagNotUsed
				c.ClearValue()
			default:
				return withElement(merry.Here(ErrDER).Appendf("component %s of SET %s is missing", c.Name, n.path()), c)
			}
		}
	}
	return nil
}

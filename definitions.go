package asn1der

import (
	"encoding/json"
	"github.com/ansel1/merry"
	"github.com/gemalto/asn1der/der"
	"github.com/gemalto/asn1der/internal/asn1util"
	"io"
	"strings"
)

// Definition is one entry of the flat form of an ASN.1 module.  A module is a preorder listing
// of its tree: FlagDown on an entry means the following entry is its first child, FlagRight
// means an entry follows its subtree as its next sibling.  The first entry is the module
// itself, of TypeDefinitions, and the entries under it are the type and value assignments.
//
//	{Name: "EX", Type: TypeDefinitions, Flags: FlagExplicit | FlagDown},
//	{Name: "Pair", Type: TypeSequence, Flags: FlagDown},
//	{Name: "a", Type: TypeInteger, Flags: FlagRight},
//	{Name: "b", Type: TypeBoolean},
//
// TAG entries hold the tag number in Value and a class flag.  IDENTIFIER entries hold the name
// of the referenced type in Value.  The components of an OBJECT IDENTIFIER value assignment are
// CONSTANT entries, whose Value is either a number or the name of another OBJECT IDENTIFIER
// value assignment.
type Definition struct {
	Name  string `json:"name,omitempty"`
	Type  Type   `json:"type"`
	Flags Flags  `json:"flags,omitempty"`
	Value string `json:"value,omitempty"`
}

// Definitions is a built ASN.1 module.  It is read-only once built, and may be shared
// between goroutines.
type Definitions struct {
	root *Node
}

// ReadDefinitions reads a JSON array of Definition entries.
func ReadDefinitions(r io.Reader) ([]Definition, error) {
	var defs []Definition
	if err := json.NewDecoder(r).Decode(&defs); err != nil {
		return nil, merry.Prepend(err, "reading definitions")
	}
	return defs, nil
}

// LoadDefinitions reads a JSON array of Definition entries, and builds it.
func LoadDefinitions(r io.Reader) (*Definitions, error) {
	defs, err := ReadDefinitions(r)
	if err != nil {
		return nil, err
	}
	return ArrayToTree(defs)
}

// ArrayToTree builds the module tree from its flat form.  It checks that every
// IDENTIFIER refers to a type of the module, applies the module's default tagging to
// TAG entries which are neither EXPLICIT nor IMPLICIT, marks the components of SET
// types, and computes the value of each OBJECT IDENTIFIER value assignment.
func ArrayToTree(defs []Definition) (*Definitions, error) {
	if len(defs) == 0 {
		return nil, merry.Here(ErrGeneric).Append("empty definitions")
	}
	if defs[0].Type != TypeDefinitions {
		return nil, merry.Here(ErrGeneric).Appendf("first definition must be %v, was %v", TypeDefinitions, defs[0].Type)
	}

	var root, last *Node
	right := map[*Node]bool{}
	down, done := false, false
	for i, def := range defs {
		if done {
			return nil, merry.Here(ErrGeneric).Appendf("definition %d (%s): follows the end of the module", i, def.Name)
		}
		n := &Node{Name: def.Name, Type: def.Type, Flags: def.Flags &^ shapeFlags}
		if def.Value != "" {
			n.value = []byte(def.Value)
		}
		switch {
		case last == nil:
			root = n
		case down:
			last.appendChild(n)
		default:
			last.insertAfter(n)
		}
		last, down = n, false

		if def.Flags&FlagRight != 0 {
			right[n] = true
		}
		if def.Flags&FlagDown != 0 {
			down = true
			continue
		}
		// climb to the nearest node, this one included, with a sibling still to come
		for last != nil && !right[last] {
			last = last.parent
		}
		if last == nil {
			done = true
			continue
		}
		delete(right, last)
	}
	if !done {
		return nil, merry.Here(ErrGeneric).Append("definitions truncated: last entry expects more to follow")
	}

	d := &Definitions{root: root}
	if err := d.check(); err != nil {
		return nil, err
	}
	log.Debug("built definitions", "module", root.Name, "entries", len(defs))
	return d, nil
}

func (d *Definitions) check() error {
	// the module default tagging is explicit unless declared otherwise
	defaultTagging := FlagExplicit
	if d.root.Flags&FlagImplicit != 0 {
		defaultTagging = FlagImplicit
	}

	for t := d.root.down; t != nil; t = t.next {
		if !asn1util.IsIdentifier(t.Name) {
			return merry.Here(ErrGeneric).Appendf("invalid assignment name %q", t.Name)
		}
	}

	err := walker{
		enter: func(n *Node) (bool, error) {
			for c := n.down; c != nil; c = c.next {
				switch c.Type {
				case TypeTag:
					n.Flags |= FlagTagged
					if c.Flags&(FlagExplicit|FlagImplicit) == 0 {
						c.Flags |= defaultTagging
					}
					if c.Flags&classFlags == 0 {
						c.Flags |= FlagContext
					}
					if _, err := asn1util.ParseUint32(string(c.value)); err != nil {
						return false, merry.Here(ErrGeneric).WithCause(err).Appendf("%s: invalid tag number %q", n.path(), c.value)
					}
				case TypeDefault:
					n.Flags |= FlagDefault
				case TypeConstant:
					if n.Type != TypeObjectID {
						n.Flags |= FlagList
					}
				}
			}
			if n.Type == TypeSet {
				for c := n.firstComponent(); c != nil; c = c.nextComponent() {
					c.Flags |= FlagSet
				}
			}
			if n.Type == TypeIdentifier {
				if t := d.root.child(string(n.value)); t == nil || t.Flags&FlagAssign != 0 {
					return false, merry.Here(ErrIdentifierNotFound).Appendf("%s: identifier %q not found", n.path(), n.value)
				}
			}
			return true, nil
		},
	}.walk(d.root)
	if err != nil {
		return err
	}

	for t := d.root.down; t != nil; t = t.next {
		if t.Type == TypeObjectID && t.Flags&FlagAssign != 0 {
			oid, err := d.resolveOID(t, map[*Node]bool{})
			if err != nil {
				return err
			}
			t.value = []byte(oid)
		}
	}
	return nil
}

// resolveOID computes the dotted value of an OBJECT IDENTIFIER value assignment from
// its CONSTANT children.
func (d *Definitions) resolveOID(n *Node, seen map[*Node]bool) (string, error) {
	if seen[n] {
		return "", merry.Here(ErrGeneric).Appendf("object identifier %s refers to itself", n.Name)
	}
	seen[n] = true
	var arcs []string
	for c := n.down; c != nil; c = c.next {
		if c.Type != TypeConstant {
			continue
		}
		v := string(c.value)
		if asn1util.IsNumber(v) {
			arcs = append(arcs, v)
			continue
		}
		ref := d.root.child(v)
		if ref == nil || ref.Type != TypeObjectID || ref.Flags&FlagAssign == 0 {
			return "", merry.Here(ErrIdentifierNotFound).Appendf("%s: object identifier %q not found", n.Name, v)
		}
		s, err := d.resolveOID(ref, seen)
		if err != nil {
			return "", err
		}
		arcs = append(arcs, s)
	}
	oid := strings.Join(arcs, ".")
	if _, err := der.OIDContent(oid); err != nil {
		return "", merry.Prependf(err, "%s", n.Name)
	}
	return oid, nil
}

// Root returns the module node.  Its children are the assignments.
func (d *Definitions) Root() *Node {
	return d.root
}

func (d *Definitions) Name() string {
	return d.root.Name
}

// Find returns the node named by a dotted path.  The path may start with the module
// name, "PKIX1.Certificate.tbsCertificate", or omit it.
func (d *Definitions) Find(path string) *Node {
	if path != d.root.Name && !strings.HasPrefix(path, d.root.Name+".") {
		path = d.root.Name + "." + path
	}
	return d.root.Find(path)
}

// OIDs returns the values of the module's OBJECT IDENTIFIER value assignments, by name.
func (d *Definitions) OIDs() map[string]string {
	m := map[string]string{}
	for t := d.root.down; t != nil; t = t.next {
		if t.Type == TypeObjectID && t.Flags&FlagAssign != 0 {
			m[t.Name] = string(t.value)
		}
	}
	return m
}

// CreateElement returns a new, empty value tree for the named type, e.g. "PKIX1.Certificate".
// Every IDENTIFIER in the type is replaced by a copy of the type it refers to, so the
// returned tree is self contained.  Its root is unnamed, so paths into it start with the
// name of a component: "tbsCertificate.serialNumber".
func (d *Definitions) CreateElement(name string) (*Node, error) {
	src := d.Find(name)
	if src == nil || src == d.root {
		return nil, merry.Here(ErrElementNotFound).Appendf("type %q not found in %s", name, d.root.Name)
	}
	n := src.CopyStructure()
	n.Name = ""

	origin := map[*Node]string{}
	if src.parent == d.root {
		origin[n] = src.Name
	}
	n, err := d.expand(n, origin)
	if err != nil {
		return nil, err
	}
	err = walker{
		next: func(parent, prev *Node) (*Node, error) {
			c, _ := nextComponent(parent, prev)
			if c == nil || c.Type != TypeIdentifier {
				return c, nil
			}
			return d.expand(c, origin)
		},
	}.walk(n)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// expand replaces an IDENTIFIER node with a copy of the type it refers to.  The
// identifier's name, modifiers and annotations carry over, and its TAG children
// precede those of the referenced type, being the outer tags.
func (d *Definitions) expand(p *Node, origin map[*Node]string) (*Node, error) {
	for p.Type == TypeIdentifier {
		ref := string(p.value)
		t := d.root.child(ref)
		if t == nil || t.Flags&FlagAssign != 0 {
			return nil, merry.Here(ErrIdentifierNotFound).Appendf("%s: identifier %q not found", p.path(), ref)
		}
		for a := p; a != nil; a = a.parent {
			if origin[a] == ref {
				return nil, merry.Here(ErrGeneric).Appendf("%s: type %q is recursive", p.path(), ref)
			}
		}

		c := t.CopyStructure()
		c.Name = p.Name
		c.Flags |= p.Flags & (FlagOptional | FlagDefault | FlagTagged | FlagSet)
		anns := p.Children()
		for i := len(anns) - 1; i >= 0; i-- {
			a := anns[i]
			a.detach()
			a.parent, a.next = c, c.down
			if c.down != nil {
				c.down.prev = a
			}
			c.down = a
		}
		if p.parent != nil {
			p.replace(c)
		}
		origin[c] = ref
		p = c
	}
	return p, nil
}

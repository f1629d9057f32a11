package der

import (
	"bytes"
	"sort"
)

type element struct {
	b   []byte
	key uint64
}

func splitElements(content []byte) ([]element, error) {
	var elems []element
	for pos := 0; pos < len(content); {
		n, err := TLVLength(content[pos:])
		if err != nil {
			return nil, err
		}
		elems = append(elems, element{b: content[pos : pos+n]})
		pos += n
	}
	return elems, nil
}

// reorder writes elems back into content, via a scratch copy since the
// elements alias content.
func reorder(content []byte, elems []element) {
	scratch := make([]byte, 0, len(content))
	for _, e := range elems {
		scratch = append(scratch, e.b...)
	}
	copy(content, scratch)
}

// SortSet reorders, in place, the concatenated encodings in content by ascending
// tag: class first, then tag number.
func SortSet(content []byte) error {
	elems, err := splitElements(content)
	if err != nil || len(elems) < 2 {
		return err
	}
	for i := range elems {
		class, n, _, err := ParseTag(elems[i].b)
		if err != nil {
			return err
		}
		elems[i].key = uint64(class.Base())<<32 | uint64(n)
	}
	sort.SliceStable(elems, func(i, j int) bool {
		return elems[i].key < elems[j].key
	})
	reorder(content, elems)
	return nil
}

// SortSetOf reorders, in place, the concatenated encodings in content in ascending
// order, comparing encodings as octet strings.  A shorter encoding which is a prefix of
// a longer one sorts first.
func SortSetOf(content []byte) error {
	elems, err := splitElements(content)
	if err != nil || len(elems) < 2 {
		return err
	}
	sort.SliceStable(elems, func(i, j int) bool {
		return bytes.Compare(elems[i].b, elems[j].b) < 0
	})
	reorder(content, elems)
	return nil
}

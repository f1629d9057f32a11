package der

import (
	"github.com/ansel1/merry"
)

// isEOC reports whether b starts with an end-of-contents marker.
func isEOC(b []byte) bool {
	return len(b) >= 2 && b[0] == 0 && b[1] == 0
}

// TLVLength returns the number of bytes taken by the complete element at the
// start of b, including any nested end-of-contents markers when the element
// uses the indefinite length form.
func TLVLength(b []byte) (int, error) {
	pos, depth := 0, 0
	for {
		if depth > 0 && isEOC(b[pos:]) {
			pos += 2
			depth--
			if depth == 0 {
				return pos, nil
			}
			continue
		}
		class, _, l, hl, err := ParseHeader(b[pos:])
		if err != nil {
			return 0, merry.Prependf(err, "element at offset %d", pos)
		}
		pos += hl
		if l == LengthIndefinite {
			if !class.Constructed() {
				return 0, merry.Here(ErrDER).Appendf("indefinite length on primitive encoding at offset %d", pos-hl)
			}
			depth++
			continue
		}
		if l > len(b)-pos {
			return 0, merry.Here(ErrDER).Appendf("value truncated at offset %d: need %d bytes, have %d", pos, l, len(b)-pos)
		}
		pos += l
		if depth == 0 {
			return pos, nil
		}
	}
}

// ToDefinite rewrites a single BER element so every constructed encoding within it
// uses the definite length form.  b must hold exactly one element.
func ToDefinite(b []byte) ([]byte, error) {
	out, n, err := appendDefinite(nil, b)
	if err != nil {
		return nil, err
	}
	if n != len(b) {
		return nil, merry.Here(ErrDER).Appendf("%d trailing bytes after element", len(b)-n)
	}
	return out, nil
}

func appendDefinite(dst, b []byte) ([]byte, int, error) {
	class, num, l, hl, err := ParseHeader(b)
	if err != nil {
		return nil, 0, err
	}
	if l != LengthIndefinite && l > len(b)-hl {
		return nil, 0, merry.Here(ErrDER).Appendf("value truncated: need %d bytes, have %d", l, len(b)-hl)
	}
	if !class.Constructed() {
		if l == LengthIndefinite {
			return nil, 0, merry.Here(ErrDER).Append("indefinite length on primitive encoding")
		}
		return append(dst, b[:hl+l]...), hl + l, nil
	}

	var content []byte
	pos := hl
	for {
		if l == LengthIndefinite {
			if pos >= len(b) {
				return nil, 0, merry.Here(ErrDER).Append("missing end-of-contents")
			}
			if isEOC(b[pos:]) {
				pos += 2
				break
			}
		} else if pos >= hl+l {
			break
		}
		end := len(b)
		if l != LengthIndefinite {
			end = hl + l
		}
		var n int
		content, n, err = appendDefinite(content, b[pos:end])
		if err != nil {
			return nil, 0, err
		}
		pos += n
	}

	dst = AppendTag(dst, class, num)
	return AppendOctetString(dst, content), pos, nil
}

package der

import (
	"github.com/ansel1/merry"
	"github.com/google/uuid"
	"math/big"
	"strings"
)

var (
	big40  = big.NewInt(40)
	big80  = big.NewInt(80)
	big128 = big.NewInt(128)
)

// OIDContent returns the content octets for a dotted decimal OBJECT IDENTIFIER.
// Arcs may be arbitrarily large.
func OIDContent(oid string) ([]byte, error) {
	parts := strings.Split(oid, ".")
	if len(parts) < 2 {
		return nil, merry.Here(ErrValueNotValid).Appendf("object identifier %q needs at least two arcs", oid)
	}
	arcs := make([]*big.Int, len(parts))
	for i, p := range parts {
		a, err := parseArc(p)
		if err != nil {
			return nil, merry.Prependf(err, "object identifier %q", oid)
		}
		arcs[i] = a
	}
	switch {
	case arcs[0].Cmp(big.NewInt(2)) > 0:
		return nil, merry.Here(ErrValueNotValid).Appendf("object identifier %q: first arc must be 0, 1 or 2", oid)
	case arcs[0].Cmp(big.NewInt(2)) < 0 && arcs[1].Cmp(big40) >= 0:
		return nil, merry.Here(ErrValueNotValid).Appendf("object identifier %q: second arc must be less than 40", oid)
	}

	first := new(big.Int).Mul(arcs[0], big40)
	first.Add(first, arcs[1])
	content := appendBase128(nil, first)
	for _, a := range arcs[2:] {
		content = appendBase128(content, a)
	}
	return content, nil
}

func parseArc(s string) (*big.Int, error) {
	if s == "" {
		return nil, merry.Here(ErrValueNotValid).Append("empty arc")
	}
	if len(s) > 1 && s[0] == '0' {
		return nil, merry.Here(ErrValueNotValid).Appendf("arc %q has a leading zero", s)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return nil, merry.Here(ErrValueNotValid).Appendf("arc %q is not a decimal number", s)
		}
	}
	a, _ := new(big.Int).SetString(s, 10)
	return a, nil
}

func appendBase128(dst []byte, v *big.Int) []byte {
	if v.Sign() == 0 {
		return append(dst, 0)
	}
	n := (v.BitLen() + 6) / 7
	var t big.Int
	for i := n - 1; i >= 0; i-- {
		b := byte(t.Rsh(v, uint(7*i)).Uint64() & 0x7F)
		if i > 0 {
			b |= 0x80
		}
		dst = append(dst, b)
	}
	return dst
}

// AppendOID appends the length and content octets of an OBJECT IDENTIFIER.
func AppendOID(dst []byte, oid string) ([]byte, error) {
	content, err := OIDContent(oid)
	if err != nil {
		return dst, err
	}
	return AppendOctetString(dst, content), nil
}

func EncodeOID(oid string) ([]byte, error) {
	return AppendOID(nil, oid)
}

// OIDFromContent renders OBJECT IDENTIFIER content octets as a dotted decimal string.
// Subidentifiers with a leading 0x80 octet are rejected.
func OIDFromContent(content []byte) (string, error) {
	if len(content) == 0 {
		return "", merry.Here(ErrDER).Append("empty object identifier")
	}
	var sb strings.Builder
	v := new(big.Int)
	first := true
	start := true
	for i, c := range content {
		if start && c == 0x80 {
			return "", merry.Here(ErrDER).Appendf("non-minimal subidentifier at offset %d", i)
		}
		start = false
		v.Mul(v, big128)
		v.Add(v, big.NewInt(int64(c&0x7F)))
		if c&0x80 != 0 {
			continue
		}
		if first {
			first = false
			switch {
			case v.Cmp(big40) < 0:
				sb.WriteString("0.")
			case v.Cmp(big80) < 0:
				sb.WriteString("1.")
				v.Sub(v, big40)
			default:
				sb.WriteString("2.")
				v.Sub(v, big80)
			}
		} else {
			sb.WriteByte('.')
		}
		sb.WriteString(v.String())
		v.SetInt64(0)
		start = true
	}
	if !start {
		return "", merry.Here(ErrDER).Append("object identifier truncated")
	}
	return sb.String(), nil
}

// ParseOID reads a length prefixed OBJECT IDENTIFIER from the start of b.
func ParseOID(b []byte) (oid string, consumed int, err error) {
	content, consumed, err := ParseOctetString(b)
	if err != nil {
		return "", 0, err
	}
	oid, err = OIDFromContent(content)
	if err != nil {
		return "", 0, err
	}
	return oid, consumed, nil
}

// uuidArc is the X.667 arc under which a UUID is a single integer arc.
const uuidArc = "2.25."

// UUIDToOID returns the OBJECT IDENTIFIER form of a UUID: 2.25 followed by the UUID
// as one unsigned decimal arc.
func UUIDToOID(u uuid.UUID) string {
	return uuidArc + new(big.Int).SetBytes(u[:]).String()
}

// OIDToUUID is the inverse of UUIDToOID.
func OIDToUUID(oid string) (uuid.UUID, error) {
	var u uuid.UUID
	if !strings.HasPrefix(oid, uuidArc) {
		return u, merry.Here(ErrValueNotValid).Appendf("object identifier %q is not under %s", oid, strings.TrimSuffix(uuidArc, "."))
	}
	a, err := parseArc(oid[len(uuidArc):])
	if err != nil {
		return u, merry.Prependf(err, "object identifier %q", oid)
	}
	if a.BitLen() > 128 {
		return u, merry.Here(ErrValueNotValid).Appendf("object identifier %q: arc exceeds 128 bits", oid)
	}
	a.FillBytes(u[:])
	return u, nil
}

package der

import (
	"github.com/ansel1/merry"
)

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isSign(c byte) bool {
	return c == '+' || c == '-'
}

// ValidateUTCTime checks the shape of a UTCTime string: YYMMDDhhmm, optional ss, then
// either Z or a +hhmm/-hhmm offset.
func ValidateUTCTime(s string) error {
	ok := len(s) >= 11 && isDigits(s[:10])
	if ok {
		switch len(s) {
		case 11:
			ok = s[10] == 'Z'
		case 13:
			ok = isDigits(s[10:12]) && s[12] == 'Z'
		case 15:
			ok = isSign(s[10]) && isDigits(s[11:15])
		case 17:
			ok = isDigits(s[10:12]) && isSign(s[12]) && isDigits(s[13:17])
		default:
			ok = false
		}
	}
	if !ok {
		return merry.Here(ErrValueNotValid).Appendf("invalid UTCTime %q", s)
	}
	return nil
}

// ValidateGeneralizedTime checks the shape of a GeneralizedTime string: YYYYMMDDhh,
// optional mm and ss, an optional fraction introduced by '.' or ',', then an optional
// Z or +hh[mm]/-hh[mm] offset.
func ValidateGeneralizedTime(s string) error {
	bad := func() error {
		return merry.Here(ErrValueNotValid).Appendf("invalid GeneralizedTime %q", s)
	}
	if len(s) < 10 || !isDigits(s[:10]) {
		return bad()
	}
	rest := s[10:]
	// minutes, then seconds
	for i := 0; i < 2 && len(rest) >= 2 && isDigits(rest[:2]); i++ {
		rest = rest[2:]
	}
	if len(rest) > 0 && (rest[0] == '.' || rest[0] == ',') {
		n := 1
		for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
			n++
		}
		if n == 1 {
			return bad()
		}
		rest = rest[n:]
	}
	switch {
	case rest == "", rest == "Z":
		return nil
	case isSign(rest[0]) && (len(rest) == 3 || len(rest) == 5) && isDigits(rest[1:]):
		return nil
	}
	return bad()
}

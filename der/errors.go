package der

import (
	"errors"
	"fmt"
	"github.com/ansel1/merry"
)

// ErrDER is returned when input is not a valid BER/DER encoding.
var ErrDER = errors.New("der encoding error")

// ErrMem is returned when a caller supplied buffer is too small.  The
// required size is attached to the error, see RequiredLen.
var ErrMem = errors.New("insufficient buffer")

// ErrValueNotValid is returned when a value cannot be encoded, like a malformed
// OBJECT IDENTIFIER string.
var ErrValueNotValid = errors.New("value not valid")

type errKey int

const (
	errorKeyRequiredLen errKey = iota
)

func init() {
	merry.RegisterDetail("Required Length", errorKeyRequiredLen)
}

// WithRequiredLen attaches the number of bytes a destination buffer would need
// to an error.
func WithRequiredLen(err error, n int) error {
	return merry.WithValue(err, errorKeyRequiredLen, n)
}

// RequiredLen returns the required buffer length attached to err, or 0.
func RequiredLen(err error) int {
	v := merry.Value(err, errorKeyRequiredLen)
	switch t := v.(type) {
	case nil:
		return 0
	case int:
		return t
	default:
		panic(fmt.Sprintf("err required length attribute's value was wrong type, expected int, got %T", v))
	}
}

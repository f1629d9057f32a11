package asn1der

import (
	"errors"
	"github.com/ansel1/merry"
	"github.com/gemalto/asn1der/der"
)

func Is(err error, originals ...error) bool {
	return merry.Is(err, originals...)
}

func Details(err error) string {
	return merry.Details(err)
}

var ErrElementNotFound = errors.New("element not found")
var ErrValueNotFound = errors.New("value not found")
var ErrTag = errors.New("tag error")
var ErrIdentifierNotFound = errors.New("identifier not found")
var ErrGeneric = errors.New("generic error")
var ErrTypeAny = errors.New("untagged ANY is ambiguous")

// These come from the der package, so errors raised there match here too.
var (
	ErrDER           = der.ErrDER
	ErrMem           = der.ErrMem
	ErrValueNotValid = der.ErrValueNotValid
)

// RequiredLen returns the buffer size attached to an ErrMem error, or 0.
func RequiredLen(err error) int {
	return der.RequiredLen(err)
}

type errKey int

const (
	errorKeyElement errKey = iota
)

func init() {
	merry.RegisterDetail("Element", errorKeyElement)
}

// withElement attaches the dotted name of the node an error occurred at.
func withElement(err error, n *Node) error {
	if merry.Value(err, errorKeyElement) != nil {
		return err
	}
	return merry.WithValue(err, errorKeyElement, n.path())
}

// ErrorElement returns the dotted name of the element an encoding or decoding error
// occurred at, or "".
func ErrorElement(err error) string {
	s, _ := merry.Value(err, errorKeyElement).(string)
	return s
}

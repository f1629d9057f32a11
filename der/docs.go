// Package der implements the primitive encodings of ASN.1 Distinguished Encoding Rules (X.690).
//
// The functions in this package operate on flat byte slices and know nothing about
// schemas.  They cover identifier (tag) octets, length octets, and the content encodings
// of the universal types which need more than a byte copy: OBJECT IDENTIFIER,
// BIT STRING, INTEGER, and the time types.  It also has helpers for BER input:
// TLVLength measures an element of indefinite length, and ToDefinite rewrites one
// into definite form.
//
// Encoders append to a destination slice, in the style of strconv.Append*, and parsers
// return the number of bytes they consumed.
package der

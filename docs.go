// Package asn1der is a schema driven ASN.1 DER encoder and decoder.
//
// Features
//
// Definitions: an ASN.1 module is described by a flat array of Definition entries, usually
// generated from the module's JSON form by asn1gen.  ArrayToTree builds it into a tree, and
// CreateElement makes an empty value tree for one of its types.
//
// Values: WriteValue, WriteInteger and WriteBits store values in a value tree, addressed
// by dotted paths like "tbsCertificate.serialNumber".  ReadValue, ReadInteger and ReadBits
// read them back.
//
// Encoding: EncodeDER produces the DER encoding of a value tree, or of any node in it.  SET
// components are sorted by tag and SET OF elements by encoding, per X.690.
//
// Decoding: DecodeDER fills in a value tree from an encoding.  It accepts BER input as well:
// indefinite lengths and constructed OCTET STRINGs.  DecodeDERStartEnd locates the bytes of
// one element within an encoding, e.g. the signed part of a certificate.
//
// The primitive encodings, which need no schema, are in the der subpackage.
package asn1der

//go:generate asn1gen -o pkix_generated.go -i pkix.json -p pkix

// Package pkix holds definitions for the certificate types of the PKIX1 module
// (RFC 5280), enough to decode and re-encode X.509 certificates and their common
// extensions.
package pkix

import (
	"github.com/ansel1/merry"
	"github.com/gemalto/asn1der"
)

// Definitions builds the PKIX1 module from PKIX1Definitions.
func Definitions() (*asn1der.Definitions, error) {
	return asn1der.ArrayToTree(PKIX1Definitions)
}

// DecodeCertificate decodes a DER encoded Certificate.  The returned tree's paths
// start at the Certificate's components: "tbsCertificate.serialNumber".
func DecodeCertificate(b []byte) (*asn1der.Node, error) {
	defs, err := Definitions()
	if err != nil {
		return nil, err
	}
	return asn1der.Decode(defs, "Certificate", b)
}

// Extension returns the path of the extension with the given extnID in a Certificate
// tree, e.g. "tbsCertificate.extensions.?2".
func Extension(cert *asn1der.Node, extnID string) (string, error) {
	exts := cert.Find("tbsCertificate.extensions")
	if exts == nil {
		return "", merry.Here(asn1der.ErrElementNotFound).Append("certificate has no extensions")
	}
	for _, e := range exts.Components() {
		if e.Name == "" {
			continue
		}
		id, err := e.ReadValue(e.Name + ".extnID")
		if err != nil {
			return "", err
		}
		if string(id) == extnID {
			return "tbsCertificate.extensions." + e.Name, nil
		}
	}
	return "", merry.Here(asn1der.ErrElementNotFound).Appendf("extension %s not found", extnID)
}

// ExtensionValue decodes the value of an extension, held in its extnValue, as the named
// PKIX1 type, e.g. "KeyUsage".  It also reports whether the extension is critical.
func ExtensionValue(cert *asn1der.Node, extnID, typeName string) (v *asn1der.Node, critical bool, err error) {
	path, err := Extension(cert, extnID)
	if err != nil {
		return nil, false, err
	}
	c, err := cert.ReadValue(path + ".critical")
	if err != nil {
		return nil, false, err
	}
	b, err := cert.ReadValue(path + ".extnValue")
	if err != nil {
		return nil, false, err
	}
	defs, err := Definitions()
	if err != nil {
		return nil, false, err
	}
	v, err = asn1der.Decode(defs, typeName, b)
	if err != nil {
		return nil, false, merry.Prependf(err, "decoding %s as %s", extnID, typeName)
	}
	return v, string(c) == "TRUE", nil
}

package pkix

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	x509pkix "crypto/x509/pkix"
	"encoding/asn1"
	"github.com/gemalto/asn1der"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math/big"
	"testing"
	"time"
)

func newCert(t *testing.T) (*x509.Certificate, ed25519.PublicKey) {
	t.Helper()
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(4242),
		Subject: x509pkix.Name{
			CommonName:   "pkix test",
			Organization: []string{"Acme"},
		},
		NotBefore:             time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		NotAfter:              time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
		MaxPathLen:            2,
	}
	raw, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, pub, priv)
	require.NoError(t, err)
	cert, err := x509.ParseCertificate(raw)
	require.NoError(t, err)
	return cert, pub
}

func TestDefinitions(t *testing.T) {
	defs, err := Definitions()
	require.NoError(t, err)
	assert.Equal(t, "PKIX1", defs.Name())

	oids := defs.OIDs()
	assert.Equal(t, IDAtCommonName, oids["id-at-commonName"])
	assert.Equal(t, "2.5.29.15", IDCeKeyUsage)
	assert.Equal(t, "1.2.840.10045.4.3.2", oids["ecdsa-with-SHA256"])
	assert.Len(t, oids, 13)
}

func TestDecodeCertificate(t *testing.T) {
	cert, pub := newCert(t)

	c, err := DecodeCertificate(cert.Raw)
	require.NoError(t, err)

	v, err := c.ReadInteger("tbsCertificate.version")
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.Int64())

	serial, err := c.ReadInteger("tbsCertificate.serialNumber")
	require.NoError(t, err)
	assert.Equal(t, int64(4242), serial.Int64())

	alg, err := c.ReadValue("signatureAlgorithm.algorithm")
	require.NoError(t, err)
	assert.Equal(t, IDEd25519, string(alg))
	assert.Nil(t, c.Find("signatureAlgorithm.parameters"))

	tm, err := c.ReadValue("tbsCertificate.validity.notBefore")
	require.NoError(t, err)
	assert.Equal(t, "utcTime", string(tm))
	tm, err = c.ReadValue("tbsCertificate.validity.notBefore.utcTime")
	require.NoError(t, err)
	assert.Equal(t, "240101000000Z", string(tm))

	// Go puts organization before common name, each in its own RDN
	n, err := c.NumberOfElements("tbsCertificate.subject.rdnSequence")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	typ, err := c.ReadValue("tbsCertificate.subject.rdnSequence.?2.?1.type")
	require.NoError(t, err)
	assert.Equal(t, IDAtCommonName, string(typ))
	val, err := c.ReadValue("tbsCertificate.subject.rdnSequence.?2.?1.value")
	require.NoError(t, err)
	assert.Equal(t, append([]byte{0x13, 0x09}, "pkix test"...), val)

	key, bitLen, err := c.ReadBits("tbsCertificate.subjectPublicKeyInfo.subjectPublicKey")
	require.NoError(t, err)
	assert.Equal(t, 256, bitLen)
	assert.Equal(t, []byte(pub), key)

	assert.Nil(t, c.Find("tbsCertificate.issuerUniqueID"))

	sig, bitLen, err := c.ReadBits("signature")
	require.NoError(t, err)
	assert.Equal(t, len(sig)*8, bitLen)
	assert.True(t, ed25519.Verify(pub, cert.RawTBSCertificate, sig))
}

func TestDecodeCertificate_reencode(t *testing.T) {
	cert, _ := newCert(t)

	c, err := DecodeCertificate(cert.Raw)
	require.NoError(t, err)
	b, err := asn1der.Encode(c)
	require.NoError(t, err)
	assert.Equal(t, cert.Raw, b)

	tbs, err := asn1der.EncodeDER(c, "tbsCertificate")
	require.NoError(t, err)
	assert.Equal(t, cert.RawTBSCertificate, tbs)

	start, end, err := asn1der.DecodeDERStartEnd(c, cert.Raw, "tbsCertificate")
	require.NoError(t, err)
	assert.Equal(t, cert.RawTBSCertificate, cert.Raw[start:end])

	start, end, err = asn1der.DecodeDERStartEnd(c, cert.Raw, "tbsCertificate.subjectPublicKeyInfo")
	require.NoError(t, err)
	assert.Equal(t, cert.RawSubjectPublicKeyInfo, cert.Raw[start:end])

	start, end, err = asn1der.DecodeDERStartEnd(c, cert.Raw, "tbsCertificate.subject")
	require.NoError(t, err)
	assert.Equal(t, cert.RawSubject, cert.Raw[start:end])
}

func TestExtensionValue(t *testing.T) {
	cert, _ := newCert(t)
	c, err := DecodeCertificate(cert.Raw)
	require.NoError(t, err)

	ku, critical, err := ExtensionValue(c, IDCeKeyUsage, "KeyUsage")
	require.NoError(t, err)
	assert.True(t, critical)
	bits, bitLen, err := ku.ReadBits("")
	require.NoError(t, err)
	// digitalSignature(0) and keyCertSign(5)
	assert.Equal(t, []byte{0x84}, bits)
	assert.Equal(t, 6, bitLen)

	bc, critical, err := ExtensionValue(c, IDCeBasicConstraints, "BasicConstraints")
	require.NoError(t, err)
	assert.True(t, critical)
	ca, err := bc.ReadValue("cA")
	require.NoError(t, err)
	assert.Equal(t, "TRUE", string(ca))
	pl, err := bc.ReadInteger("pathLenConstraint")
	require.NoError(t, err)
	assert.Equal(t, int64(2), pl.Int64())

	skid, critical, err := ExtensionValue(c, IDCeSubjectKeyIdentifier, "SubjectKeyIdentifier")
	require.NoError(t, err)
	assert.False(t, critical)
	id, err := skid.ReadValue("")
	require.NoError(t, err)
	assert.Equal(t, cert.SubjectKeyId, id)

	_, _, err = ExtensionValue(c, IDCeAuthorityKeyIdentifier, "AuthorityKeyIdentifier")
	assert.True(t, asn1der.Is(err, asn1der.ErrElementNotFound))
}

func TestBuildCertificate(t *testing.T) {
	defs, err := Definitions()
	require.NoError(t, err)
	tbs, err := defs.CreateElement("TBSCertificate")
	require.NoError(t, err)

	values := []struct{ path, value string }{
		{"version", "v3"},
		{"serialNumber", "1"},
		{"signature.algorithm", IDEd25519},
		{"issuer.rdnSequence", asn1der.New},
		{"issuer.rdnSequence.?LAST", asn1der.New},
		{"issuer.rdnSequence.?LAST.?LAST.type", IDAtCommonName},
		{"issuer.rdnSequence.?LAST.?LAST.value", "\x0c\x01x"},
		{"validity.notBefore.utcTime", "240101000000Z"},
		{"validity.notAfter.generalTime", "20500101000000Z"},
		{"subject.rdnSequence", asn1der.New},
		{"subject.rdnSequence.?LAST", asn1der.New},
		{"subject.rdnSequence.?LAST.?LAST.type", IDAtCommonName},
		{"subject.rdnSequence.?LAST.?LAST.value", "\x0c\x01x"},
		{"subjectPublicKeyInfo.algorithm.algorithm", IDEd25519},
	}
	for _, v := range values {
		require.NoError(t, tbs.WriteValue(v.path, []byte(v.value)), v.path)
	}
	require.NoError(t, tbs.WriteBits("subjectPublicKeyInfo.subjectPublicKey", make([]byte, 32), 256))
	require.NoError(t, tbs.WriteValue("extensions", nil))

	b, err := asn1der.Encode(tbs)
	require.NoError(t, err)

	var raw asn1.RawValue
	rest, err := asn1.Unmarshal(b, &raw)
	require.NoError(t, err)
	assert.Empty(t, rest)
	assert.Equal(t, asn1.TagSequence, raw.Tag)
	assert.True(t, raw.IsCompound)

	// the same tree decodes back into a TBSCertificate
	again, err := asn1der.Decode(defs, "TBSCertificate", b)
	require.NoError(t, err)
	tm, err := again.ReadValue("validity.notAfter")
	require.NoError(t, err)
	assert.Equal(t, "generalTime", string(tm))
	out, err := asn1der.Encode(again)
	require.NoError(t, err)
	assert.Equal(t, b, out)
}

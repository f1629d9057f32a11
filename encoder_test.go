package asn1der

import (
	"encoding/asn1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/cryptobyte"
	casn1 "golang.org/x/crypto/cryptobyte/asn1"
	"strings"
	"testing"
)

func write(t *testing.T, n *Node, values ...string) {
	t.Helper()
	require.Zero(t, len(values)%2, "values must be path/value pairs")
	for i := 0; i < len(values); i += 2 {
		require.NoError(t, n.WriteValue(values[i], []byte(values[i+1])), values[i])
	}
}

func fullSimple(t *testing.T) *Node {
	s := create(t, "Simple")
	write(t, s,
		"version", "v2",
		"serial", "5",
		"flag", "TRUE",
		"name", "abc",
		"id", "2.5.4.3",
		"note", "hi",
		"any", "\x05\x00",
	)
	return s
}

func TestEncodeDER(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T) *Node
		exp   string
	}{
		{
			name: "minimal",
			build: func(t *testing.T) *Node {
				s := create(t, "Simple")
				write(t, s, "serial", "5", "name", "abc")
				return s
			},
			exp: simpleMinimal,
		},
		{
			name:  "full",
			build: fullSimple,
			exp:   simpleFull,
		},
		{
			name: "defaults",
			build: func(t *testing.T) *Node {
				s := create(t, "Simple")
				write(t, s, "version", "0", "serial", "5", "flag", "FALSE", "name", "abc")
				return s
			},
			exp: simpleMinimal,
		},
		{
			name: "longform",
			build: func(t *testing.T) *Node {
				s := create(t, "Simple")
				write(t, s, "serial", "5", "name", strings.Repeat("x", 200))
				return s
			},
			exp: "30 81 CE 02 01 05 04 81 C8 " + strings.Repeat("78", 200),
		},
		{
			name: "hightag",
			build: func(t *testing.T) *Node {
				n := create(t, "HighTag")
				write(t, n, "", "5")
				return n
			},
			exp: "5F 81 80 00 01 05",
		},
		{
			name: "implicit explicit",
			build: func(t *testing.T) *Node {
				n := create(t, "Doubly")
				write(t, n, "", "7")
				return n
			},
			exp: "A1 03 02 01 07",
		},
		{
			name: "set sorted",
			build: func(t *testing.T) *Node {
				n := create(t, "Unordered")
				write(t, n, "o", "x", "i", "5", "b", "TRUE")
				return n
			},
			exp: "31 09 01 01 FF 02 01 05 83 01 78",
		},
		{
			name: "set of sorted",
			build: func(t *testing.T) *Node {
				n := create(t, "Bag")
				for _, v := range []string{"ab", "b", "a"} {
					write(t, n, "", New, Last, v)
				}
				return n
			},
			exp: "31 0A 04 01 61 04 01 62 04 02 61 62",
		},
		{
			name: "empty set of",
			build: func(t *testing.T) *Node {
				return create(t, "Bag")
			},
			exp: "31 00",
		},
		{
			name: "choice",
			build: func(t *testing.T) *Node {
				n := create(t, "Choice3")
				write(t, n, "tagged", "TRUE")
				return n
			},
			exp: "82 01 FF",
		},
		{
			name: "holder",
			build: func(t *testing.T) *Node {
				n := create(t, "Holder")
				write(t, n, "c.num", "5", "items", New, "items.?LAST", "1", "items", New, "items.?LAST", "2")
				return n
			},
			exp: holderSample,
		},
		{
			name: "wrapped",
			build: func(t *testing.T) *Node {
				n := create(t, "Wrapped")
				write(t, n, "inner.serial", "5", "inner.name", "abc", "enum", "b", "nul", "NULL")
				return n
			},
			exp: wrappedFull,
		},
		{
			name: "wrapped without inner",
			build: func(t *testing.T) *Node {
				n := create(t, "Wrapped")
				write(t, n, "enum", "b", "nul", "NULL")
				require.NoError(t, n.WriteValue("inner", nil))
				return n
			},
			exp: wrappedNoInner,
		},
		{
			name: "bits",
			build: func(t *testing.T) *Node {
				n := create(t, "Bits")
				require.NoError(t, n.WriteBits("", []byte{0xCF}, 6))
				return n
			},
			exp: "03 02 02 CC",
		},
		{
			name: "times",
			build: func(t *testing.T) *Node {
				n := create(t, "Times")
				write(t, n, "utc", "240101000000Z", "gen", "20240101000000Z")
				return n
			},
			exp: "30 20 17 0D 3234303130313030303030305A 18 0F 32303234303130313030303030305A",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := Encode(tc.build(t))
			require.NoError(t, err)
			assert.Equal(t, Hex2bytes(tc.exp), b)
		})
	}
}

func TestEncodeDER_cryptobyte(t *testing.T) {
	var bld cryptobyte.Builder
	bld.AddASN1(casn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(casn1.Tag(0).Constructed().ContextSpecific(), func(b *cryptobyte.Builder) {
			b.AddASN1Int64(1)
		})
		b.AddASN1Int64(5)
		b.AddASN1Boolean(true)
		b.AddASN1OctetString([]byte("abc"))
		b.AddASN1ObjectIdentifier(asn1.ObjectIdentifier{2, 5, 4, 3})
		b.AddASN1(casn1.Tag(1).ContextSpecific(), func(b *cryptobyte.Builder) {
			b.AddBytes([]byte("hi"))
		})
		b.AddASN1NULL()
	})
	exp, err := bld.Bytes()
	require.NoError(t, err)

	b, err := Encode(fullSimple(t))
	require.NoError(t, err)
	assert.Equal(t, exp, b)
}

func TestEncodeDER_path(t *testing.T) {
	s := fullSimple(t)
	b, err := EncodeDER(s, "id")
	require.NoError(t, err)
	assert.Equal(t, Hex2bytes("06 03 550403"), b)

	b, err = EncodeDER(s, "version")
	require.NoError(t, err)
	assert.Equal(t, Hex2bytes("A0 03 02 01 01"), b)

	_, err = EncodeDER(s, "nope")
	assert.True(t, Is(err, ErrElementNotFound))
}

func TestEncodeDER_errors(t *testing.T) {
	s := create(t, "Simple")
	write(t, s, "name", "abc")
	_, err := Encode(s)
	require.Error(t, err)
	assert.True(t, Is(err, ErrValueNotFound))
	assert.Equal(t, "serial", ErrorElement(err))

	// an OPTIONAL SEQUENCE which is still in the tree is encoded, so its
	// mandatory members need values
	w := create(t, "Wrapped")
	write(t, w, "enum", "a", "nul", "NULL")
	_, err = Encode(w)
	assert.True(t, Is(err, ErrValueNotFound))
	assert.Equal(t, "inner.serial", ErrorElement(err))

	h := create(t, "Holder")
	_, err = Encode(h)
	assert.True(t, Is(err, ErrValueNotFound))
	assert.Equal(t, "c", ErrorElement(err))
}

func TestEncodeDERTo(t *testing.T) {
	s := create(t, "Simple")
	write(t, s, "serial", "5", "name", "abc")

	small := make([]byte, 4)
	n, err := EncodeDERTo(small, s, "")
	require.Error(t, err)
	assert.True(t, Is(err, ErrMem))
	assert.Equal(t, 10, n)
	assert.Equal(t, 10, RequiredLen(err))

	buf := make([]byte, 16)
	n, err = EncodeDERTo(buf, s, "")
	require.NoError(t, err)
	assert.Equal(t, Hex2bytes(simpleMinimal), buf[:n])
}

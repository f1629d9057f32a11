package asn1der

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestDecodeDERStartEnd(t *testing.T) {
	b := Hex2bytes(wrappedFull)

	tests := []struct {
		path       string
		start, end int
	}{
		{"", 0, len(b)},
		{"inner", 2, 14},
		{"inner.serial", 6, 9},
		{"inner.name", 9, 14},
		{"enum", 14, 17},
		{"nul", 17, 19},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			w := create(t, "Wrapped")
			start, end, err := DecodeDERStartEnd(w, b, tc.path)
			require.NoError(t, err)
			assert.Equal(t, tc.start, start)
			assert.Equal(t, tc.end, end)
		})
	}
}

func TestDecodeDERStartEnd_decoded(t *testing.T) {
	b := Hex2bytes(holderSample)
	h, err := decode(t, "Holder", holderSample)
	require.NoError(t, err)

	start, end, err := DecodeDERStartEnd(h, b, "items.?2")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x02, 0x01, 0x02}, b[start:end])

	start, end, err = DecodeDERStartEnd(h, b, "c")
	require.NoError(t, err)
	assert.Equal(t, 2, start)
	assert.Equal(t, 5, end)

	// the tree isn't modified
	n, err := h.NumberOfElements("items")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x05}, h.Find("c.num").Value())
}

func TestDecodeDERStartEnd_errors(t *testing.T) {
	w := create(t, "Wrapped")
	_, _, err := DecodeDERStartEnd(w, Hex2bytes(wrappedNoInner), "inner")
	assert.True(t, Is(err, ErrElementNotFound))

	_, _, err = DecodeDERStartEnd(w, Hex2bytes(wrappedFull), "nope")
	assert.True(t, Is(err, ErrElementNotFound))

	_, _, err = DecodeDERStartEnd(w, Hex2bytes(wrappedFull)[:10], "enum")
	assert.True(t, Is(err, ErrDER))

	// w is still usable
	assert.NotNil(t, w.Find("inner.serial"))
}

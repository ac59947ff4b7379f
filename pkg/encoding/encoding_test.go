package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Davincible/shamirfield/pkg/shamirerr"
)

func TestBase64RoundTrip(t *testing.T) {
	e := New(Base64)
	for _, s := range [][]byte{nil, {}, []byte("hello"), {0x00, 0xff, 0x10, 0x00}} {
		enc := e.Encode(s)
		dec, err := e.Decode(enc)
		require.NoError(t, err)
		assert.Equal(t, s, dec)
	}
}

func TestHexRoundTrip(t *testing.T) {
	e := New(Hex)
	for _, s := range [][]byte{nil, {}, []byte("hello"), {0x00, 0xff, 0x10, 0x00}} {
		enc := e.Encode(s)
		dec, err := e.Decode(enc)
		require.NoError(t, err)
		assert.Equal(t, s, dec)
		assert.Regexp(t, "^[0-9a-f]*$", enc)
	}
}

func TestHexRejectsOddLength(t *testing.T) {
	e := New(Hex)
	_, err := e.Decode("abc")
	require.Error(t, err)
	kind, ok := shamirerr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, shamirerr.HexDecodeFailed, kind)
}

func TestHexRejectsInvalidCharacters(t *testing.T) {
	e := New(Hex)
	_, err := e.Decode("zz")
	require.Error(t, err)
}

func TestBase64RejectsInvalidPadding(t *testing.T) {
	e := New(Base64)
	_, err := e.Decode("a")
	require.Error(t, err)
	kind, ok := shamirerr.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, shamirerr.Base64DecodeFailed, kind)
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "base64", Base64.String())
	assert.Equal(t, "hex", Hex.String())
}

package codec

import (
	"bytes"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunkEmptySecretYieldsOneEmptyChunk(t *testing.T) {
	chunks := Chunk(nil, 30)
	assert.Len(t, chunks, 1)
	assert.Empty(t, chunks[0])
}

func TestChunkSplitsOnBoundaries(t *testing.T) {
	secret := bytes.Repeat([]byte{'x'}, 1000)
	chunks := Chunk(secret, 30)
	assert.Len(t, chunks, 34) // ceil(1000/30)

	var reassembled []byte
	for _, c := range chunks {
		reassembled = append(reassembled, c...)
	}
	assert.Equal(t, secret, reassembled)

	for i, c := range chunks {
		if i == len(chunks)-1 {
			assert.LessOrEqual(t, len(c), 30)
		} else {
			assert.Equal(t, 30, len(c))
		}
	}
}

func TestToFieldEmptyIsZero(t *testing.T) {
	assert.Equal(t, big.NewInt(0), ToField(nil))
	assert.Equal(t, big.NewInt(0), ToField([]byte{}))
}

func TestToFieldBigEndian(t *testing.T) {
	v := ToField([]byte{0x01, 0x02})
	assert.Equal(t, big.NewInt(0x0102), v)
}

func TestUnpaddedRoundTripLosesLeadingZero(t *testing.T) {
	chunk := []byte{0x00, 0x42}
	v := ToField(chunk)
	back := FromField(v, Unpadded, 30, false, 0)
	assert.Equal(t, []byte{0x42}, back) // documented lossy behavior
}

func TestUnpaddedZeroChunkRoundTripsToEmpty(t *testing.T) {
	v := ToField(nil)
	back := FromField(v, Unpadded, 30, true, 0)
	assert.Empty(t, back)
}

func TestPadFixedWidthPreservesLeadingZeroInNonFinalChunk(t *testing.T) {
	chunk := []byte{0x00, 0x42}
	v := ToField(chunk)
	back := FromField(v, PadFixedWidth, 2, false, 0)
	assert.Equal(t, chunk, back)
}

func TestPadFixedWidthFinalChunkShorterThanChunkSize(t *testing.T) {
	chunk := []byte{0x00, 0x00, 0x07}
	v := ToField(chunk)
	back := FromField(v, PadFixedWidth, 30, true, len(chunk))
	assert.Equal(t, chunk, back)
}

func TestChunkSizeForKnownPrimes(t *testing.T) {
	assert.Equal(t, 30, ChunkSize(256))
	assert.Equal(t, 15, ChunkSize(128)) // floor((128-1)/8) == 15
}

func TestRoundTripArbitraryBytesUnpaddedWhenNoLeadingZero(t *testing.T) {
	// All-nonzero-leading bytes: unpadded round-trip is exact.
	secret := []byte("test-secret-without-a-leading-null-byte")
	chunks := Chunk(secret, 30)

	var out []byte
	for i, c := range chunks {
		v := ToField(c)
		out = append(out, FromField(v, Unpadded, 30, i == len(chunks)-1, len(c))...)
	}
	assert.Equal(t, secret, out)
}

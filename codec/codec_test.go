package codec_test

import (
	"testing"

	"github.com/katalvlaran/strseq/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip_AllTypes compresses and decompresses a payload with every codec.
func TestRoundTrip_AllTypes(t *testing.T) {
	payload := []byte("ACGTACGTACGTACGTACGTACGT the quick brown fox")

	for _, ct := range []codec.Type{codec.None, codec.ZLIB, codec.GZIP} {
		for _, level := range []int{0, 6, 9} {
			blob, err := codec.Compress(ct, payload, level)
			require.NoError(t, err, "%s level %d", ct, level)

			got, err := codec.Decompress(ct, blob, len(payload))
			require.NoError(t, err, "%s level %d", ct, level)
			assert.Equal(t, payload, got, "%s level %d round trip", ct, level)
		}
	}
}

// TestRoundTrip_Empty handles zero-length payloads.
func TestRoundTrip_Empty(t *testing.T) {
	blob, err := codec.Compress(codec.ZLIB, nil, 6)
	require.NoError(t, err)
	got, err := codec.Decompress(codec.ZLIB, blob, 0)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestDecompress_Corrupt rejects garbage streams.
func TestDecompress_Corrupt(t *testing.T) {
	_, err := codec.Decompress(codec.ZLIB, []byte{0xde, 0xad, 0xbe, 0xef}, 4)
	assert.ErrorIs(t, err, codec.ErrCorrupt)

	_, err = codec.Decompress(codec.GZIP, []byte{0x00}, 1)
	assert.ErrorIs(t, err, codec.ErrCorrupt)
}

// TestDecompress_LengthMismatch distinguishes short and oversized decodes.
func TestDecompress_LengthMismatch(t *testing.T) {
	payload := []byte("ACGTACGT")
	blob, err := codec.Compress(codec.ZLIB, payload, 6)
	require.NoError(t, err)

	_, err = codec.Decompress(codec.ZLIB, blob, len(payload)+1)
	assert.ErrorIs(t, err, codec.ErrCorrupt, "short decode is corruption")

	_, err = codec.Decompress(codec.ZLIB, blob, len(payload)-1)
	assert.ErrorIs(t, err, codec.ErrBufferTooSmall, "oversized decode hits the buffer contract")
}

// TestUnknownType is rejected on both paths.
func TestUnknownType(t *testing.T) {
	_, err := codec.Compress(codec.Type(99), []byte("x"), 1)
	assert.ErrorIs(t, err, codec.ErrUnknownType)

	_, err = codec.Decompress(codec.Type(99), []byte("x"), 1)
	assert.ErrorIs(t, err, codec.ErrUnknownType)
}

// TestCompress_BadLevel surfaces the underlying writer error.
func TestCompress_BadLevel(t *testing.T) {
	_, err := codec.Compress(codec.ZLIB, []byte("x"), 42)
	assert.Error(t, err)
}

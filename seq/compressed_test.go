package seq_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strseq/alphabet"
	"github.com/katalvlaran/strseq/codec"
	"github.com/katalvlaran/strseq/seq"
)

// TestCompressed_RoundTrip saves with several codec/level pairs and verifies
// a decompressing load restores strings, alphabet identity and histogram.
func TestCompressed_RoundTrip(t *testing.T) {
	cases := []struct {
		name  string
		ct    codec.Type
		level int
	}{
		{"zlib level 6", codec.ZLIB, 6},
		{"zlib stored", codec.ZLIB, 0},
		{"gzip level 9", codec.GZIP, 9},
		{"none", codec.None, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := dnaStrings(t, "AA", "AC", "AGTA")
			p := filepath.Join(t.TempDir(), "out.sgv")
			require.NoError(t, src.SaveCompressed(p, tc.ct, tc.level))

			dst := seq.New[byte](alphabet.DNA)
			require.NoError(t, dst.LoadCompressed(p, true))

			want, err := src.CopyStrings()
			require.NoError(t, err)
			got, err := dst.CopyStrings()
			require.NoError(t, err)
			assert.Equal(t, want, got, "strings survive the round trip")
			assert.Equal(t, alphabet.DNA, dst.Alphabet().Identity())
			assert.Equal(t, src.Alphabet().Histogram(), dst.Alphabet().Histogram(),
				"histogram is rebuilt from the decoded vectors")
			assert.Equal(t, src.MaxLength(), dst.MaxLength())
		})
	}
}

// TestCompressed_RoundTripWords round-trips a multi-byte element type.
func TestCompressed_RoundTripWords(t *testing.T) {
	src := wordDNA(t, "ACGT", "TT")
	require.NoError(t, src.Embed(1))
	p := filepath.Join(t.TempDir(), "w.sgv")
	require.NoError(t, src.SaveCompressed(p, codec.ZLIB, 6))

	dst := seq.New[uint16](alphabet.DNA)
	require.NoError(t, dst.LoadCompressed(p, true))
	got, err := dst.GetCopy(0)
	require.NoError(t, err)
	assert.Equal(t, []uint16{0, 1, 2, 3}, got, "remapped words survive byte-exact")
}

// TestCompressed_PreprocessedSave stores the preprocessed view of each
// vector.
func TestCompressed_PreprocessedSave(t *testing.T) {
	src := dnaStrings(t, "TGCA")
	src.AddPreprocessor(seq.SortSymbols[byte]{})
	src.EnableOnTheFlyPreprocessing()
	p := filepath.Join(t.TempDir(), "pp.sgv")
	require.NoError(t, src.SaveCompressed(p, codec.ZLIB, 6))

	dst := seq.New[byte](alphabet.DNA)
	require.NoError(t, dst.LoadCompressed(p, true))
	got, err := dst.GetCopy(0)
	require.NoError(t, err)
	assert.Equal(t, []byte("ACGT"), got)
}

// TestCompressed_RawMode keeps vectors compressed: each stored string is the
// two-length header followed by the raw payload.
func TestCompressed_RawMode(t *testing.T) {
	src := dnaStrings(t, "AGTA")
	p := filepath.Join(t.TempDir(), "raw.sgv")
	require.NoError(t, src.SaveCompressed(p, codec.ZLIB, 6))

	dst := seq.New[byte](alphabet.DNA)
	require.NoError(t, dst.LoadCompressed(p, false))
	require.Equal(t, 1, dst.Size())

	vec, err := dst.GetCopy(0)
	require.NoError(t, err)
	require.Greater(t, len(vec), 8, "8 header bytes precede the payload")
	lenC := binary.LittleEndian.Uint32(vec[0:4])
	lenU := binary.LittleEndian.Uint32(vec[4:8])
	assert.Equal(t, int(lenC), len(vec)-8, "header states the payload size")
	assert.Equal(t, uint32(4), lenU, "header states the uncompressed element count")

	raw, err := codec.Decompress(codec.ZLIB, vec[8:8+lenC], int(lenU))
	require.NoError(t, err)
	assert.Equal(t, []byte("AGTA"), raw, "payload inflates by hand")
}

// TestCompressed_SaveGuards refuses empty sequences and live subsets.
func TestCompressed_SaveGuards(t *testing.T) {
	p := filepath.Join(t.TempDir(), "x.sgv")

	empty := seq.New[byte](alphabet.DNA)
	assert.ErrorIs(t, empty.SaveCompressed(p, codec.ZLIB, 6), seq.ErrInvalidArgument)

	s := dnaStrings(t, "AC", "GT")
	require.NoError(t, s.PushSubset([]int{0}))
	assert.ErrorIs(t, s.SaveCompressed(p, codec.ZLIB, 6), seq.ErrSubsetActive)
}

// TestCompressed_LoadMalformed rejects bad magic, truncation and garbage,
// leaving the sequence untouched.
func TestCompressed_LoadMalformed(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.sgv")
	require.NoError(t, os.WriteFile(bad, []byte("NOPE"), 0o644))

	s := dnaStrings(t, "ACGT")
	assert.ErrorIs(t, s.LoadCompressed(bad, true), seq.ErrMalformedFormat)
	assert.Equal(t, 1, s.Size(), "failed load keeps the old content")

	trunc := filepath.Join(dir, "trunc.sgv")
	require.NoError(t, os.WriteFile(trunc, []byte("SGV0\x01\x00"), 0o644))
	assert.ErrorIs(t, s.LoadCompressed(trunc, true), seq.ErrMalformedFormat)
}

// TestCompressed_CorruptPayload surfaces the codec error for an undecodable
// vector payload.
func TestCompressed_CorruptPayload(t *testing.T) {
	src := dnaStrings(t, "ACGTACGTACGT")
	p := filepath.Join(t.TempDir(), "c.sgv")
	require.NoError(t, src.SaveCompressed(p, codec.ZLIB, 6))

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	// byte 22 is the first payload byte of the first vector: 14 header bytes
	// plus the two per-vector lengths. 0xFF is not a valid zlib method.
	data[22] = 0xFF
	require.NoError(t, os.WriteFile(p, data, 0o644))

	dst := seq.New[byte](alphabet.DNA)
	assert.ErrorIs(t, dst.LoadCompressed(p, true), codec.ErrCorrupt)
}

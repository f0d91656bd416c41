package seq_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/strseq/alphabet"
	"github.com/katalvlaran/strseq/seq"
)

// TestTranspose_Basic flips rows into positional cross-sections.
func TestTranspose_Basic(t *testing.T) {
	s := dnaStrings(t, "ACG", "TAC")

	out, err := s.Transpose()
	require.NoError(t, err)
	assert.Equal(t, 3, out.Size(), "one string per input position")

	want := []string{"AT", "CA", "GC"}
	for i, w := range want {
		got, gerr := out.GetCopy(i)
		require.NoError(t, gerr)
		assert.Equal(t, []byte(w), got, "cross-section %d", i)
	}
	assert.Same(t, s.Alphabet(), out.Alphabet())
}

// TestTranspose_SubsetView transposes only the logical rows.
func TestTranspose_SubsetView(t *testing.T) {
	s := dnaStrings(t, "AC", "GT", "CC")
	require.NoError(t, s.PushSubset([]int{2, 0}))

	out, err := s.Transpose()
	require.NoError(t, err)
	assert.Equal(t, 2, out.Size())
	got, gerr := out.GetCopy(0)
	require.NoError(t, gerr)
	assert.Equal(t, []byte("CA"), got, "column 0 of the subset view")
}

// TestTranspose_Guards rejects empty and ragged inputs.
func TestTranspose_Guards(t *testing.T) {
	empty := seq.New[byte](alphabet.DNA)
	_, err := empty.Transpose()
	assert.ErrorIs(t, err, seq.ErrInvalidArgument)

	ragged := dnaStrings(t, "AC", "GTA")
	_, err = ragged.Transpose()
	assert.ErrorIs(t, err, seq.ErrRaggedInput)
}

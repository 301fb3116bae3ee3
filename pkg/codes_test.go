package pkg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func requirePrefixFree(t *testing.T, codes CodeTable) {
	t.Helper()
	for a, ca := range codes {
		require.NotZero(t, ca.Len, "symbol %d has an empty code", a)
		for b, cb := range codes {
			if a == b {
				continue
			}
			require.False(t, ca.HasPrefix(cb), "code %s of %d starts with code %s of %d", ca, a, cb, b)
		}
	}
}

// kraftSum is 1 exactly when the codes come from a full binary tree.
func kraftSum(codes CodeTable) float64 {
	var sum float64
	for _, c := range codes {
		sum += math.Ldexp(1, -int(c.Len))
	}
	return sum
}

func TestGenerateCodes(t *testing.T) {
	root, err := BuildTree(FrequencyTable{'a': 1, 'b': 1, 'c': 1, 'd': 1})
	require.NoError(t, err)
	codes := GenerateCodes(root)

	require.Equal(t, "00", codes['a'].String())
	require.Equal(t, "01", codes['b'].String())
	require.Equal(t, "10", codes['c'].String())
	require.Equal(t, "11", codes['d'].String())
}

func TestGenerateCodesSkewed(t *testing.T) {
	root, err := BuildTree(FrequencyTable{'a': 8, 'b': 1})
	require.NoError(t, err)
	codes := GenerateCodes(root)
	require.Equal(t, Code{Bits: 1, Len: 1}, codes['a'])
	require.Equal(t, Code{Bits: 0, Len: 1}, codes['b'])
}

func TestGenerateCodesSingleLeaf(t *testing.T) {
	root, err := BuildTree(FrequencyTable{'z': 100})
	require.NoError(t, err)
	codes := GenerateCodes(root)
	require.Equal(t, CodeTable{'z': {Bits: 0, Len: 1}}, codes)
	require.Equal(t, "0", codes['z'].String())
}

func TestGenerateCodesNil(t *testing.T) {
	require.Empty(t, GenerateCodes(nil))
}

func TestGenerateCodesPrefixFree(t *testing.T) {
	freqs, err := CountFrequencies([]byte("Huffman coding assigns short codes to frequent symbols!!!"))
	require.NoError(t, err)
	root, err := BuildTree(freqs)
	require.NoError(t, err)
	codes := GenerateCodes(root)

	require.Len(t, codes, len(freqs))
	requirePrefixFree(t, codes)
	require.Equal(t, 1.0, kraftSum(codes))
}

func TestGenerateCodesDeepTree(t *testing.T) {
	// Fibonacci weights give the deepest tree a 32-bit total allows.
	freqs := FrequencyTable{}
	a, b := uint32(1), uint32(1)
	for s := 0; s < 45; s++ {
		freqs[byte(s)] = a
		a, b = b, a+b
	}
	require.LessOrEqual(t, freqs.Total(), uint64(math.MaxUint32))

	root, err := BuildTree(freqs)
	require.NoError(t, err)
	codes := GenerateCodes(root)

	requirePrefixFree(t, codes)
	require.Equal(t, 1.0, kraftSum(codes))
	var longest uint8
	for _, c := range codes {
		longest = max(longest, c.Len)
	}
	require.Greater(t, longest, uint8(32))
	require.LessOrEqual(t, longest, uint8(64))
}

func TestCodeHasPrefix(t *testing.T) {
	c := Code{Bits: 0b1011, Len: 4}
	require.True(t, c.HasPrefix(Code{Bits: 0b1, Len: 1}))
	require.True(t, c.HasPrefix(Code{Bits: 0b101, Len: 3}))
	require.True(t, c.HasPrefix(c))
	require.False(t, c.HasPrefix(Code{Bits: 0b11, Len: 2}))
	require.False(t, c.HasPrefix(Code{Bits: 0b10110, Len: 5}))
}

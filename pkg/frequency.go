package pkg

import "math"

// FrequencyTable maps every byte present in an input to its occurrence
// count. Absent bytes have no entry.
type FrequencyTable map[byte]uint32

// CountFrequencies tallies byte occurrences in data. Empty input yields an
// empty table.
func CountFrequencies(data []byte) (FrequencyTable, error) {
	if uint64(len(data)) > math.MaxUint32 {
		return nil, ErrInputTooLarge
	}

	var counts [256]uint32
	for _, b := range data {
		counts[b]++
	}

	freqs := make(FrequencyTable)
	for s, n := range counts {
		if n > 0 {
			freqs[byte(s)] = n
		}
	}
	return freqs, nil
}

// Symbols returns the table's symbols in ascending order.
func (f FrequencyTable) Symbols() []byte {
	out := make([]byte, 0, len(f))
	for s := 0; s < 256; s++ {
		if _, ok := f[byte(s)]; ok {
			out = append(out, byte(s))
		}
	}
	return out
}

// Total is the number of symbols the table describes, i.e. the length of
// the input it was counted from.
func (f FrequencyTable) Total() uint64 {
	var n uint64
	for _, c := range f {
		n += uint64(c)
	}
	return n
}

package pkg

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// PackBits writes the code of every byte of data, in order, as one MSB-first
// bit sequence. It returns the packed bytes and the number of zero bits
// appended to fill the last byte.
func PackBits(data []byte, codes CodeTable) (payload []byte, padding uint8, err error) {
	var bits uint64
	for _, b := range data {
		c, ok := codes[b]
		if !ok || c.Len == 0 {
			return nil, 0, fmt.Errorf("no code for symbol 0x%02x", b)
		}
		bits += uint64(c.Len)
	}

	buf := new(bytes.Buffer)
	buf.Grow(int((bits + 7) / 8))

	w := bitio.NewWriter(buf)
	for _, b := range data {
		c := codes[b]
		if err := w.WriteBits(c.Bits, c.Len); err != nil {
			return nil, 0, err
		}
	}
	if padding, err = w.Align(); err != nil {
		return nil, 0, err
	}
	if err = w.Close(); err != nil {
		return nil, 0, err
	}
	return buf.Bytes(), padding, nil
}

// UnpackBits decodes count symbols from payload by walking root, ignoring
// the trailing padding bits. Running out of bits before count symbols are
// emitted, including stopping between two leaves, is ErrTruncatedStream.
func UnpackBits(payload []byte, padding uint8, root *HuffmanNode, count uint64) ([]byte, error) {
	if padding > 7 {
		return nil, fmt.Errorf("padding %d: %w", padding, ErrMalformedContainer)
	}
	if count == 0 {
		if len(payload) != 0 || padding != 0 {
			return nil, fmt.Errorf("%d payload bytes, padding %d for no symbols: %w", len(payload), padding, ErrMalformedContainer)
		}
		return []byte{}, nil
	}
	if root == nil {
		return nil, fmt.Errorf("no tree for %d symbols: %w", count, ErrMalformedContainer)
	}
	if len(payload) == 0 {
		return nil, fmt.Errorf("no payload for %d symbols: %w", count, ErrTruncatedStream)
	}

	remaining := uint64(len(payload))*8 - uint64(padding)
	// Every code is at least one bit long.
	out := make([]byte, 0, min(count, remaining))
	r := bitio.NewReader(bytes.NewReader(payload))

	for uint64(len(out)) < count {
		node := root
		for {
			if remaining == 0 {
				return nil, fmt.Errorf("stream ended after %d of %d symbols: %w", len(out), count, ErrTruncatedStream)
			}
			bit, err := r.ReadBool()
			if err != nil {
				return nil, fmt.Errorf("read bit: %v: %w", err, ErrTruncatedStream)
			}
			remaining--

			if node.IsLeaf() {
				// Lone-leaf tree: every symbol is the code "0".
				if bit {
					return nil, fmt.Errorf("invalid bit in single-symbol stream at symbol %d: %w", len(out), ErrTruncatedStream)
				}
				break
			}
			if bit {
				node = node.right
			} else {
				node = node.left
			}
			if node.IsLeaf() {
				break
			}
		}
		out = append(out, node.symbol)
	}

	if remaining != 0 {
		return nil, fmt.Errorf("%d bits left after %d symbols: %w", remaining, count, ErrMalformedContainer)
	}
	return out, nil
}

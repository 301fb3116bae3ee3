package pkg

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/cespare/xxhash/v2"
)

var (
	// Magic opens every container. The last byte is the format version.
	Magic = [4]byte{'H', 'F', 'Z', 1}
)

const maxSymbols = 256

// Container is the compressed artifact: the frequency table the tree is
// rebuilt from, the padding bit count of the last payload byte and the
// packed payload.
//
// Layout, big-endian:
//
//	magic    [4]byte
//	count    uint32
//	entries  count × (symbol uint8, frequency uint32), ascending symbols
//	padding  uint8
//	length   uint32
//	payload  [length]byte
type Container struct {
	Frequencies FrequencyTable
	Padding     uint8
	Payload     []byte
}

type containerHeader struct {
	Magic   [4]byte
	Symbols uint32
}

type symbolEntry struct {
	Symbol    byte
	Frequency uint32
}

type payloadHeader struct {
	Padding uint8
	Length  uint32
}

// DecodedLen is the length of the input the container was encoded from.
func (c *Container) DecodedLen() uint64 { return c.Frequencies.Total() }

// Size is the number of bytes MarshalBinary produces.
func (c *Container) Size() int {
	return binary.Size(containerHeader{}) +
		len(c.Frequencies)*binary.Size(symbolEntry{}) +
		binary.Size(payloadHeader{}) +
		len(c.Payload)
}

func (c *Container) MarshalBinary() ([]byte, error) {
	if len(c.Frequencies) > maxSymbols {
		return nil, fmt.Errorf("%d symbols: %w", len(c.Frequencies), ErrMalformedContainer)
	}
	if uint64(len(c.Payload)) > math.MaxUint32 {
		return nil, ErrInputTooLarge
	}

	var out bytes.Buffer
	out.Grow(c.Size())

	binary.Write(&out, binary.BigEndian, containerHeader{
		Magic:   Magic,
		Symbols: uint32(len(c.Frequencies)),
	})
	for _, s := range c.Frequencies.Symbols() {
		binary.Write(&out, binary.BigEndian, symbolEntry{Symbol: s, Frequency: c.Frequencies[s]})
	}
	binary.Write(&out, binary.BigEndian, payloadHeader{
		Padding: c.Padding,
		Length:  uint32(len(c.Payload)),
	})
	out.Write(c.Payload)

	return out.Bytes(), nil
}

// UnmarshalBinary parses and validates a container. Every structural
// problem is reported as ErrMalformedContainer. The payload is copied.
func (c *Container) UnmarshalBinary(data []byte) error {
	r := bytes.NewReader(data)

	var h containerHeader
	if err := binary.Read(r, binary.BigEndian, &h); err != nil {
		return fmt.Errorf("read header: %v: %w", err, ErrMalformedContainer)
	}
	if h.Magic != Magic {
		return fmt.Errorf("bad magic %q: %w", h.Magic[:], ErrMalformedContainer)
	}
	if h.Symbols > maxSymbols {
		return fmt.Errorf("%d symbols declared: %w", h.Symbols, ErrMalformedContainer)
	}
	need := int64(h.Symbols)*int64(binary.Size(symbolEntry{})) + int64(binary.Size(payloadHeader{}))
	if int64(r.Len()) < need {
		return fmt.Errorf("%d symbols declared but only %d bytes follow: %w", h.Symbols, r.Len(), ErrMalformedContainer)
	}

	freqs := make(FrequencyTable, h.Symbols)
	var total uint64
	prev := -1
	for i := uint32(0); i < h.Symbols; i++ {
		var e symbolEntry
		if err := binary.Read(r, binary.BigEndian, &e); err != nil {
			return fmt.Errorf("read symbol %d: %v: %w", i, err, ErrMalformedContainer)
		}
		if int(e.Symbol) <= prev {
			return fmt.Errorf("symbol 0x%02x out of order: %w", e.Symbol, ErrMalformedContainer)
		}
		if e.Frequency == 0 {
			return fmt.Errorf("symbol 0x%02x has zero frequency: %w", e.Symbol, ErrMalformedContainer)
		}
		prev = int(e.Symbol)
		total += uint64(e.Frequency)
		freqs[e.Symbol] = e.Frequency
	}
	if total > math.MaxUint32 {
		return fmt.Errorf("decoded length %d: %w", total, ErrMalformedContainer)
	}

	var ph payloadHeader
	if err := binary.Read(r, binary.BigEndian, &ph); err != nil {
		return fmt.Errorf("read payload header: %v: %w", err, ErrMalformedContainer)
	}
	if ph.Padding > 7 {
		return fmt.Errorf("padding %d: %w", ph.Padding, ErrMalformedContainer)
	}
	if int64(ph.Length) != int64(r.Len()) {
		return fmt.Errorf("payload length %d but %d bytes present: %w", ph.Length, r.Len(), ErrMalformedContainer)
	}
	// A missing payload for declared symbols is left for the decoder to
	// report as a truncated stream.
	if h.Symbols == 0 && (ph.Length != 0 || ph.Padding != 0) {
		return fmt.Errorf("payload without symbols: %w", ErrMalformedContainer)
	}

	payload := make([]byte, ph.Length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return fmt.Errorf("read payload: %v: %w", err, ErrMalformedContainer)
	}

	c.Frequencies = freqs
	c.Padding = ph.Padding
	c.Payload = payload
	return nil
}

// WriteTo writes the marshaled container to w.
func (c *Container) WriteTo(w io.Writer) (int64, error) {
	data, err := c.MarshalBinary()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// ReadContainer reads r to EOF and parses a container from it. Read errors
// are returned unchanged.
func ReadContainer(r io.Reader) (*Container, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	c := new(Container)
	if err := c.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return c, nil
}

// Fingerprint is the xxhash64 digest of the marshaled container.
func (c *Container) Fingerprint() uint64 {
	data, err := c.MarshalBinary()
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}

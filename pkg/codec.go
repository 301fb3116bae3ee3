package pkg

import (
	"bytes"
	"io"
)

// Huffman compression of whole in-memory inputs. Every call builds its own
// frequency table, tree and code table, so calls may run concurrently.

// Encode compresses data into a container. Empty input yields a container
// with no symbols and no payload.
func Encode(data []byte) (*Container, error) {
	freqs, err := CountFrequencies(data)
	if err != nil {
		return nil, err
	}
	if len(freqs) == 0 {
		return &Container{Frequencies: freqs, Payload: []byte{}}, nil
	}

	root, err := BuildTree(freqs)
	if err != nil {
		return nil, err
	}
	codes := GenerateCodes(root)

	payload, padding, err := PackBits(data, codes)
	if err != nil {
		return nil, err
	}

	return &Container{
		Frequencies: freqs,
		Padding:     padding,
		Payload:     payload,
	}, nil
}

// Decode restores the bytes c was encoded from. It returns either the
// complete input or an error, never partial output.
func Decode(c *Container) ([]byte, error) {
	if len(c.Frequencies) == 0 {
		return UnpackBits(c.Payload, c.Padding, nil, 0)
	}

	root, err := BuildTree(c.Frequencies)
	if err != nil {
		return nil, err
	}
	return UnpackBits(c.Payload, c.Padding, root, c.DecodedLen())
}

// Compress encodes data and marshals the container.
func Compress(data []byte) ([]byte, error) {
	c, err := Encode(data)
	if err != nil {
		return nil, err
	}
	return c.MarshalBinary()
}

// Decompress parses a marshaled container and decodes it.
func Decompress(data []byte) ([]byte, error) {
	c := new(Container)
	if err := c.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return Decode(c)
}

// CompressHuffman reads src to EOF and returns a reader over the marshaled
// container.
func CompressHuffman(src io.Reader) (io.Reader, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	out, err := Compress(data)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(out), nil
}

// DecompressHuffman reads a marshaled container from src and decodes it.
func DecompressHuffman(src io.Reader) ([]byte, error) {
	c, err := ReadContainer(src)
	if err != nil {
		return nil, err
	}
	return Decode(c)
}

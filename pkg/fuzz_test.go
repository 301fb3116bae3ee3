package pkg

import (
	"bytes"
	"testing"
)

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte(""))
	f.Add([]byte("zzzz"))
	f.Add([]byte("aaaaaaaab"))
	f.Add(allBytes())
	f.Fuzz(func(t *testing.T, data []byte) {
		packed, err := Compress(data)
		if err != nil {
			t.Fatalf("compress: %v", err)
		}
		got, err := Decompress(packed)
		if err != nil {
			t.Fatalf("decompress: %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("roundtrip mismatch")
		}
	})
}

func FuzzDecompress(f *testing.F) {
	for _, s := range []string{"", "zzzz", "hello huffman"} {
		packed, _ := Compress([]byte(s))
		f.Add(packed)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		out, err := Decompress(data)
		if err != nil {
			if out != nil {
				t.Fatalf("partial output alongside error %v", err)
			}
			if k := Classify(err); k != KindMalformedContainer && k != KindTruncatedStream {
				t.Fatalf("unexpected error kind %s: %v", k, err)
			}
			return
		}
		if uint64(len(out)) > uint64(len(data))*8 {
			t.Fatalf("decoded %d bytes from %d", len(out), len(data))
		}
	})
}

package pkg

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"huffar/pkg/logger"
)

// Extension is appended to compressed file names.
const Extension = ".huf"

type Options struct {
	// Output overrides the destination path. Only valid for a single file.
	Output string
	// Force overwrites existing destinations.
	Force bool
	// Workers bounds parallel compression in CompressFiles. 0 means
	// GOMAXPROCS.
	Workers int
	Logger  logger.Logger
}

func (o Options) log() logger.Logger {
	if o.Logger == nil {
		return logger.Discard()
	}
	return o.Logger
}

// Stats describes one finished compress or decompress run.
type Stats struct {
	Input          string
	Output         string
	OriginalSize   int64
	CompressedSize int64
	Fingerprint    uint64
}

// Ratio is compressed size over original size, 0 for empty originals.
func (s Stats) Ratio() float64 {
	if s.OriginalSize == 0 {
		return 0
	}
	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// DefaultCompressedPath is src with Extension appended.
func DefaultCompressedPath(src string) string {
	return src + Extension
}

// DefaultDecompressedPath strips Extension from src, or appends ".out"
// when src does not carry it.
func DefaultDecompressedPath(src string) string {
	if strings.HasSuffix(src, Extension) && len(src) > len(Extension) {
		return strings.TrimSuffix(src, Extension)
	}
	return src + ".out"
}

// CompressFile compresses src into opts.Output, or DefaultCompressedPath
// when unset. The returned Stats name src and the destination even on error.
func CompressFile(src string, opts Options) (Stats, error) {
	out := opts.Output
	if out == "" {
		out = DefaultCompressedPath(src)
	}

	st := Stats{Input: src, Output: out}

	raw, err := os.ReadFile(src)
	if err != nil {
		return st, err
	}

	c, err := Encode(raw)
	if err != nil {
		return st, fmt.Errorf("encode %s: %w", src, err)
	}
	data, err := c.MarshalBinary()
	if err != nil {
		return st, fmt.Errorf("encode %s: %w", src, err)
	}
	if err := writeFile(out, data, opts.Force); err != nil {
		return st, err
	}

	st.OriginalSize = int64(len(raw))
	st.CompressedSize = int64(len(data))
	st.Fingerprint = c.Fingerprint()
	opts.log().Infof("compressed %s -> %s (%d -> %d bytes, %d symbols, fingerprint %016x)",
		src, out, st.OriginalSize, st.CompressedSize, len(c.Frequencies), st.Fingerprint)
	return st, nil
}

// DecompressFile restores the file compressed into src. Nothing is written
// unless decoding succeeds.
func DecompressFile(src, out string, opts Options) (Stats, error) {
	if out == "" {
		out = DefaultDecompressedPath(src)
	}

	st := Stats{Input: src, Output: out}

	f, err := os.Open(src)
	if err != nil {
		return st, err
	}
	defer f.Close()

	c, err := ReadContainer(f)
	if err != nil {
		return st, fmt.Errorf("read %s: %w", src, err)
	}
	raw, err := Decode(c)
	if err != nil {
		return st, fmt.Errorf("decode %s: %w", src, err)
	}
	if err := writeFile(out, raw, opts.Force); err != nil {
		return st, err
	}

	st.OriginalSize = int64(len(raw))
	st.CompressedSize = int64(c.Size())
	st.Fingerprint = c.Fingerprint()
	opts.log().Infof("decompressed %s -> %s (%d -> %d bytes)", src, out, st.CompressedSize, st.OriginalSize)
	return st, nil
}

// Result pairs the outcome of one file in a batch.
type Result struct {
	Stats Stats
	Err   error
}

// CompressFiles compresses every source on a bounded pool of workers. Results
// are in the order of srcs; a failure on one file does not stop the others.
func CompressFiles(srcs []string, opts Options) ([]Result, error) {
	if opts.Output != "" && len(srcs) > 1 {
		return nil, errors.New("an output path can only be given for a single input")
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, len(srcs))

	results := make([]Result, len(srcs))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				st, err := CompressFile(srcs[i], opts)
				if err != nil {
					opts.log().Errorf("compress %s: %v", srcs[i], err)
				}
				results[i] = Result{Stats: st, Err: err}
			}
		}()
	}
	for i := range srcs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results, nil
}

func writeFile(path string, data []byte, force bool) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

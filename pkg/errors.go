package pkg

import (
	"errors"
)

var (
	// ErrEmptyInput is returned by BuildTree for an empty frequency table.
	// Encode handles empty input itself and never surfaces it.
	ErrEmptyInput = errors.New("empty input")

	// ErrTruncatedStream means the payload ran out, or held an impossible
	// bit, while symbols were still being decoded.
	ErrTruncatedStream = errors.New("truncated stream")

	// ErrMalformedContainer means the container failed structural checks:
	// bad magic, inconsistent symbol list or lengths.
	ErrMalformedContainer = errors.New("malformed container")

	// ErrInputTooLarge means the input cannot be described with 32-bit
	// frequencies.
	ErrInputTooLarge = errors.New("input too large")
)

// ErrorKind classifies errors for display.
type ErrorKind int

const (
	KindNone ErrorKind = iota
	KindTruncatedStream
	KindMalformedContainer
	KindInputTooLarge
	KindIoFailure
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindTruncatedStream:
		return "truncated-stream"
	case KindMalformedContainer:
		return "malformed-container"
	case KindInputTooLarge:
		return "input-too-large"
	case KindIoFailure:
		return "io-failure"
	}
	return "unknown"
}

// Message is the one line shown to a user for an error of kind k.
func (k ErrorKind) Message() string {
	switch k {
	case KindNone:
		return "ok"
	case KindTruncatedStream:
		return "compressed data is incomplete or corrupt"
	case KindMalformedContainer:
		return "file is not a valid compressed container"
	case KindInputTooLarge:
		return "input is too large to compress"
	}
	return "could not read or write file"
}

// Classify maps err to its kind. Anything that is not a codec error is
// treated as an I/O failure.
func Classify(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrTruncatedStream):
		return KindTruncatedStream
	case errors.Is(err, ErrMalformedContainer):
		return KindMalformedContainer
	case errors.Is(err, ErrInputTooLarge):
		return KindInputTooLarge
	}
	return KindIoFailure
}

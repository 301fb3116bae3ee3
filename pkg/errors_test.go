package pkg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	require.Equal(t, KindNone, Classify(nil))
	require.Equal(t, KindTruncatedStream, Classify(fmt.Errorf("decode x: %w", ErrTruncatedStream)))
	require.Equal(t, KindMalformedContainer, Classify(fmt.Errorf("read x: %w", ErrMalformedContainer)))
	require.Equal(t, KindInputTooLarge, Classify(ErrInputTooLarge))
	require.Equal(t, KindIoFailure, Classify(errors.New("permission denied")))
}

func TestErrorKindMessages(t *testing.T) {
	seen := map[string]ErrorKind{}
	for _, k := range []ErrorKind{KindNone, KindTruncatedStream, KindMalformedContainer, KindInputTooLarge, KindIoFailure} {
		msg := k.Message()
		require.NotEmpty(t, msg)
		prev, dup := seen[msg]
		require.False(t, dup, "%s and %s share a message", k, prev)
		seen[msg] = k
	}
}

package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodecErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		context  string
		cause    error
		expected string
	}{
		{"signature context", "signature", errors.New("unexpected EOF in signature"), "signature: unexpected EOF in signature"},
		{"offsets context", "offsets", errors.New("frame exceeds 4-byte cell"), "offsets: frame exceeds 4-byte cell"},
		{"empty context", "", errors.New("some error"), ": some error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &CodecError{Context: tt.context, Cause: tt.cause}
			require.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestWrapErrorNilCausePassesThrough(t *testing.T) {
	require.Nil(t, WrapError("signature", nil))
}

func TestWrapErrorPreservesCauseForErrorsIsAs(t *testing.T) {
	sentinel := errors.New("invalid signature")
	wrapped := WrapError("signature", sentinel)

	require.True(t, errors.Is(wrapped, sentinel))

	var codecErr *CodecError
	require.True(t, errors.As(wrapped, &codecErr))
	require.Equal(t, "signature", codecErr.Context)
	require.Equal(t, sentinel, codecErr.Cause)
}

func TestWrapErrorChainedWrapping(t *testing.T) {
	base := errors.New("truncated frame")
	level1 := WrapError("array", base)
	level2 := WrapError("tuple", level1)
	level3 := WrapError("parse", level2)

	msg := level3.Error()
	require.Contains(t, msg, "parse")
	require.Contains(t, msg, "tuple")
	require.True(t, errors.Is(level3, base))
}

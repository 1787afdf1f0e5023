package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTypeLeaves(t *testing.T) {
	for code, kind := range map[string]Kind{
		"y": KindByte, "b": KindBool, "n": KindInt16, "q": KindUint16,
		"i": KindInt32, "u": KindUint32, "x": KindInt64, "t": KindUint64,
		"d": KindDouble, "s": KindString, "o": KindObjectPath, "g": KindSignature,
		"v": KindVariant,
	} {
		t.Run(code, func(t *testing.T) {
			d, err := ParseType(code)
			require.NoError(t, err)
			require.Equal(t, kind, d.Kind)
			require.Equal(t, code, d.Signature)
		})
	}
}

func TestParseTypeComposites(t *testing.T) {
	tests := []struct {
		sig       string
		kind      Kind
		alignment int
		fixed     int
	}{
		{"mi", KindMaybe, 4, variableSize},
		{"ai", KindArray, 4, variableSize},
		{"()", KindTuple, 1, 1},
		{"(nb)", KindTuple, 2, 4},
		{"(yy)", KindTuple, 1, 2},
		{"{sv}", KindDictEntry, 8, variableSize},
		{"{yy}", KindDictEntry, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			d, err := ParseType(tt.sig)
			require.NoError(t, err)
			require.Equal(t, tt.kind, d.Kind)
			require.Equal(t, tt.alignment, d.Alignment)
			require.Equal(t, tt.fixed, d.FixedSize)
		})
	}
}

func TestParseTypeNested(t *testing.T) {
	d, err := ParseType("a(siv)")
	require.NoError(t, err)
	require.Equal(t, KindArray, d.Kind)
	elem := d.Value()
	require.Equal(t, KindTuple, elem.Kind)
	require.Len(t, elem.Children, 3)
	require.Equal(t, KindString, elem.Children[0].Kind)
	require.Equal(t, KindInt32, elem.Children[1].Kind)
	require.Equal(t, KindVariant, elem.Children[2].Kind)
}

func TestParseTypeRejectsTrailingCharacters(t *testing.T) {
	_, err := ParseType("ii")
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestParseTypeRejectsUnknownCode(t *testing.T) {
	_, err := ParseType("z")
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestParseTypeRejectsTruncated(t *testing.T) {
	for _, sig := range []string{"a", "m", "(", "(i", "{", "{i", "{ii"} {
		t.Run(sig, func(t *testing.T) {
			_, err := ParseType(sig)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidSignature))
		})
	}
}

func TestParseTypeRejectsNonASCII(t *testing.T) {
	_, err := ParseType("\xFF")
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestParseTypeRejectsDeeplyNestedArrays(t *testing.T) {
	sig := ""
	for i := 0; i < 10000; i++ {
		sig += "a"
	}
	sig += "y"
	_, err := ParseType(sig)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestNextTypeConsumedLength(t *testing.T) {
	d, n, err := NextType("(ii)ii", 0)
	require.NoError(t, err)
	require.Equal(t, KindTuple, d.Kind)
	require.Equal(t, 4, n)
}

func TestParseTypeWithLimitsHonorsCallerBound(t *testing.T) {
	_, err := ParseTypeWithLimits("aaai", 2)
	require.ErrorIs(t, err, ErrInvalidSignature)

	d, err := ParseTypeWithLimits("aaai", 3)
	require.NoError(t, err)
	require.Equal(t, KindArray, d.Kind)
}

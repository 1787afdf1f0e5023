package core

import (
	"testing"

	"github.com/scigolib/gvariant/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestMaybeNothingIsEmptyFrame(t *testing.T) {
	d, err := ParseType("mi")
	require.NoError(t, err)

	buf := utils.NewBuffer()
	require.NoError(t, d.Write(buf, nil))
	require.Equal(t, 0, buf.Len())
	require.Nil(t, d.Read(buf.ToBuffer(), 0, 0))
}

func TestMaybeJustFixedElement(t *testing.T) {
	d, err := ParseType("mi")
	require.NoError(t, err)

	buf := utils.NewBuffer()
	require.NoError(t, d.Write(buf, int32(7)))
	bytes := buf.ToBuffer()
	require.Equal(t, 4, len(bytes))
	require.Equal(t, int32(7), d.Read(bytes, 0, len(bytes)))
}

func TestMaybeJustVariableElementAppendsTrailingNul(t *testing.T) {
	d, err := ParseType("ms")
	require.NoError(t, err)

	buf := utils.NewBuffer()
	require.NoError(t, d.Write(buf, "x"))
	bytes := buf.ToBuffer()
	// "x" NUL-terminated, plus the maybe-Just marker NUL.
	require.Equal(t, []byte{'x', 0, 0}, bytes)
	require.Equal(t, "x", d.Read(bytes, 0, len(bytes)))
}

func TestMaybeFixedElementWrongFrameLengthYieldsNothing(t *testing.T) {
	d, err := ParseType("mi")
	require.NoError(t, err)
	require.Nil(t, d.Read([]byte{1, 2, 3}, 0, 3))
}

func TestMaybeNestedMaybe(t *testing.T) {
	d, err := ParseType("mmi")
	require.NoError(t, err)

	buf := utils.NewBuffer()
	require.NoError(t, d.Write(buf, int32(5)))
	bytes := buf.ToBuffer()
	require.Equal(t, int32(5), d.Read(bytes, 0, len(bytes)))
}

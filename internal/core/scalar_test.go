package core

import (
	"testing"

	"github.com/scigolib/gvariant/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestScalarRoundTrip(t *testing.T) {
	tests := []struct {
		sig string
		v   any
	}{
		{"y", byte(42)},
		{"b", true},
		{"b", false},
		{"n", int16(-1234)},
		{"q", uint16(1234)},
		{"i", int32(-1)},
		{"u", uint32(0xDEADBEEF)},
		{"x", int64(-9223372036854775808)},
		{"t", uint64(0xFFFFFFFFFFFFFFFF)},
		{"d", float64(3.14159)},
	}
	for _, tt := range tests {
		d, err := ParseType(tt.sig)
		require.NoError(t, err)

		buf := utils.NewBuffer()
		require.NoError(t, d.Write(buf, tt.v))
		bytes := buf.ToBuffer()
		require.Len(t, bytes, d.FixedSize)

		got := d.Read(bytes, 0, len(bytes))
		require.Equal(t, tt.v, got)
	}
}

func TestWriteInt32Negative1ProducesAllFF(t *testing.T) {
	d, err := ParseType("i")
	require.NoError(t, err)
	buf := utils.NewBuffer()
	require.NoError(t, d.Write(buf, int32(-1)))
	require.Equal(t, []byte{0xff, 0xff, 0xff, 0xff}, buf.ToBuffer())
}

func TestReadFixedWrongLengthReturnsDefault(t *testing.T) {
	d, err := ParseType("i")
	require.NoError(t, err)
	require.Equal(t, int32(0), d.Read([]byte{1, 2, 3}, 0, 3))
	require.Equal(t, int32(0), d.Read([]byte{1, 2, 3, 4, 5}, 0, 5))
}

func TestWriteScalarTypeMismatch(t *testing.T) {
	d, err := ParseType("i")
	require.NoError(t, err)
	buf := utils.NewBuffer()
	require.Error(t, d.Write(buf, "not an int"))
}

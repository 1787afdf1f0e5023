// Package utils provides the ambient collaborators the codec core builds
// on: the appendable output buffer, little-endian primitive access, and
// error wrapping. None of it knows anything about GVariant signatures.
package utils

import (
	"encoding/binary"
	"math"
	"sync"
)

var slicePool = sync.Pool{
	New: func() interface{} {
		b := make([]byte, 0, 4096)
		return &b
	},
}

// Buffer is an appendable, alignment-aware byte container with
// little-endian primitive writers, matching the dynamic-buffer
// collaborator the codec writes through.
type Buffer struct {
	data []byte
}

// NewBuffer returns an empty Buffer backed by a pooled slice.
func NewBuffer() *Buffer {
	p := slicePool.Get().(*[]byte)
	return &Buffer{data: (*p)[:0]}
}

// Release returns the Buffer's backing slice to the pool. The Buffer
// must not be used afterward. ToBuffer() must be called first if the
// caller still needs the written data, since ToBuffer() copies out.
func (b *Buffer) Release() {
	buf := b.data
	//nolint:staticcheck // slice descriptor copy is acceptable for sync.Pool
	slicePool.Put(&buf)
	b.data = nil
}

// Len returns the current byte count.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Align pads with zero bytes so that Len() mod n == 0.
func (b *Buffer) Align(n int) {
	if n <= 1 {
		return
	}
	pad := (n - len(b.data)%n) % n
	for i := 0; i < pad; i++ {
		b.data = append(b.data, 0)
	}
}

// Append appends the UTF-8 bytes of text, with no trailing NUL.
func (b *Buffer) Append(text string) {
	b.data = append(b.data, text...)
}

// AppendBytes appends raw bytes verbatim.
func (b *Buffer) AppendBytes(p []byte) {
	b.data = append(b.data, p...)
}

// AppendUint8 appends a single byte.
func (b *Buffer) AppendUint8(v uint8) {
	b.data = append(b.data, v)
}

// AppendInt16 appends a little-endian signed 16-bit integer.
func (b *Buffer) AppendInt16(v int16) {
	b.AppendUint16(uint16(v))
}

// AppendUint16 appends a little-endian unsigned 16-bit integer.
func (b *Buffer) AppendUint16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
}

// AppendInt32 appends a little-endian signed 32-bit integer.
func (b *Buffer) AppendInt32(v int32) {
	b.AppendUint32(uint32(v))
}

// AppendUint32 appends a little-endian unsigned 32-bit integer.
func (b *Buffer) AppendUint32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
}

// AppendInt64 appends a little-endian signed 64-bit integer.
func (b *Buffer) AppendInt64(v int64) {
	b.AppendUint64(uint64(v))
}

// AppendUint64 appends a little-endian unsigned 64-bit integer.
func (b *Buffer) AppendUint64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	b.data = append(b.data, tmp[:]...)
}

// AppendDouble appends a little-endian IEEE-754 double.
func (b *Buffer) AppendDouble(v float64) {
	b.AppendUint64(math.Float64bits(v))
}

// ToBuffer snapshots the buffer to an immutable byte slice, independent
// of the Buffer's own backing array.
func (b *Buffer) ToBuffer() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

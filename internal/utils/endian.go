package utils

import (
	"encoding/binary"
	"math"
)

// ReadUint8 reads a single byte at offset.
func ReadUint8(data []byte, offset int) uint8 {
	return data[offset]
}

// ReadInt16 reads a little-endian signed 16-bit integer at offset.
func ReadInt16(data []byte, offset int) int16 {
	return int16(ReadUint16(data, offset))
}

// ReadUint16 reads a little-endian unsigned 16-bit integer at offset.
func ReadUint16(data []byte, offset int) uint16 {
	return binary.LittleEndian.Uint16(data[offset : offset+2])
}

// ReadInt32 reads a little-endian signed 32-bit integer at offset.
func ReadInt32(data []byte, offset int) int32 {
	return int32(ReadUint32(data, offset))
}

// ReadUint32 reads a little-endian unsigned 32-bit integer at offset.
func ReadUint32(data []byte, offset int) uint32 {
	return binary.LittleEndian.Uint32(data[offset : offset+4])
}

// ReadInt64 reads a little-endian signed 64-bit integer at offset.
func ReadInt64(data []byte, offset int) int64 {
	return int64(ReadUint64(data, offset))
}

// ReadUint64 reads a little-endian unsigned 64-bit integer at offset.
func ReadUint64(data []byte, offset int) uint64 {
	return binary.LittleEndian.Uint64(data[offset : offset+8])
}

// ReadDouble reads a little-endian IEEE-754 double at offset.
func ReadDouble(data []byte, offset int) float64 {
	return math.Float64frombits(ReadUint64(data, offset))
}

// ReadUintAt reads a little-endian unsigned integer of the given width
// (1, 2, 4, or 8 bytes) at offset. Used for offset-table cells whose
// width is chosen dynamically from the enclosing frame length.
func ReadUintAt(data []byte, offset, width int) uint64 {
	switch width {
	case 1:
		return uint64(ReadUint8(data, offset))
	case 2:
		return uint64(ReadUint16(data, offset))
	case 4:
		return uint64(ReadUint32(data, offset))
	default:
		return ReadUint64(data, offset)
	}
}

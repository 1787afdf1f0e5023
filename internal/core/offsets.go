package core

import (
	"errors"
	"fmt"

	"github.com/scigolib/gvariant/internal/utils"
)

// ErrOffsetOutOfRange is returned when a container's byte length
// exceeds what the largest supported offset cell (4 bytes) can
// address. 8-byte cells are a deliberate, documented gap (see
// SPEC_FULL.md §10): the format permits them for frames approaching
// 2^64 bytes, which is outside any practical in-memory buffer.
var ErrOffsetOutOfRange = errors.New("offset out of range")

const (
	maxCellWidth1 = 0xFF
	maxCellWidth2 = 0xFFFF
	maxCellWidth4 = 0xFFFFFFFF
)

// CellWidth selects the offset-cell width (1, 2, or 4 bytes) for a
// frame of the given total byte length.
func CellWidth(frameLen int) (int, error) {
	switch {
	case frameLen <= maxCellWidth1:
		return 1, nil
	case frameLen <= maxCellWidth2:
		return 2, nil
	case frameLen <= maxCellWidth4:
		return 4, nil
	default:
		return 0, fmt.Errorf("%w: frame of %d bytes exceeds the 4-byte cell limit", ErrOffsetOutOfRange, frameLen)
	}
}

// writeCellWidth picks the cell width for a frame being built from
// payloadLen bytes of element data plus n trailing offset cells. The
// total frame length depends on the width, and the width depends on
// the total length, so the choice is a small fixed point: try each
// candidate width and accept the first that is self-consistent.
func writeCellWidth(payloadLen, n int) (int, error) {
	for _, w := range []int{1, 2, 4} {
		total := payloadLen + w*n
		got, err := CellWidth(total)
		if err != nil {
			return 0, err
		}
		if got == w {
			return w, nil
		}
	}
	return 0, fmt.Errorf("%w: no supported cell width is self-consistent for %d bytes of payload and %d offsets", ErrOffsetOutOfRange, payloadLen, n)
}

// readTailOffset reads the k-th offset cell from the end of a frame
// ending at frameEnd (k=1 is the cell nearest the end), decoded as a
// little-endian unsigned integer. It does not add frameStart; callers
// apply the container-specific convention for turning it into an
// absolute position.
func readTailOffset(data []byte, frameEnd, k, width int) uint64 {
	pos := frameEnd - k*width
	return utils.ReadUintAt(data, pos, width)
}

// writeOffsetTable appends offsets as little-endian cells of the given
// width, in forward order. Callers that need the tuple write-order
// asymmetry (offsets emitted in reverse of recording order) pass an
// already-reversed slice.
func writeOffsetTable(buf *utils.Buffer, offsets []int, width int) {
	for _, off := range offsets {
		switch width {
		case 1:
			buf.AppendUint8(uint8(off))
		case 2:
			buf.AppendUint16(uint16(off))
		case 4:
			buf.AppendUint32(uint32(off))
		default:
			buf.AppendUint64(uint64(off))
		}
	}
}

func reversed(in []int) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

package core

import "github.com/scigolib/gvariant/internal/utils"

func readTuple(d *TypeDescriptor, data []byte, start, end, depth, maxDepth int) any {
	if d.IsFixed() && end-start != d.FixedSize {
		return d.Default()
	}

	var width int
	if !d.IsFixed() {
		width, _ = CellWidth(end - start) // never errors: end-start already bounded by the input slice
	}

	values := make([]any, len(d.Children))
	cur := start
	curOffset := 0
	last := len(d.Children) - 1
	for i, child := range d.Children {
		cur = alignUp(cur, child.Alignment)

		var next int
		switch {
		case child.IsFixed():
			next = cur + child.FixedSize
		case i != last:
			curOffset--
			next = start + int(readTailOffset(data, end, -curOffset, width))
		default:
			next = end - (-curOffset)*width
		}

		values[i] = child.ReadDepth(data, cur, next, depth+1, maxDepth)
		cur = next
	}
	return values
}

func writeTuple(d *TypeDescriptor, buf *utils.Buffer, v any, depth, maxDepth int) error {
	values, ok := v.([]any)
	if !ok {
		return typeMismatch(d, v)
	}
	if len(values) != len(d.Children) {
		return typeMismatch(d, v)
	}

	if len(d.Children) == 0 {
		// The empty tuple is a zero-sized type promoted to a fixed
		// size of 1 (typedescriptor.go's accumulateFixedSize); its
		// sole canonical encoding is a single zero byte.
		buf.AppendUint8(0)
		return nil
	}

	start := buf.Len()
	var offsets []int
	last := len(d.Children) - 1
	for i, child := range d.Children {
		buf.Align(child.Alignment)
		if err := child.WriteDepth(buf, values[i], depth+1, maxDepth); err != nil {
			return err
		}
		if !child.IsFixed() && i != last {
			offsets = append(offsets, buf.Len()-start)
		}
	}

	if len(offsets) == 0 {
		return nil
	}
	width, err := writeCellWidth(buf.Len()-start, len(offsets))
	if err != nil {
		return err
	}
	writeOffsetTable(buf, reversed(offsets), width)
	return nil
}

package core

import "github.com/scigolib/gvariant/internal/utils"

func readMaybe(d *TypeDescriptor, data []byte, start, end, depth, maxDepth int) any {
	elem := d.Value()
	if start == end {
		return nil
	}
	if elem.IsFixed() {
		if end-start != elem.FixedSize {
			return nil
		}
		return elem.ReadDepth(data, start, end, depth+1, maxDepth)
	}
	// Variable-size payload: the trailing NUL distinguishes Just from
	// Nothing, so the element itself only sees [start, end-1).
	return elem.ReadDepth(data, start, end-1, depth+1, maxDepth)
}

func writeMaybe(d *TypeDescriptor, buf *utils.Buffer, v any, depth, maxDepth int) error {
	elem := d.Value()
	buf.Align(d.Alignment)
	if v == nil {
		return nil
	}
	if err := elem.WriteDepth(buf, v, depth+1, maxDepth); err != nil {
		return err
	}
	if !elem.IsFixed() {
		buf.AppendUint8(0)
	}
	return nil
}

package core

import "github.com/scigolib/gvariant/internal/utils"

func readDictEntry(d *TypeDescriptor, data []byte, start, end, depth, maxDepth int) any {
	if d.IsFixed() && end-start != d.FixedSize {
		return d.Default()
	}

	key, val := d.Key(), d.Value()

	var keyEnd, valueEnd int
	if key.IsFixed() {
		keyEnd = start + key.FixedSize
		valueEnd = end
	} else {
		width, _ := CellWidth(end - start)
		if end-start < width {
			return d.Default()
		}
		keyEnd = start + int(readTailOffset(data, end, 1, width))
		valueEnd = end - width
	}
	if keyEnd > valueEnd {
		return d.Default()
	}

	k := key.ReadDepth(data, start, keyEnd, depth+1, maxDepth)
	v := val.ReadDepth(data, alignUp(keyEnd, val.Alignment), valueEnd, depth+1, maxDepth)
	return Pair{Key: k, Value: v}
}

func writeDictEntry(d *TypeDescriptor, buf *utils.Buffer, v any, depth, maxDepth int) error {
	pair, ok := v.(Pair)
	if !ok {
		return typeMismatch(d, v)
	}

	key, val := d.Key(), d.Value()
	start := buf.Len()

	if err := key.WriteDepth(buf, pair.Key, depth+1, maxDepth); err != nil {
		return err
	}
	var keyEndOffset int
	if !key.IsFixed() {
		keyEndOffset = buf.Len() - start
	}

	buf.Align(val.Alignment)
	if err := val.WriteDepth(buf, pair.Value, depth+1, maxDepth); err != nil {
		return err
	}

	if !key.IsFixed() {
		width, err := writeCellWidth(buf.Len()-start, 1)
		if err != nil {
			return err
		}
		writeOffsetTable(buf, []int{keyEndOffset}, width)
	}
	return nil
}

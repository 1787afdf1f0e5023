package core

import "github.com/scigolib/gvariant/internal/utils"

func readArray(d *TypeDescriptor, data []byte, start, end, depth, maxDepth int) any {
	elem := d.Value()

	if start == end {
		return d.Default()
	}

	if elem.IsFixed() {
		frameLen := end - start
		if frameLen%elem.FixedSize != 0 {
			return d.Default()
		}
		n := frameLen / elem.FixedSize
		return readArrayFixedElements(elem, data, start, n, depth, maxDepth)
	}

	width, _ := CellWidth(end - start)
	lastElemEndRel := int(readTailOffset(data, end, 1, width))
	n := ((end - start) - lastElemEndRel) / width
	if n <= 0 {
		return d.Default()
	}
	return readArrayVariableElements(elem, data, start, end, n, width, depth, maxDepth)
}

func readArrayFixedElements(elem *TypeDescriptor, data []byte, start, n, depth, maxDepth int) any {
	out := make([]any, n)
	cur := start
	for i := 0; i < n; i++ {
		next := cur + elem.FixedSize
		out[i] = elem.ReadDepth(data, cur, next, depth+1, maxDepth)
		cur = next
	}
	return wrapArrayElements(elem, out)
}

func readArrayVariableElements(elem *TypeDescriptor, data []byte, start, end, n, width, depth, maxDepth int) any {
	out := make([]any, n)
	cur := start
	for i := 0; i < n; i++ {
		elemEnd := start + int(readTailOffset(data, end, n-i, width))
		out[i] = elem.ReadDepth(data, cur, elemEnd, depth+1, maxDepth)
		cur = alignUp(elemEnd, elem.Alignment)
	}
	return wrapArrayElements(elem, out)
}

// wrapArrayElements normalizes an array-of-dict-entries read result
// into a Dict when the key is a basic type, matching the mapping
// representation spec.md reserves for a{KV} arrays. For any other key
// type the result stays a sequence of Pair values.
func wrapArrayElements(elem *TypeDescriptor, elements []any) any {
	if elem.Kind != KindDictEntry || !isBasicKind(elem.Key().Kind) {
		return elements
	}
	dict := make(Dict, len(elements))
	for _, e := range elements {
		pair := e.(Pair)
		dict[pair.Key] = pair.Value
	}
	return dict
}

func writeArray(d *TypeDescriptor, buf *utils.Buffer, v any, depth, maxDepth int) error {
	elem := d.Value()

	var elements []any
	if elem.Kind == KindDictEntry {
		pairs, err := normalizeDictEntries(v)
		if err != nil {
			return err
		}
		elements = make([]any, len(pairs))
		for i, p := range pairs {
			elements[i] = p
		}
	} else {
		seq, ok := v.([]any)
		if !ok {
			return typeMismatch(d, v)
		}
		elements = seq
	}

	if elem.IsFixed() {
		for _, e := range elements {
			buf.Align(elem.Alignment)
			if err := elem.WriteDepth(buf, e, depth+1, maxDepth); err != nil {
				return err
			}
		}
		return nil
	}

	start := buf.Len()
	offsets := make([]int, 0, len(elements))
	for _, e := range elements {
		buf.Align(elem.Alignment)
		if err := elem.WriteDepth(buf, e, depth+1, maxDepth); err != nil {
			return err
		}
		offsets = append(offsets, buf.Len()-start)
	}
	if len(offsets) == 0 {
		return nil
	}
	width, err := writeCellWidth(buf.Len()-start, len(offsets))
	if err != nil {
		return err
	}
	writeOffsetTable(buf, offsets, width)
	return nil
}

package core

import "github.com/scigolib/gvariant/internal/utils"

// Read drives this descriptor over the byte window [start, end) to
// yield a structured value, applying the package's default recursion
// bound. Decode is total: every malformed shape yields the type's
// default rather than an error. Callers that need a caller-supplied
// bound (gvariant.WithLimits) use ReadDepth.
func (d *TypeDescriptor) Read(data []byte, start, end int) any {
	return d.ReadDepth(data, start, end, 0, utils.DefaultMaxDepth)
}

// ReadDepth is Read with an explicit recursion depth and bound. The
// depth is threaded through every composite read, not just derived
// from the signature's own nesting, because a variant's inner
// signature is reparsed fresh from the byte stream at read time: two
// signature-parse-time-valid variants nested inside one another can
// still recurse without bound unless depth is carried across that
// boundary explicitly.
func (d *TypeDescriptor) ReadDepth(data []byte, start, end, depth, maxDepth int) any {
	if depth > maxDepth {
		return d.Default()
	}
	switch d.Kind {
	case KindByte, KindBool, KindInt16, KindUint16, KindInt32, KindUint32, KindInt64, KindUint64, KindDouble:
		return readFixed(d, data, start, end)
	case KindString, KindObjectPath, KindSignature:
		return readText(data, start, end)
	case KindVariant:
		return readVariant(d, data, start, end, depth, maxDepth)
	case KindMaybe:
		return readMaybe(d, data, start, end, depth, maxDepth)
	case KindTuple:
		return readTuple(d, data, start, end, depth, maxDepth)
	case KindDictEntry:
		return readDictEntry(d, data, start, end, depth, maxDepth)
	case KindArray:
		return readArray(d, data, start, end, depth, maxDepth)
	default:
		return d.Default()
	}
}

// Write drives this descriptor over a structured value, appending
// bytes (with alignment padding) to buf, applying the package's
// default recursion bound.
func (d *TypeDescriptor) Write(buf *utils.Buffer, v any) error {
	return d.WriteDepth(buf, v, 0, utils.DefaultMaxDepth)
}

// WriteDepth is Write with an explicit recursion depth and bound, for
// the same reason ReadDepth carries one: writeVariant reparses its
// signature argument fresh at each nesting level.
func (d *TypeDescriptor) WriteDepth(buf *utils.Buffer, v any, depth, maxDepth int) error {
	if err := utils.CheckDepth(depth, maxDepth); err != nil {
		return err
	}
	switch d.Kind {
	case KindByte, KindBool, KindInt16, KindUint16, KindInt32, KindUint32, KindInt64, KindUint64, KindDouble:
		return writeFixed(d, buf, v)
	case KindString, KindObjectPath, KindSignature:
		return writeText(d, buf, v)
	case KindVariant:
		return writeVariant(d, buf, v, depth, maxDepth)
	case KindMaybe:
		return writeMaybe(d, buf, v, depth, maxDepth)
	case KindTuple:
		return writeTuple(d, buf, v, depth, maxDepth)
	case KindDictEntry:
		return writeDictEntry(d, buf, v, depth, maxDepth)
	case KindArray:
		return writeArray(d, buf, v, depth, maxDepth)
	default:
		return typeMismatch(d, v)
	}
}

// Default returns the canonical value this descriptor yields when a
// frame is unparseable under its declared type.
func (d *TypeDescriptor) Default() any {
	switch d.Kind {
	case KindByte:
		return byte(0)
	case KindBool:
		return false
	case KindInt16:
		return int16(0)
	case KindUint16:
		return uint16(0)
	case KindInt32:
		return int32(0)
	case KindUint32:
		return uint32(0)
	case KindInt64:
		return int64(0)
	case KindUint64:
		return uint64(0)
	case KindDouble:
		return float64(0)
	case KindString, KindObjectPath, KindSignature:
		return ""
	case KindVariant:
		return Variant{Type: "()", Value: []any{}}
	case KindMaybe:
		return nil
	case KindTuple:
		values := make([]any, len(d.Children))
		for i, c := range d.Children {
			values[i] = c.Default()
		}
		return values
	case KindDictEntry:
		return Pair{Key: d.Key().Default(), Value: d.Value().Default()}
	case KindArray:
		if d.Value().Kind == KindDictEntry {
			return Dict{}
		}
		return []any{}
	default:
		return nil
	}
}

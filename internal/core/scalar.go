package core

import "github.com/scigolib/gvariant/internal/utils"

// readFixed reads a fixed-width numeric or boolean leaf. Per spec, a
// frame whose length disagrees with the declared fixed size yields
// the type's default rather than an error: decode is total.
func readFixed(d *TypeDescriptor, data []byte, start, end int) any {
	if end-start != d.FixedSize {
		return d.Default()
	}
	switch d.Kind {
	case KindByte:
		return utils.ReadUint8(data, start)
	case KindBool:
		return data[start] != 0
	case KindInt16:
		return utils.ReadInt16(data, start)
	case KindUint16:
		return utils.ReadUint16(data, start)
	case KindInt32:
		return utils.ReadInt32(data, start)
	case KindUint32:
		return utils.ReadUint32(data, start)
	case KindInt64:
		return utils.ReadInt64(data, start)
	case KindUint64:
		return utils.ReadUint64(data, start)
	case KindDouble:
		return utils.ReadDouble(data, start)
	default:
		return d.Default()
	}
}

func writeFixed(d *TypeDescriptor, buf *utils.Buffer, v any) error {
	switch d.Kind {
	case KindByte:
		b, ok := v.(byte)
		if !ok {
			return typeMismatch(d, v)
		}
		buf.AppendUint8(b)
	case KindBool:
		b, ok := v.(bool)
		if !ok {
			return typeMismatch(d, v)
		}
		if b {
			buf.AppendUint8(1)
		} else {
			buf.AppendUint8(0)
		}
	case KindInt16:
		n, ok := v.(int16)
		if !ok {
			return typeMismatch(d, v)
		}
		buf.AppendInt16(n)
	case KindUint16:
		n, ok := v.(uint16)
		if !ok {
			return typeMismatch(d, v)
		}
		buf.AppendUint16(n)
	case KindInt32:
		n, ok := v.(int32)
		if !ok {
			return typeMismatch(d, v)
		}
		buf.AppendInt32(n)
	case KindUint32:
		n, ok := v.(uint32)
		if !ok {
			return typeMismatch(d, v)
		}
		buf.AppendUint32(n)
	case KindInt64:
		n, ok := v.(int64)
		if !ok {
			return typeMismatch(d, v)
		}
		buf.AppendInt64(n)
	case KindUint64:
		n, ok := v.(uint64)
		if !ok {
			return typeMismatch(d, v)
		}
		buf.AppendUint64(n)
	case KindDouble:
		f, ok := v.(float64)
		if !ok {
			return typeMismatch(d, v)
		}
		buf.AppendDouble(f)
	default:
		return typeMismatch(d, v)
	}
	return nil
}

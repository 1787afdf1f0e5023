package core

import (
	"strings"

	"github.com/scigolib/gvariant/internal/utils"
)

// readText decodes s/o/g: UTF-8 from [start, end-1) iff the last byte
// is a NUL terminator; a stray interior NUL truncates. Any other
// shape (missing terminator, empty frame) yields "".
func readText(data []byte, start, end int) any {
	if end <= start || data[end-1] != 0x00 {
		return ""
	}
	body := data[start : end-1]
	if idx := strings.IndexByte(string(body), 0x00); idx >= 0 {
		body = body[:idx]
	}
	return string(body)
}

func writeText(d *TypeDescriptor, buf *utils.Buffer, v any) error {
	s, ok := v.(string)
	if !ok {
		return typeMismatch(d, v)
	}
	buf.Append(s)
	buf.AppendUint8(0)
	return nil
}

package core

import (
	"fmt"

	"github.com/scigolib/gvariant/internal/utils"
)

// readVariant scans backward from end-1 for the first NUL byte: the
// signature is the ASCII text after it, the value bytes are
// everything before it. If no NUL is found the frame does not encode
// a valid variant and the type's default is returned. The inner
// signature is reparsed fresh from the bytes at every level, so depth
// is carried across the variant boundary explicitly rather than
// relying on maxDepth having already been applied once by the outer
// CompileSignature call.
func readVariant(d *TypeDescriptor, data []byte, start, end, depth, maxDepth int) any {
	sep := -1
	for i := end - 1; i >= start; i-- {
		if data[i] == 0x00 {
			sep = i
			break
		}
	}
	if sep < 0 {
		return d.Default()
	}

	sig := string(data[sep+1 : end])
	inner, err := ParseTypeWithLimits(sig, maxDepth)
	if err != nil {
		return d.Default()
	}
	return Variant{Type: sig, Value: inner.ReadDepth(data, start, sep, depth+1, maxDepth)}
}

func writeVariant(d *TypeDescriptor, buf *utils.Buffer, v any, depth, maxDepth int) error {
	variant, ok := v.(Variant)
	if !ok {
		return typeMismatch(d, v)
	}
	if !isASCII(variant.Type) {
		return fmt.Errorf("%w: variant signature %q is not ASCII", ErrInvalidSignature, variant.Type)
	}
	inner, err := ParseTypeWithLimits(variant.Type, maxDepth)
	if err != nil {
		return err
	}
	if err := inner.WriteDepth(buf, variant.Value, depth+1, maxDepth); err != nil {
		return err
	}
	buf.AppendUint8(0)
	buf.Append(variant.Type)
	return nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7F {
			return false
		}
	}
	return true
}

// Package core implements the GVariant type interpreter: signature
// parsing, the per-type alignment and framing rules, and the
// offset-table codec used by variable-width containers. This is the
// hard part of the codec; everything in package gvariant is a thin
// façade over it.
package core

import (
	"errors"
	"fmt"

	"github.com/scigolib/gvariant/internal/utils"
)

// ErrInvalidSignature is returned when a signature string is malformed
// or does not consume to its full length.
var ErrInvalidSignature = errors.New("invalid signature")

// NextType parses the next complete type starting at index and returns
// its descriptor together with the number of signature bytes it
// consumed. It is purely structural; no data is touched. The nesting
// depth is bounded by utils.DefaultMaxDepth; callers that need a
// caller-supplied bound (for example to honor a gvariant.Limits
// reconstructed at read time from untrusted bytes) use NextTypeWithLimits.
func NextType(sig string, index int) (*TypeDescriptor, int, error) {
	return NextTypeWithLimits(sig, index, utils.DefaultMaxDepth)
}

// NextTypeWithLimits is NextType with a caller-supplied recursion bound.
func NextTypeWithLimits(sig string, index, maxDepth int) (*TypeDescriptor, int, error) {
	return nextTypeDepth(sig, index, 0, maxDepth)
}

func nextTypeDepth(sig string, index int, depth int, maxDepth int) (*TypeDescriptor, int, error) {
	if err := utils.CheckDepth(depth, maxDepth); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if index >= len(sig) {
		return nil, 0, fmt.Errorf("%w: truncated at index %d", ErrInvalidSignature, index)
	}

	code := sig[index]
	if code > 0x7F {
		return nil, 0, fmt.Errorf("%w: non-ASCII byte at index %d", ErrInvalidSignature, index)
	}

	if leaf, ok := leafDescriptors[code]; ok {
		return leaf, 1, nil
	}

	switch code {
	case 'm':
		child, n, err := nextTypeDepth(sig, index+1, depth+1, maxDepth)
		if err != nil {
			return nil, 0, err
		}
		return newMaybeDescriptor(sig[index:index+1+n], child), 1 + n, nil

	case 'a':
		child, n, err := nextTypeDepth(sig, index+1, depth+1, maxDepth)
		if err != nil {
			return nil, 0, err
		}
		return newArrayDescriptor(sig[index:index+1+n], child), 1 + n, nil

	case '(':
		return parseTuple(sig, index, depth, maxDepth)

	case '{':
		return parseDictEntry(sig, index, depth, maxDepth)

	default:
		return nil, 0, fmt.Errorf("%w: unknown type code %q at index %d", ErrInvalidSignature, code, index)
	}
}

func parseTuple(sig string, index int, depth int, maxDepth int) (*TypeDescriptor, int, error) {
	pos := index + 1
	var children []*TypeDescriptor
	for {
		if pos >= len(sig) {
			return nil, 0, fmt.Errorf("%w: unterminated tuple starting at %d", ErrInvalidSignature, index)
		}
		if sig[pos] == ')' {
			pos++
			break
		}
		child, n, err := nextTypeDepth(sig, pos, depth+1, maxDepth)
		if err != nil {
			return nil, 0, err
		}
		children = append(children, child)
		pos += n
	}
	return newTupleDescriptor(sig[index:pos], children), pos - index, nil
}

func parseDictEntry(sig string, index int, depth int, maxDepth int) (*TypeDescriptor, int, error) {
	key, kn, err := nextTypeDepth(sig, index+1, depth+1, maxDepth)
	if err != nil {
		return nil, 0, err
	}
	val, vn, err := nextTypeDepth(sig, index+1+kn, depth+1, maxDepth)
	if err != nil {
		return nil, 0, err
	}
	end := index + 1 + kn + vn
	if end >= len(sig) || sig[end] != '}' {
		return nil, 0, fmt.Errorf("%w: dict entry starting at %d not closed with '}'", ErrInvalidSignature, index)
	}
	end++
	return newDictEntryDescriptor(sig[index:end], key, val), end - index, nil
}

// ParseType parses a signature that must describe exactly one
// complete type with no trailing characters, using the package's
// default recursion bound.
func ParseType(sig string) (*TypeDescriptor, error) {
	return ParseTypeWithLimits(sig, utils.DefaultMaxDepth)
}

// ParseTypeWithLimits is ParseType with a caller-supplied recursion
// bound. It is the entry point readVariant/writeVariant use to
// reparse a nested variant's signature under the caller's configured
// gvariant.Limits, since that signature comes from the byte stream
// itself rather than from the top-level CompileSignature call.
func ParseTypeWithLimits(sig string, maxDepth int) (*TypeDescriptor, error) {
	desc, n, err := NextTypeWithLimits(sig, 0, maxDepth)
	if err != nil {
		return nil, err
	}
	if n != len(sig) {
		return nil, fmt.Errorf("%w: %q has trailing characters after a complete type", ErrInvalidSignature, sig)
	}
	return desc, nil
}

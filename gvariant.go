// Package gvariant implements a codec for the GVariant binary
// serialization format used throughout the GLib/D-Bus ecosystem: a
// self-describing, type-tagged wire format with precise alignment and
// compact offset-table framing for variable-width structures.
//
// The package exposes two operations: Parse turns a type signature
// and a byte buffer into a structured Go value; Serialize turns a
// signature and a Go value back into the canonical byte sequence for
// that type.
package gvariant

import (
	"sync"

	"github.com/scigolib/gvariant/internal/core"
	"github.com/scigolib/gvariant/internal/utils"
)

// Variant is the parsed form of a GVariant "v" value.
type Variant = core.Variant

// Pair is one key/value entry of a dict-entry array.
type Pair = core.Pair

// Dict is the read-side representation of an a{KV} array, and one of
// the accepted write-side input forms.
type Dict = core.Dict

// ErrInvalidSignature is returned when a signature string is malformed
// or does not consume to its full length.
var ErrInvalidSignature = core.ErrInvalidSignature

// ErrOffsetOutOfRange is returned when a container's byte length
// exceeds what the largest supported offset cell can address.
var ErrOffsetOutOfRange = core.ErrOffsetOutOfRange

// Limits bounds the resource consumption of a single Parse or
// Serialize call: MaxDepth caps recursive descent (signature nesting,
// and the nested-variant reconstruction that happens at read/write
// time since a variant's inner signature is reparsed fresh from the
// byte stream at every level), and MaxFrameSize caps the number of
// bytes a single call will read or produce. The zero value is not
// usable directly as "unlimited" for MaxDepth — use WithLimits with a
// value built from, or overriding fields of, the package defaults.
type Limits = utils.Limits

// options configure a Parse or Serialize call.
type options struct {
	strict bool
	limits Limits
}

// Option configures Parse/Serialize behavior.
type Option func(*options)

// WithStrict enables the structural validation spec.md leaves as an
// open question: dict-entry keys must be a basic type, and
// dict-entries may only appear as array elements.
func WithStrict() Option {
	return func(o *options) { o.strict = true }
}

// WithLimits overrides the recursion-depth and frame-size bounds Parse
// and Serialize apply in place of the package defaults
// (utils.DefaultLimits), letting a caller embedding the codec in a
// server bound worst-case recursion and memory use against untrusted
// input.
func WithLimits(l Limits) Option {
	return func(o *options) { o.limits = l }
}

func resolveOptions(opts []Option) options {
	cfg := options{limits: utils.DefaultLimits()}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

var signatureCache sync.Map // string -> *core.TypeDescriptor

// CompileSignature parses a signature into its TypeDescriptor, caching
// the result by signature string. TypeDescriptors are immutable once
// built and safe to share across goroutines, so the cache needs no
// locking beyond sync.Map's own. The top-level signature argument is
// always parsed under the package's default recursion bound, since it
// is a short, caller-supplied schema string rather than attacker-scaled
// data; a caller's WithLimits(MaxDepth: ...) instead governs the
// recursion that happens at read/write time over nested variants,
// whose inner signatures come from the byte stream itself.
func CompileSignature(signature string) (*core.TypeDescriptor, error) {
	if cached, ok := signatureCache.Load(signature); ok {
		return cached.(*core.TypeDescriptor), nil
	}
	desc, err := core.ParseType(signature)
	if err != nil {
		return nil, utils.WrapError("signature", err)
	}
	actual, _ := signatureCache.LoadOrStore(signature, desc)
	return actual.(*core.TypeDescriptor), nil
}

// Parse parses data as a value of the given signature.
func Parse(signature string, data []byte, opts ...Option) (any, error) {
	cfg := resolveOptions(opts)

	if err := utils.CheckFrameSize(len(data), cfg.limits.MaxFrameSize); err != nil {
		return nil, utils.WrapError("parse", err)
	}

	desc, err := CompileSignature(signature)
	if err != nil {
		return nil, err
	}
	if cfg.strict {
		if err := core.ValidateStrict(desc); err != nil {
			return nil, utils.WrapError("signature", err)
		}
	}
	return desc.ReadDepth(data, 0, len(data), 0, cfg.limits.MaxDepth), nil
}

// Serialize encodes value as the canonical byte sequence for the
// given signature.
func Serialize(signature string, value any, opts ...Option) ([]byte, error) {
	cfg := resolveOptions(opts)

	desc, err := CompileSignature(signature)
	if err != nil {
		return nil, err
	}
	if cfg.strict {
		if err := core.ValidateStrict(desc); err != nil {
			return nil, utils.WrapError("signature", err)
		}
	}

	buf := utils.NewBuffer()
	defer buf.Release()
	if err := desc.WriteDepth(buf, value, 0, cfg.limits.MaxDepth); err != nil {
		return nil, utils.WrapError("serialize", err)
	}
	if err := utils.CheckFrameSize(buf.Len(), cfg.limits.MaxFrameSize); err != nil {
		return nil, utils.WrapError("serialize", err)
	}
	return buf.ToBuffer(), nil
}

package core

import "fmt"

// ValidateStrict enforces the two structural rules spec.md leaves as
// an open question (§9): dict-entry keys must be a basic (non-
// container) type, and dict-entries may only appear as the direct
// element of an array. The Read/Write dispatch in dispatch.go
// never enforces this — it is purely structural, like the reference
// behavior spec.md describes — so this is opt-in, via
// gvariant.WithStrict.
func ValidateStrict(d *TypeDescriptor) error {
	return validateStrict(d, false)
}

func validateStrict(d *TypeDescriptor, insideArray bool) error {
	if d.Kind == KindDictEntry && !insideArray {
		return fmt.Errorf("%w: dict-entry %q must appear only as an array element", ErrInvalidSignature, d.Signature)
	}
	if d.Kind == KindDictEntry {
		key := d.Key()
		if !isBasicKind(key.Kind) {
			return fmt.Errorf("%w: dict-entry key %q must be a basic type", ErrInvalidSignature, key.Signature)
		}
	}

	switch d.Kind {
	case KindArray:
		return validateStrict(d.Value(), true)
	case KindMaybe:
		return validateStrict(d.Value(), false)
	case KindTuple:
		for _, c := range d.Children {
			if err := validateStrict(c, false); err != nil {
				return err
			}
		}
		return nil
	case KindDictEntry:
		if err := validateStrict(d.Key(), false); err != nil {
			return err
		}
		return validateStrict(d.Value(), false)
	default:
		return nil
	}
}

func isBasicKind(k Kind) bool {
	switch k {
	case KindByte, KindBool, KindInt16, KindUint16, KindInt32, KindUint32,
		KindInt64, KindUint64, KindDouble, KindString, KindObjectPath, KindSignature:
		return true
	default:
		return false
	}
}

package core

import (
	"fmt"
	"sort"

	"golang.org/x/exp/maps"
)

// Variant is the parsed form of a GVariant "v" value: a value paired
// with the signature it was encoded under.
type Variant struct {
	Type  string
	Value any
}

// Pair is one key/value entry of a dict-entry array. It is the read
// result for a dict-entry outside an array, the element of the
// sequence a non-empty a{KV} reads as when its key is not a basic type,
// and one accepted write-side input form.
type Pair struct {
	Key   any
	Value any
}

// Dict is the read-side representation of an a{KV} array whose key is
// a basic type (text, integer, boolean or double), and of any empty
// a{KV} array: an unordered Go map. It is also accepted as a
// write-side input.
type Dict map[any]any

// normalizeDictEntries turns any of the accepted write-side forms for
// an array of dict-entries (Dict, map[any]any, []Pair) into a
// deterministically ordered slice of pairs, so that two Serialize
// calls over the same logical mapping produce byte-identical output.
// Keys are sorted by their formatted representation, which keeps the
// ordering stable across the comparable key kinds GVariant dict-entry
// keys are drawn from (text, integers).
func normalizeDictEntries(v any) ([]Pair, error) {
	switch m := v.(type) {
	case []Pair:
		return m, nil
	case Dict:
		return sortedPairs(m), nil
	case map[any]any:
		return sortedPairs(m), nil
	default:
		return nil, fmt.Errorf("value of type %T cannot be written as a dict-entry array", v)
	}
}

func sortedPairs(m map[any]any) []Pair {
	keys := maps.Keys(m)
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
	pairs := make([]Pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, Pair{Key: k, Value: m[k]})
	}
	return pairs
}

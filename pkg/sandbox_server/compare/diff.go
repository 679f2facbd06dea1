package compare

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/goccy/go-json"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
)

type DeltaKind string

const (
	ValuesChanged         = DeltaKind("values_changed")
	TypeChanges           = DeltaKind("type_changes")
	DictionaryItemAdded   = DeltaKind("dictionary_item_added")
	DictionaryItemRemoved = DeltaKind("dictionary_item_removed")
	IterableItemAdded     = DeltaKind("iterable_item_added")
	IterableItemRemoved   = DeltaKind("iterable_item_removed")
)

// Delta is one difference between two canonical values. Path is written as
// root['key'][index].
type Delta struct {
	Kind     DeltaKind
	Path     string
	Expected any
	Actual   any
}

type Differences []Delta

// MarshalJSON groups the deltas by kind and path.
func (d Differences) MarshalJSON() ([]byte, error) {
	grouped := make(map[DeltaKind]map[string]any)
	for _, delta := range d {
		byPath, ok := grouped[delta.Kind]
		if !ok {
			byPath = make(map[string]any)
			grouped[delta.Kind] = byPath
		}
		switch delta.Kind {
		case ValuesChanged:
			byPath[delta.Path] = map[string]any{"old_value": delta.Expected, "new_value": delta.Actual}
		case TypeChanges:
			byPath[delta.Path] = map[string]any{
				"old_type":  typeName(delta.Expected),
				"new_type":  typeName(delta.Actual),
				"old_value": delta.Expected,
				"new_value": delta.Actual,
			}
		case DictionaryItemAdded, IterableItemAdded:
			byPath[delta.Path] = delta.Actual
		default:
			byPath[delta.Path] = delta.Expected
		}
	}
	return json.Marshal(grouped)
}

// Diff compares two canonical values. Sequences are compared as multisets.
func Diff(expected, actual any) Differences {
	var d Differences
	diffValue(&d, "root", expected, actual)
	return d
}

// Values canonicalizes both values and compares them.
func Values(opts Options, expected, actual any) Differences {
	return Diff(Canonicalize(opts, expected), Canonicalize(opts, actual))
}

func diffValue(d *Differences, path string, expected, actual any) {
	if typeName(expected) != typeName(actual) {
		*d = append(*d, Delta{Kind: TypeChanges, Path: path, Expected: expected, Actual: actual})
		return
	}

	switch e := expected.(type) {
	case nil:
	case model.Decimal:
		if !e.Equal(actual.(model.Decimal)) {
			*d = append(*d, Delta{Kind: ValuesChanged, Path: path, Expected: expected, Actual: actual})
		}
	case map[string]any:
		diffMap(d, path, e, actual.(map[string]any))
	case []any:
		diffIterable(d, path, e, actual.([]any))
	default:
		if !reflect.DeepEqual(expected, actual) {
			*d = append(*d, Delta{Kind: ValuesChanged, Path: path, Expected: expected, Actual: actual})
		}
	}
}

func diffMap(d *Differences, path string, expected, actual map[string]any) {
	keys := make([]string, 0, len(expected)+len(actual))
	for k := range expected {
		keys = append(keys, k)
	}
	for k := range actual {
		if _, ok := expected[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		childPath := path + "['" + k + "']"
		e, inExpected := expected[k]
		a, inActual := actual[k]
		switch {
		case !inExpected:
			*d = append(*d, Delta{Kind: DictionaryItemAdded, Path: childPath, Actual: a})
		case !inActual:
			*d = append(*d, Delta{Kind: DictionaryItemRemoved, Path: childPath, Expected: e})
		default:
			diffValue(d, childPath, e, a)
		}
	}
}

func diffIterable(d *Differences, path string, expected, actual []any) {
	unmatched := make(map[string][]int, len(actual))
	for i, a := range actual {
		fp := fingerprint(a)
		unmatched[fp] = append(unmatched[fp], i)
	}

	for i, e := range expected {
		fp := fingerprint(e)
		if idx := unmatched[fp]; len(idx) > 0 {
			unmatched[fp] = idx[1:]
			continue
		}
		*d = append(*d, Delta{Kind: IterableItemRemoved, Path: path + "[" + strconv.Itoa(i) + "]", Expected: e})
	}

	var added []int
	for _, idx := range unmatched {
		added = append(added, idx...)
	}
	sort.Ints(added)
	for _, i := range added {
		*d = append(*d, Delta{Kind: IterableItemAdded, Path: path + "[" + strconv.Itoa(i) + "]", Actual: actual[i]})
	}
}

// fingerprint identifies a canonical value regardless of the order of its map keys
// or of the elements of nested sequences.
func fingerprint(v any) string {
	b, err := json.Marshal(normalizeOrder(v))
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}
	return string(b)
}

func normalizeOrder(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = normalizeOrder(item)
		}
		return out
	case []any:
		fps := make([]string, 0, len(t))
		for _, item := range t {
			fps = append(fps, fingerprint(item))
		}
		sort.Strings(fps)
		out := make([]any, 0, len(fps))
		for _, fp := range fps {
			out = append(out, json.RawMessage(fp))
		}
		return out
	}
	return v
}

func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case string:
		return "string"
	case model.Decimal:
		return "number"
	case []any:
		return "list"
	case map[string]any:
		return "dict"
	}
	return fmt.Sprintf("%T", v)
}

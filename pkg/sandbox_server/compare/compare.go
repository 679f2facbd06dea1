package compare

import (
	"sort"

	"github.com/samber/lo"
)

// Comparable is a field record produced by the mapping rules.
type Comparable interface {
	Fields() map[string]any
}

type FieldError struct {
	Field       string      `json:"field"`
	Error       string      `json:"error,omitempty"`
	Differences Differences `json:"differences,omitempty"`
	Expected    any         `json:"expected,omitempty"`
	Actual      any         `json:"actual,omitempty"`
}

type Result struct {
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors"`
}

const (
	MissingInExpected = "missing in expected"
	MissingInActual   = "missing in actual"
)

// Records compares two field records of the same kind field by field.
// Errors are sorted by field name.
func Records[T Comparable](opts Options, expected, actual T) Result {
	expectedFields := expected.Fields()
	actualFields := actual.Fields()

	keys := lo.Uniq(append(lo.Keys(expectedFields), lo.Keys(actualFields)...))
	sort.Strings(keys)

	errs := make([]FieldError, 0)
	for _, key := range keys {
		e, inExpected := expectedFields[key]
		a, inActual := actualFields[key]
		if !inExpected {
			errs = append(errs, FieldError{Field: key, Error: MissingInExpected})
			continue
		}
		if !inActual {
			errs = append(errs, FieldError{Field: key, Error: MissingInActual})
			continue
		}

		canonicalExpected := Canonicalize(opts, e)
		canonicalActual := Canonicalize(opts, a)
		if d := Diff(canonicalExpected, canonicalActual); len(d) > 0 {
			errs = append(errs, FieldError{
				Field:       key,
				Differences: d,
				Expected:    canonicalExpected,
				Actual:      canonicalActual,
			})
		}
	}

	return Result{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

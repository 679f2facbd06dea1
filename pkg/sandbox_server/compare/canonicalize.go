package compare

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
)

type timeGetter interface {
	GetTime() time.Time
}

// Canonicalize turns v into a tree made only of nil, bool, string, model.Decimal,
// []any and map[string]any.
//
// Numbers are rounded to opts.FloatPrecision, timestamps are moved to UTC and
// truncated to opts.TimePrecision, sets become sequences, pointers are dereferenced
// and structs become maps keyed by their JSON field names.
func Canonicalize(opts Options, v any) any {
	if v == nil {
		return nil
	}
	return canonicalizeValue(opts, reflect.ValueOf(v))
}

func canonicalizeValue(opts Options, rv reflect.Value) any {
	if !rv.IsValid() {
		return nil
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return canonicalizeValue(opts, rv.Elem())
	}

	if rv.CanInterface() {
		switch t := rv.Interface().(type) {
		case time.Time:
			return canonicalTime(opts, t)
		case model.Decimal:
			return t.Round(opts.FloatPrecision)
		case setLike:
			members := t.members()
			out := make([]any, 0, len(members))
			for _, m := range members {
				out = append(out, Canonicalize(opts, m))
			}
			return out
		case timeGetter:
			return canonicalTime(opts, t.GetTime())
		}
	}

	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return model.NewDecimalFromInt(rv.Int()).Round(opts.FloatPrecision)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return model.NewDecimalFromInt(int64(rv.Uint())).Round(opts.FloatPrecision)
	case reflect.Float32, reflect.Float64:
		return model.NewDecimalFromFloat(rv.Float()).Round(opts.FloatPrecision)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return []any{}
		}
		out := make([]any, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out = append(out, canonicalizeValue(opts, rv.Index(i)))
		}
		return out
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[fmt.Sprint(iter.Key().Interface())] = canonicalizeValue(opts, iter.Value())
		}
		return out
	case reflect.Struct:
		out := make(map[string]any)
		canonicalizeStruct(opts, rv, out)
		if len(out) == 0 {
			if s, ok := rv.Interface().(fmt.Stringer); ok {
				return s.String()
			}
		}
		return out
	}

	return fmt.Sprint(rv.Interface())
}

func canonicalizeStruct(opts Options, rv reflect.Value, out map[string]any) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, tagOpts, _ := strings.Cut(tag, ",")

		if field.Anonymous && name == "" && field.Type.Kind() == reflect.Struct {
			canonicalizeStruct(opts, rv.Field(i), out)
			continue
		}
		if !field.IsExported() {
			continue
		}
		if name == "" {
			name = field.Name
		}
		fv := rv.Field(i)
		if strings.Contains(tagOpts, "omitempty") && isEmptyValue(fv) {
			continue
		}
		out[name] = canonicalizeValue(opts, fv)
	}
}

func canonicalTime(opts Options, t time.Time) string {
	t = t.UTC()
	if opts.TimePrecision > 0 {
		t = t.Truncate(opts.TimePrecision)
	}
	return t.Format(time.RFC3339Nano)
}

func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}

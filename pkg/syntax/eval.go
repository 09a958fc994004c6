package syntax

import (
	"math"
	"reflect"
	"sort"
	"strconv"

	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/rasviitanen/svgmacro/pkg/markup"
)

// eval returns the value of e in s.
func eval(e *Expr, s *Scope, file string) (any, error) {
	switch e.Kind {
	case StringExpr:
		return e.Str, nil
	case NumberExpr:
		if n, err := strconv.Atoi(e.Text); err == nil {
			return n, nil
		}
		if f, err := strconv.ParseFloat(e.Text, 64); err == nil {
			return f, nil
		}
		// numbers with a unit such as 10px stay text
		return e.Text, nil
	default:
		v, ok := s.Lookup(e.Path)
		if !ok {
			return nil, positionError(errors.ErrUndefined, file, e.Pos, "undefined: %s", e.Text).
				WithDetail("name", e.Text)
		}
		return v, nil
	}
}

// Show returns the text a value renders as, following markup.Show.
func Show(v any) string {
	return markup.Show(v).Text
}

// truthy reports whether v selects the then branch of an if.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface:
		return !rv.IsNil()
	}
	return true
}

// maxInt bounds the integers accepted as loop counts and range bounds.
const maxInt = math.MaxInt32

// toInt converts integers, and floats with no fractional part, to int.
// Data decoded from JSON has only float64 numbers. Values outside
// [-maxInt, maxInt] are rejected.
func toInt(v any) (int, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < -maxInt || n > maxInt {
			return 0, false
		}
		return int(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rv.Uint() > maxInt {
			return 0, false
		}
		return int(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f != math.Trunc(f) || math.Abs(f) > maxInt {
			return 0, false
		}
		return int(f), true
	}
	return 0, false
}

// iterate calls fn with each value a for loop visits: the elements of a
// slice or array, the sorted keys of a map, or 0..n-1 for an integer n.
// It stops at the first error and reports false when v cannot be ranged
// over.
func iterate(v any, fn func(any) error) (bool, error) {
	if n, ok := toInt(v); ok {
		return true, count(0, n, fn)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if err := fn(rv.Index(i).Interface()); err != nil {
				return true, err
			}
		}
		return true, nil
	case reflect.Map:
		keys := rv.MapKeys()
		sorted := make([]any, len(keys))
		for i, k := range keys {
			sorted[i] = k.Interface()
		}
		sort.Slice(sorted, func(i, j int) bool {
			return Show(sorted[i]) < Show(sorted[j])
		})
		for _, k := range sorted {
			if err := fn(k); err != nil {
				return true, err
			}
		}
		return true, nil
	}
	return false, nil
}

// count calls fn with lo, lo+1, ... hi-1.
func count(lo, hi int, fn func(any) error) error {
	for i := lo; i < hi; i++ {
		if err := fn(i); err != nil {
			return err
		}
	}
	return nil
}

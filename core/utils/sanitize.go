package utils

import (
	"math"
	"reflect"
)

// SanitizeJSON replaces non-finite floats with nil so the value can always be
// encoded as JSON. Maps with string keys and slices are walked recursively
// (named types such as fiber.Map included); other values are returned as-is.
//
// Structs and pointers are not walked: a float field inside a struct, or a
// *float64, reaches the encoder unchanged. Payloads that may carry NaN or Inf
// must expose them through a map or a slice.
func SanitizeJSON(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return nil
		}
		return val
	case float32:
		if math.IsNaN(float64(val)) || math.IsInf(float64(val), 0) {
			return nil
		}
		return val
	case []byte:
		return val
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = SanitizeJSON(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return v
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = SanitizeJSON(rv.Index(i).Interface())
		}
		return out
	default:
		return v
	}
}

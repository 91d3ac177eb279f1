/*
Package sizeof estimates the in-memory cost of cache values.

These are approximations used for memory accounting, not exact byte
counts. Strings and byte slices are measured precisely; numeric scalars
get a fixed cost; containers are summed recursively; everything else
falls back to the length of its JSON form. Estimate never fails: a
value that cannot be measured at all gets DefaultEstimate.
*/
package sizeof

import (
	"encoding/json"
	"reflect"
	"time"
)

const (
	// ScalarSize is the assumed cost of a numeric or boolean scalar.
	ScalarSize = 8

	// DefaultEstimate is assigned when a value cannot be measured,
	// for example an unserializable type or a cyclic structure.
	DefaultEstimate = 64

	// maxDepth bounds the recursive walk so cyclic structures built
	// out of interface values cannot hang the estimator.
	maxDepth = 32
)

// Estimate returns the approximate size in bytes of v.
func Estimate(v any) int64 {
	return estimate(v, 0)
}

func estimate(v any, depth int) int64 {
	if v == nil {
		return 0
	}
	if depth >= maxDepth {
		return DefaultEstimate
	}

	// Fast paths for the types callers actually cache.
	switch x := v.(type) {
	case string:
		return int64(len(x)) // len of a Go string is its UTF-8 byte length
	case []byte:
		return int64(len(x))
	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return ScalarSize
	case complex64, complex128:
		return 2 * ScalarSize
	case time.Time:
		return 3 * ScalarSize
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return int64(rv.Len()) // named string types
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return ScalarSize
	case reflect.Complex64, reflect.Complex128:
		return 2 * ScalarSize
	case reflect.Slice, reflect.Array:
		var total int64
		for i := 0; i < rv.Len(); i++ {
			total += estimate(rv.Index(i).Interface(), depth+1)
		}
		return total
	case reflect.Map:
		var total int64
		iter := rv.MapRange()
		for iter.Next() {
			total += estimate(iter.Key().Interface(), depth+1)
			total += estimate(iter.Value().Interface(), depth+1)
		}
		return total
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return 0
		}
		return estimate(rv.Elem().Interface(), depth+1)
	}

	return serializedSize(v)
}

// serializedSize measures a value by the length of its JSON encoding.
// This is the last resort for structs and other opaque types; the
// result is an approximation of payload size, nothing more.
func serializedSize(v any) int64 {
	b, err := json.Marshal(v)
	if err != nil {
		return DefaultEstimate
	}
	return int64(len(b))
}

package schema

import (
	"encoding/json"
	"reflect"
	"time"
)

// TypeName maps any representable value to exactly one canonical runtime
// type name: string, number, boolean, object, array, or null. Every
// error-reporting path funnels through it so naming stays consistent.
//
// Absent object fields are reported as "undefined" by the validator itself;
// Go has no undefined value, so TypeName never returns it.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64, float32,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		json.Number:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	case time.Time:
		return "object"
	}
	// Values outside the decoded-JSON domain (typed slices, structs, maps
	// with concrete value types) bucket by reflection kind.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Float32, reflect.Float64,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "number"
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return "null"
		}
		return TypeName(rv.Elem().Interface())
	}
	return "object"
}

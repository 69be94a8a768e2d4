package schema

import (
	"fmt"
	"strconv"
)

// Result reports the outcome of a Validate call: either valid, or exactly
// one FieldError describing the first failure in traversal order.
type Result struct {
	Valid bool
	Err   *FieldError
}

// FieldError pinpoints the first field that failed validation.
//
// Path locates the field: nested object fields join with ".", array elements
// append "[index]", and the literal "root" names a top-level input that is
// not an object at all.
type FieldError struct {
	Path     string
	Expected string
	Actual   string
	Message  string
}

func (e *FieldError) Error() string { return e.Message }

func newFieldError(path, expected, actual string) *FieldError {
	return &FieldError{
		Path:     path,
		Expected: expected,
		Actual:   actual,
		Message:  fmt.Sprintf("field %q: expected %s, got %s", path, expected, actual),
	}
}

// Validate checks v against s and returns the first failure, if any.
// It is a pure function: repeated calls return identical results.
//
// The top-level value must itself be an object; anything else fails
// immediately with path "root". Fields are checked in the schema's
// declaration order and validation stops at the first failing field, so
// with fields [k1, k2] both failing, the reported error is always k1's.
func Validate(v any, s Object) Result {
	m, ok := asObject(v)
	if !ok {
		return Result{Err: newFieldError("root", string(TagObject), TypeName(v))}
	}
	if err := validateFields(m, s, ""); err != nil {
		return Result{Err: err}
	}
	return Result{Valid: true}
}

func validateFields(m map[string]any, s Object, prefix string) *FieldError {
	for _, f := range s {
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}
		val, present := m[f.Name]
		if err := validateValue(val, present, f.Value, path); err != nil {
			return err
		}
	}
	return nil
}

func validateValue(v any, present bool, sv Value, path string) *FieldError {
	switch sv := sv.(type) {
	case Prim:
		if sv.Optional && !present {
			return nil
		}
		actual := actualName(v, present)
		if actual != string(sv.Tag) {
			return newFieldError(path, string(sv.Tag), actual)
		}
		return nil
	case ArrayOf:
		arr, ok := v.([]any)
		if !present || !ok {
			return newFieldError(path, string(TagArray), actualName(v, present))
		}
		for i, elem := range arr {
			if err := validateValue(elem, true, sv.Elem, path+"["+strconv.Itoa(i)+"]"); err != nil {
				return err
			}
		}
		return nil
	case Object:
		m, ok := asObject(v)
		if !present || !ok {
			return newFieldError(path, string(TagObject), actualName(v, present))
		}
		return validateFields(m, sv, path)
	}
	return newFieldError(path, "schema value", TypeName(sv))
}

func actualName(v any, present bool) string {
	if !present {
		return "undefined"
	}
	return TypeName(v)
}

// asObject reports whether v is an object in the schema sense: a non-null,
// non-array structured value.
func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return nil, false
	}
	return m, true
}

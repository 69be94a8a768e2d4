package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Compile converts the literal schema form into the typed union:
//
//	"string" | "number" | "boolean" | "object" | "array"  -> Prim
//	"?string" etc.                                        -> optional Prim
//	[]any{inner}                                          -> ArrayOf
//	map[string]any{...}                                   -> nested Object
//
// Go map literals carry no insertion order, so Compile sorts field names for
// deterministic traversal. Use an Object literal or CompileYAML when the
// declaration order itself is part of the contract.
func Compile(lit map[string]any) (Object, error) {
	return compileObject(lit, "")
}

// MustCompile is like Compile but panics on an invalid literal. It is
// intended for package-level schema variables.
func MustCompile(lit map[string]any) Object {
	s, err := Compile(lit)
	if err != nil {
		panic(err)
	}
	return s
}

func compileObject(lit map[string]any, path string) (Object, error) {
	names := make([]string, 0, len(lit))
	for name := range lit {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make(Object, 0, len(lit))
	for _, name := range names {
		fieldPath := name
		if path != "" {
			fieldPath = path + "." + name
		}
		v, err := compileValue(lit[name], fieldPath)
		if err != nil {
			return nil, err
		}
		out = append(out, Field{Name: name, Value: v})
	}
	return out, nil
}

func compileValue(lit any, path string) (Value, error) {
	switch lit := lit.(type) {
	case string:
		return compileTag(lit, path)
	case []any:
		if len(lit) != 1 {
			return nil, fmt.Errorf("schema: %s: array form must hold exactly one element schema, got %d", path, len(lit))
		}
		elem, err := compileValue(lit[0], path+"[]")
		if err != nil {
			return nil, err
		}
		return ArrayOf{Elem: elem}, nil
	case map[string]any:
		return compileObject(lit, path)
	case Value:
		return lit, nil
	}
	return nil, fmt.Errorf("schema: %s: unsupported schema literal %T", path, lit)
}

func compileTag(lit, path string) (Value, error) {
	optional := strings.HasPrefix(lit, "?")
	tag := Tag(strings.TrimPrefix(lit, "?"))
	switch tag {
	case TagString, TagNumber, TagBoolean, TagObject, TagArray:
		return Prim{Tag: tag, Optional: optional}, nil
	}
	return nil, fmt.Errorf("schema: %s: unknown type tag %q", path, lit)
}

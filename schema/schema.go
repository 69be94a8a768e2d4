// Package schema implements declarative structural validation of decoded
// JSON values. A schema is a closed union of shapes: primitive type tags
// (optionally marked), homogeneous arrays, and nested ordered objects.
// Validation reports the first failure with a dotted/bracketed field path.
package schema

// Tag names one of the five primitive type tags a schema field can declare.
type Tag string

const (
	TagString  Tag = "string"
	TagNumber  Tag = "number"
	TagBoolean Tag = "boolean"
	TagObject  Tag = "object"
	TagArray   Tag = "array"
)

// Value is implemented by the closed set of schema shapes: Prim, ArrayOf,
// and Object. Schemas are immutable once constructed.
type Value interface{ schemaValue() }

// Prim matches a single primitive type tag. When Optional is set the field
// may be absent; an explicit null is still a type mismatch.
type Prim struct {
	Tag      Tag
	Optional bool
}

func (Prim) schemaValue() {}

// Opt returns a copy of p with the optional marker set.
func (p Prim) Opt() Prim {
	p.Optional = true
	return p
}

// ArrayOf matches an array whose every element matches Elem. An empty array
// always matches regardless of Elem.
type ArrayOf struct {
	Elem Value
}

func (ArrayOf) schemaValue() {}

// Object matches a non-null, non-array structured value whose fields satisfy
// the listed schema fields. Fields validate in declaration order and extra
// keys in the value are ignored: an Object is a minimum-shape contract, not
// an exhaustive one.
type Object []Field

func (Object) schemaValue() {}

// Field pairs a key name with the shape its value must satisfy.
type Field struct {
	Name  string
	Value Value
}

// F is shorthand for building Object literals.
func F(name string, v Value) Field { return Field{Name: name, Value: v} }

// String matches string values.
func String() Prim { return Prim{Tag: TagString} }

// Number matches numeric values.
func Number() Prim { return Prim{Tag: TagNumber} }

// Boolean matches boolean values.
func Boolean() Prim { return Prim{Tag: TagBoolean} }

// AnyObject matches any non-null, non-array structured value, including an
// empty one, without constraining its fields.
func AnyObject() Prim { return Prim{Tag: TagObject} }

// AnyArray matches any array without constraining its elements.
func AnyArray() Prim { return Prim{Tag: TagArray} }

// Array matches an array whose every element matches elem.
func Array(elem Value) ArrayOf { return ArrayOf{Elem: elem} }

package handlejson

// Pretty re-serializes a JSON document with the given indentation width.
// It is a thin wrapper over Parse and Stringify; the input is decoded
// unguarded aside from well-formedness.
func Pretty(data []byte, indent int) (string, error) {
	v, err := Parse(data)
	if err != nil {
		return "", err
	}
	return Stringify(v, EncodeOpt{Indent: indent})
}

// Minify re-serializes a JSON document with all inter-token whitespace
// removed.
func Minify(data []byte) (string, error) {
	v, err := Parse(data)
	if err != nil {
		return "", err
	}
	return Stringify(v)
}

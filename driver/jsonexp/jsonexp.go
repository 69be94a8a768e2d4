// Package jsonexp provides a handlejson.Driver backed by the experimental
// encoding/json successor (go-json-experiment). It exists for callers who
// want the v2 semantics; the default go-json driver remains the baseline.
package jsonexp

import (
	v2json "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	handlejson "github.com/chintanshah35/handlejson"
)

// Driver returns a handlejson.Driver backed by go-json-experiment/json.
func Driver() handlejson.Driver { return driverV2{} }

type driverV2 struct{}

func (driverV2) Marshal(v any) ([]byte, error) { return v2json.Marshal(v) }

func (driverV2) MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return v2json.Marshal(v, jsontext.WithIndent(indent), jsontext.WithIndentPrefix(prefix))
}

func (driverV2) Unmarshal(data []byte, v any) error { return v2json.Unmarshal(data, v) }

func (driverV2) Valid(data []byte) bool { return jsontext.Value(data).IsValid() }

func (driverV2) Name() string { return "go-json-experiment" }

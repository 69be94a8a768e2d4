package handlejson

import (
	"sync"

	gojson "github.com/goccy/go-json"
)

// Driver abstracts the underlying JSON codec primitive via a pluggable SPI.
// The default implementation is based on goccy/go-json and may be swapped
// with SetDriver (see driver/jsonexp for an alternate implementation).
type Driver interface {
	Marshal(v any) ([]byte, error)
	MarshalIndent(v any, prefix, indent string) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Valid(data []byte) bool
	Name() string
}

var (
	driverMu      sync.RWMutex
	currentDriver Driver = goJSONDriver{}
)

// SetDriver replaces the global JSON driver; nil values are ignored.
func SetDriver(d Driver) {
	if d == nil {
		return
	}
	driverMu.Lock()
	currentDriver = d
	driverMu.Unlock()
}

// UseDefaultDriver restores the default go-json-backed driver.
func UseDefaultDriver() {
	driverMu.Lock()
	currentDriver = goJSONDriver{}
	driverMu.Unlock()
}

func getDriver() Driver {
	driverMu.RLock()
	d := currentDriver
	driverMu.RUnlock()
	return d
}

// goJSONDriver wraps the goccy/go-json implementation.
type goJSONDriver struct{}

func (goJSONDriver) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }
func (goJSONDriver) MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return gojson.MarshalIndent(v, prefix, indent)
}
func (goJSONDriver) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }
func (goJSONDriver) Valid(data []byte) bool             { return gojson.Valid(data) }
func (goJSONDriver) Name() string                       { return "go-json" }

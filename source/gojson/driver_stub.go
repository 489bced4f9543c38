//go:build !gojson

package gojson

import (
	"io"

	jsonvalue "github.com/reoring/jsonvalue"
)

// Driver returns a stub driver when the gojson tag is not enabled. It
// delegates to the built-in strict scanner directly to avoid recursion when
// installed as the global driver.
func Driver() jsonvalue.Driver { return stub{} }

type stub struct{}

func (stub) NewReader(r io.Reader) jsonvalue.Source {
	return jsonvalue.DefaultDriver().NewReader(r)
}
func (stub) NewBytes(b []byte) jsonvalue.Source {
	return jsonvalue.DefaultDriver().NewBytes(b)
}
func (stub) Name() string { return "scan (gojson stub)" }

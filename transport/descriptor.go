// Package transport defines the request/response contract between the sign-in
// workflows and the layer that executes HTTP calls, plus the default
// net/http-backed implementation.
package transport

// Method is the HTTP method of a described request.
type Method string

const (
	MethodGet    Method = "GET"
	MethodPost   Method = "POST"
	MethodPut    Method = "PUT"
	MethodDelete Method = "DELETE"
)

// Descriptor describes one outbound API call: method, path relative to the
// server's API endpoint, body/query parameters and extra headers. A
// descriptor is built per call attempt and never shared across concurrent
// attempts; Clone produces an independent copy for follow-up requests.
type Descriptor struct {
	Method     Method
	Path       string
	Parameters map[string]string
	Headers    map[string]string
}

// NewDescriptor creates a descriptor with empty parameter and header maps.
func NewDescriptor(method Method, path string) *Descriptor {
	return &Descriptor{
		Method:     method,
		Path:       path,
		Parameters: map[string]string{},
		Headers:    map[string]string{},
	}
}

// WithParameter sets a parameter and returns the descriptor for chaining.
func (d *Descriptor) WithParameter(key, value string) *Descriptor {
	d.Parameters[key] = value
	return d
}

// WithHeader sets a header and returns the descriptor for chaining.
func (d *Descriptor) WithHeader(key, value string) *Descriptor {
	d.Headers[key] = value
	return d
}

// Clone returns a deep copy that can be retargeted without affecting the
// original, e.g. turning an authorize request into the follow-up DELETE.
func (d *Descriptor) Clone() *Descriptor {
	clone := NewDescriptor(d.Method, d.Path)
	for k, v := range d.Parameters {
		clone.Parameters[k] = v
	}
	for k, v := range d.Headers {
		clone.Headers[k] = v
	}
	return clone
}

package transport

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/ron-haley/go-github-auth/servers"
)

// Requester executes one described request against a server. On failure the
// returned error carries a classified *Error in its chain. Implementations
// perform no retries; recovery is a workflow concern.
type Requester interface {
	Enqueue(ctx context.Context, server servers.Server, descriptor *Descriptor) (*Response, error)
}

// Response is the raw outcome of a successful request.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the response payload into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return errors.Wrap(err, "[Response.Decode] unmarshal payload")
	}
	return nil
}

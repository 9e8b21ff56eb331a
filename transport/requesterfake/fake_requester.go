// Package requesterfake provides an in-memory transport.Requester for tests:
// it replays scripted outcomes and records every descriptor it sees.
package requesterfake

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/ron-haley/go-github-auth/servers"
	"github.com/ron-haley/go-github-auth/transport"
)

// Call records one Enqueue invocation. The descriptor is a snapshot taken at
// call time, so later mutation by the caller is not visible.
type Call struct {
	Server     servers.Server
	Descriptor *transport.Descriptor
}

// Outcome is one scripted Enqueue result.
type Outcome struct {
	Response *transport.Response
	Err      error
}

// RespondJSON scripts a 200 response whose body is the JSON encoding of v.
func RespondJSON(v any) Outcome {
	body, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return Outcome{Response: &transport.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       body,
	}}
}

// Respond scripts an empty success response with the given status.
func Respond(status int) Outcome {
	return Outcome{Response: &transport.Response{
		StatusCode: status,
		Header:     http.Header{},
	}}
}

// Fail scripts a failure.
func Fail(err error) Outcome {
	return Outcome{Err: err}
}

// FakeRequester replays outcomes in order. Safe for concurrent use.
type FakeRequester struct {
	mu       sync.Mutex
	calls    []Call
	outcomes []Outcome
}

// New creates a fake that will return the given outcomes in order.
func New(outcomes ...Outcome) *FakeRequester {
	return &FakeRequester{outcomes: outcomes}
}

var _ transport.Requester = (*FakeRequester)(nil)

// Enqueue records the call and pops the next scripted outcome.
func (f *FakeRequester) Enqueue(_ context.Context, server servers.Server, descriptor *transport.Descriptor) (*transport.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.calls = append(f.calls, Call{Server: server, Descriptor: descriptor.Clone()})

	if len(f.outcomes) == 0 {
		return nil, &transport.Error{Code: transport.CodeTransport, Message: "no scripted outcome"}
	}
	next := f.outcomes[0]
	f.outcomes = f.outcomes[1:]
	return next.Response, next.Err
}

// Calls returns a snapshot of all recorded calls.
func (f *FakeRequester) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	snapshot := make([]Call, len(f.calls))
	copy(snapshot, f.calls)
	return snapshot
}

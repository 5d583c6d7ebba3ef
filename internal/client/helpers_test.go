package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"sync"

	tthttp "github.com/tictail/tictail-go/internal/http"
)

func jsonNumber(n int) json.Number {
	return json.Number(strconv.Itoa(n))
}

// recordedCall is one request seen by recordingTransport.
type recordedCall struct {
	Method string
	URI    string
	Query  url.Values
}

// recordingTransport answers every request with content and keeps the calls.
type recordingTransport struct {
	mu      sync.Mutex
	calls   []recordedCall
	content interface{}
}

func (r *recordingTransport) record(method, uri string, query url.Values) (*tthttp.Response, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, recordedCall{Method: method, URI: uri, Query: query})

	return &tthttp.Response{StatusCode: 200, Content: r.content}, nil
}

func (r *recordingTransport) Get(_ context.Context, uri string, query url.Values) (*tthttp.Response, error) {
	return r.record(tthttp.MethodGet, uri, query)
}

func (r *recordingTransport) Post(_ context.Context, uri string, query url.Values, _ interface{}) (*tthttp.Response, error) {
	return r.record(tthttp.MethodPost, uri, query)
}

func (r *recordingTransport) Put(_ context.Context, uri string, query url.Values, _ interface{}) (*tthttp.Response, error) {
	return r.record(tthttp.MethodPut, uri, query)
}

func (r *recordingTransport) Delete(_ context.Context, uri string, query url.Values) (*tthttp.Response, error) {
	return r.record(tthttp.MethodDelete, uri, query)
}

func (r *recordingTransport) Calls() []recordedCall {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]recordedCall(nil), r.calls...)
}

package resource

import (
	"context"
	"fmt"
	"net/http"

	tthttp "github.com/tictail/tictail-go/internal/http"
	"github.com/tictail/tictail-go/pkg/tictail"
)

// Get fetches r from its own URI and returns a fresh instance. Nothing is
// sent when the URI cannot be resolved.
func Get[T any](ctx context.Context, r *Resource, wrap func(*Resource) T) (T, error) {
	var zero T

	uri, err := r.ResolveURI()
	if err != nil {
		return zero, fmt.Errorf("getting %s: %w", r.kind.Name, err)
	}

	resp, err := r.Request(ctx, tthttp.MethodGet, uri, RequestOptions{})
	if err != nil {
		return zero, fmt.Errorf("getting %s: %w", r.kind.Name, err)
	}

	object, ok := resp.Content.(map[string]interface{})
	if !ok {
		return zero, fmt.Errorf("getting %s: %w: got %T", r.kind.Name, tictail.ErrUnexpectedPayload, resp.Content)
	}

	return wrap(r.InstantiateFromData(object)), nil
}

// Fetch reads r's URI and builds the result as an element of into. It
// serves endpoints like /me whose payload belongs to another collection.
func Fetch[T any](ctx context.Context, r *Resource, into *Collection[T]) (T, error) {
	var zero T

	uri, err := r.ResolveURI()
	if err != nil {
		return zero, fmt.Errorf("getting %s: %w", r.kind.Name, err)
	}

	resp, err := r.Request(ctx, tthttp.MethodGet, uri, RequestOptions{})
	if err != nil {
		return zero, fmt.Errorf("getting %s: %w", r.kind.Name, err)
	}

	item, err := into.InstantiateOne(resp.Content)
	if err != nil {
		return zero, fmt.Errorf("getting %s: %w", r.kind.Name, err)
	}

	return item, nil
}

// GetByID fetches one element of c. id is escaped as a single path segment.
func GetByID[T any](ctx context.Context, c *Collection[T], id string) (T, error) {
	var zero T

	uri, err := c.ElementURI(id)
	if err != nil {
		return zero, fmt.Errorf("getting %s: %w", c.kind.Name, err)
	}

	resp, err := c.Request(ctx, tthttp.MethodGet, uri, RequestOptions{})
	if err != nil {
		return zero, fmt.Errorf("getting %s: %w", c.kind.Name, err)
	}

	item, err := c.InstantiateOne(resp.Content)
	if err != nil {
		return zero, fmt.Errorf("getting %s: %w", c.kind.Name, err)
	}

	return item, nil
}

// List fetches the elements of c. params are copied and passed through the
// collection's FormatParams before encoding.
func List[T any](ctx context.Context, c *Collection[T], params tictail.Params) ([]T, error) {
	formatted := params.Clone()
	if c.FormatParams != nil {
		formatted = c.FormatParams(formatted)
	}

	uri, err := c.ResolveURI()
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.kind.Endpoint, err)
	}

	resp, err := c.Request(ctx, tthttp.MethodGet, uri, RequestOptions{Params: formatted.Values()})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.kind.Endpoint, err)
	}

	items, err := c.InstantiateFromData(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", c.kind.Endpoint, err)
	}

	return items, nil
}

// Create posts body to c and returns the created element.
func Create[T any](ctx context.Context, c *Collection[T], body interface{}) (T, error) {
	var zero T

	uri, err := c.ResolveURI()
	if err != nil {
		return zero, fmt.Errorf("creating %s: %w", c.kind.Name, err)
	}

	resp, err := c.Request(ctx, tthttp.MethodPost, uri, RequestOptions{Data: body})
	if err != nil {
		return zero, fmt.Errorf("creating %s: %w", c.kind.Name, err)
	}

	item, err := c.InstantiateOne(resp.Content)
	if err != nil {
		return zero, fmt.Errorf("creating %s: %w", c.kind.Name, err)
	}

	return item, nil
}

// Delete deletes r. It reports whether the API answered 204 No Content.
// A resource without a primary key is never sent.
func Delete(ctx context.Context, r *Resource) (bool, error) {
	uri, err := r.ResolveURI()
	if err != nil {
		return false, fmt.Errorf("deleting %s: %w", r.kind.Name, err)
	}

	resp, err := r.Request(ctx, tthttp.MethodDelete, uri, RequestOptions{})
	if err != nil {
		return false, fmt.Errorf("deleting %s: %w", r.kind.Name, err)
	}

	return resp.StatusCode == http.StatusNoContent, nil
}

// DeleteByID deletes one element of c. It reports whether the API answered
// 204 No Content.
func DeleteByID[T any](ctx context.Context, c *Collection[T], id string) (bool, error) {
	uri, err := c.ElementURI(id)
	if err != nil {
		return false, fmt.Errorf("deleting %s: %w", c.kind.Name, err)
	}

	resp, err := c.Request(ctx, tthttp.MethodDelete, uri, RequestOptions{})
	if err != nil {
		return false, fmt.Errorf("deleting %s: %w", c.kind.Name, err)
	}

	return resp.StatusCode == http.StatusNoContent, nil
}

package resource

import (
	"context"
	"fmt"

	tthttp "github.com/tictail/tictail-go/internal/http"
	"github.com/tictail/tictail-go/pkg/tictail"
)

// Collection is the gateway to the resources of one kind under a parent.
// It holds no elements; every call goes to the API.
type Collection[T any] struct {
	kind      *Kind
	parent    Parent
	transport Transport
	wrap      func(*Resource) T

	// FormatParams rewrites list parameters. Nil leaves them untouched.
	FormatParams ParamsFormatter
}

// NewCollection creates a gateway for kind under a fixed parent URI. wrap
// turns a generic resource into the element type.
func NewCollection[T any](kind *Kind, parent string, transport Transport, wrap func(*Resource) T) *Collection[T] {
	return NewCollectionUnder(kind, Prefix(parent), transport, wrap)
}

// NewCollectionUnder is NewCollection with a parent resolved at request time.
func NewCollectionUnder[T any](kind *Kind, parent Parent, transport Transport, wrap func(*Resource) T) *Collection[T] {
	return &Collection[T]{
		kind:      kind,
		parent:    parent,
		transport: transport,
		wrap:      wrap,
	}
}

// WithParamsFormatter sets FormatParams and returns the collection.
func (c *Collection[T]) WithParamsFormatter(format ParamsFormatter) *Collection[T] {
	c.FormatParams = format

	return c
}

// Kind returns the element kind.
func (c *Collection[T]) Kind() *Kind {
	return c.kind
}

// Parent returns the URI prefix shared by the elements, or an empty string
// when it cannot be resolved.
func (c *Collection[T]) Parent() string {
	parent, err := c.parent.ResolveURI()
	if err != nil {
		return ""
	}

	return parent
}

// URI returns ResolveURI's result, or an empty string when the parent
// cannot be resolved.
func (c *Collection[T]) URI() string {
	uri, err := c.ResolveURI()
	if err != nil {
		return ""
	}

	return uri
}

// ResolveURI is [parent]/[element endpoint].
func (c *Collection[T]) ResolveURI() (string, error) {
	parent, err := c.parent.ResolveURI()
	if err != nil {
		return "", err
	}

	return JoinURI(parent, c.kind.Endpoint), nil
}

// ElementURI is [parent]/[element endpoint]/[id] with id escaped as a
// single path segment.
func (c *Collection[T]) ElementURI(id string) (string, error) {
	segment, err := PathSegment(id)
	if err != nil {
		return "", err
	}

	uri, err := c.ResolveURI()
	if err != nil {
		return "", err
	}

	return JoinURI(uri, segment), nil
}

// Instantiate builds one element from data.
func (c *Collection[T]) Instantiate(data map[string]interface{}) T {
	return c.wrap(NewUnder(c.kind, c.parent, data, c.transport))
}

// InstantiateFromData maps a decoded JSON object or list of objects into
// elements. A nil payload yields no elements.
func (c *Collection[T]) InstantiateFromData(data interface{}) ([]T, error) {
	switch payload := data.(type) {
	case nil:
		return []T{}, nil
	case map[string]interface{}:
		return []T{c.Instantiate(payload)}, nil
	case []interface{}:
		items := make([]T, 0, len(payload))

		for i, item := range payload {
			object, ok := item.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("%w: %s item %d is %T", tictail.ErrUnexpectedPayload, c.kind.Name, i, item)
			}

			items = append(items, c.Instantiate(object))
		}

		return items, nil
	default:
		return nil, fmt.Errorf("%w: %s payload is %T", tictail.ErrUnexpectedPayload, c.kind.Name, data)
	}
}

// InstantiateOne maps a decoded JSON object into a single element.
func (c *Collection[T]) InstantiateOne(data interface{}) (T, error) {
	object, ok := data.(map[string]interface{})
	if !ok {
		var zero T

		return zero, fmt.Errorf("%w: expected a %s object, got %T", tictail.ErrUnexpectedPayload, c.kind.Name, data)
	}

	return c.Instantiate(object), nil
}

// Request sends method to uri through the collection's transport.
func (c *Collection[T]) Request(ctx context.Context, method, uri string, opts RequestOptions) (*tthttp.Response, error) {
	return request(ctx, c.transport, method, uri, opts)
}

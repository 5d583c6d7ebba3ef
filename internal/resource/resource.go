// Package resource holds the generic machinery behind every API endpoint:
// single resources, collection gateways and the capability functions that
// give them behaviour.
package resource

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/tictail/tictail-go/internal/constants"
	tthttp "github.com/tictail/tictail-go/internal/http"
	"github.com/tictail/tictail-go/pkg/tictail"
)

// Transport performs requests against relative URIs.
type Transport interface {
	Get(ctx context.Context, uri string, query url.Values) (*tthttp.Response, error)
	Post(ctx context.Context, uri string, query url.Values, body interface{}) (*tthttp.Response, error)
	Put(ctx context.Context, uri string, query url.Values, body interface{}) (*tthttp.Response, error)
	Delete(ctx context.Context, uri string, query url.Values) (*tthttp.Response, error)
}

// Subresource builds a child gateway or resource under parent. The parent
// is resolved on every request, so children follow changes to its key.
type Subresource struct {
	Name string
	New  func(parent Parent, transport Transport) interface{}
}

// Kind describes one resource type.
type Kind struct {
	// Name is used in error messages and String output.
	Name string
	// Endpoint is the path segment of the kind, e.g. "products".
	Endpoint string
	// Identifier is the primary key field, "id" when empty.
	Identifier string
	// Singleton resources have no primary key in their URI.
	Singleton bool
	// Subresources are attached to every instance of the kind.
	Subresources []Subresource
}

func (k *Kind) identifier() string {
	if k.Identifier == "" {
		return constants.DefaultIdentifier
	}

	return k.Identifier
}

// RequestOptions are passed through to the transport.
type RequestOptions struct {
	Params url.Values
	Data   interface{}
}

// Resource is a single API entity.
type Resource struct {
	kind         *Kind
	parent       Parent
	data         map[string]interface{}
	transport    Transport
	subresources map[string]interface{}
}

// New creates a resource of kind under a fixed parent URI. Time fields in
// data are converted and the kind's subresources are built with the new
// resource as their parent. A nil data map yields an empty resource.
func New(kind *Kind, parent string, data map[string]interface{}, transport Transport) *Resource {
	return NewUnder(kind, Prefix(parent), data, transport)
}

// NewUnder is New with a parent resolved at request time.
func NewUnder(kind *Kind, parent Parent, data map[string]interface{}, transport Transport) *Resource {
	if data == nil {
		data = map[string]interface{}{}
	}

	r := &Resource{
		kind:         kind,
		parent:       parent,
		data:         TransformMap(data),
		transport:    transport,
		subresources: make(map[string]interface{}, len(kind.Subresources)),
	}

	for _, sub := range kind.Subresources {
		r.subresources[sub.Name] = sub.New(r, transport)
	}

	return r
}

// Kind returns the resource's kind.
func (r *Resource) Kind() *Kind {
	return r.kind
}

// Parent returns the URI prefix the resource lives under, or an empty
// string when it cannot be resolved.
func (r *Resource) Parent() string {
	parent, err := r.parent.ResolveURI()
	if err != nil {
		return ""
	}

	return parent
}

// Transport returns the transport used for requests.
func (r *Resource) Transport() Transport {
	return r.transport
}

// URI returns ResolveURI's result, or an empty string for a resource whose
// URI cannot be resolved.
func (r *Resource) URI() string {
	uri, err := r.ResolveURI()
	if err != nil {
		return ""
	}

	return uri
}

// ResolveURI is [parent]/[endpoint]/[pk], or [parent]/[endpoint] for
// singletons. It fails with tictail.ErrNoPrimaryKey when the key field is
// missing.
func (r *Resource) ResolveURI() (string, error) {
	parent, err := r.parent.ResolveURI()
	if err != nil {
		return "", err
	}

	if r.kind.Singleton {
		return JoinURI(parent, r.kind.Endpoint), nil
	}

	pk, err := r.PK()
	if err != nil {
		return "", fmt.Errorf("%s: %w", r.kind.Name, err)
	}

	segment, err := formatPK(pk)
	if err != nil {
		return "", fmt.Errorf("%s: %w", r.kind.Name, err)
	}

	return JoinURI(parent, r.kind.Endpoint, segment), nil
}

// PK returns the primary key value.
func (r *Resource) PK() (interface{}, error) {
	pk, ok := r.data[r.kind.identifier()]
	if !ok {
		return nil, tictail.ErrNoPrimaryKey
	}

	return pk, nil
}

// Subresource returns the child gateway registered under name.
func (r *Resource) Subresource(name string) (interface{}, bool) {
	sub, ok := r.subresources[name]

	return sub, ok
}

// Lookup returns a field and whether it is present.
func (r *Resource) Lookup(name string) (interface{}, bool) {
	value, ok := r.data[name]

	return value, ok
}

// Field returns a field or an error wrapping tictail.ErrNoSuchField.
func (r *Resource) Field(name string) (interface{}, error) {
	value, ok := r.data[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no field %q", tictail.ErrNoSuchField, r.kind.Name, name)
	}

	return value, nil
}

// GetString returns a string field.
func (r *Resource) GetString(name string) (string, bool) {
	switch v := r.data[name].(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	default:
		return "", false
	}
}

// GetInt returns an integral numeric field.
func (r *Resource) GetInt(name string) (int64, bool) {
	switch v := r.data[name].(type) {
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return 0, false
		}

		return i, true
	case int:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}

		return int64(v), true
	default:
		return 0, false
	}
}

// GetFloat returns a numeric field.
func (r *Resource) GetFloat(name string) (float64, bool) {
	switch v := r.data[name].(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}

		return f, true
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// GetBool returns a boolean field.
func (r *Resource) GetBool(name string) (bool, bool) {
	v, ok := r.data[name].(bool)

	return v, ok
}

// GetTime returns a timestamp field.
func (r *Resource) GetTime(name string) (time.Time, bool) {
	v, ok := r.data[name].(time.Time)

	return v, ok
}

// Set stores a field, converting timestamps like decoded data. Setting the
// primary key moves the resource and its subresources to the new URI.
func (r *Resource) Set(name string, value interface{}) {
	r.data[name] = TransformValue(name, value)
}

// Keys returns the field names in sorted order.
func (r *Resource) Keys() []string {
	keys := make([]string, 0, len(r.data))
	for key := range r.data {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// Values returns the field values in Keys order.
func (r *Resource) Values() []interface{} {
	keys := r.Keys()

	values := make([]interface{}, 0, len(keys))
	for _, key := range keys {
		values = append(values, r.data[key])
	}

	return values
}

// Items returns the fields in Keys order.
func (r *Resource) Items() []tictail.Item {
	keys := r.Keys()

	items := make([]tictail.Item, 0, len(keys))
	for _, key := range keys {
		items = append(items, tictail.Item{Key: key, Value: r.data[key]})
	}

	return items
}

// ToMap returns a deep copy of the fields. Nested objects and lists are
// copied too, so changes to the result never reach the resource.
func (r *Resource) ToMap() map[string]interface{} {
	return copyMap(r.data)
}

func copyMap(data map[string]interface{}) map[string]interface{} {
	copied := make(map[string]interface{}, len(data))
	for key, value := range data {
		copied[key] = copyValue(value)
	}

	return copied
}

func copyValue(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return copyMap(v)
	case []interface{}:
		copied := make([]interface{}, len(v))
		for i, item := range v {
			copied[i] = copyValue(item)
		}

		return copied
	default:
		return value
	}
}

// MarshalJSON renders the fields only.
func (r *Resource) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.data)
}

// String renders the kind name and fields.
func (r *Resource) String() string {
	var builder strings.Builder

	builder.WriteString(r.kind.Name)
	builder.WriteString("(")

	for i, item := range r.Items() {
		if i > 0 {
			builder.WriteString(", ")
		}

		fmt.Fprintf(&builder, "%s=%v", item.Key, item.Value)
	}

	builder.WriteString(")")

	return builder.String()
}

// InstantiateFromData builds a sibling resource of the same kind and parent.
func (r *Resource) InstantiateFromData(data map[string]interface{}) *Resource {
	return NewUnder(r.kind, r.parent, data, r.transport)
}

// Request sends method to uri through the resource's transport.
func (r *Resource) Request(ctx context.Context, method, uri string, opts RequestOptions) (*tthttp.Response, error) {
	return request(ctx, r.transport, method, uri, opts)
}

func request(ctx context.Context, transport Transport, method, uri string, opts RequestOptions) (*tthttp.Response, error) {
	switch strings.ToUpper(method) {
	case tthttp.MethodGet:
		return transport.Get(ctx, uri, opts.Params)
	case tthttp.MethodPost:
		return transport.Post(ctx, uri, opts.Params, opts.Data)
	case tthttp.MethodPut:
		return transport.Put(ctx, uri, opts.Params, opts.Data)
	case tthttp.MethodDelete:
		return transport.Delete(ctx, uri, opts.Params)
	default:
		return nil, fmt.Errorf("%w: %s", tictail.ErrUnsupportedMethod, method)
	}
}

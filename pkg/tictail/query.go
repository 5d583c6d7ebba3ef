package tictail

import (
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"
)

// Well-known list parameters.
const (
	ParamBefore         = "before"
	ParamAfter          = "after"
	ParamLimit          = "limit"
	ParamCategories     = "categories"
	ParamModifiedBefore = "modified_before"
	ParamModifiedAfter  = "modified_after"
)

// Params are raw query parameters before a collection formats them.
type Params map[string]interface{}

// Clone returns a shallow copy.
func (p Params) Clone() Params {
	clone := make(Params, len(p))
	for key, value := range p {
		clone[key] = value
	}

	return clone
}

// Values renders the parameters as a query string. Slices become repeated
// keys, times are formatted with FormatTime and nil values are dropped.
func (p Params) Values() url.Values {
	values := url.Values{}

	keys := make([]string, 0, len(p))
	for key := range p {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		switch value := p[key].(type) {
		case nil:
		case []string:
			for _, item := range value {
				values.Add(key, item)
			}
		case []interface{}:
			for _, item := range value {
				values.Add(key, formatParam(item))
			}
		default:
			values.Add(key, formatParam(value))
		}
	}

	return values
}

func formatParam(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case time.Time:
		return FormatTime(v)
	case *time.Time:
		return FormatTime(*v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

// ListParams are the options accepted by list endpoints. Before and After
// are resource ids used for cursor pagination.
type ListParams struct {
	Before         string
	After          string
	Limit          int
	Categories     []string
	ModifiedBefore time.Time
	ModifiedAfter  time.Time
	Filters        Params
}

// NewListParams creates empty list parameters.
func NewListParams() *ListParams {
	return &ListParams{
		Filters: Params{},
	}
}

// WithBefore only returns resources created before the given id.
func (p *ListParams) WithBefore(id string) *ListParams {
	p.Before = id

	return p
}

// WithAfter only returns resources created after the given id.
func (p *ListParams) WithAfter(id string) *ListParams {
	p.After = id

	return p
}

// WithLimit caps the number of returned resources.
func (p *ListParams) WithLimit(limit int) *ListParams {
	p.Limit = limit

	return p
}

// WithCategories filters products by category id.
func (p *ListParams) WithCategories(ids ...string) *ListParams {
	p.Categories = append(p.Categories, ids...)

	return p
}

// WithModifiedBefore filters by modification time.
func (p *ListParams) WithModifiedBefore(t time.Time) *ListParams {
	p.ModifiedBefore = t

	return p
}

// WithModifiedAfter filters by modification time.
func (p *ListParams) WithModifiedAfter(t time.Time) *ListParams {
	p.ModifiedAfter = t

	return p
}

// WithFilter sets an arbitrary parameter.
func (p *ListParams) WithFilter(key string, value interface{}) *ListParams {
	if p.Filters == nil {
		p.Filters = Params{}
	}

	p.Filters[key] = value

	return p
}

// ToParams flattens the options into raw parameters. Unset fields are
// omitted; Filters win over typed fields on key collisions.
func (p *ListParams) ToParams() Params {
	params := Params{}
	if p == nil {
		return params
	}

	if p.Before != "" {
		params[ParamBefore] = p.Before
	}

	if p.After != "" {
		params[ParamAfter] = p.After
	}

	if p.Limit > 0 {
		params[ParamLimit] = p.Limit
	}

	if len(p.Categories) > 0 {
		params[ParamCategories] = append([]string(nil), p.Categories...)
	}

	if !p.ModifiedBefore.IsZero() {
		params[ParamModifiedBefore] = p.ModifiedBefore
	}

	if !p.ModifiedAfter.IsZero() {
		params[ParamModifiedAfter] = p.ModifiedAfter
	}

	for key, value := range p.Filters {
		params[key] = value
	}

	return params
}

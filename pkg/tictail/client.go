package tictail

import (
	"context"
	"strings"
	"time"

	"github.com/tictail/tictail-go/internal/constants"
)

// Resource is a single API entity: a JSON object with a URI.
//
// Field values are the decoded JSON values, except that any field named
// created_at or modified_at, at any depth, holds a time.Time.
type Resource interface {
	// URI is [parent]/[endpoint]/[pk], or [parent]/[endpoint] for singletons.
	URI() string
	// PK returns the primary key value or ErrNoPrimaryKey.
	PK() (interface{}, error)

	// Lookup returns a field and whether it is present.
	Lookup(name string) (interface{}, bool)
	// Field returns a field or an error wrapping ErrNoSuchField.
	Field(name string) (interface{}, error)
	GetString(name string) (string, bool)
	GetInt(name string) (int64, bool)
	GetFloat(name string) (float64, bool)
	GetBool(name string) (bool, bool)
	GetTime(name string) (time.Time, bool)
	// Set stores a field, applying the same transform as decoding.
	Set(name string, value interface{})

	Keys() []string
	Values() []interface{}
	Items() []Item
	ToMap() map[string]interface{}
}

// Store is a Tictail store and the root of the resource tree.
type Store interface {
	Resource

	Cards() CardsClient
	Products() ProductsClient
	Customers() CustomersClient
	Followers() FollowersClient
	Orders() OrdersClient
	Theme() ThemeClient
	Categories() CategoriesClient
}

// Product is a store product.
type Product interface {
	Resource
}

// Customer is a store customer.
type Customer interface {
	Resource
}

// Order is a store order.
type Order interface {
	Resource
}

// Card is a card posted to a store's feed.
type Card interface {
	Resource
}

// Category is a product category.
type Category interface {
	Resource
}

// Theme is the store's theme.
type Theme interface {
	Resource
}

// Follower is a store follower and can remove itself.
type Follower interface {
	Resource

	Delete(ctx context.Context) (bool, error)
}

// StoresClient reaches /stores.
type StoresClient interface {
	URI() string
	Get(ctx context.Context, id string) (Store, error)
}

// MeClient reaches /me, the store owning the access token.
type MeClient interface {
	URI() string
	Get(ctx context.Context) (Store, error)
}

// CardsClient reaches /stores/{id}/cards.
type CardsClient interface {
	URI() string
	Create(ctx context.Context, body map[string]interface{}) (Card, error)
}

// ProductsClient reaches /stores/{id}/products.
type ProductsClient interface {
	URI() string
	Get(ctx context.Context, id string) (Product, error)
	List(ctx context.Context, params *ListParams) ([]Product, error)
}

// CustomersClient reaches /stores/{id}/customers.
type CustomersClient interface {
	URI() string
	Get(ctx context.Context, id string) (Customer, error)
	List(ctx context.Context, params *ListParams) ([]Customer, error)
}

// FollowersClient reaches /stores/{id}/followers.
type FollowersClient interface {
	URI() string
	List(ctx context.Context, params *ListParams) ([]Follower, error)
	Create(ctx context.Context, body map[string]interface{}) (Follower, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// OrdersClient reaches /stores/{id}/orders.
type OrdersClient interface {
	URI() string
	Get(ctx context.Context, id string) (Order, error)
	List(ctx context.Context, params *ListParams) ([]Order, error)
}

// ThemeClient reaches /stores/{id}/theme.
type ThemeClient interface {
	URI() string
	Get(ctx context.Context) (Theme, error)
}

// CategoriesClient reaches /stores/{id}/categories.
type CategoriesClient interface {
	URI() string
	List(ctx context.Context, params *ListParams) ([]Category, error)
}

// StoreShortcuts build store-scoped clients from a store id without
// fetching the store first.
type StoreShortcuts interface {
	Cards(storeID string) (CardsClient, error)
	Products(storeID string) (ProductsClient, error)
	Customers(storeID string) (CustomersClient, error)
	Followers(storeID string) (FollowersClient, error)
	Orders(storeID string) (OrdersClient, error)
	Theme(storeID string) (ThemeClient, error)
	Categories(storeID string) (CategoriesClient, error)
}

// Client is the root of the API.
type Client interface {
	StoreShortcuts

	Stores() StoresClient
	Me() MeClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration.
//
// Requests go to {Protocol}://{BaseHost}/v{APIVersion}/... unless BaseURL is
// set, in which case BaseURL replaces {Protocol}://{BaseHost}. Zero fields
// are filled by ApplyDefaults.
type Config struct {
	// AccessToken is sent as a Bearer token. Required.
	AccessToken string

	Protocol   string
	BaseHost   string
	APIVersion int
	// BaseURL overrides Protocol and BaseHost, e.g. for a local fake API.
	BaseURL string

	// SkipTLSVerify disables certificate verification.
	SkipTLSVerify bool
	// Timeout bounds every call. There is no per-call override; use the
	// context for earlier cancellation.
	Timeout time.Duration
	// UserAgent overrides the default "tictail-go <version>".
	UserAgent string

	// RetryMax enables retries of 5xx/429/connection failures. 0 means one
	// attempt per call.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration

	// Debug logs every request and response through Logger.
	Debug  bool
	Logger Logger

	// Interceptors see every call before it is sent and after it finishes.
	Interceptors *InterceptorChain
}

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() *Config {
	config := &Config{}
	config.ApplyDefaults()

	return config
}

// ApplyDefaults fills zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Protocol == "" {
		c.Protocol = constants.DefaultProtocol
	}

	if c.BaseHost == "" {
		c.BaseHost = constants.DefaultBaseHost
	}

	if c.APIVersion == 0 {
		c.APIVersion = constants.DefaultAPIVersion
	}

	if c.Timeout == 0 {
		c.Timeout = constants.DefaultHTTPTimeout
	}

	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent()
	}

	if c.RetryWaitMin == 0 {
		c.RetryWaitMin = constants.DefaultRetryWaitMin
	}

	if c.RetryWaitMax == 0 {
		c.RetryWaitMax = constants.DefaultRetryWaitMax
	}
}

// Endpoint returns the scheme and host part of every request URL.
func (c *Config) Endpoint() string {
	if c.BaseURL != "" {
		endpoint := strings.TrimSuffix(c.BaseURL, "/")
		if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
			endpoint = "https://" + endpoint
		}

		return endpoint
	}

	return c.Protocol + "://" + c.BaseHost
}

// DefaultUserAgent is "tictail-go <version>".
func DefaultUserAgent() string {
	return constants.LibraryName + " " + constants.Version
}

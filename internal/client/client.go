package client

import (
	"strings"

	"github.com/tictail/tictail-go/internal/auth"
	"github.com/tictail/tictail-go/internal/http"
	"github.com/tictail/tictail-go/internal/resource"
	"github.com/tictail/tictail-go/pkg/tictail"
)

var (
	_ tictail.Client          = (*Client)(nil)
	_ tictail.Store           = (*Store)(nil)
	_ tictail.Follower        = (*Follower)(nil)
	_ tictail.FollowersClient = (*FollowersClient)(nil)
	_ tictail.OrdersClient    = (*OrdersClient)(nil)
)

// Client implements the tictail.Client interface.
type Client struct {
	transport    resource.Transport
	tokenManager auth.TokenManager
	baseURL      string
	logger       tictail.Logger

	stores *StoresClient
	me     *MeClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *tictail.Config) []http.Option {
	httpOpts := []http.Option{
		http.WithAPIVersion(config.APIVersion),
		http.WithTimeout(config.Timeout),
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.SkipTLSVerify {
		httpOpts = append(httpOpts, http.WithSkipTLSVerify(true))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	if config.RetryMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return httpOpts
}

// New creates a new Tictail API client. Zero config fields get defaults;
// config itself is not modified.
func New(config *tictail.Config) (*Client, error) {
	if config == nil {
		return nil, tictail.ErrConfigRequired
	}

	if strings.TrimSpace(config.AccessToken) == "" {
		return nil, tictail.ErrAccessTokenRequired
	}

	resolved := *config
	resolved.ApplyDefaults()

	tokenManager := auth.NewStaticTokenManager(resolved.AccessToken)
	httpClient := http.NewClient(resolved.Endpoint(), tokenManager, createHTTPClientOptions(&resolved)...)

	client := NewWithTransport(httpClient)
	client.tokenManager = tokenManager
	client.baseURL = resolved.Endpoint()
	client.logger = resolved.Logger

	return client, nil
}

// NewWithTransport creates a client over an existing transport.
func NewWithTransport(transport resource.Transport) *Client {
	return &Client{
		transport: transport,
		stores:    NewStoresClient(transport),
		me:        NewMeClient(transport),
	}
}

// GetTokenManager returns the token manager for this client, nil for
// clients built with NewWithTransport.
func (c *Client) GetTokenManager() auth.TokenManager {
	return c.tokenManager
}

// BaseURL returns the scheme and host requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Stores implements tictail.Client.Stores.
func (c *Client) Stores() tictail.StoresClient {
	return c.stores
}

// Me implements tictail.Client.Me.
func (c *Client) Me() tictail.MeClient {
	return c.me
}

// storeURI returns /stores/{storeID} for the shortcuts.
func storeURI(storeID string) (string, error) {
	if strings.TrimSpace(storeID) == "" {
		return "", tictail.ErrStoreIDRequired
	}

	segment, err := resource.PathSegment(storeID)
	if err != nil {
		return "", err
	}

	return resource.JoinURI(storeKind.Endpoint, segment), nil
}

// Cards implements tictail.StoreShortcuts.Cards.
func (c *Client) Cards(storeID string) (tictail.CardsClient, error) {
	parent, err := storeURI(storeID)
	if err != nil {
		return nil, err
	}

	return NewCardsClient(parent, c.transport), nil
}

// Products implements tictail.StoreShortcuts.Products.
func (c *Client) Products(storeID string) (tictail.ProductsClient, error) {
	parent, err := storeURI(storeID)
	if err != nil {
		return nil, err
	}

	return NewProductsClient(parent, c.transport), nil
}

// Customers implements tictail.StoreShortcuts.Customers.
func (c *Client) Customers(storeID string) (tictail.CustomersClient, error) {
	parent, err := storeURI(storeID)
	if err != nil {
		return nil, err
	}

	return NewCustomersClient(parent, c.transport), nil
}

// Followers implements tictail.StoreShortcuts.Followers.
func (c *Client) Followers(storeID string) (tictail.FollowersClient, error) {
	parent, err := storeURI(storeID)
	if err != nil {
		return nil, err
	}

	return NewFollowersClient(parent, c.transport), nil
}

// Orders implements tictail.StoreShortcuts.Orders.
func (c *Client) Orders(storeID string) (tictail.OrdersClient, error) {
	parent, err := storeURI(storeID)
	if err != nil {
		return nil, err
	}

	return NewOrdersClient(parent, c.transport), nil
}

// Theme implements tictail.StoreShortcuts.Theme.
func (c *Client) Theme(storeID string) (tictail.ThemeClient, error) {
	parent, err := storeURI(storeID)
	if err != nil {
		return nil, err
	}

	return NewThemeClient(parent, c.transport), nil
}

// Categories implements tictail.StoreShortcuts.Categories.
func (c *Client) Categories(storeID string) (tictail.CategoriesClient, error) {
	parent, err := storeURI(storeID)
	if err != nil {
		return nil, err
	}

	return NewCategoriesClient(parent, c.transport), nil
}

// loggerAdapter adapts tictail.Logger to http.Logger.
type loggerAdapter struct {
	logger tictail.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}

package tictailclient

import (
	"fmt"

	"github.com/tictail/tictail-go/internal/client"
	"github.com/tictail/tictail-go/pkg/tictail"
)

// New creates a new Tictail API client. Zero-valued config fields are
// filled with defaults; config is not modified.
func New(config *tictail.Config) (tictail.Client, error) {
	if config == nil {
		return nil, tictail.ErrConfigRequired
	}

	c, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithToken creates a client for api.tictail.com with an access token.
func NewWithToken(accessToken string) (tictail.Client, error) {
	return New(&tictail.Config{AccessToken: accessToken})
}

// NewWithBaseURL creates a client for another host, such as a fake API
// started by the tictailtest package.
func NewWithBaseURL(baseURL, accessToken string) (tictail.Client, error) {
	return New(&tictail.Config{
		AccessToken: accessToken,
		BaseURL:     baseURL,
	})
}

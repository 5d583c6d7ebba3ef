package client

import (
	"context"

	"github.com/tictail/tictail-go/internal/resource"
	"github.com/tictail/tictail-go/pkg/tictail"
)

// Theme implements tictail.Theme.
type Theme struct {
	*resource.Resource
}

func newTheme(r *resource.Resource) tictail.Theme {
	return &Theme{Resource: r}
}

// ThemeClient implements tictail.ThemeClient.
type ThemeClient struct {
	theme *resource.Resource
}

// NewThemeClient creates a new theme client under a store URI.
func NewThemeClient(parent string, transport resource.Transport) *ThemeClient {
	return newThemeClient(resource.Prefix(parent), transport)
}

func newThemeClient(parent resource.Parent, transport resource.Transport) *ThemeClient {
	return &ThemeClient{
		theme: resource.NewUnder(themeKind, parent, nil, transport),
	}
}

// URI implements tictail.ThemeClient.URI.
func (c *ThemeClient) URI() string {
	return c.theme.URI()
}

// Get implements tictail.ThemeClient.Get.
func (c *ThemeClient) Get(ctx context.Context) (tictail.Theme, error) {
	return resource.Get(ctx, c.theme, newTheme)
}

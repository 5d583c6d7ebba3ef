package client

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tictail/tictail-go/pkg/tictail"
	"github.com/tictail/tictail-go/pkg/tictailtest"
)

// newTestClient starts a fake API and returns a client pointed at it.
func newTestClient(t *testing.T) (*Client, *tictailtest.Server) {
	t.Helper()

	server := tictailtest.NewServer()
	t.Cleanup(server.Close)

	client, err := New(&tictail.Config{
		AccessToken: server.Token(),
		BaseURL:     server.URL,
	})
	require.NoError(t, err)

	return client, server
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		_, err := New(nil)
		assert.ErrorIs(t, err, tictail.ErrConfigRequired)
	})

	t.Run("missing token", func(t *testing.T) {
		t.Parallel()

		_, err := New(&tictail.Config{})
		assert.ErrorIs(t, err, tictail.ErrAccessTokenRequired)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		config := &tictail.Config{AccessToken: "token"}
		client, err := New(config)
		require.NoError(t, err)
		assert.Equal(t, "https://api.tictail.com", client.BaseURL())
		assert.Empty(t, config.Protocol, "config should not be modified")

		token, err := client.GetTokenManager().GetToken(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "token", token)
	})

	t.Run("base url without scheme", func(t *testing.T) {
		t.Parallel()

		client, err := New(&tictail.Config{AccessToken: "token", BaseURL: "localhost:8080/"})
		require.NoError(t, err)
		assert.Equal(t, "https://localhost:8080", client.BaseURL())
	})
}

func TestClient_Shortcuts(t *testing.T) {
	t.Parallel()

	client := NewWithTransport(nil)

	tests := []struct {
		name string
		uri  func(storeID string) (string, error)
		want string
	}{
		{"followers", func(id string) (string, error) {
			c, err := client.Followers(id)
			if err != nil {
				return "", err
			}

			return c.URI(), nil
		}, "/stores/1/followers"},
		{"cards", func(id string) (string, error) {
			c, err := client.Cards(id)
			if err != nil {
				return "", err
			}

			return c.URI(), nil
		}, "/stores/1/cards"},
		{"customers", func(id string) (string, error) {
			c, err := client.Customers(id)
			if err != nil {
				return "", err
			}

			return c.URI(), nil
		}, "/stores/1/customers"},
		{"products", func(id string) (string, error) {
			c, err := client.Products(id)
			if err != nil {
				return "", err
			}

			return c.URI(), nil
		}, "/stores/1/products"},
		{"orders", func(id string) (string, error) {
			c, err := client.Orders(id)
			if err != nil {
				return "", err
			}

			return c.URI(), nil
		}, "/stores/1/orders"},
		{"theme", func(id string) (string, error) {
			c, err := client.Theme(id)
			if err != nil {
				return "", err
			}

			return c.URI(), nil
		}, "/stores/1/theme"},
		{"categories", func(id string) (string, error) {
			c, err := client.Categories(id)
			if err != nil {
				return "", err
			}

			return c.URI(), nil
		}, "/stores/1/categories"},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			uri, err := testCase.uri("1")
			require.NoError(t, err)
			assert.Equal(t, testCase.want, uri)

			_, err = testCase.uri("")
			assert.ErrorIs(t, err, tictail.ErrStoreIDRequired)

			uri, err = testCase.uri("1/../2")
			require.NoError(t, err)
			assert.Equal(t, strings.Replace(testCase.want, "/stores/1/", "/stores/1%2F..%2F2/", 1), uri)

			_, err = testCase.uri("..")
			assert.ErrorIs(t, err, tictail.ErrInvalidID)
		})
	}
}

func TestClient_RootURIs(t *testing.T) {
	t.Parallel()

	client := NewWithTransport(nil)
	assert.Equal(t, "/stores", client.Stores().URI())
	assert.Equal(t, "/me", client.Me().URI())
}

func TestMeClient_Get(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t)

	store, err := client.Me().Get(context.Background())
	require.NoError(t, err)

	id, _ := store.GetString("id")
	name, _ := store.GetString("name")
	assert.Equal(t, tictailtest.StoreID, id)
	assert.Equal(t, tictailtest.StoreName, name)
	assert.Equal(t, "/stores/KGu", store.URI())
	assert.Equal(t, "/stores/KGu/products", store.Products().URI())
	assert.Equal(t, "/stores/KGu/theme", store.Theme().URI())

	created, ok := store.GetTime("created_at")
	assert.True(t, ok)
	assert.Equal(t, 2014, created.Year())
}

func TestStoresClient_Get(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t)

	store, err := client.Stores().Get(context.Background(), tictailtest.StoreID)
	require.NoError(t, err)

	id, _ := store.GetString("id")
	assert.Equal(t, tictailtest.StoreID, id)
	assert.Contains(t, store.Keys(), "name")
	assert.Contains(t, store.Values(), tictailtest.StoreName)
}

func TestClient_Forbidden(t *testing.T) {
	t.Parallel()

	server := tictailtest.NewServer()
	defer server.Close()

	client, err := New(&tictail.Config{AccessToken: "badkey", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Me().Get(context.Background())
	require.Error(t, err)
	assert.True(t, tictail.IsForbidden(err))

	apiErr, ok := tictail.AsError(err)
	require.True(t, ok)
	assert.Equal(t, 403, apiErr.Status)
	assert.Equal(t, map[string]interface{}{
		"status":        jsonNumber(403),
		"message":       "Forbidden",
		"params":        map[string]interface{}{},
		"support_email": "developers@tictail.com",
	}, apiErr.JSON)
}

func TestClient_ConnectionFailure(t *testing.T) {
	t.Parallel()

	server := tictailtest.NewServer()
	serverURL := server.URL
	server.Close()

	client, err := New(&tictail.Config{AccessToken: "token", BaseURL: serverURL, Timeout: time.Second})
	require.NoError(t, err)

	_, err = client.Stores().Get(context.Background(), tictailtest.StoreID)
	require.Error(t, err)
	assert.True(t, tictail.IsConnectionFailure(err))
}

func TestClient_DebugLogging(t *testing.T) {
	t.Parallel()

	server := tictailtest.NewServer()
	defer server.Close()

	logger := &recordingLogger{}
	client, err := New(&tictail.Config{
		AccessToken: server.Token(),
		BaseURL:     server.URL,
		Debug:       true,
		Logger:      logger,
	})
	require.NoError(t, err)

	_, err = client.Me().Get(context.Background())
	require.NoError(t, err)
	assert.Contains(t, logger.messages, "HTTP Request")
	assert.Contains(t, logger.messages, "HTTP Response")
}

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) Debug(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, msg)
}

func (l *recordingLogger) Info(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, msg)
}

func (l *recordingLogger) Warn(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, msg)
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, msg)
}

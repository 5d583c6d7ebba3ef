package commands

import (
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tictail/tictail-go/internal/constants"
	"github.com/tictail/tictail-go/pkg/tictail"
	"github.com/tictail/tictail-go/pkg/tictailtest"
	"gopkg.in/yaml.v3"
)

func TestCommandGroups(t *testing.T) {
	tests := []struct {
		cmd         *cobra.Command
		use         string
		subcommands []string
	}{
		{NewConfigCommand(), "config", []string{"show", "set", "unset"}},
		{NewStoresCommand(), "stores", []string{"get"}},
		{NewProductsCommand(), "products", []string{"list", "get"}},
		{NewCustomersCommand(), "customers", []string{"list", "get"}},
		{NewFollowersCommand(), "followers", []string{"list", "create", "delete"}},
		{NewOrdersCommand(), "orders", []string{"list", "get"}},
		{NewThemeCommand(), "theme", []string{"get"}},
		{NewCategoriesCommand(), "categories", []string{"list"}},
		{NewCardsCommand(), "cards", []string{"create"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.use, func(t *testing.T) {
			assert.Equal(t, testCase.use, testCase.cmd.Use)

			var names []string
			for _, sub := range testCase.cmd.Commands() {
				names = append(names, sub.Name())
				assert.NotNil(t, sub.RunE, sub.Name())
			}

			assert.ElementsMatch(t, testCase.subcommands, names)
		})
	}
}

func TestStoreScopedCommandsHaveStoreFlag(t *testing.T) {
	for _, group := range []*cobra.Command{
		NewProductsCommand(), NewCustomersCommand(), NewFollowersCommand(),
		NewOrdersCommand(), NewThemeCommand(), NewCategoriesCommand(), NewCardsCommand(),
	} {
		for _, sub := range group.Commands() {
			flag := sub.Flags().Lookup(storeFlag)
			if assert.NotNil(t, flag, "%s %s", group.Name(), sub.Name()) {
				assert.Equal(t, "s", flag.Shorthand)
			}
		}
	}
}

func TestVersionCommand(t *testing.T) {
	setupCLI(t)
	viper.Set(keyOutput, constants.FormatJSON)

	output, err := runCommand(t, NewVersionCommand("1.2.3", "abc", "today"))
	require.NoError(t, err)

	var info VersionInfo
	decodeJSONOutput(t, output, &info)
	assert.Equal(t, "1.2.3", info.Version)
	assert.Equal(t, "abc", info.Commit)
	assert.Equal(t, tictail.DefaultUserAgent(), info.UserAgent)

	viper.Set(keyOutput, constants.FormatTable)
	output, err = runCommand(t, NewVersionCommand("1.2.3", "abc", "today"))
	require.NoError(t, err)
	assert.Contains(t, output, "1.2.3")
}

func TestMeCommand(t *testing.T) {
	setupCLI(t)
	viper.Set(keyOutput, constants.FormatJSON)

	output, err := runCommand(t, NewMeCommand())
	require.NoError(t, err)

	var store map[string]interface{}
	decodeJSONOutput(t, output, &store)
	assert.Equal(t, tictailtest.StoreID, store["id"])
	assert.Equal(t, tictailtest.StoreName, store["name"])
}

func TestMeCommand_Forbidden(t *testing.T) {
	setupCLI(t)
	viper.Set(keyToken, "badkey")

	_, err := runCommand(t, NewMeCommand())
	require.Error(t, err)
	assert.True(t, tictail.IsForbidden(err))
}

func TestStoresGetCommand(t *testing.T) {
	setupCLI(t)

	output, err := runCommand(t, NewStoresCommand(), "get", tictailtest.StoreID)
	require.NoError(t, err)
	assert.Contains(t, output, tictailtest.StoreName)
}

func TestProductsCommands(t *testing.T) {
	setupCLI(t)

	output, err := runCommand(t, NewProductsCommand(), "list")
	require.NoError(t, err)
	assert.Contains(t, output, tictailtest.ProductTitle)
	assert.Contains(t, output, "2014-05-02T10:12:00")

	output, err = runCommand(t, NewProductsCommand(), "list", "--categories", "47du")
	require.NoError(t, err)
	assert.Contains(t, output, "No records found")

	viper.Set(keyOutput, constants.FormatJSON)

	output, err = runCommand(t, NewProductsCommand(), "list", "--store", tictailtest.StoreID,
		"--categories", tictailtest.CategoryID)
	require.NoError(t, err)

	var products []map[string]interface{}
	decodeJSONOutput(t, output, &products)
	require.Len(t, products, 1)
	assert.Equal(t, tictailtest.ProductID, products[0]["id"])

	output, err = runCommand(t, NewProductsCommand(), "get", tictailtest.ProductID)
	require.NoError(t, err)

	var product map[string]interface{}
	decodeJSONOutput(t, output, &product)
	assert.Equal(t, tictailtest.ProductTitle, product["title"])
	assert.Equal(t, "2014-05-01T00:47:16Z", product["created_at"])
}

func TestCustomersCommands(t *testing.T) {
	setupCLI(t)
	viper.Set(keyOutput, constants.FormatYAML)

	output, err := runCommand(t, NewCustomersCommand(), "get", tictailtest.CustomerID)
	require.NoError(t, err)

	var customer map[string]interface{}
	require.NoError(t, yaml.Unmarshal([]byte(output), &customer))
	assert.Equal(t, tictailtest.CustomerEmail, customer["email"])

	output, err = runCommand(t, NewCustomersCommand(), "list", "--after", tictailtest.CustomerID)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", output)

	_, err = runCommand(t, NewCustomersCommand(), "get", "4EeL")
	require.Error(t, err)
	assert.True(t, tictail.IsNotFound(err))
}

func TestFollowersCommands(t *testing.T) {
	server, _ := setupCLI(t)
	viper.Set(keyOutput, constants.FormatJSON)

	output, err := runCommand(t, NewFollowersCommand(), "create", "m8r-fixc0m@mailinator.com")
	require.NoError(t, err)

	var follower map[string]interface{}
	decodeJSONOutput(t, output, &follower)
	assert.Equal(t, "m8r-fixc0m@mailinator.com", follower["email"])
	require.Len(t, server.Followers(tictailtest.StoreID), 1)

	output, err = runCommand(t, NewFollowersCommand(), "list")
	require.NoError(t, err)

	var followers []map[string]interface{}
	decodeJSONOutput(t, output, &followers)
	require.Len(t, followers, 1)

	id, ok := follower["id"].(string)
	require.True(t, ok)

	output, err = runCommand(t, NewFollowersCommand(), "delete", id)
	require.NoError(t, err)
	assert.Contains(t, output, "Deleted follower "+id)
	assert.Empty(t, server.Followers(tictailtest.StoreID))

	_, err = runCommand(t, NewFollowersCommand(), "create", "")
	require.Error(t, err)
	assert.True(t, tictail.IsBadRequest(err))
}

func TestOrdersCommands(t *testing.T) {
	setupCLI(t)
	viper.Set(keyOutput, constants.FormatJSON)

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"all", []string{"list"}, 1},
		{"modified before", []string{"list", "--modified-before", "2014-06-10T23:07:49.674233"}, 1},
		{"modified after", []string{"list", "--modified-after", "2014-06-01T00:00:00"}, 0},
		{"modified after with zone", []string{"list", "--modified-after", "2014-04-01T00:00:00+02:00"}, 1},
		{"after", []string{"list", "--after", tictailtest.OrderID}, 0},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			output, err := runCommand(t, NewOrdersCommand(), testCase.args...)
			require.NoError(t, err)

			var orders []map[string]interface{}
			decodeJSONOutput(t, output, &orders)
			assert.Len(t, orders, testCase.want)
		})
	}

	_, err := runCommand(t, NewOrdersCommand(), "list", "--modified-after", "last week")
	assert.ErrorIs(t, err, constants.ErrInvalidTimeFilter)

	output, err := runCommand(t, NewOrdersCommand(), "get", tictailtest.OrderID)
	require.NoError(t, err)

	var order map[string]interface{}
	decodeJSONOutput(t, output, &order)
	assert.Equal(t, tictailtest.OrderID, order["id"])

	transaction, ok := order["transaction"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "paid", transaction["status"])
}

func TestThemeCommand(t *testing.T) {
	setupCLI(t)
	viper.Set(keyOutput, constants.FormatYAML)

	output, err := runCommand(t, NewThemeCommand(), "get", "--store", tictailtest.StoreID)
	require.NoError(t, err)
	assert.Contains(t, output, "id: "+tictailtest.ThemeID)
}

func TestCategoriesCommand(t *testing.T) {
	setupCLI(t)

	output, err := runCommand(t, NewCategoriesCommand(), "list")
	require.NoError(t, err)
	assert.Contains(t, output, tictailtest.CategoryTitle)
	assert.Contains(t, output, tictailtest.SubCategoryTitle)

	viper.Set(keyOutput, constants.FormatJSON)

	output, err = runCommand(t, NewCategoriesCommand(), "list")
	require.NoError(t, err)

	var categories []map[string]interface{}
	decodeJSONOutput(t, output, &categories)
	require.Len(t, categories, 2)
	assert.Nil(t, categories[0]["parent_id"])
	assert.Equal(t, tictailtest.CategoryID, categories[1]["parent_id"])
}

func TestCardsCreateCommand(t *testing.T) {
	server, _ := setupCLI(t)
	viper.Set(keyOutput, constants.FormatJSON)

	output, err := runCommand(t, NewCardsCommand(), "create", "--data", `{"card_type": "text", "title": "Hello"}`)
	require.NoError(t, err)

	var card map[string]interface{}
	decodeJSONOutput(t, output, &card)
	assert.Equal(t, "text", card["card_type"])
	assert.Len(t, server.Cards(tictailtest.StoreID), 1)

	_, err = runCommand(t, NewCardsCommand(), "create", "--data", "not json")
	assert.ErrorIs(t, err, constants.ErrInvalidJSONData)

	_, err = runCommand(t, NewCardsCommand(), "create", "--data", "{}")
	require.Error(t, err)
	assert.True(t, tictail.IsBadRequest(err))
}

func TestConfigCommands(t *testing.T) {
	_, configFile := setupCLI(t)

	_, err := runCommand(t, NewConfigCommand(), "set", keyStore, "abc")
	require.NoError(t, err)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)

	var saved Config
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, "abc", saved.Store)
	assert.NotEmpty(t, saved.Token)

	_, err = runCommand(t, NewConfigCommand(), "set", keySkipTLSVerify, "maybe")
	require.Error(t, err)

	_, err = runCommand(t, NewConfigCommand(), "set", "colour", "blue")
	assert.ErrorIs(t, err, constants.ErrUnknownConfigKey)

	viper.Set(keyOutput, constants.FormatJSON)

	output, err := runCommand(t, NewConfigCommand(), "show")
	require.NoError(t, err)

	var shown Config
	decodeJSONOutput(t, output, &shown)
	assert.Equal(t, constants.MaskedSecret, shown.Token)
	assert.Equal(t, "abc", shown.Store)

	_, err = runCommand(t, NewConfigCommand(), "unset", keyStore)
	require.NoError(t, err)

	data, err = os.ReadFile(configFile)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "store:")
}

func TestLoginCommand(t *testing.T) {
	server, configFile := setupCLI(t)
	viper.Set(keyToken, "")

	cmd := NewLoginCommand()
	cmd.SetIn(strings.NewReader(server.Token() + "\n"))

	output, err := runCommand(t, cmd)
	require.NoError(t, err)
	assert.Contains(t, output, "Logged in to store "+tictailtest.StoreName)

	data, err := os.ReadFile(configFile)
	require.NoError(t, err)

	var saved Config
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, server.Token(), saved.Token)
	assert.Equal(t, tictailtest.StoreID, saved.Store)
}

func TestLoginCommand_Errors(t *testing.T) {
	setupCLI(t)
	viper.Set(keyToken, "")

	cmd := NewLoginCommand()
	cmd.SetIn(strings.NewReader("\n"))

	_, err := runCommand(t, cmd)
	assert.ErrorIs(t, err, constants.ErrTokenRequired)

	cmd = NewLoginCommand()
	cmd.SetIn(strings.NewReader("badkey\n"))

	_, err = runCommand(t, cmd)
	require.Error(t, err)
	assert.True(t, tictail.IsForbidden(err))
}

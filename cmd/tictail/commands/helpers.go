package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tictail/tictail-go/internal/constants"
	"github.com/tictail/tictail-go/pkg/tictail"
	"github.com/tictail/tictail-go/pkg/tictailclient"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Configuration keys shared by flags, environment and the config file.
const (
	keyConfig        = "config"
	keyToken         = "token"
	keyBaseURL       = "base_url"
	keyStore         = "store"
	keyOutput        = "output"
	keyVerbose       = "verbose"
	keySkipTLSVerify = "skip_tls_verify"
)

const (
	storeFlag      = "store"
	truncateSuffix = "..."
)

// createClient builds an API client from the resolved configuration.
func createClient(cmd *cobra.Command) (tictail.Client, error) {
	token := strings.TrimSpace(viper.GetString(keyToken))
	if token == "" {
		return nil, constants.ErrNoTokenConfigured
	}

	return newClient(cmd, token)
}

func newClient(cmd *cobra.Command, token string) (tictail.Client, error) {
	config := &tictail.Config{
		AccessToken:   token,
		BaseURL:       viper.GetString(keyBaseURL),
		SkipTLSVerify: viper.GetBool(keySkipTLSVerify),
	}

	if viper.GetBool(keyVerbose) {
		config.Debug = true
		config.Logger = &writerLogger{out: cmd.ErrOrStderr()}
	}

	client, err := tictailclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// addStoreFlag registers --store on commands that work inside a store.
func addStoreFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(storeFlag, "s", "", "store ID (default: 'store' from config, then the token's store)")
}

// resolveStoreID picks the store from --store, then the config file, then
// the store that owns the access token.
func resolveStoreID(ctx context.Context, cmd *cobra.Command, client tictail.Client) (string, error) {
	if flag := cmd.Flags().Lookup(storeFlag); flag != nil && flag.Value.String() != "" {
		return flag.Value.String(), nil
	}

	if storeID := viper.GetString(keyStore); storeID != "" {
		return storeID, nil
	}

	store, err := client.Me().Get(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve store: %w", err)
	}

	storeID, ok := store.GetString(constants.DefaultIdentifier)
	if !ok || storeID == "" {
		return "", constants.ErrStoreRequired
	}

	return storeID, nil
}

// runInStore creates a client, resolves the store and calls fn.
func runInStore(cmd *cobra.Command, fn func(ctx context.Context, client tictail.Client, storeID string) error) error {
	ctx := commandContext(cmd)

	client, err := createClient(cmd)
	if err != nil {
		return err
	}

	storeID, err := resolveStoreID(ctx, cmd, client)
	if err != nil {
		return err
	}

	return fn(ctx, client, storeID)
}

// commandContext returns the command's context, which is nil when the
// command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}

// addListFlags registers the paging filters every list endpoint accepts.
func addListFlags(cmd *cobra.Command) {
	cmd.Flags().String("before", "", "only return records before this ID")
	cmd.Flags().String("after", "", "only return records after this ID")
	cmd.Flags().Int("limit", 0, "maximum number of records to return")
}

func listParamsFromFlags(cmd *cobra.Command) *tictail.ListParams {
	params := tictail.NewListParams()

	if before, _ := cmd.Flags().GetString("before"); before != "" {
		params.WithBefore(before)
	}

	if after, _ := cmd.Flags().GetString("after"); after != "" {
		params.WithAfter(after)
	}

	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 {
		params.WithLimit(limit)
	}

	return params
}

// parseTimeFlag reads an ISO-8601 time flag. Values without a zone are UTC.
func parseTimeFlag(cmd *cobra.Command, name string) (time.Time, bool, error) {
	value, _ := cmd.Flags().GetString(name)
	if value == "" {
		return time.Time{}, false, nil
	}

	parsed, ok := tictail.ParseTime(value)
	if !ok {
		return time.Time{}, false, fmt.Errorf("--%s %q: %w", name, value, constants.ErrInvalidTimeFilter)
	}

	return parsed, true, nil
}

// renderResource prints one record as a property table, JSON or YAML.
func renderResource(cmd *cobra.Command, resource tictail.Resource) error {
	out := cmd.OutOrStdout()

	switch viper.GetString(keyOutput) {
	case constants.FormatJSON:
		return writeJSON(out, plainValue(resource.ToMap()))
	case constants.FormatYAML:
		return writeYAML(out, plainValue(resource.ToMap()))
	default:
		table := tablewriter.NewWriter(out)
		table.Header("Property", "Value")

		for _, item := range resource.Items() {
			_ = table.Append(columnTitle(item.Key), formatValue(item.Value))
		}

		if err := table.Render(); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	return nil
}

// renderResources prints a list. Tables show only columns; JSON and YAML
// carry every field.
func renderResources[T tictail.Resource](cmd *cobra.Command, resources []T, columns ...string) error {
	out := cmd.OutOrStdout()
	format := viper.GetString(keyOutput)

	if format == constants.FormatJSON || format == constants.FormatYAML {
		records := make([]interface{}, 0, len(resources))
		for _, resource := range resources {
			records = append(records, plainValue(resource.ToMap()))
		}

		if format == constants.FormatJSON {
			return writeJSON(out, records)
		}

		return writeYAML(out, records)
	}

	if len(resources) == 0 {
		_, _ = fmt.Fprintln(out, "No records found")

		return nil
	}

	if len(columns) == 0 {
		columns = resources[0].Keys()
	}

	headers := make([]interface{}, 0, len(columns))
	for _, column := range columns {
		headers = append(headers, columnTitle(column))
	}

	table := tablewriter.NewWriter(out)
	table.Header(headers...)

	for _, resource := range resources {
		row := make([]interface{}, 0, len(columns))
		for _, column := range columns {
			value, _ := resource.Lookup(column)
			row = append(row, formatValue(value))
		}

		_ = table.Append(row...)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func writeJSON(out io.Writer, value interface{}) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	return encoder.Encode(value)
}

func writeYAML(out io.Writer, value interface{}) error {
	encoder := yaml.NewEncoder(out)
	defer func() { _ = encoder.Close() }()

	return encoder.Encode(value)
}

// columnTitle turns a field name such as modified_at into "Modified At".
func columnTitle(name string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(name, "_", " "))
}

// formatValue renders a field for a table cell.
func formatValue(value interface{}) string {
	var text string

	switch v := value.(type) {
	case nil:
		return constants.NotAvailable
	case string:
		text = v
	case time.Time:
		text = tictail.FormatTime(v)
	case json.Number:
		text = v.String()
	case map[string]interface{}, []interface{}:
		data, err := json.Marshal(plainValue(v))
		if err != nil {
			text = fmt.Sprint(v)
		} else {
			text = string(data)
		}
	default:
		text = fmt.Sprint(v)
	}

	if utf8.RuneCountInString(text) > constants.ValueDisplayLength {
		runes := []rune(text)
		text = string(runes[:constants.ValueDisplayLength-len(truncateSuffix)]) + truncateSuffix
	}

	return text
}

// plainValue converts json.Number to int64 or float64 so YAML emits numbers
// rather than quoted strings.
func plainValue(value interface{}) interface{} {
	switch v := value.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}

		if f, err := v.Float64(); err == nil {
			return f
		}

		return v.String()
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for key, item := range v {
			out[key] = plainValue(item)
		}

		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = plainValue(item)
		}

		return out
	default:
		return value
	}
}

// writerLogger prints client debug output for --verbose.
type writerLogger struct {
	out io.Writer
}

func (l *writerLogger) log(level, msg string, fields map[string]interface{}) {
	var line strings.Builder

	line.WriteString("[" + level + "] " + msg)

	for _, key := range slices.Sorted(maps.Keys(fields)) {
		fmt.Fprintf(&line, " %s=%v", key, fields[key])
	}

	_, _ = fmt.Fprintln(l.out, line.String())
}

func (l *writerLogger) Debug(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

func (l *writerLogger) Info(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

func (l *writerLogger) Warn(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

func (l *writerLogger) Error(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}

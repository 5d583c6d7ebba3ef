package constants

import "time"

// Library identity.
const (
	// LibraryName is sent as the first part of the User-Agent header.
	LibraryName = "tictail-go"

	// Version is the library version reported in the User-Agent header.
	Version = "0.4.0"
)

// API location defaults.
const (
	// DefaultProtocol is the scheme used to reach the API.
	DefaultProtocol = "https"

	// DefaultBaseHost is the API host.
	DefaultBaseHost = "api.tictail.com"

	// DefaultAPIVersion is the API version these bindings speak.
	DefaultAPIVersion = 1

	// DefaultSupportEmail is used in synthesized error messages when the
	// API did not supply one.
	DefaultSupportEmail = "developers@tictail.com"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for a single API call.
	DefaultHTTPTimeout = 20 * time.Second
)

// Retry limits. Retries are off unless RetryMax is set.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// HTTP status codes with special handling.
const (
	// HTTPStatusBadGateway signals the API is unreachable behind the gateway.
	HTTPStatusBadGateway = 502
)

// Resource model.
const (
	// DefaultIdentifier is the primary key field of a resource.
	DefaultIdentifier = "id"

	// FieldCreatedAt is parsed into a time value wherever it appears.
	FieldCreatedAt = "created_at"

	// FieldModifiedAt is parsed into a time value wherever it appears.
	FieldModifiedAt = "modified_at"
)

// Output formats.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// MinimumArgumentCount is the argument count of KEY VALUE commands.
	MinimumArgumentCount = 2

	// ValueDisplayLength truncates long values in tables.
	ValueDisplayLength = 60
)

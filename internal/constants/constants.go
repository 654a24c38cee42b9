package constants

import "time"

// Version is the library version reported in the User-Agent header.
const Version = "0.1.0"

// DefaultUserAgent is sent when no user agent is configured.
const DefaultUserAgent = "paykit-go/" + Version

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Configuration file location.
const (
	// ConfigDirName is the directory under the user's home holding the CLI config.
	ConfigDirName = ".paykit"

	// ConfigFileName is the CLI config file name.
	ConfigFileName = "config.yml"

	// EnvPrefix is the prefix viper uses for environment overrides.
	EnvPrefix = "PAYKIT"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default per-call deadline.
	DefaultHTTPTimeout = 30 * time.Second

	// AuditFlushTimeout bounds how long the CLI waits for audit events on exit.
	AuditFlushTimeout = 2 * time.Second
)

// Audit publishing.
const (
	// DefaultAuditSubject is the NATS subject audit events are published on.
	DefaultAuditSubject = "paykit.audit"
)

// Pagination and display limits.
const (
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 10

	// StringTruncationLength is the default length for truncating strings.
	StringTruncationLength = 40
)

// Validation and limits.
const (
	// MinimumArgumentCount is the minimum number of command line arguments.
	MinimumArgumentCount = 2
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// DisplayTimeFormat is used for timestamps in table output.
	DisplayTimeFormat = "2006-01-02 15:04:05"
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

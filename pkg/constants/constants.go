// Package constants provides shared constants for the revenue-forecast application.
package constants

// Calculator constants
const (
	// DefaultPrincipal is the staked amount used when none is configured
	DefaultPrincipal = 10000.0

	// DefaultPeriodMonths is the staking period used when none is configured
	DefaultPeriodMonths = 12

	// MinPeriodMonths is the shortest staking period the calculator accepts
	MinPeriodMonths = 1

	// MaxPeriodMonths is the longest staking period the calculator accepts
	MaxPeriodMonths = 36

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatTable is the bordered terminal table output format
	OutputFormatTable = "table"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "REVENUE_FORECAST_"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum request body size (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024

	// RequestIDHeader carries the per-request identifier
	RequestIDHeader = "X-Request-ID"
)

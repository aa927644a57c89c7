// Package constants provides shared constants for the equity-calculator application.
package constants

// Projection constants
const (
	// HorizonMonths is the number of months every equity projection covers
	HorizonMonths = 24

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// DefaultCrashPercentage is the value a newly added scenario starts with
	DefaultCrashPercentage = 0.0

	// ScenarioLabelPrefix precedes the 1-based position in scenario labels
	ScenarioLabelPrefix = "Crash"

	// NegativeEquityLabel names the deposit reference series on charts
	NegativeEquityLabel = "Negative Equity"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// ServerConfigEnv names the environment variable that may point at the server config
	ServerConfigEnv = "EQUITY_SERVER_CONFIG"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultShutdownTimeoutSeconds bounds graceful shutdown of the HTTP server
	DefaultShutdownTimeoutSeconds = 10
)

package driven

// ConfigStore provides access to application configuration.
// Implementations handle persistence (e.g., TOML files).
type ConfigStore interface {
	// BenchmarkCommand returns the configured default benchmark
	// command line (program plus fixed arguments).
	BenchmarkCommand() []string

	// SetBenchmarkCommand stores and persists the default benchmark
	// command line.
	SetBenchmarkCommand(command []string) error

	// DataDir returns the configured data directory, or empty string
	// when unset (adapters then fall back to their own default).
	DataDir() string

	// Path returns the configuration file path.
	Path() string
}

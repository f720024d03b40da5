// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() initializer to build a Config with defaults.
// - Load() layers defaults, an optional YAML file, and environment.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CSVPath points at the career-stats CSV loaded on startup.
	CSVPath string `koanf:"csv_path"`

	// IDColumn and PositionColumn name the identifier and position
	// columns of the CSV.
	IDColumn       string `koanf:"id_column"`
	PositionColumn string `koanf:"position_column"`

	// Metric selects the distance metric: euclidean or cosine.
	Metric string `koanf:"metric"`

	// MaxK caps the number of similar players per query.
	MaxK int `koanf:"max_k"`

	// MaxCareerLimit caps GET /career?limit.
	MaxCareerLimit int `koanf:"max_career_limit"`

	// KeyStats lists raw stat columns echoed back in query results for
	// display. Columns absent from the dataset are ignored.
	KeyStats []string `koanf:"key_stats"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		CSVPath:        "NBA_career_stats.csv",
		IDColumn:       "player",
		PositionColumn: "pos",
		Metric:         "euclidean",
		MaxK:           5,
		MaxCareerLimit: 100,
		KeyStats:       []string{"pts", "reb", "ast"},
	}
}

// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig               `mapstructure:"app"`
	Camunda  CamundaConfig           `mapstructure:"camunda"`
	Database DatabaseConfig          `mapstructure:"database"`
	Catalog  CatalogConfig           `mapstructure:"catalog"`
	Wizard   WizardConfig            `mapstructure:"wizard"`
	Matching MatchingConfig          `mapstructure:"matching"`
	HTTP     HTTPConfig              `mapstructure:"http"`
	Registry RegistryConfig          `mapstructure:"registry"`
	Workers  map[string]WorkerConfig `mapstructure:"workers"`
	Logging  LoggingConfig           `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Redis RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	// Connection pool; zero values fall back to the client defaults below.
	PoolSize     int `mapstructure:"pool_size"`
	MinIdleConns int `mapstructure:"min_idle_conns"`
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"`     // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"` // For error handling
}

// --- Domain Configuration Sections ---

// CatalogConfig points at the platform directory document. A non-empty URL
// takes precedence over Path. An empty SchemaPath selects the embedded schema.
type CatalogConfig struct {
	Path         string `mapstructure:"path"`
	URL          string `mapstructure:"url"`
	FetchTimeout int    `mapstructure:"fetch_timeout"` // milliseconds
	SchemaPath   string `mapstructure:"schema_path"`
	// FeaturesPath is the feature release document behind /api/features.
	FeaturesPath string `mapstructure:"features_path"`
}

// WizardConfig holds settings for transient wizard sessions.
type WizardConfig struct {
	SessionTTL int `mapstructure:"session_ttl"` // seconds
}

type MatchingConfig struct {
	DefaultLimit int `mapstructure:"default_limit"`
}

// HTTPConfig holds settings for the read API.
type HTTPConfig struct {
	Address         string `mapstructure:"address"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

type RegistryConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"velocity-proxy/internal/common"
)

// Config holds the complete application configuration
type Config struct {
	// Server configuration
	Server ServerConfig `mapstructure:"server"`

	// Velocity configuration
	Velocity VelocityConfig `mapstructure:"velocity"`

	// Kubernetes configuration
	Kubernetes KubernetesConfig `mapstructure:"kubernetes"`

	// Scanner configuration
	Scanner ScannerConfig `mapstructure:"scanner"`

	// Application configuration
	App AppConfig `mapstructure:"app"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string `mapstructure:"port"`

	// ShutdownTimeout is the timeout for server shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// VelocityConfig holds remote analytics platform configuration
type VelocityConfig struct {
	// BaseURL is the base URL of the Velocity instance
	BaseURL string `mapstructure:"base_url"`

	// Username is the account identity used to generate tokens
	Username string `mapstructure:"username"`

	// Password is the account secret used to generate tokens
	Password string `mapstructure:"password"`

	// PortalURL is the portal endpoint that issues tokens
	PortalURL string `mapstructure:"portal_url"`

	// Timeout is the per-call timeout for outbound requests
	Timeout time.Duration `mapstructure:"timeout"`

	// InsecureSkipVerify disables TLS verification (development only)
	InsecureSkipVerify bool `mapstructure:"insecure_skip_verify"`
}

// KubernetesConfig holds Kubernetes client configuration
type KubernetesConfig struct {
	// Namespace is the default namespace for the scanner
	Namespace string `mapstructure:"namespace"`

	// ConfigPath is the path to the kubeconfig file
	ConfigPath string `mapstructure:"config_path"`

	// MasterURL is the Kubernetes API server URL
	MasterURL string `mapstructure:"master_url"`
}

// ScannerConfig holds pod log scanner configuration
type ScannerConfig struct {
	// Namespace is the namespace whose pods are scanned
	Namespace string `mapstructure:"namespace"`

	// HoursBack is how far back logs are fetched
	HoursBack int `mapstructure:"hours_back"`
}

// AppConfig holds application configuration
type AppConfig struct {
	// Component is the name of the component
	Component string `mapstructure:"component"`

	// LogLevel is the log level
	LogLevel string `mapstructure:"log_level"`
}

// Load loads configuration from files and environment
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	setDefaults(v)

	// Configure paths and file types
	configureViper(v)

	// Read configs file
	if err := readConfigs(v); err != nil {
		return nil, err
	}

	// Unmarshal configuration
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configs: %w", err)
	}

	// Normalize endpoint URLs before validation
	config.Velocity.BaseURL = strings.TrimRight(config.Velocity.BaseURL, "/")
	config.Velocity.PortalURL = strings.TrimRight(config.Velocity.PortalURL, "/")

	// Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// configureViper sets up Viper configuration paths and types
func configureViper(v *viper.Viper) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("/etc/velocity-proxy/")

	// Enable environment variables
	v.AutomaticEnv()
	v.SetEnvPrefix("VELOCITY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// readConfigs attempts to read the configuration file
func readConfigs(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		// Only return error if it's not a "configs file not found" error
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read configs file: %w", err)
		}
		// Otherwise, continue with defaults and environment variables
	}
	return nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	// Validate server configuration
	if cfg.Server.Port == "" {
		return common.NewConfigError("server.port", "value is required")
	}

	// All four credential values are required for startup
	if cfg.Velocity.BaseURL == "" {
		return common.NewConfigError("velocity.base_url", "value is required")
	}
	if cfg.Velocity.Username == "" {
		return common.NewConfigError("velocity.username", "value is required")
	}
	if cfg.Velocity.Password == "" {
		return common.NewConfigError("velocity.password", "value is required")
	}
	if cfg.Velocity.PortalURL == "" {
		return common.NewConfigError("velocity.portal_url", "value is required")
	}

	if cfg.Velocity.Timeout <= 0 {
		return common.NewConfigError("velocity.timeout", "must be positive")
	}

	// Validate scanner configuration
	if cfg.Scanner.HoursBack <= 0 {
		return common.NewConfigError("scanner.hours_back", "must be positive")
	}

	return nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	// Velocity defaults. The credential keys default to empty so Viper
	// knows them and environment overrides reach Unmarshal.
	v.SetDefault("velocity.base_url", "")
	v.SetDefault("velocity.username", "")
	v.SetDefault("velocity.password", "")
	v.SetDefault("velocity.portal_url", "")
	v.SetDefault("velocity.timeout", 30*time.Second)
	v.SetDefault("velocity.insecure_skip_verify", false)

	// Kubernetes defaults
	v.SetDefault("kubernetes.namespace", "default")

	// Scanner defaults
	v.SetDefault("scanner.namespace", "default")
	v.SetDefault("scanner.hours_back", 2)

	// App defaults
	v.SetDefault("app.component", "velocity-proxy")
	v.SetDefault("app.log_level", "info")
}

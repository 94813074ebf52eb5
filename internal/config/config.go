package config

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/lcmap-client/internal/constants"
	"github.com/oshokin/lcmap-client/internal/logger"
	"github.com/oshokin/lcmap-client/internal/utils"
)

// Config holds all configuration settings.
// It is built once at startup and treated as read-only afterwards.
type Config struct {
	// Endpoint is the base URL of the LCMAP REST API.
	Endpoint string `mapstructure:"endpoint"`
	// Version is the API version requested through the Accept header.
	Version string `mapstructure:"version"`
	// ContentType is the content type requested through the Accept header (e.g. "json" or "application/json").
	ContentType string `mapstructure:"content_type"`
	// Username is the account name used by "auth login".
	Username string `mapstructure:"username"`
	// Password is the account password used by "auth login".
	Password string `mapstructure:"password"`
	// AuthToken is the token sent in the X-AuthToken header when no credential manager provides one.
	AuthToken string `mapstructure:"auth_token"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// Timeout is the overall timeout of a single HTTP request (e.g. "30s").
	Timeout string `mapstructure:"timeout"`
	// MaxLogLength limits the size of logged request and response dumps (e.g. "1MB", "64KiB").
	MaxLogLength string `mapstructure:"max_log_length"`
	// NoResourceStatus is the HTTP status that is recovered into a "Resource not found" envelope.
	NoResourceStatus int `mapstructure:"no_resource_status"`
	// PoolSize is the maximum number of per-endpoint connection pools kept alive.
	PoolSize int `mapstructure:"pool_size"`
	// UseKeyring indicates whether tokens are persisted in the system keyring.
	UseKeyring bool `mapstructure:"use_keyring"`
	// KeyringService is the keyring service name tokens are stored under.
	KeyringService string `mapstructure:"keyring_service"`
	// MetricsEnabled indicates whether Prometheus request metrics are collected.
	MetricsEnabled bool `mapstructure:"metrics_enabled"`
	// ConfigFilename is the file the configuration was read from (empty when defaults only).
	ConfigFilename string `mapstructure:"-"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `mapstructure:"-"`
	// ParsedTimeout is the parsed request timeout.
	ParsedTimeout time.Duration `mapstructure:"-"`
	// ParsedMaxLogLength is the parsed maximum log dump length in bytes.
	ParsedMaxLogLength uint64 `mapstructure:"-"`
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".lcmap-client.yaml"

	// EnvPrefix is the prefix of environment variables overriding configuration keys (e.g. LCMAP_ENDPOINT).
	EnvPrefix = "LCMAP"

	// DefaultMaxLogLength is the default maximum size (in bytes) of logged request/response dumps.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// DefaultTimeout is the default request timeout.
	DefaultTimeout = "60s"

	// DefaultPoolSize is the default number of per-endpoint connection pools.
	DefaultPoolSize = 16

	// DefaultKeyringService is the default keyring service name.
	DefaultKeyringService = "lcmap-client"
)

// Static error definitions for better error handling.
var (
	// ErrEmptyEndpoint indicates that the API endpoint is missing.
	ErrEmptyEndpoint = errors.New("endpoint cannot be empty")
	// ErrInvalidEndpoint indicates that the API endpoint is not an absolute http(s) URL.
	ErrInvalidEndpoint = errors.New("endpoint must be an absolute http or https URL")
	// ErrEmptyVersion indicates that the API version is missing.
	ErrEmptyVersion = errors.New("version cannot be empty")
	// ErrEmptyContentType indicates that the content type is missing.
	ErrEmptyContentType = errors.New("content_type cannot be empty")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidTimeout indicates that the timeout is not positive.
	ErrInvalidTimeout = errors.New("timeout must be positive")
	// ErrInvalidNoResourceStatus indicates that the no-resource status is not an HTTP status code.
	ErrInvalidNoResourceStatus = errors.New("no_resource_status must be an HTTP status code")
	// ErrInvalidPoolSize indicates that the pool size is not positive.
	ErrInvalidPoolSize = errors.New("pool_size must be a positive integer")
	// ErrEmptyKeyringService indicates that the keyring is enabled without a service name.
	ErrEmptyKeyringService = errors.New("keyring_service cannot be empty when use_keyring is enabled")
)

// LoadConfig loads configuration settings from a YAML file and LCMAP_* environment variables.
// An empty filename means the default file, which may be absent; an explicit file must exist.
func LoadConfig(configFilename string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	isExplicit := configFilename != ""
	if !isExplicit {
		configFilename = DefaultConfigFilename
	}

	v.SetConfigFile(configFilename)
	v.SetConfigType("yaml")

	usedFilename := configFilename

	if err := v.ReadInConfig(); err != nil {
		if isExplicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}

		usedFilename = ""
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigFilename = usedFilename

	return &cfg, nil
}

// Default returns a validated configuration made of built-in defaults only.
func Default() *Config {
	cfg := &Config{
		Endpoint:         constants.DefaultEndpoint,
		Version:          constants.ServerVersion,
		ContentType:      constants.DefaultContentType,
		LogLevel:         "info",
		Timeout:          DefaultTimeout,
		MaxLogLength:     humanize.IBytes(DefaultMaxLogLength),
		NoResourceStatus: constants.NoResourceStatus,
		PoolSize:         DefaultPoolSize,
		KeyringService:   DefaultKeyringService,
	}

	// Built-in defaults are always valid.
	_ = ValidateConfig(cfg)

	return cfg
}

// ValidateConfig checks the configuration for validity and sets derived fields.
//
//nolint:cyclop // Validation functions naturally have high complexity due to sequential checks.
func ValidateConfig(cfg *Config) error {
	cfg.Endpoint = strings.TrimRight(strings.TrimSpace(cfg.Endpoint), "/")
	if cfg.Endpoint == "" {
		return ErrEmptyEndpoint
	}

	endpointURL, err := url.Parse(cfg.Endpoint)
	if err != nil || endpointURL.Host == "" ||
		(endpointURL.Scheme != "http" && endpointURL.Scheme != "https") {
		return fmt.Errorf("%w: '%s'", ErrInvalidEndpoint, cfg.Endpoint)
	}

	cfg.Version = strings.TrimSpace(cfg.Version)
	if cfg.Version == "" {
		return ErrEmptyVersion
	}

	cfg.ContentType = strings.TrimSpace(cfg.ContentType)
	if cfg.ContentType == "" {
		return ErrEmptyContentType
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedTimeout, err = time.ParseDuration(cfg.Timeout)
	if err != nil {
		return fmt.Errorf("failed to parse timeout: %w", err)
	}

	if cfg.ParsedTimeout <= 0 {
		return ErrInvalidTimeout
	}

	cfg.ParsedMaxLogLength = DefaultMaxLogLength

	maxLogLength := strings.TrimSpace(cfg.MaxLogLength)
	if maxLogLength != "" && maxLogLength != "0" {
		cfg.ParsedMaxLogLength, err = humanize.ParseBytes(maxLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse max log length: %w", err)
		}
	}

	if cfg.NoResourceStatus < http.StatusContinue || cfg.NoResourceStatus > 599 {
		return fmt.Errorf("%w: %d", ErrInvalidNoResourceStatus, cfg.NoResourceStatus)
	}

	if cfg.PoolSize <= 0 {
		return ErrInvalidPoolSize
	}

	cfg.KeyringService = strings.TrimSpace(cfg.KeyringService)
	if cfg.UseKeyring && cfg.KeyringService == "" {
		return ErrEmptyKeyringService
	}

	return nil
}

// MaxLogLengthInt64 returns the parsed maximum log length clamped to int64.
func (c *Config) MaxLogLengthInt64() int64 {
	return utils.SafeUint64ToInt64(c.ParsedMaxLogLength)
}

// SaveConfig saves the auth token to the configuration file while preserving the original format and order.
func SaveConfig(cfg *Config) error {
	configFile := cfg.ConfigFilename
	if configFile == "" {
		configFile = DefaultConfigFilename
	}

	// Read the original file content.
	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, cfg, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Update the auth_token value in the node tree.
	updateAuthTokenInNode(&node, cfg.AuthToken)

	// Marshal back to YAML (preserves order).
	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	// Write the file back with preserved order.
	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	cfg.ConfigFilename = configFile

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("endpoint", constants.DefaultEndpoint)
	v.SetDefault("version", constants.ServerVersion)
	v.SetDefault("content_type", constants.DefaultContentType)
	v.SetDefault("username", "")
	v.SetDefault("password", "")
	v.SetDefault("auth_token", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("max_log_length", "")
	v.SetDefault("no_resource_status", constants.NoResourceStatus)
	v.SetDefault("pool_size", DefaultPoolSize)
	v.SetDefault("use_keyring", false)
	v.SetDefault("keyring_service", DefaultKeyringService)
	v.SetDefault("metrics_enabled", false)
}

// handleMissingConfigFile creates a new config file holding the endpoint and token if it doesn't exist.
func handleMissingConfigFile(configFile string, cfg *Config, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	content, err := yaml.Marshal(map[string]string{
		"endpoint":   cfg.Endpoint,
		"auth_token": cfg.AuthToken,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, content, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	cfg.ConfigFilename = configFile

	return nil
}

// updateAuthTokenInNode updates the auth_token value in the YAML node tree, appending the key when absent.
func updateAuthTokenInNode(node *yaml.Node, authToken string) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		if keyNode.Value == "auth_token" {
			// Update the value while preserving style.
			valueNode.Value = authToken

			// Ensure it's quoted if it contains special characters.
			if valueNode.Style == 0 {
				valueNode.Style = yaml.DoubleQuotedStyle
			}

			return
		}
	}

	mapNode.Content = append(mapNode.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: "auth_token"},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: authToken, Style: yaml.DoubleQuotedStyle},
	)
}

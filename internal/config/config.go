package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	ConsumerName   string        `mapstructure:"consumer_name"`
	SubjectPrefix  string        `mapstructure:"subject_prefix"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// ChainConfig holds the RPC endpoints used for on-chain owner lookups
type ChainConfig struct {
	EthereumRPCURL string        `mapstructure:"ethereum_rpc_url"`
	PolygonRPCURL  string        `mapstructure:"polygon_rpc_url"`
	LookupTimeout  time.Duration `mapstructure:"lookup_timeout"`
}

// PolicyConfig holds the intermediary allow-lists for operation classification
type PolicyConfig struct {
	FiatRelays       []string `mapstructure:"fiat_relays"`
	CrossChainRelays []string `mapstructure:"cross_chain_relays"`
	CreditContracts  []string `mapstructure:"credit_contracts"`
}

// EngineConfig holds the window-loop tunables
type EngineConfig struct {
	BatchSize  int           `mapstructure:"batch_size"`
	RetryDelay time.Duration `mapstructure:"retry_delay"`
}

// NotifierConfig holds the change-notification settings
type NotifierConfig struct {
	Stream        string     `mapstructure:"stream"`
	SubjectPrefix string     `mapstructure:"subject_prefix"`
	NATS          NATSConfig `mapstructure:"nats"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	APIKeys []string `mapstructure:"api_keys"`
}

// AggregatorConfig holds configuration for the aggregator binary
type AggregatorConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig `mapstructure:"database"`
	NATS       NATSConfig     `mapstructure:"nats"`
	Chain      ChainConfig    `mapstructure:"chain"`
	Policy     PolicyConfig   `mapstructure:"policy"`
	Engine     EngineConfig   `mapstructure:"engine"`
	Notifier   NotifierConfig `mapstructure:"notifier"`
}

// APIConfig holds configuration for the read API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig   `mapstructure:"server"`
	Database   DatabaseConfig `mapstructure:"database"`
	Auth       AuthConfig     `mapstructure:"auth"`
}

// LoadAggregatorConfig loads configuration for the aggregator binary
func LoadAggregatorConfig(configFile string, envPath string) (*AggregatorConfig, error) {
	v := configureViper("aggregator", configFile, envPath)

	// Set defaults
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "MARKETPLACE_EVENTS")
	v.SetDefault("nats.consumer_name", "aggregator")
	v.SetDefault("nats.subject_prefix", "marketplace.events")
	v.SetDefault("chain.lookup_timeout", "30s")
	v.SetDefault("engine.batch_size", 100)
	v.SetDefault("engine.retry_delay", "5s")
	v.SetDefault("notifier.stream", "marketplace")
	v.SetDefault("notifier.subject_prefix", "marketplace.changes")
	v.SetDefault("notifier.nats.stream_name", "MARKETPLACE_CHANGES")
	v.SetDefault("notifier.nats.max_reconnects", 10)
	v.SetDefault("notifier.nats.reconnect_wait", "2s")
	v.SetDefault("policy.fiat_relays", []string{
		"0xed038688ecf1193f8d9717eb3930f0bf0d745cb4",
		"0xcb9bd5acd627e8fccf9eb8d4ba72aeb1cd8ff5ef",
		"0x4a598b7ec77b1562ad0df7dc64a162695ce4c78a",
		"0xab88cd272863b197b48762ea283f24a13f6586dd",
	})
	v.SetDefault("policy.cross_chain_relays", []string{
		"0xea749fd6ba492dbc14c24fe8a3d08769229b896c",
		"0xad6cea45f98444a922a2b4fe96b8c90f0862d2f4",
	})
	v.SetDefault("policy.credit_contracts", []string{
		"0xa1691afad71b9a92d329f1a95c39d3077d8f2f5f",
		"0x037566bc90f85e76587e1b07f9184585f09c1420",
		"0x6a03991dfa9d661ef7ad3c6f88b31f16e5a282cf",
		"0xe9f961e6ded4e1476bbee4faab886d63a2493eb9",
	})

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config AggregatorConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// LoadAPIConfig loads configuration for the read API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 10)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use environment variables
		} else {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config APIConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		// Search for config.yaml in multiple locations:
		// 1. Current directory
		v.AddConfigPath(".")
		// 2. Service-specific directory (e.g., cmd/aggregator/, cmd/api/)
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		// 3. Config directory
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("MARKETPLACE_INDEXER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	commonKeys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.consumer_name",
		"nats.subject_prefix",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Chain
		"chain.ethereum_rpc_url",
		"chain.polygon_rpc_url",
		"chain.lookup_timeout",
		// Policy
		"policy.fiat_relays",
		"policy.cross_chain_relays",
		"policy.credit_contracts",
		// Engine
		"engine.batch_size",
		"engine.retry_delay",
		// Notifier
		"notifier.stream",
		"notifier.subject_prefix",
		"notifier.nats.url",
		"notifier.nats.stream_name",
		"notifier.nats.subject_prefix",
		"notifier.nats.max_reconnects",
		"notifier.nats.reconnect_wait",
		"notifier.nats.connection_name",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		// Auth
		"auth.api_keys",
	}

	for _, key := range commonKeys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

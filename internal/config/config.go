package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config is the application configuration
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Redis       RedisConfig     `mapstructure:"redis"`
	Kafka       KafkaConfig     `mapstructure:"kafka"`
	Knowledge   KnowledgeConfig `mapstructure:"knowledge"`
	Store       StoreConfig     `mapstructure:"store"`
	Audit       AuditConfig     `mapstructure:"audit"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	HTTPPort        int           `mapstructure:"http_port"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RedisConfig contains the optional knowledge-cache settings
type RedisConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Host     string        `mapstructure:"host"`
	Port     int           `mapstructure:"port"`
	Password string        `mapstructure:"password"`
	Database int           `mapstructure:"database"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// KafkaConfig contains the optional event publisher settings
type KafkaConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// KnowledgeConfig contains knowledge base lookup settings
type KnowledgeConfig struct {
	SearchWorkers int `mapstructure:"search_workers"`
}

// StoreConfig contains report store retention settings
type StoreConfig struct {
	SweepSchedule string `mapstructure:"sweep_schedule"`
}

// AuditConfig contains audit trail settings
type AuditConfig struct {
	RingSize int `mapstructure:"ring_size"`
}

// Load reads configuration from the given file (optional) and environment
// variables prefixed with COMPLIANCE_.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("COMPLIANCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.http_port", 8080)
	v.SetDefault("server.request_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "30s")

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.database", 0)
	v.SetDefault("redis.cache_ttl", "15m")

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "compliance.report.generated")

	v.SetDefault("knowledge.search_workers", 4)

	v.SetDefault("store.sweep_schedule", "0 * * * *")

	v.SetDefault("audit.ring_size", 256)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.Server.HTTPPort)
	}
	if c.Knowledge.SearchWorkers <= 0 {
		return fmt.Errorf("knowledge search workers must be positive, got %d", c.Knowledge.SearchWorkers)
	}
	if c.Store.SweepSchedule == "" {
		return fmt.Errorf("store sweep schedule is required")
	}
	if c.Audit.RingSize <= 0 {
		return fmt.Errorf("audit ring size must be positive, got %d", c.Audit.RingSize)
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("Kafka brokers are required when Kafka is enabled")
	}
	return nil
}

// RedisAddr returns the Redis connection address
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}

// InitLogger initializes the logger based on configuration
func (c *Config) InitLogger() (*zap.Logger, error) {
	var zapConfig zap.Config
	if c.Environment == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

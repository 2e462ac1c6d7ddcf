package config

import (
	"fmt"
	"portal_electro/internal/domain/entities"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Backend  BackendConfig  `mapstructure:"backend"`
	Process  ProcessConfig  `mapstructure:"process"`
	Views    ViewsConfig    `mapstructure:"views"`
	Redis    RedisConfig    `mapstructure:"redis"`
	DynamoDB DynamoDBConfig `mapstructure:"dynamodb"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// BackendConfig points at the portal REST API.
type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type ProcessConfig struct {
	StatusEncoding string `mapstructure:"status_encoding"`
	HistoryNote    string `mapstructure:"history_note"`
}

func (p ProcessConfig) Encoding() entities.StatusEncoding {
	return entities.StatusEncoding(p.StatusEncoding)
}

type ViewsConfig struct {
	IdleTTL time.Duration `mapstructure:"idle_ttl"`
	MaxOpen int           `mapstructure:"max_open"`
}

// RedisConfig enables the edit lock and the lookup cache. An empty Addr disables both.
type RedisConfig struct {
	Addr      string        `mapstructure:"addr"`
	Password  string        `mapstructure:"password"`
	DB        int           `mapstructure:"db"`
	LockTTL   time.Duration `mapstructure:"lock_ttl"`
	LookupTTL time.Duration `mapstructure:"lookup_ttl"`
}

func (r RedisConfig) Enabled() bool { return r.Addr != "" }

// DynamoDBConfig enables the signature store. An empty SignaturesTable disables it.
type DynamoDBConfig struct {
	Region          string `mapstructure:"region"`
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	SignaturesTable string `mapstructure:"signatures_table"`
}

func (d DynamoDBConfig) Enabled() bool { return d.SignaturesTable != "" }

type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads the optional YAML file at configPath, then PORTAL_* environment variables
// (PORTAL_BACKEND_BASE_URL overrides backend.base_url).
func Load(configPath string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PORTAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)

	v.SetDefault("backend.base_url", "https://backportalelectro.onrender.com/api")
	v.SetDefault("backend.timeout", 20*time.Second)

	v.SetDefault("process.status_encoding", string(entities.StatusEncodingLegacy))
	v.SetDefault("process.history_note", "Actualización de etapa desde panel de procesos")

	v.SetDefault("views.idle_ttl", 30*time.Minute)
	v.SetDefault("views.max_open", 500)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.lock_ttl", 30*time.Second)
	v.SetDefault("redis.lookup_ttl", 5*time.Minute)

	v.SetDefault("dynamodb.region", "us-east-1")
	v.SetDefault("dynamodb.endpoint", "")
	v.SetDefault("dynamodb.access_key_id", "")
	v.SetDefault("dynamodb.secret_access_key", "")
	v.SetDefault("dynamodb.signatures_table", "")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "json")
}

// bindEnvVars keeps the conventional AWS and Redis variable names working.
func bindEnvVars(v *viper.Viper) {
	_ = v.BindEnv("dynamodb.region", "PORTAL_DYNAMODB_REGION", "AWS_REGION")
	_ = v.BindEnv("dynamodb.endpoint", "PORTAL_DYNAMODB_ENDPOINT", "DYNAMODB_ENDPOINT")
	_ = v.BindEnv("dynamodb.access_key_id", "PORTAL_DYNAMODB_ACCESS_KEY_ID", "AWS_ACCESS_KEY_ID")
	_ = v.BindEnv("dynamodb.secret_access_key", "PORTAL_DYNAMODB_SECRET_ACCESS_KEY", "AWS_SECRET_ACCESS_KEY")
	_ = v.BindEnv("redis.addr", "PORTAL_REDIS_ADDR", "REDIS_ADDRESS")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if strings.TrimSpace(c.Backend.BaseURL) == "" {
		return fmt.Errorf("backend.base_url is required")
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("backend.timeout must be positive")
	}
	if !c.Process.Encoding().Valid() {
		return fmt.Errorf("process.status_encoding must be %q or %q", entities.StatusEncodingLegacy, entities.StatusEncodingNumeric)
	}
	if c.Views.MaxOpen <= 0 {
		return fmt.Errorf("views.max_open must be positive")
	}
	if c.Redis.Enabled() && c.Redis.LockTTL <= 0 {
		return fmt.Errorf("redis.lock_ttl must be positive")
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

var errMissingSigningKey = errors.New("api.jwt_signing_key must be set")

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	SQLite   *SQLiteConfig   `mapstructure:"sqlite"`
	Redis    *RedisConfig    `mapstructure:"redis"`

	v *viper.Viper
}

type APIConfig struct {
	Environment        string        `mapstructure:"environment"`
	Port               string        `mapstructure:"port"`
	BaseURL            string        `mapstructure:"base_url"`
	AllowedCORSDomains []string      `mapstructure:"allowed_cors_domains"`
	JWTSigningKey      string        `mapstructure:"jwt_signing_key"`
	JWTExpiry          time.Duration `mapstructure:"jwt_expiry"`
	RequestTimeout     time.Duration `mapstructure:"request_timeout"`
	LoginRateLimit     int           `mapstructure:"login_rate_limit"`
	LoginRateWindow    time.Duration `mapstructure:"login_rate_window"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host         string        `mapstructure:"host"`
	Port         string        `mapstructure:"port"`
	User         string        `mapstructure:"user"`
	Password     string        `mapstructure:"password"`
	DB           string        `mapstructure:"db"`
	SSLMode      string        `mapstructure:"ssl_mode"`
	MaxOpenConns int           `mapstructure:"max_open_conns"`
	QueryTimeout time.Duration `mapstructure:"query_timeout"`
	ReadAttempts int           `mapstructure:"read_attempts"`
}

// SQLiteConfig is used instead of Postgres when Path is set and DATABASE_URL is not.
type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// Load reads the YAML file at path, then applies environment overrides such as
// API_PORT or API_JWT_SIGNING_KEY. A missing file is not an error.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Hosting platforms hand the port over as PORT.
	if err := v.BindEnv("api.port", "API_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("v.BindEnv -> %w", err)
	}

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{v: v}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := conf.validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

// Watch calls onChange whenever the loaded config file is modified on disk.
func (c *AppConfig) Watch(onChange func(fsnotify.Event)) {
	if c.v == nil || c.v.ConfigFileUsed() == "" {
		return
	}

	c.v.OnConfigChange(onChange)
	c.v.WatchConfig()
}

func (c *AppConfig) validate() error {
	if strings.TrimSpace(c.API.JWTSigningKey) == "" {
		return errMissingSigningKey
	}

	if c.API.JWTExpiry <= 0 {
		return fmt.Errorf("api.jwt_expiry must be positive, got %v", c.API.JWTExpiry)
	}

	if c.Postgres.ReadAttempts < 1 {
		c.Postgres.ReadAttempts = 1
	}

	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "3000")
	v.SetDefault("api.base_url", "localhost:3000")
	v.SetDefault("api.allowed_cors_domains", []string{"*"})
	v.SetDefault("api.jwt_signing_key", "")
	v.SetDefault("api.jwt_expiry", "24h")
	v.SetDefault("api.request_timeout", "10s")
	v.SetDefault("api.login_rate_limit", 10)
	v.SetDefault("api.login_rate_window", "1m")

	v.SetDefault("gin.mode", "release")

	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "evento")
	v.SetDefault("postgres.ssl_mode", "disable")
	v.SetDefault("postgres.max_open_conns", 10)
	v.SetDefault("postgres.query_timeout", "3s")
	v.SetDefault("postgres.read_attempts", 2)

	v.SetDefault("sqlite.path", "")

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "evento:rate_limit")
}

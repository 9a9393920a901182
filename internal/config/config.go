package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Source SourceConfig `mapstructure:"source"`
	Upload UploadConfig `mapstructure:"upload"`
	Cache  CacheConfig  `mapstructure:"cache"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// SourceConfig points at the SQL table of action rows. An empty DSN runs
// the service on uploaded workbooks only.
type SourceConfig struct {
	Driver       string `mapstructure:"driver"` // "postgres" / "sqlite3"
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type UploadConfig struct {
	MaxBytes int `mapstructure:"max_bytes"`
}

// CacheConfig bounds the datasets loaded from the SQL source. Uploaded
// workbooks are always kept.
type CacheConfig struct {
	MaxEntries int           `mapstructure:"max_entries"`
	SQLTTL     time.Duration `mapstructure:"sql_ttl"`
}

// Load reads config.yaml (if any) and WMS_* environment variables,
// e.g. WMS_SOURCE_DSN.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/wms-performance")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("source.driver", "postgres")
	v.SetDefault("source.dsn", "")
	v.SetDefault("source.max_open_conns", 10)
	v.SetDefault("upload.max_bytes", 32<<20)
	v.SetDefault("cache.max_entries", 64)
	v.SetDefault("cache.sql_ttl", "5m")

	v.SetEnvPrefix("WMS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("warning: could not read config file: %v", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Source.Driver {
	case "postgres", "sqlite3":
	default:
		return fmt.Errorf("source.driver must be postgres or sqlite3, got %q", c.Source.Driver)
	}
	if c.Upload.MaxBytes <= 0 {
		return errors.New("upload.max_bytes must be positive")
	}
	if c.Cache.MaxEntries <= 0 {
		return errors.New("cache.max_entries must be positive")
	}
	if c.Cache.SQLTTL <= 0 {
		return errors.New("cache.sql_ttl must be positive")
	}
	return nil
}

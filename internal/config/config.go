package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Line    LineConfig
	Catalog CatalogConfig
	Archive ArchiveConfig
	Log     LogConfig
}

type ServerConfig struct {
	Port int
}

type LineConfig struct {
	ChannelSecret string
	ChannelToken  string
}

type CatalogConfig struct {
	Path string
}

type ArchiveConfig struct {
	Enabled         bool
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", 3001)
	viper.SetDefault("LINE_CHANNEL_SECRET", "")
	viper.SetDefault("LINE_CHANNEL_TOKEN", "")
	viper.SetDefault("CATALOG_PATH", "")
	viper.SetDefault("ARCHIVE_ENABLED", false)
	viper.SetDefault("ARCHIVE_DB_HOST", "localhost")
	viper.SetDefault("ARCHIVE_DB_PORT", 3306)
	viper.SetDefault("ARCHIVE_DB_USER", "bagbot")
	viper.SetDefault("ARCHIVE_DB_PASSWORD", "secret")
	viper.SetDefault("ARCHIVE_DB_NAME", "bagbot")
	viper.SetDefault("ARCHIVE_DB_MAX_OPEN_CONNS", 10)
	viper.SetDefault("ARCHIVE_DB_MAX_IDLE_CONNS", 2)
	viper.SetDefault("ARCHIVE_DB_CONN_MAX_LIFETIME", "5m")
	viper.SetDefault("LOG_LEVEL", "info")

	connMaxLifetime, err := time.ParseDuration(viper.GetString("ARCHIVE_DB_CONN_MAX_LIFETIME"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: viper.GetInt("SERVER_PORT"),
		},
		Line: LineConfig{
			ChannelSecret: viper.GetString("LINE_CHANNEL_SECRET"),
			ChannelToken:  viper.GetString("LINE_CHANNEL_TOKEN"),
		},
		Catalog: CatalogConfig{
			Path: viper.GetString("CATALOG_PATH"),
		},
		Archive: ArchiveConfig{
			Enabled:         viper.GetBool("ARCHIVE_ENABLED"),
			Host:            viper.GetString("ARCHIVE_DB_HOST"),
			Port:            viper.GetInt("ARCHIVE_DB_PORT"),
			User:            viper.GetString("ARCHIVE_DB_USER"),
			Password:        viper.GetString("ARCHIVE_DB_PASSWORD"),
			Name:            viper.GetString("ARCHIVE_DB_NAME"),
			MaxOpenConns:    viper.GetInt("ARCHIVE_DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    viper.GetInt("ARCHIVE_DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: connMaxLifetime,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate enforces the startup boundary contract: the process refuses to
// start without LINE channel credentials.
func (c *Config) validate() error {
	if c.Line.ChannelSecret == "" {
		return fmt.Errorf("LINE_CHANNEL_SECRET is required")
	}
	if c.Line.ChannelToken == "" {
		return fmt.Errorf("LINE_CHANNEL_TOKEN is required")
	}
	return nil
}

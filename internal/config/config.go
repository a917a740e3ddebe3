package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config is read from the environment; a .env file is loaded first by main.
type Config struct {
	Port        int
	Store       string
	LogLevel    string
	AutoMigrate bool
	DB          DBConfig
}

type DBConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	Database string
	Schema   string
}

// DSN builds a key/value connection string for gorm's postgres driver.
func (d DBConfig) DSN() string {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		d.Host, d.Username, d.Password, d.Database, d.Port)
	if d.Schema != "" {
		dsn += " search_path=" + d.Schema
	}
	return dsn
}

func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("PORT", 8080)
	v.SetDefault("TODO_STORE", StorePostgres)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("BLUEPRINT_DB_HOST", "localhost")
	v.SetDefault("BLUEPRINT_DB_PORT", "5432")
	v.SetDefault("BLUEPRINT_DB_SCHEMA", "public")
	v.AutomaticEnv()

	cfg := Config{
		Port:        v.GetInt("PORT"),
		Store:       strings.ToLower(v.GetString("TODO_STORE")),
		LogLevel:    v.GetString("LOG_LEVEL"),
		AutoMigrate: v.GetBool("DB_AUTO_MIGRATE"),
		DB: DBConfig{
			Host:     v.GetString("BLUEPRINT_DB_HOST"),
			Port:     v.GetString("BLUEPRINT_DB_PORT"),
			Username: v.GetString("BLUEPRINT_DB_USERNAME"),
			Password: v.GetString("BLUEPRINT_DB_PASSWORD"),
			Database: v.GetString("BLUEPRINT_DB_DATABASE"),
			Schema:   v.GetString("BLUEPRINT_DB_SCHEMA"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	switch c.Store {
	case StorePostgres:
		if c.DB.Database == "" {
			return fmt.Errorf("BLUEPRINT_DB_DATABASE is required when TODO_STORE is %s", StorePostgres)
		}
	case StoreMemory:
	default:
		return fmt.Errorf("invalid TODO_STORE %q: must be one of %s, %s", c.Store, StorePostgres, StoreMemory)
	}
	return nil
}

func (c Config) ParseLogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

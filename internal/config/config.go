package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	SessionBackendFile   = "file"
	SessionBackendMySQL  = "mysql"
	SessionBackendSQLite = "sqlite"
)

type Config struct {
	Lookup   LookupConfig   `mapstructure:"lookup"`
	Puzzle   PuzzleConfig   `mapstructure:"puzzle"`
	Session  SessionConfig  `mapstructure:"session"`
	Database DatabaseConfig `mapstructure:"database"`
}

// LookupConfig configures the word-vector service.
type LookupConfig struct {
	BaseURL            string        `mapstructure:"base_url" validate:"required,url"`
	Timeout            time.Duration `mapstructure:"timeout" validate:"positive_duration"`
	MaxRetryAttempts   uint          `mapstructure:"max_retry_attempts"`
	RateLimitPerSecond float64       `mapstructure:"rate_limit_per_second" validate:"gte=0"`
	// CacheDirectory keeps raw responses on disk when set.
	CacheDirectory string `mapstructure:"cache_directory"`
}

type PuzzleConfig struct {
	SecretWordsFile      string `mapstructure:"secret_words_file" validate:"omitempty,file"`
	SpellingVariantsFile string `mapstructure:"spelling_variants_file" validate:"omitempty,file"`
}

type SessionConfig struct {
	Backend    string `mapstructure:"backend" validate:"oneof=file mysql sqlite"`
	Directory  string `mapstructure:"directory" validate:"required_if=Backend file"`
	SQLitePath string `mapstructure:"sqlite_path" validate:"required_if=Backend sqlite"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/semantle")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("lookup.base_url", "https://semantle.com")
	v.SetDefault("lookup.timeout", 10*time.Second)
	v.SetDefault("lookup.max_retry_attempts", 2)
	v.SetDefault("lookup.rate_limit_per_second", 5)
	v.SetDefault("lookup.cache_directory", "")
	v.SetDefault("puzzle.secret_words_file", "")
	v.SetDefault("puzzle.spelling_variants_file", "")
	v.SetDefault("session.backend", SessionBackendFile)
	v.SetDefault("session.directory", filepath.Join(".semantle", "session"))
	v.SetDefault("session.sqlite_path", filepath.Join(".semantle", "semantle.db"))
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "semantle")
	v.SetDefault("database.username", "user")

	// The service can be pointed at a mirror without editing the file
	if err := v.BindEnv("lookup.base_url", "SEMANTLE_API_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind SEMANTLE_API_BASE_URL environment variable: %w", err)
	}
	if err := v.BindEnv("database.password", "SEMANTLE_DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind SEMANTLE_DB_PASSWORD environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}
	cfg.Session.Backend = strings.ToLower(cfg.Session.Backend)

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return nil, fmt.Errorf("validator.Struct() > %w", err)
		}
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

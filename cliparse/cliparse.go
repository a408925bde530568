package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/quickly-todo/auth"
)

// Supported database types
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

const (
	defaultPort        = 5000
	defaultDatabaseURL = "todo.db"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string
	SecretKey    string
	Debug        bool
	SchemaPath   string

	// GeneratedSecret is set when no secret key was configured and a
	// random one was created for this process.
	GeneratedSecret bool
}

// fileConfig mirrors Config for the optional YAML config file.
type fileConfig struct {
	Port         int    `yaml:"port"`
	DatabaseURL  string `yaml:"database_url"`
	DatabaseType string `yaml:"database_type"`
	SecretKey    string `yaml:"secret_key"`
	Debug        *bool  `yaml:"debug"`
	SchemaPath   string `yaml:"schema_path"`
}

// ParseFlags reads flags, then environment, then the config file
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var configPath string

	fs := flag.NewFlagSet("quickly-todo", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL or SQLite file path")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.SecretKey, "secret", "", "Secret key for signing console cookies (prefer env)")
	fs.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")
	fs.StringVar(&cfg.SchemaPath, "schema", "", "Path to a schema SQL file (overrides the built-in schema)")
	fs.StringVar(&configPath, "c", "", "Path to a YAML config file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if configPath == "" {
		configPath = os.Getenv("TODO_CONFIG")
	}
	var file fileConfig
	if configPath != "" {
		var err error
		file, err = loadFile(configPath)
		if err != nil {
			return Config{}, err
		}
	}

	// Fall back to environment variables, then the file, then defaults
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else if file.Port != 0 {
			cfg.Port = file.Port
		} else {
			cfg.Port = defaultPort
		}
	}
	if cfg.Port < 1 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port out of range: %d", cfg.Port)
	}

	cfg.DatabaseURL = firstNonEmpty(cfg.DatabaseURL, os.Getenv("DATABASE_URL"), file.DatabaseURL, defaultDatabaseURL)
	cfg.DatabaseType = firstNonEmpty(cfg.DatabaseType, os.Getenv("DATABASE_TYPE"), file.DatabaseType, DatabaseSQLite)
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	cfg.SchemaPath = firstNonEmpty(cfg.SchemaPath, os.Getenv("SCHEMA_PATH"), file.SchemaPath)

	if !cfg.Debug {
		if v := os.Getenv("DEBUG"); v != "" {
			debug, err := strconv.ParseBool(v)
			if err != nil {
				return Config{}, errors.New("invalid DEBUG env variable")
			}
			cfg.Debug = debug
		} else if file.Debug != nil {
			cfg.Debug = *file.Debug
		}
	}

	// The secret only signs flash cookies, so a per-process one is usable
	cfg.SecretKey = firstNonEmpty(cfg.SecretKey, os.Getenv("SECRET_KEY"), file.SecretKey)
	if cfg.SecretKey == "" {
		secret, err := auth.GenerateID(24)
		if err != nil {
			return Config{}, err
		}
		cfg.SecretKey = secret
		cfg.GeneratedSecret = true
	}

	return cfg, nil
}

func loadFile(path string) (fileConfig, error) {
	var fc fileConfig

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fc, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fc, fmt.Errorf("failed to parse config file: %w", err)
	}
	return fc, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"caseflow/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Import   ImportConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds the optional persistence settings. An empty
// URL disables the record store; imports still run and return results.
type DatabaseConfig struct {
	URL string
}

// ImportConfig holds the pipeline limits and the optional synonym
// dictionary overrides file.
type ImportConfig struct {
	MaxFileBytes int64
	PhotoWorkers int
	PhotoTimeout time.Duration
	SynonymsFile string
}

// Load builds the configuration from environment variables. Callers
// run godotenv.Load first so a local .env file participates.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Import: ImportConfig{
			MaxFileBytes: getEnvInt64("IMPORT_MAX_FILE_BYTES", 10*1024*1024),
			PhotoWorkers: getEnvInt("IMPORT_PHOTO_WORKERS", 4),
			PhotoTimeout: getEnvDuration("IMPORT_PHOTO_TIMEOUT", 15*time.Second),
			SynonymsFile: os.Getenv("IMPORT_SYNONYMS_FILE"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Import.MaxFileBytes <= 0 {
		return errors.ConfigInvalid("IMPORT_MAX_FILE_BYTES must be positive")
	}
	if c.Import.PhotoWorkers <= 0 {
		return errors.ConfigInvalid("IMPORT_PHOTO_WORKERS must be positive")
	}
	if c.Import.PhotoTimeout <= 0 {
		return errors.ConfigInvalid("IMPORT_PHOTO_TIMEOUT must be positive")
	}
	return nil
}

// LoadSynonymOverrides reads a YAML file mapping canonical field names
// to extra accepted header spellings, e.g.:
//
//	orphanId:
//	  - child ref
//	dob:
//	  - geburtsdatum
func LoadSynonymOverrides(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read synonyms file %s", path)
	}
	var overrides map[string][]string
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return nil, errors.Wrap(err, fmt.Sprintf("failed to parse synonyms file %s", path))
	}
	return overrides, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

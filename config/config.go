package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/powerboxizm12/stremio-au-addon/internal/catalog"
	"github.com/powerboxizm12/stremio-au-addon/logging"
)

// Config holds the complete application configuration
type Config struct {
	// HTTP server settings
	HTTP struct {
		Address string `yaml:"address"`
		Port    string `yaml:"port"`
	} `yaml:"http"`

	// Upstream playlist source settings
	Playlist struct {
		BaseURL  string        `yaml:"base_url"`
		FileName string        `yaml:"file_name"`
		Timeout  time.Duration `yaml:"timeout"`
	} `yaml:"playlist"`

	// Snapshot persistence; an empty path disables it
	Snapshot struct {
		Path string `yaml:"path"`
	} `yaml:"snapshot"`

	// Per-client request rate limit
	RateLimit struct {
		Requests int           `yaml:"requests"`
		Window   time.Duration `yaml:"window"`
	} `yaml:"rate_limit"`

	// Logging settings
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	// Fallback logos, matched in order against channel names
	Logos catalog.LogoTable `yaml:"logos"`
}

// Validate performs validation on the configuration
func (c *Config) Validate() error {
	var errors []string

	if c.HTTP.Port == "" {
		errors = append(errors, "HTTP port is required")
	} else if port, err := strconv.Atoi(c.HTTP.Port); err != nil || port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("HTTP port must be between 1 and 65535, got %q", c.HTTP.Port))
	}

	if c.Playlist.BaseURL == "" {
		errors = append(errors, "Playlist base URL is required")
	} else if !strings.HasPrefix(c.Playlist.BaseURL, "http://") && !strings.HasPrefix(c.Playlist.BaseURL, "https://") {
		errors = append(errors, fmt.Sprintf("Playlist base URL must be http(s), got %q", c.Playlist.BaseURL))
	}
	if c.Playlist.FileName == "" {
		errors = append(errors, "Playlist file name is required")
	}
	if c.Playlist.Timeout <= 0 {
		errors = append(errors, "Playlist timeout must be positive")
	}

	if c.RateLimit.Requests <= 0 {
		errors = append(errors, "Rate limit requests must be positive")
	}
	if c.RateLimit.Window <= 0 {
		errors = append(errors, "Rate limit window must be positive")
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "json", "console":
	default:
		errors = append(errors, fmt.Sprintf("Log format must be json or console, got %q", c.Log.Format))
	}

	for i, logo := range c.Logos {
		if logo.Match == "" {
			errors = append(errors, fmt.Sprintf("Logo %d: match is required", i))
		}
		if logo.URL == "" {
			errors = append(errors, fmt.Sprintf("Logo %d (%s): URL is required", i, logo.Match))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// Default returns a Config with sensible default values
func Default() *Config {
	cfg := &Config{}

	cfg.HTTP.Address = "0.0.0.0"
	cfg.HTTP.Port = "7000"

	cfg.Playlist.BaseURL = "https://i.mjh.nz/au"
	cfg.Playlist.FileName = "raw-tv.m3u8"
	cfg.Playlist.Timeout = 30 * time.Second

	cfg.Snapshot.Path = "" // Disabled

	cfg.RateLimit.Requests = 120
	cfg.RateLimit.Window = time.Minute

	cfg.Log.Level = "info"
	cfg.Log.Format = "json"

	cfg.Logos = catalog.DefaultLogos()

	return cfg
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Load loads configuration from a file (if present) and applies environment variable overrides
func Load() (*Config, error) {
	configPath := os.Getenv("CONFIG_FILE")
	explicit := configPath != ""
	if !explicit {
		configPath = "config.yaml"
	}

	var cfg *Config

	if _, err := os.Stat(configPath); err == nil {
		cfg, err = LoadFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else if explicit {
		return nil, fmt.Errorf("config file %s: %w", configPath, err)
	} else {
		cfg = Default()
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the configuration
func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv("HTTP_ADDRESS"); val != "" {
		cfg.HTTP.Address = val
	}
	if val := os.Getenv("HTTP_PORT"); val != "" {
		cfg.HTTP.Port = val
	}

	if val := os.Getenv("PLAYLIST_BASE_URL"); val != "" {
		cfg.Playlist.BaseURL = val
	}
	if val := os.Getenv("PLAYLIST_FILE_NAME"); val != "" {
		cfg.Playlist.FileName = val
	}
	if val := os.Getenv("PLAYLIST_TIMEOUT"); val != "" {
		duration, err := parsePositiveDuration("PLAYLIST_TIMEOUT", val)
		if err != nil {
			return err
		}
		cfg.Playlist.Timeout = duration
	}

	if val := os.Getenv("SNAPSHOT_PATH"); val != "" {
		absPath, err := absolutePath(val)
		if err != nil {
			return err
		}
		cfg.Snapshot.Path = absPath
	}

	if val := os.Getenv("RATE_LIMIT_REQUESTS"); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_REQUESTS: %w", err)
		}
		if n <= 0 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive")
		}
		cfg.RateLimit.Requests = n
	}
	if val := os.Getenv("RATE_LIMIT_WINDOW"); val != "" {
		duration, err := parsePositiveDuration("RATE_LIMIT_WINDOW", val)
		if err != nil {
			return err
		}
		cfg.RateLimit.Window = duration
	}

	if val := os.Getenv("LOG_LEVEL"); val != "" {
		cfg.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		cfg.Log.Format = val
	}

	return nil
}

func parsePositiveDuration(name, val string) (time.Duration, error) {
	duration, err := time.ParseDuration(val)
	if err != nil {
		return 0, fmt.Errorf("invalid %s format (expected duration like '30s', '1m'): %w", name, err)
	}
	if duration <= 0 {
		return 0, fmt.Errorf("%s must be positive, got: %s", name, val)
	}
	return duration, nil
}

// absolutePath normalizes a file path to an absolute path
func absolutePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path for %s: %w", path, err)
	}
	return absPath, nil
}

// LoggingConfig returns the logger settings for this configuration
func (c *Config) LoggingConfig(service string) logging.Config {
	return logging.Config{
		Level:   c.Log.Level,
		Format:  c.Log.Format,
		Service: service,
	}
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DocsURL      string   `yaml:"docs_url"`  // OpenAPI document endpoint
	DocsFile     string   `yaml:"docs_file"` // local document, overrides docs_url
	BaseURL      string   `yaml:"base_url"`  // prefix for synthesized request URLs
	APIKeyHeader string   `yaml:"api_key_header"`
	APIKey       string   `yaml:"api_key"`
	Executor     string   `yaml:"executor"` // "http" or "curl"
	CurlPath     string   `yaml:"curl_path"`
	Timeout      Duration `yaml:"timeout"`
	MetricsAddr  string   `yaml:"metrics_addr"`
	LogLevel     string   `yaml:"log_level"`
	Lint         bool     `yaml:"lint"`
}

// Duration accepts Go duration strings ("30s", "2m") in YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	if s == "" {
		*d = 0
		return nil
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "askapi", "config.yaml")
}

// Load reads the config at path. An empty path means the default location,
// which is allowed not to exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case !explicit && errors.Is(err, fs.ErrNotExist):
		// defaults only
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg.ApplyDefaults()
	return cfg, nil
}

// ApplyDefaults fills every unset field.
func (c *Config) ApplyDefaults() {
	if c.DocsURL == "" {
		c.DocsURL = DefaultDocsURL
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.APIKeyHeader == "" {
		c.APIKeyHeader = DefaultAPIKeyHeader
	}
	if c.Executor == "" {
		c.Executor = DefaultExecutor
	}
	if c.CurlPath == "" {
		c.CurlPath = DefaultCurlPath
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	if c.DocsURL == "" && c.DocsFile == "" {
		return errors.New("one of docs_url or docs_file is required")
	}
	if c.BaseURL == "" {
		return errors.New("base_url is required")
	}
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	return nil
}

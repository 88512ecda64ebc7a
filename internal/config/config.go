// Package config loads and validates arbor.json project configuration
// for the CLI and the preview server.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/arbor-dev/arbor/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "arbor.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 5173

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultOutput is the default publish output directory.
	DefaultOutput = "dist"
)

// Config represents the complete arbor.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Entry is the page description file rendered by serve and render.
	Entry string `json:"entry,omitempty"`

	// Scoped enables CSS scope encapsulation by default.
	Scoped bool `json:"scoped,omitempty"`

	// Strict reports malformed elements as errors instead of rendering
	// them as empty strings.
	Strict bool `json:"strict,omitempty"`

	// Server contains preview server settings.
	Server ServerConfig `json:"server,omitempty"`

	// Publish contains publish settings.
	Publish PublishConfig `json:"publish,omitempty"`

	// Watch contains paths watched for live reload (default: entry file
	// directory).
	Watch []string `json:"watch,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// ServerConfig contains preview server settings.
type ServerConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to run the preview server on.
	Port int `json:"port,omitempty"`
}

// PublishConfig contains publish settings.
type PublishConfig struct {
	// Output is the local output directory.
	Output string `json:"output,omitempty"`

	// Bucket is the S3 bucket name; empty selects the local directory
	// store.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the S3 key prefix.
	Prefix string `json:"prefix,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Entry: "page.json",
		Server: ServerConfig{
			Host: DefaultHost,
			Port: DefaultPort,
		},
		Publish: PublishConfig{
			Output: DefaultOutput,
		},
	}
}

// Load reads arbor.json from dir or the nearest parent directory.
func Load(dir string) (*Config, error) {
	path, err := find(dir)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("C001").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("C002").Wrap(err).
			WithSuggestion("check " + path + " for JSON syntax errors")
	}
	cfg.configPath = path
	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads arbor.json if present, or returns defaults.
func LoadOrDefault(dir string) *Config {
	cfg, err := Load(dir)
	if err != nil {
		cfg = New()
		cfg.applyEnv()
	}
	return cfg
}

// find walks up from dir looking for the config file.
func find(dir string) (string, error) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.New("C001").Wrap(err)
	}
	for {
		candidate := filepath.Join(current, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", errors.New("C001").
				WithSuggestion("run arbor from a project directory or create " + ConfigFileName)
		}
		current = parent
	}
}

// applyDefaults fills zero-valued fields.
func (c *Config) applyDefaults() {
	if c.Entry == "" {
		c.Entry = "page.json"
	}
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Publish.Output == "" {
		c.Publish.Output = DefaultOutput
	}
}

// applyEnv applies environment variable overrides.
func (c *Config) applyEnv() {
	if v := os.Getenv("ARBOR_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Server.Port = port
		}
	}
	if v := os.Getenv("ARBOR_HOST"); v != "" {
		c.Server.Host = v
	}
	if v := os.Getenv("ARBOR_ENTRY"); v != "" {
		c.Entry = v
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return errors.New("C002").
			WithDetailf("server.port %d is outside the valid range 1-65535", c.Server.Port)
	}
	if c.Entry == "" {
		return errors.New("C002").WithDetail("entry must name a page description file")
	}
	return nil
}

// Path returns the location the config was loaded from, if any.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the project root: the directory holding arbor.json, or "."
// for default configs.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return "."
	}
	return filepath.Dir(c.configPath)
}

// WatchPaths returns the directories to watch for live reload.
func (c *Config) WatchPaths() []string {
	if len(c.Watch) > 0 {
		return c.Watch
	}
	dir := filepath.Dir(filepath.Join(c.Dir(), c.Entry))
	return []string{dir}
}

package config

import (
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vango-dev/dashml/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "dashml.json"

	// DefaultPort is the default serve port.
	DefaultPort = 8080

	// DefaultHost is the default serve host.
	DefaultHost = "localhost"

	// DefaultIndent is the pretty-print indentation.
	DefaultIndent = "  "

	// DefaultNamespace is the Prometheus metric namespace.
	DefaultNamespace = "dashml"

	// DefaultTracerName is the OpenTelemetry tracer name.
	DefaultTracerName = "github.com/vango-dev/dashml"

	// DefaultIterations is the number of renders per benchmark case.
	DefaultIterations = 100000
)

// Config represents the complete dashml.json configuration.
type Config struct {
	// Render contains HTML output settings.
	Render RenderConfig `json:"render"`

	// Serve contains HTTP server settings.
	Serve ServeConfig `json:"serve"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics"`

	// Tracing contains OpenTelemetry settings.
	Tracing TracingConfig `json:"tracing"`

	// Bench contains benchmark settings.
	Bench BenchConfig `json:"bench"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RenderConfig contains HTML output settings.
type RenderConfig struct {
	// Pretty enables indented output.
	Pretty bool `json:"pretty"`

	// Indent is the string used per indentation level.
	Indent string `json:"indent,omitempty"`
}

// ServeConfig contains HTTP server settings.
type ServeConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty"`

	// Doctype prefixes <!DOCTYPE html> to full documents.
	Doctype bool `json:"doctype"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled installs the metrics middleware and /metrics endpoint.
	Enabled bool `json:"enabled"`

	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	// Enabled installs the tracing middleware.
	Enabled bool `json:"enabled"`

	// TracerName is the instrumentation name of the tracer.
	TracerName string `json:"tracerName,omitempty"`
}

// BenchConfig contains benchmark settings.
type BenchConfig struct {
	// Iterations is the number of renders per case.
	Iterations int `json:"iterations,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Render: RenderConfig{
			Indent: DefaultIndent,
		},
		Serve: ServeConfig{
			Host:    DefaultHost,
			Port:    DefaultPort,
			Doctype: true,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultNamespace,
		},
		Tracing: TracingConfig{
			TracerName: DefaultTracerName,
		},
		Bench: BenchConfig{
			Iterations: DefaultIterations,
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for dashml.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E030").
				WithDetail("No dashml.json found in " + filepath.Dir(path)).
				WithSuggestion("Create dashml.json or run without --config to use defaults")
		}
		return nil, errors.New("E031").Wrap(err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E031").
			WithDetail("Failed to parse dashml.json: " + err.Error()).
			WithSuggestion("Check that dashml.json is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E031").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E031").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Render.Indent == "" {
		c.Render.Indent = DefaultIndent
	}
	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}
	if c.Bench.Iterations == 0 {
		c.Bench.Iterations = DefaultIterations
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return errors.New("E032").
			WithDetail("serve.port must be between 0 and 65535")
	}
	if c.Bench.Iterations < 0 {
		return errors.New("E032").
			WithDetail("bench.iterations must not be negative")
	}
	return nil
}

// Address returns the listen address for the server.
func (c *Config) Address() string {
	return net.JoinHostPort(c.Serve.Host, strconv.Itoa(c.Serve.Port))
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up directories to find the directory containing
// dashml.json.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		if Exists(dir) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("E030").
				WithDetail("No dashml.json found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads configuration from the nearest dashml.json at or
// above the working directory. Defaults are returned when there is none.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := FindProjectRoot(wd)
	if err != nil {
		return New(), nil
	}

	return Load(root)
}

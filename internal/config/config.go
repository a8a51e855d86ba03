package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/jsx/internal/errors"
	"github.com/vango-dev/jsx/pkg/wire"
)

// FileNames are the config file names, in lookup order.
var FileNames = []string{"jsx.json", "jsx.yaml", "jsx.yml"}

const (
	// DefaultFormat is the default snapshot output format.
	DefaultFormat = "json"

	// DefaultHost is the default playground host.
	DefaultHost = "localhost"

	// DefaultPort is the default playground port.
	DefaultPort = 8787

	// DefaultMaxBodyBytes caps playground request bodies (1MB).
	DefaultMaxBodyBytes = 1 << 20

	// MaxBodyLimit is the largest accepted maxBodyBytes (64MB).
	MaxBodyLimit = 64 << 20

	// DefaultShutdownTimeout bounds graceful shutdown of the playground.
	DefaultShutdownTimeout = "10s"

	// DefaultNamespace is the Prometheus namespace.
	DefaultNamespace = "jsx"
)

// Config represents the complete jsx.json configuration.
type Config struct {
	// LogLevel is one of debug, info, warn and error.
	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`

	// Output contains snapshot output configuration.
	Output OutputConfig `json:"output" yaml:"output"`

	// Serve contains playground server configuration.
	Serve ServeConfig `json:"serve" yaml:"serve"`

	// Lint contains lint configuration.
	Lint LintConfig `json:"lint" yaml:"lint"`

	// Metrics contains Prometheus configuration.
	Metrics MetricsConfig `json:"metrics" yaml:"metrics"`

	configPath string
}

// OutputConfig contains snapshot output settings.
type OutputConfig struct {
	// Format is json, msgpack or binary.
	Format string `json:"format,omitempty" yaml:"format,omitempty"`

	// Indent pretty-prints JSON output.
	Indent bool `json:"indent,omitempty" yaml:"indent,omitempty"`

	// Dir is where transform writes its output. Empty means stdout.
	Dir string `json:"dir,omitempty" yaml:"dir,omitempty"`
}

// ServeConfig contains playground server settings.
type ServeConfig struct {
	Host string `json:"host,omitempty" yaml:"host,omitempty"`
	Port int    `json:"port,omitempty" yaml:"port,omitempty"`

	// MaxBodyBytes caps the size of a transform request body.
	MaxBodyBytes int64 `json:"maxBodyBytes,omitempty" yaml:"maxBodyBytes,omitempty"`

	// ShutdownTimeout is a Go duration (e.g., "10s").
	ShutdownTimeout string `json:"shutdownTimeout,omitempty" yaml:"shutdownTimeout,omitempty"`
}

// LintConfig contains lint settings.
type LintConfig struct {
	// FailOnDeprecated makes lint exit non-zero when it reports findings.
	FailOnDeprecated bool `json:"failOnDeprecated,omitempty" yaml:"failOnDeprecated,omitempty"`

	// Ignore lists deprecated keys that are not reported.
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Namespace string `json:"namespace,omitempty" yaml:"namespace,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		LogLevel: "info",
		Output: OutputConfig{
			Format: DefaultFormat,
		},
		Serve: ServeConfig{
			Host:            DefaultHost,
			Port:            DefaultPort,
			MaxBodyBytes:    DefaultMaxBodyBytes,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultNamespace,
		},
	}
}

// Load reads configuration from the specified directory. It uses the first
// of FileNames found there.
func Load(dir string) (*Config, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E121").
		WithDetail("No jsx.json or jsx.yaml found in " + dir).
		WithSuggestion("Run 'vango-jsx init' or create jsx.json manually")
}

// LoadFile reads, defaults and validates configuration from path. YAML
// files have ${ENV} references expanded first.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E121").WithDetail(path).Wrap(err)
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	if isYAML(path) {
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, errors.New("E120").
				WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
				WithLocationFromError(path, err).
				Wrap(err)
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E120").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that " + filepath.Base(path) + " is valid JSON").
			Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to path, as YAML when the extension says
// so and as indented JSON otherwise.
func (c *Config) SaveTo(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}
	c.Output.Format = strings.ToLower(c.Output.Format)

	if c.Serve.Host == "" {
		c.Serve.Host = DefaultHost
	}
	if c.Serve.Port == 0 {
		c.Serve.Port = DefaultPort
	}
	if c.Serve.MaxBodyBytes == 0 {
		c.Serve.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Serve.ShutdownTimeout == "" {
		c.Serve.ShutdownTimeout = DefaultShutdownTimeout
	}

	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultNamespace
	}
}

// Validate checks if the configuration is valid. Each section reports its
// own error code.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.By(isLogLevel)),
	); err != nil {
		return errors.New("E120").WithDetail(err.Error()).Wrap(err)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if err := c.Serve.Validate(); err != nil {
		return err
	}
	return c.Metrics.Validate()
}

// Validate validates the output configuration.
func (c *OutputConfig) Validate() error {
	formats := wire.Formats()
	allowed := make([]any, len(formats))
	for i, f := range formats {
		allowed[i] = f
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Format, validation.Required, validation.In(allowed...)),
	); err != nil {
		return errors.New("E123").
			WithDetail(err.Error()).
			WithSuggestion("Use one of: " + strings.Join(formats, ", ")).
			Wrap(err)
	}
	return nil
}

// Validate validates the serve configuration.
func (c *ServeConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
	); err != nil {
		return errors.New("E122").WithDetail(err.Error()).Wrap(err)
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.MaxBodyBytes, validation.Required, validation.Min(int64(1)), validation.Max(int64(MaxBodyLimit))),
	); err != nil {
		return errors.New("E124").WithDetail(err.Error()).Wrap(err)
	}
	if err := validation.ValidateStruct(c,
		validation.Field(&c.ShutdownTimeout, validation.By(isDuration)),
	); err != nil {
		return errors.New("E120").WithDetail(err.Error()).Wrap(err)
	}
	return nil
}

// Validate validates the metrics configuration.
func (c *MetricsConfig) Validate() error {
	if err := validation.ValidateStruct(c,
		validation.Field(&c.Namespace, validation.Match(metricName)),
	); err != nil {
		return errors.New("E120").WithDetail(err.Error()).Wrap(err)
	}
	return nil
}

// Addr returns the host:port the playground listens on.
func (c *ServeConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// ShutdownGrace returns the parsed shutdown timeout, or the default when it
// does not parse.
func (c *ServeConfig) ShutdownGrace() time.Duration {
	d, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil {
		d, _ = time.ParseDuration(DefaultShutdownTimeout)
	}
	return d
}

// SlogLevel returns LogLevel as a slog.Level, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Ignored reports whether lint should skip the deprecated key.
func (c *LintConfig) Ignored(key string) bool {
	for _, k := range c.Ignore {
		if k == key {
			return true
		}
	}
	return false
}

// Exists checks if a config file exists in the given directory.
func Exists(dir string) bool {
	for _, name := range FileNames {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// FindProjectRoot walks up directories to find the project root.
// Returns the directory containing a config file, or an error if not found.
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
			return "", errors.New("E121").
				WithDetail("No jsx.json or jsx.yaml found in " + startDir + " or any parent directory")
		}
		dir = parent
	}
}

// LoadOrDefault loads the configuration of the project containing dir, or
// returns the defaults when there is none.
func LoadOrDefault(dir string) (*Config, error) {
	root, err := FindProjectRoot(dir)
	if err != nil {
		return New(), nil
	}
	return Load(root)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

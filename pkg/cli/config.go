package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/haivivi/ringseq/pkg/ring"
)

// DefaultConfigFile is the default configuration filename
const DefaultConfigFile = "config.yaml"

// Config represents the main configuration structure for a CLI app
type Config struct {
	// AppName is the application name (e.g., "ringseq")
	AppName string `yaml:"-" json:"-"`

	// CurrentContext is the name of the currently active context
	CurrentContext string `yaml:"current_context,omitempty" json:"current_context,omitempty"`

	// Contexts is a map of context name to context configuration
	Contexts map[string]*Context `yaml:"contexts,omitempty" json:"contexts,omitempty"`

	// configPath is the path to the config file
	configPath string
}

// Context holds the ring defaults used when a script does not set them.
type Context struct {
	// Name is the context name
	Name string `yaml:"name" json:"name"`

	// Backend is the storage backend: "array" or "list"
	Backend string `yaml:"backend,omitempty" json:"backend,omitempty"`

	// Capacity is the ring capacity
	Capacity int `yaml:"capacity,omitempty" json:"capacity,omitempty"`

	// Output is the default output format (yaml, json, raw)
	Output string `yaml:"output,omitempty" json:"output,omitempty"`

	// LogLines is the number of log lines kept for the show frame
	LogLines int `yaml:"log_lines,omitempty" json:"log_lines,omitempty"`
}

// Validate checks the context fields that are set.
func (ctx *Context) Validate() error {
	if ctx.Backend != "" {
		if _, err := ring.ParseBackend(ctx.Backend); err != nil {
			return err
		}
	}
	if ctx.Capacity < 0 {
		return fmt.Errorf("%w: %d", ring.ErrInvalidCapacity, ctx.Capacity)
	}
	if ctx.LogLines < 0 {
		return fmt.Errorf("invalid log_lines: %d", ctx.LogLines)
	}
	switch OutputFormat(ctx.Output) {
	case "", FormatYAML, FormatJSON, FormatRaw:
	default:
		return fmt.Errorf("unsupported output format: %s", ctx.Output)
	}
	return nil
}

// RingBackend returns the parsed backend, defaulting to array.
func (ctx *Context) RingBackend() ring.Backend {
	if ctx == nil || ctx.Backend == "" {
		return ring.BackendArray
	}
	b, err := ring.ParseBackend(ctx.Backend)
	if err != nil {
		return ring.BackendArray
	}
	return b
}

// LoadConfig loads or creates configuration for the specified app
func LoadConfig(appName string) (*Config, error) {
	return LoadConfigWithPath(appName, "")
}

// LoadConfigWithPath loads configuration from a custom path
func LoadConfigWithPath(appName, customPath string) (*Config, error) {
	configPath := customPath
	if configPath == "" {
		paths, err := NewPaths(appName)
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configPath = paths.ConfigFile()
	}

	// Ensure config directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := &Config{
		AppName:    appName,
		Contexts:   make(map[string]*Context),
		configPath: configPath,
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Create empty config file
			return cfg, cfg.Save()
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Contexts == nil {
		cfg.Contexts = make(map[string]*Context)
	}
	for name, ctx := range cfg.Contexts {
		if err := ctx.Validate(); err != nil {
			return nil, fmt.Errorf("context %q: %w", name, err)
		}
	}

	cfg.AppName = appName
	cfg.configPath = configPath

	return cfg, nil
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Path returns the config file path
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the config directory path
func (c *Config) Dir() string {
	return filepath.Dir(c.configPath)
}

// AddContext validates and stores a context, replacing one with the same name
func (c *Config) AddContext(name string, ctx *Context) error {
	if err := ctx.Validate(); err != nil {
		return fmt.Errorf("context %q: %w", name, err)
	}
	ctx.Name = name
	c.Contexts[name] = ctx
	return c.Save()
}

// DeleteContext removes a context
func (c *Config) DeleteContext(name string) error {
	if _, ok := c.Contexts[name]; !ok {
		return fmt.Errorf("context %q not found", name)
	}
	delete(c.Contexts, name)
	if c.CurrentContext == name {
		c.CurrentContext = ""
	}
	return c.Save()
}

// UseContext sets the current context
func (c *Config) UseContext(name string) error {
	if _, ok := c.Contexts[name]; !ok {
		return fmt.Errorf("context %q not found", name)
	}
	c.CurrentContext = name
	return c.Save()
}

// GetContext returns a specific context
func (c *Config) GetContext(name string) (*Context, error) {
	ctx, ok := c.Contexts[name]
	if !ok {
		return nil, fmt.Errorf("context %q not found", name)
	}
	return ctx, nil
}

// GetCurrentContext returns the current context
func (c *Config) GetCurrentContext() (*Context, error) {
	if c.CurrentContext == "" {
		return nil, fmt.Errorf("no current context set")
	}
	return c.GetContext(c.CurrentContext)
}

// ResolveContext returns the context by name, or current context if name is
// empty. With neither a name nor a current context it returns an unnamed
// context that carries no overrides.
func (c *Config) ResolveContext(name string) (*Context, error) {
	if name == "" {
		if c.CurrentContext == "" {
			return &Context{}, nil
		}
		return c.GetCurrentContext()
	}
	return c.GetContext(name)
}

// ListContexts returns all context names, sorted
func (c *Config) ListContexts() []string {
	names := make([]string, 0, len(c.Contexts))
	for name := range c.Contexts {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

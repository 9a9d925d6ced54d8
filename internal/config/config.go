package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strings"

	"github.com/yosuke-furukawa/json5/encoding/json5"

	"github.com/keysinmypurse/purse/internal/secrets"
)

// Config holds the CLI configuration
type Config struct {
	ServiceName   string `json:"service_name,omitempty"`
	Backend       string `json:"backend,omitempty"`
	FileDir       string `json:"file_dir,omitempty"`
	DefaultOutput string `json:"default_output,omitempty"`

	path string
}

// Load reads config from the XDG path, returns defaults if file doesn't exist
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads config from path, returns defaults if file doesn't exist
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json5.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Path returns the file the config was loaded from
func (c *Config) Path() string {
	if c.path == "" {
		return ConfigPath()
	}
	return c.path
}

// Service returns the configured service name or the default
func (c *Config) Service() string {
	if c.ServiceName == "" {
		return secrets.DefaultService
	}
	return c.ServiceName
}

// StoreDir returns the configured file store directory or the XDG data dir
func (c *Config) StoreDir() string {
	if c.FileDir == "" {
		return DataDir()
	}
	return c.FileDir
}

// StoreOptions builds the secrets backend options for this config
func (c *Config) StoreOptions() secrets.Options {
	return secrets.Options{
		Service:  c.Service(),
		Backend:  c.Backend,
		Dir:      c.StoreDir(),
		Password: os.Getenv("PURSE_STORE_PASSWORD"),
	}
}

// Save writes the config to its path
func (c *Config) Save() error {
	path := c.Path()

	// Ensure parent directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// JSON is valid JSON5
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Keys returns every settable key name in sorted order
func Keys() []string {
	t := reflect.TypeOf(Config{})
	var keys []string
	for i := 0; i < t.NumField(); i++ {
		if name := jsonName(t.Field(i)); name != "" {
			keys = append(keys, name)
		}
	}
	sort.Strings(keys)
	return keys
}

func jsonName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	return strings.Split(tag, ",")[0]
}

// field finds the settable string field for key
func (c *Config) field(key string) (reflect.Value, error) {
	v := reflect.ValueOf(c).Elem()
	t := v.Type()

	for i := 0; i < v.NumField(); i++ {
		if jsonName(t.Field(i)) == key {
			return v.Field(i), nil
		}
	}

	return reflect.Value{}, fmt.Errorf("unknown config key: %s", key)
}

// Get retrieves a config value by key name
func (c *Config) Get(key string) (string, error) {
	f, err := c.field(key)
	if err != nil {
		return "", err
	}
	return f.String(), nil
}

// Set validates and sets a config value by key name, then saves
func (c *Config) Set(key, value string) error {
	f, err := c.field(key)
	if err != nil {
		return err
	}
	if err := Validate(key, value); err != nil {
		return err
	}

	f.SetString(value)
	return c.Save()
}

// Unset sets a config value to its zero value and saves
func (c *Config) Unset(key string) error {
	f, err := c.field(key)
	if err != nil {
		return err
	}

	f.SetString("")
	return c.Save()
}

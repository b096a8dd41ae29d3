// Package config loads thumbor-tools settings from an optional YAML file and
// THUMBOR_* environment variables.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ironsheep/thumbor-tools-mcp/internal/thumbor"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. THUMBOR_SERVER_URL or
// THUMBOR_HTTP_PORT.
const EnvPrefix = "THUMBOR"

type Config struct {
	// ServerURL is the ambient image-server base URL.
	ServerURL string `mapstructure:"server_url"`
	// SecurityKey signs URLs when set. Empty means unsigned ("unsafe") URLs.
	SecurityKey string     `mapstructure:"security_key"`
	Breakpoints []int      `mapstructure:"breakpoints"`
	Lazy        bool       `mapstructure:"lazy"`
	HTTP        HTTPConfig `mapstructure:"http"`
	Log         LogConfig  `mapstructure:"log"`
}

type HTTPConfig struct {
	Port           string        `mapstructure:"port"`
	Mode           string        `mapstructure:"mode"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	IdleTimeout    time.Duration `mapstructure:"idle_timeout"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// keys without a default still need an env binding to reach Unmarshal.
var boundKeys = []string{"server_url", "security_key", "breakpoints"}

// LoadConfig reads the file at path, or thumbor.yaml from the working
// directory or ./config when path is empty. A missing default file is not an
// error; a missing explicit file is.
func LoadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range boundKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		return v, nil
	}

	v.SetConfigName("thumbor")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}
	return v, nil
}

// ParseConfig decodes v into a Config.
func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &c, nil
}

// Load is LoadConfig, ParseConfig and Validate in one step.
func Load(path string) (*Config, error) {
	v, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	c, err := ParseConfig(v)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks values that would otherwise fail late, at request time.
func (c *Config) Validate() error {
	if c.ServerURL != "" {
		if err := validateEndpointURL(c.ServerURL); err != nil {
			return fmt.Errorf("server_url: %w", err)
		}
	}

	for _, w := range c.Breakpoints {
		if w <= 0 {
			return fmt.Errorf("breakpoints: %w: %d", thumbor.ErrInvalidBreakpoint, w)
		}
	}

	switch c.HTTP.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("http.mode must be debug, release or test, got %q", c.HTTP.Mode)
	}

	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Address is the listen address for the HTTP server.
func (c *Config) Address() string {
	return ":" + c.HTTP.Port
}

func validateEndpointURL(endpoint string) error {
	u, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("invalid endpoint URL format: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("endpoint URL must use http or https scheme, got: %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("endpoint URL has no host")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("lazy", false)

	v.SetDefault("http.port", "8080")
	v.SetDefault("http.mode", "release")
	v.SetDefault("http.read_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)
	v.SetDefault("http.idle_timeout", 60*time.Second)
	v.SetDefault("http.request_timeout", 5*time.Second)

	v.SetDefault("log.level", "info")
}

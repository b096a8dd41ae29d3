package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ironsheep/thumbor-tools-mcp/internal/thumbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "thumbor.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent to testing.T.Chdir in Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	c, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "", c.ServerURL)
	assert.Nil(t, c.Breakpoints)
	assert.False(t, c.Lazy)
	assert.Equal(t, "8080", c.HTTP.Port)
	assert.Equal(t, "release", c.HTTP.Mode)
	assert.Equal(t, 5*time.Second, c.HTTP.RequestTimeout)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, ":8080", c.Address())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server_url: https://img.example
security_key: s3cret
breakpoints: [320, 640]
lazy: true
http:
  port: 9090
  mode: debug
  read_timeout: 3s
log:
  level: debug
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://img.example", c.ServerURL)
	assert.Equal(t, "s3cret", c.SecurityKey)
	assert.Equal(t, []int{320, 640}, c.Breakpoints)
	assert.True(t, c.Lazy)
	assert.Equal(t, "9090", c.HTTP.Port)
	assert.Equal(t, "debug", c.HTTP.Mode)
	assert.Equal(t, 3*time.Second, c.HTTP.ReadTimeout)
	assert.Equal(t, 10*time.Second, c.HTTP.WriteTimeout)
	assert.Equal(t, "debug", c.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server_url: https://file.example
http:
  port: 9090
`)
	t.Setenv("THUMBOR_SERVER_URL", "https://env.example")
	t.Setenv("THUMBOR_HTTP_PORT", "7070")
	t.Setenv("THUMBOR_BREAKPOINTS", "100,200,300")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example", c.ServerURL)
	assert.Equal(t, "7070", c.HTTP.Port)
	assert.Equal(t, []int{100, 200, 300}, c.Breakpoints)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_DefaultFileInConfigDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "thumbor.yaml"),
		[]byte("server_url: https://found.example\n"), 0o600))
	chdir(t, dir)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "https://found.example", c.ServerURL)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{HTTP: HTTPConfig{Mode: "release"}, Log: LogConfig{Level: "info"}}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"zero endpoint allowed", func(c *Config) {}, false},
		{"https endpoint", func(c *Config) { c.ServerURL = "https://img.example" }, false},
		{"http endpoint with path", func(c *Config) { c.ServerURL = "http://localhost:8888/thumbor" }, false},
		{"ftp endpoint", func(c *Config) { c.ServerURL = "ftp://img.example" }, true},
		{"relative endpoint", func(c *Config) { c.ServerURL = "/thumbor" }, true},
		{"no host", func(c *Config) { c.ServerURL = "https://" }, true},
		{"bad mode", func(c *Config) { c.HTTP.Mode = "prod" }, true},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"zero breakpoint", func(c *Config) { c.Breakpoints = []int{160, 0} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate_BreakpointError(t *testing.T) {
	c := Config{Breakpoints: []int{-1}, HTTP: HTTPConfig{Mode: "test"}, Log: LogConfig{Level: "warn"}}
	assert.True(t, errors.Is(c.Validate(), thumbor.ErrInvalidBreakpoint))
}

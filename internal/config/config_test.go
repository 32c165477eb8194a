package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.SiteURL)
	assert.Equal(t, time.Second, cfg.SubmitDelay)
	assert.Equal(t, 3*time.Second, cfg.ClearDelay)
	assert.Equal(t, 1200, cfg.CaptureWidth)
	assert.True(t, cfg.DefaultAdminCreds)
	assert.Equal(t, "admin", cfg.AdminUsername)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"PORT":              "9090",
		"GIN_MODE":          "release",
		"GITHUB_USER":       "someone",
		"FORM_SUBMIT_DELAY": "250ms",
		"ADMIN_USERNAME":    "root",
		"ADMIN_PASSWORD":    "s3cret",
		"TRUSTED_PROXIES":   "10.0.0.1, 10.0.0.2,",
		"DISABLE_TRACKING":  "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "http://localhost:9090", cfg.SiteURL)
	assert.Equal(t, "someone", cfg.GitHubUser)
	assert.Equal(t, 250*time.Millisecond, cfg.SubmitDelay)
	assert.False(t, cfg.DefaultAdminCreds)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	assert.True(t, cfg.DisableTracking)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_InvalidValues(t *testing.T) {
	_, err := FromEnv(env(map[string]string{
		"FORM_CLEAR_DELAY": "soon",
		"CAPTURE_WIDTH":    "wide",
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FORM_CLEAR_DELAY")
	assert.Contains(t, err.Error(), "CAPTURE_WIDTH")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"bad port", func(c *Config) { c.Port = "http" }, "invalid port"},
		{"bad mode", func(c *Config) { c.GinMode = "prod" }, "unknown gin mode"},
		{"empty db", func(c *Config) { c.DBPath = "" }, "db path is empty"},
		{"bad site url", func(c *Config) { c.SiteURL = "localhost" }, "invalid site url"},
		{"negative delay", func(c *Config) { c.ClearDelay = -time.Second }, "non-negative"},
		{"narrow capture", func(c *Config) { c.CaptureWidth = 100 }, "too small"},
		{"missing font", func(c *Config) { c.FontPath = "/nonexistent/font.ttf" }, "resume font not found"},
		{"release with default creds", func(c *Config) { c.GinMode = "release" }, "must be set in release mode"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := FromEnv(env(nil))
			require.NoError(t, err)
			tt.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GITHUB_USER=from-file\n"), 0o644))
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("GITHUB_USER", "")
	require.NoError(t, os.Unsetenv("GITHUB_USER"))

	cfg, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.GitHubUser)
}

func TestLoad_EnvFileOverridesDotenv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env.local")
	require.NoError(t, os.WriteFile(path, []byte("GITHUB_USER=local\nPORT=9090\n"), 0o644))
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("GITHUB_USER", "from-dotenv")
	t.Setenv("PORT", "8080")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.GitHubUser)
	assert.Equal(t, "9090", cfg.Port)
}

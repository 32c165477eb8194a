// Package config gathers the server settings from the environment.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting. Zero values are replaced by defaults.
type Config struct {
	Port         string
	GinMode      string
	DBPath       string
	TemplatesDir string
	StaticDir    string

	SiteURL     string // page opened by the full-page capture
	BrowserBin  string // headless browser; empty lets rod download one
	FontPath    string // TrueType font embedded in resume PDFs
	GitHubUser  string
	GitHubAPI   string
	GitHubTTL   time.Duration
	SubmitDelay time.Duration
	ClearDelay  time.Duration

	AdminUsername     string
	AdminPassword     string
	VisitorRetention  time.Duration
	SessionIdle       time.Duration
	TrustedProxies    []string
	DisableTracking   bool
	CaptureTimeout    time.Duration
	CaptureWidth      int
	DefaultAdminCreds bool
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{
		Port:             "8080",
		GinMode:          gin.DebugMode,
		DBPath:           "data/portfolio.db",
		TemplatesDir:     "templates",
		StaticDir:        "static",
		GitHubUser:       "yongdain",
		GitHubAPI:        "https://api.github.com",
		GitHubTTL:        10 * time.Minute,
		SubmitDelay:      time.Second,
		ClearDelay:       3 * time.Second,
		VisitorRetention: 365 * 24 * time.Hour,
		SessionIdle:      30 * time.Minute,
		CaptureTimeout:   45 * time.Second,
		CaptureWidth:     1200,
	}
}

// Load applies the given env files when present and then reads the
// environment. The files are loaded after .env (autoload) and override it.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Overload(f); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}
	cfg, err := FromEnv(os.Getenv)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromEnv builds a Config from getenv, applying defaults for unset keys.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := Defaults()

	str := func(key string, dst *string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	var errs []string
	dur := func(key string, dst *time.Duration) {
		v := strings.TrimSpace(getenv(key))
		if v == "" {
			return
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", key, err))
			return
		}
		*dst = d
	}

	str("PORT", &cfg.Port)
	str("GIN_MODE", &cfg.GinMode)
	str("DB_PATH", &cfg.DBPath)
	str("TEMPLATES_DIR", &cfg.TemplatesDir)
	str("STATIC_DIR", &cfg.StaticDir)
	str("SITE_URL", &cfg.SiteURL)
	str("ROD_BROWSER_BIN", &cfg.BrowserBin)
	str("RESUME_FONT", &cfg.FontPath)
	str("GITHUB_USER", &cfg.GitHubUser)
	str("GITHUB_API", &cfg.GitHubAPI)
	str("ADMIN_USERNAME", &cfg.AdminUsername)
	str("ADMIN_PASSWORD", &cfg.AdminPassword)
	dur("GITHUB_TTL", &cfg.GitHubTTL)
	dur("FORM_SUBMIT_DELAY", &cfg.SubmitDelay)
	dur("FORM_CLEAR_DELAY", &cfg.ClearDelay)
	dur("VISITOR_RETENTION", &cfg.VisitorRetention)
	dur("SESSION_IDLE", &cfg.SessionIdle)
	dur("CAPTURE_TIMEOUT", &cfg.CaptureTimeout)

	if v := strings.TrimSpace(getenv("CAPTURE_WIDTH")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("CAPTURE_WIDTH: %v", err))
		} else {
			cfg.CaptureWidth = n
		}
	}
	if v := strings.TrimSpace(getenv("DISABLE_TRACKING")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Sprintf("DISABLE_TRACKING: %v", err))
		} else {
			cfg.DisableTracking = b
		}
	}
	if v := strings.TrimSpace(getenv("TRUSTED_PROXIES")); v != "" {
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				cfg.TrustedProxies = append(cfg.TrustedProxies, p)
			}
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("config error: invalid values: %s", strings.Join(errs, "; "))
	}

	if cfg.SiteURL == "" {
		cfg.SiteURL = "http://localhost:" + cfg.Port
	}
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		cfg.DefaultAdminCreds = true
		if cfg.AdminUsername == "" {
			cfg.AdminUsername = "admin"
		}
		if cfg.AdminPassword == "" {
			cfg.AdminPassword = "admin123"
		}
	}
	return &cfg, nil
}

// Validate checks value ranges and combinations.
func (c *Config) Validate() error {
	if n, err := strconv.Atoi(c.Port); err != nil || n <= 0 || n > 65535 {
		return fmt.Errorf("config error: invalid port %q", c.Port)
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("config error: unknown gin mode %q", c.GinMode)
	}
	if c.DBPath == "" {
		return fmt.Errorf("config error: db path is empty")
	}
	if u, err := url.Parse(c.SiteURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config error: invalid site url %q", c.SiteURL)
	}
	if u, err := url.Parse(c.GitHubAPI); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config error: invalid github api url %q", c.GitHubAPI)
	}
	if c.GitHubUser == "" {
		return fmt.Errorf("config error: github user is empty")
	}
	if c.SubmitDelay < 0 || c.ClearDelay < 0 {
		return fmt.Errorf("config error: form delays must be non-negative")
	}
	if c.CaptureWidth < 320 {
		return fmt.Errorf("config error: capture width %d is too small", c.CaptureWidth)
	}
	if c.FontPath != "" {
		if _, err := os.Stat(c.FontPath); err != nil {
			return fmt.Errorf("config error: resume font not found: %s", c.FontPath)
		}
	}
	if c.GinMode == gin.ReleaseMode && c.DefaultAdminCreds {
		return fmt.Errorf("config error: ADMIN_USERNAME and ADMIN_PASSWORD must be set in release mode")
	}
	return nil
}

package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// ErrNoConfig is returned when neither a config file nor credential
// environment variables exist
var ErrNoConfig = errors.New("no configuration found")

// Config is the application configuration. Values come from
// ~/.ironplan/config.json with IRONPLAN_* environment variables
// layered on top, so the same build runs from a dotfile on a laptop
// or from env vars on a server.
type Config struct {
	Strava StravaConfig `json:"strava"`
	Plan   PlanConfig   `json:"plan"`

	// RevalidateSeconds is how long fetched weekly stats stay fresh
	// before the next view triggers a re-fetch
	RevalidateSeconds int `json:"revalidate_seconds" env:"IRONPLAN_REVALIDATE_SECONDS"`
}

// StravaConfig holds the Strava API credentials
type StravaConfig struct {
	ClientID     string `json:"client_id" env:"IRONPLAN_STRAVA_CLIENT_ID"`
	ClientSecret string `json:"client_secret" env:"IRONPLAN_STRAVA_CLIENT_SECRET"`
	RefreshToken string `json:"refresh_token" env:"IRONPLAN_STRAVA_REFRESH_TOKEN"`
}

// PlanConfig selects the training plan document
type PlanConfig struct {
	// Path to a plan JSON file; empty means the built-in 49-week plan
	Path string `json:"path" env:"IRONPLAN_PLAN_PATH"`
}

// DefaultConfig returns the configuration defaults
func DefaultConfig() *Config {
	return &Config{
		RevalidateSeconds: 3600,
	}
}

// Revalidate returns the stats cache TTL
func (c *Config) Revalidate() time.Duration {
	return time.Duration(c.RevalidateSeconds) * time.Second
}

// Load reads the config file if present and applies environment
// overrides. Returns ErrNoConfig when there is no file and no
// credentials in the environment either.
func Load(ctx context.Context) (*Config, error) {
	cfg := DefaultConfig()

	path, err := configPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	fileFound := err == nil
	switch {
	case fileFound:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case !os.IsNotExist(err):
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := envconfig.Process(ctx, cfg); err != nil {
		return nil, fmt.Errorf("reading environment: %w", err)
	}

	if !fileFound && cfg.Strava == (StravaConfig{}) {
		return nil, ErrNoConfig
	}

	return cfg, nil
}

// Validate checks that all required credentials are present. A missing
// credential is fatal at startup; there is no degraded mode without
// API access.
func (c *Config) Validate() error {
	if c.Strava.ClientID == "" || c.Strava.ClientID == "YOUR_CLIENT_ID" {
		return errors.New("strava.client_id is required - get it from https://www.strava.com/settings/api")
	}
	if c.Strava.ClientSecret == "" || c.Strava.ClientSecret == "YOUR_CLIENT_SECRET" {
		return errors.New("strava.client_secret is required - get it from https://www.strava.com/settings/api")
	}
	if c.Strava.RefreshToken == "" || c.Strava.RefreshToken == "YOUR_REFRESH_TOKEN" {
		return errors.New("strava.refresh_token is required - complete the OAuth flow once to obtain it")
	}
	if c.RevalidateSeconds < 0 {
		return fmt.Errorf("revalidate_seconds must not be negative, got %d", c.RevalidateSeconds)
	}
	return nil
}

// CreateExample writes an example config file if none exists
func CreateExample() error {
	path, err := configPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil {
		return nil // don't overwrite an existing config
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	example := DefaultConfig()
	example.Strava = StravaConfig{
		ClientID:     "YOUR_CLIENT_ID",
		ClientSecret: "YOUR_CLIENT_SECRET",
		RefreshToken: "YOUR_REFRESH_TOKEN",
	}

	data, err := json.MarshalIndent(example, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Dir returns the path of the config directory
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".ironplan"), nil
}

func configPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

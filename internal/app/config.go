package app

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"picipher/internal/domain"
	"picipher/internal/remote"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home          string        `yaml:"home"`           // cache and output dir, e.g. $HOME/.picipher
	DigitsURL     string        `yaml:"digits_url"`     // canonical 1,000,000-digit artifact
	Offline       bool          `yaml:"offline"`        // skip the network tier
	FetchTimeout  time.Duration `yaml:"fetch_timeout"`  // whole-request timeout for the fetch
	ComputeDigits int           `yaml:"compute_digits"` // digits computed when both artifact tiers fail
	SaveOutput    bool          `yaml:"save_output"`    // write translated_message.txt

	HTTP *http.Client `yaml:"-"` // optional; defaults to a client with FetchTimeout
}

// DefaultConfig returns the built-in settings. Home is left empty and
// resolved by Resolve.
func DefaultConfig() Config {
	return Config{
		DigitsURL:     remote.DefaultURL,
		FetchTimeout:  30 * time.Second,
		ComputeDigits: domain.ComputedDigits,
		SaveOutput:    true,
	}
}

// LoadConfig reads a YAML file over DefaultConfig. An empty path returns the
// defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch_timeout must be positive, got %s", c.FetchTimeout)
	}
	if c.ComputeDigits <= 0 {
		return fmt.Errorf("compute_digits must be positive, got %d", c.ComputeDigits)
	}
	if !c.Offline && c.DigitsURL == "" {
		return errors.New("digits_url is required unless offline")
	}
	return nil
}

// Resolve fills Home from the user's home directory when unset and creates it.
func (c *Config) Resolve() error {
	if c.Home == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		c.Home = filepath.Join(dir, ".picipher")
	}
	return os.MkdirAll(c.Home, 0o700)
}

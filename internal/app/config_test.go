package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-logr/logr"

	"picipher/internal/app"
	"picipher/internal/domain"
	"picipher/internal/remote"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "picipher.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := app.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DigitsURL != remote.DefaultURL || cfg.ComputeDigits != domain.ComputedDigits {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.SaveOutput || cfg.Offline || cfg.FetchTimeout != 30*time.Second {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfig_OverlaysFile(t *testing.T) {
	path := writeConfig(t, `
home: /tmp/pi-home
offline: true
fetch_timeout: 5s
compute_digits: 2000
save_output: false
`)
	cfg, err := app.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Home != "/tmp/pi-home" || !cfg.Offline || cfg.FetchTimeout != 5*time.Second {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.ComputeDigits != 2000 || cfg.SaveOutput {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.DigitsURL != remote.DefaultURL {
		t.Fatalf("absent key must keep default, got %q", cfg.DigitsURL)
	}
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	cfg, err := app.LoadConfig(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.ComputeDigits != domain.ComputedDigits {
		t.Fatalf("empty file must keep defaults: %+v", cfg)
	}
}

func TestLoadConfig_Rejects(t *testing.T) {
	cases := map[string]string{
		"unknown key":   "colour: blue\n",
		"bad duration":  "fetch_timeout: soon\n",
		"zero digits":   "compute_digits: 0\n",
		"no url online": "digits_url: \"\"\n",
	}
	for name, body := range cases {
		if _, err := app.LoadConfig(writeConfig(t, body)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	if _, err := app.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("missing file: expected error")
	}
}

func TestNewWire_OfflineTranslatesAndSaves(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Home = t.TempDir()
	cfg.Offline = true
	cfg.ComputeDigits = 200
	if err := cfg.Resolve(); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	w, err := app.NewWire(cfg, logr.Discard(), nil)
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if w.Fetcher != nil {
		t.Fatal("offline wire must not have a fetcher")
	}

	res, err := w.Translator.Translate(context.Background(), domain.Encrypt, "A", 0)
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if res.Message.String() != "D" || !res.Saved {
		t.Fatalf("got %q saved=%v, want D saved", res.Message.String(), res.Saved)
	}
	b, err := os.ReadFile(w.Output.Path())
	if err != nil || string(b) != "D" {
		t.Fatalf("saved output %q, err %v", b, err)
	}

	d, err := w.Source.Digits(context.Background())
	if err != nil {
		t.Fatalf("Digits: %v", err)
	}
	if d.Tier != domain.TierCompute || d.Len() != 200 {
		t.Fatalf("tier %s len %d", d.Tier, d.Len())
	}
}

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServerPort != "8080" {
		t.Errorf("expected port 8080, got %s", cfg.ServerPort)
	}
	if cfg.ReadTimeout != 15*time.Second {
		t.Errorf("expected 15s read timeout, got %s", cfg.ReadTimeout)
	}
	if len(cfg.Transcripts.Languages) != 1 || cfg.Transcripts.Languages[0] != "en" {
		t.Errorf("expected default languages [en], got %v", cfg.Transcripts.Languages)
	}
	if cfg.RateLimit.Enabled {
		t.Error("rate limiting must be disabled by default")
	}
	if cfg.Transcripts.FetchTimeout != 30*time.Second {
		t.Errorf("expected 30s fetch timeout, got %s", cfg.Transcripts.FetchTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("READ_TIMEOUT", "10s")
	t.Setenv("TRANSCRIPT_LANGUAGES", "de,en")
	t.Setenv("TRANSCRIPT_FETCH_TIMEOUT", "5s")
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_RPM", "30")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.ServerPort != "9090" {
		t.Errorf("expected 9090, got %s", cfg.ServerPort)
	}
	if cfg.ReadTimeout != 10*time.Second {
		t.Errorf("expected 10s, got %s", cfg.ReadTimeout)
	}
	if len(cfg.Transcripts.Languages) != 2 || cfg.Transcripts.Languages[0] != "de" {
		t.Errorf("expected [de en], got %v", cfg.Transcripts.Languages)
	}
	if cfg.Transcripts.FetchTimeout != 5*time.Second {
		t.Errorf("expected 5s, got %s", cfg.Transcripts.FetchTimeout)
	}
	if !cfg.RateLimit.Enabled || cfg.RateLimit.RequestsPerMinute != 30 {
		t.Errorf("unexpected rate limit config: %+v", cfg.RateLimit)
	}
	if !cfg.Debug {
		t.Error("expected debug to be enabled")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Valid", func(c *Config) {}, false},
		{"Missing port", func(c *Config) { c.ServerPort = "" }, true},
		{"Zero read timeout", func(c *Config) { c.ReadTimeout = 0 }, true},
		{"No languages", func(c *Config) { c.Transcripts.Languages = nil }, true},
		{"Zero fetch timeout", func(c *Config) { c.Transcripts.FetchTimeout = 0 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			tt.mutate(cfg)

			err = cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

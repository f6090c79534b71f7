package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear any values the environment might carry
	for _, key := range []string{"PORT", "HOST", "SALES_TAX_RATE_SERVICE", "RATE_LOOKUP_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != "8002" {
		t.Errorf("Port = %q, want %q", cfg.Server.Port, "8002")
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.RateService.URL != "http://localhost:8001/find_rate" {
		t.Errorf("RateService.URL = %q, want default", cfg.RateService.URL)
	}
	if cfg.RateService.TimeoutSeconds != 10 {
		t.Errorf("RateService.TimeoutSeconds = %d, want 10", cfg.RateService.TimeoutSeconds)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "info")
	}
}

func TestLoad_RateServiceOverride(t *testing.T) {
	t.Setenv("SALES_TAX_RATE_SERVICE", "http://rates.internal:9000/find_rate")
	t.Setenv("RATE_LOOKUP_TIMEOUT", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.RateService.URL != "http://rates.internal:9000/find_rate" {
		t.Errorf("RateService.URL = %q, want override", cfg.RateService.URL)
	}
	if cfg.RateService.TimeoutSeconds != 3 {
		t.Errorf("RateService.TimeoutSeconds = %d, want 3", cfg.RateService.TimeoutSeconds)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: true,
		},
		{
			name:    "missing rate service url",
			mutate:  func(c *Config) { c.RateService.URL = "" },
			wantErr: true,
		},
		{
			name:    "malformed rate service url",
			mutate:  func(c *Config) { c.RateService.URL = "not a url" },
			wantErr: true,
		},
		{
			name:    "zero lookup timeout",
			mutate:  func(c *Config) { c.RateService.TimeoutSeconds = 0 },
			wantErr: true,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Server: ServerConfig{Port: "8002", Host: "0.0.0.0"},
				RateService: RateServiceConfig{
					URL:            "http://localhost:8001/find_rate",
					TimeoutSeconds: 10,
				},
				LogLevel: "info",
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

package config

import (
	"strings"
	"testing"
	"time"
)

func setRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/courseboxd?sslmode=disable")
	t.Setenv("AUTH_SECRET", "test-secret")
}

func TestLoad_DefaultValues(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.HTTPAddress != ":8080" {
		t.Errorf("HTTPAddress = %v, want %v", cfg.HTTPAddress, ":8080")
	}
	if cfg.DatabaseDriver != DriverPostgres {
		t.Errorf("DatabaseDriver = %v, want %v", cfg.DatabaseDriver, DriverPostgres)
	}
	if cfg.AuthIssuer != "courseboxd" {
		t.Errorf("AuthIssuer = %v, want %v", cfg.AuthIssuer, "courseboxd")
	}
	if cfg.AuthTokenTTL != 24*time.Hour {
		t.Errorf("AuthTokenTTL = %v, want %v", cfg.AuthTokenTTL, 24*time.Hour)
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("BcryptCost = %v, want %v", cfg.BcryptCost, 12)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "json" {
		t.Errorf("log settings = %v/%v, want info/json", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.ShutdownTimeout != 5*time.Second {
		t.Errorf("ShutdownTimeout = %v, want %v", cfg.ShutdownTimeout, 5*time.Second)
	}
	if len(cfg.CORSOrigins) != 0 {
		t.Errorf("CORSOrigins = %v, want empty", cfg.CORSOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")
	t.Setenv("AUTH_TOKEN_TTL", "90m")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.DatabaseDriver != DriverSQLite {
		t.Errorf("DatabaseDriver = %v, want %v", cfg.DatabaseDriver, DriverSQLite)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://admin.example.com" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.AuthTokenTTL != 90*time.Minute {
		t.Errorf("AuthTokenTTL = %v, want %v", cfg.AuthTokenTTL, 90*time.Minute)
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "missing database url", env: map[string]string{"AUTH_SECRET": "s"}, want: "DATABASE_URL"},
		{name: "missing secret", env: map[string]string{"DATABASE_URL": "x"}, want: "AUTH_SECRET"},
		{name: "unknown driver", env: map[string]string{"DATABASE_URL": "x", "AUTH_SECRET": "s", "DATABASE_DRIVER": "mysql"}, want: "DATABASE_DRIVER"},
		{name: "unknown log format", env: map[string]string{"DATABASE_URL": "x", "AUTH_SECRET": "s", "LOG_FORMAT": "xml"}, want: "LOG_FORMAT"},
		{name: "bad ttl", env: map[string]string{"DATABASE_URL": "x", "AUTH_SECRET": "s", "AUTH_TOKEN_TTL": "-1h"}, want: "AUTH_TOKEN_TTL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "")
			t.Setenv("AUTH_SECRET", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			if err == nil {
				t.Fatalf("expected error mentioning %s", tc.want)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error = %v, want mention of %s", err, tc.want)
			}
		})
	}
}

package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("WMS_SOURCE_DSN", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Fatalf("expected :8080, got %s", cfg.Server.Addr)
	}
	if cfg.Source.Driver != "postgres" || cfg.Source.DSN != "" {
		t.Fatalf("unexpected source: %+v", cfg.Source)
	}
	if cfg.Upload.MaxBytes != 32<<20 {
		t.Fatalf("unexpected upload limit: %d", cfg.Upload.MaxBytes)
	}
	if cfg.Cache.MaxEntries != 64 || cfg.Cache.SQLTTL != 5*time.Minute {
		t.Fatalf("unexpected cache config: %+v", cfg.Cache)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("WMS_SERVER_ADDR", ":9090")
	t.Setenv("WMS_SOURCE_DRIVER", "sqlite3")
	t.Setenv("WMS_SOURCE_DSN", "file:wms.db")
	t.Setenv("WMS_CACHE_SQL_TTL", "90s")
	t.Setenv("WMS_CACHE_MAX_ENTRIES", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Addr != ":9090" || cfg.Source.Driver != "sqlite3" || cfg.Source.DSN != "file:wms.db" {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.Cache.SQLTTL != 90*time.Second || cfg.Cache.MaxEntries != 8 {
		t.Fatalf("cache overrides not applied: %+v", cfg.Cache)
	}
}

func TestLoad_InvalidDriver(t *testing.T) {
	t.Setenv("WMS_SOURCE_DRIVER", "mysql")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unsupported driver")
	}
}

func TestLoad_InvalidCacheTTL(t *testing.T) {
	t.Setenv("WMS_CACHE_SQL_TTL", "0s")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero sql ttl")
	}
}

package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ADMIN_USERNAME", "admin")
	t.Setenv("ADMIN_PASSWORD", "s3cret")
}

func TestLoad_AppEnvValidation(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_RequiresAdminCredentials(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error without admin credentials")
	}
}

func TestLoad_StorageDriverValidation(t *testing.T) {
	setRequiredEnv(t)

	t.Run("defaults to postgres", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StorageDriver != StorageDriverPostgres {
			t.Fatalf("unexpected default driver: %s", cfg.StorageDriver)
		}
	})

	t.Run("memory accepted", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "memory")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.StorageDriver != StorageDriverMemory {
			t.Fatalf("unexpected driver: %s", cfg.StorageDriver)
		}
	})

	t.Run("invalid rejected", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "dynamo")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid STORAGE_DRIVER")
		}
	})
}

func TestLoad_SessionTTLParsing(t *testing.T) {
	setRequiredEnv(t)

	t.Run("default", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SessionTTL != 8*time.Hour {
			t.Fatalf("unexpected default session ttl: %s", cfg.SessionTTL)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		t.Setenv("SESSION_TTL", "never")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid SESSION_TTL")
		}
	})
}

func TestLoad_ObjectStoreRequiresEndpointWhenEnabled(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("OBJECT_STORE_ENABLED", "true")
	t.Setenv("OBJECT_STORE_ENDPOINT", "")
	t.Setenv("OBJECT_STORE_BUCKET", "copa-media")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when OBJECT_STORE_ENABLED=true without OBJECT_STORE_ENDPOINT")
	}
}

func TestLoad_ObjectStoreConfigParsing(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("OBJECT_STORE_ENABLED", "true")
	t.Setenv("OBJECT_STORE_ENDPOINT", "storage.example.com")
	t.Setenv("OBJECT_STORE_BUCKET", "copa-media")
	t.Setenv("OBJECT_STORE_ACCESS_KEY", "access")
	t.Setenv("OBJECT_STORE_SECRET_KEY", "secret")
	t.Setenv("OBJECT_STORE_CIRCUIT_FAILURE_COUNT", "3")
	t.Setenv("OBJECT_STORE_CIRCUIT_OPEN_TIMEOUT", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ObjectStoreEndpoint != "storage.example.com" {
		t.Fatalf("unexpected endpoint: %q", cfg.ObjectStoreEndpoint)
	}
	if cfg.ObjectStoreCircuitFailures != 3 {
		t.Fatalf("unexpected circuit failure count: %d", cfg.ObjectStoreCircuitFailures)
	}
	if cfg.ObjectStoreCircuitOpenTimeout != 30*time.Second {
		t.Fatalf("unexpected circuit open timeout: %s", cfg.ObjectStoreCircuitOpenTimeout)
	}
}

func TestLoad_CORSOriginsDefaultAndParsing(t *testing.T) {
	setRequiredEnv(t)

	t.Run("default wildcard", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", "")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
			t.Fatalf("unexpected default CORS origins: %+v", cfg.CORSAllowedOrigins)
		}
	})

	t.Run("comma separated parsing", func(t *testing.T) {
		t.Setenv("CORS_ALLOWED_ORIGINS", " https://copanordeste.com.br, http://localhost:5173 ")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if len(cfg.CORSAllowedOrigins) != 2 {
			t.Fatalf("unexpected CORS origins length: %d", len(cfg.CORSAllowedOrigins))
		}
		if cfg.CORSAllowedOrigins[0] != "https://copanordeste.com.br" {
			t.Fatalf("unexpected first CORS origin: %s", cfg.CORSAllowedOrigins[0])
		}
	})
}

func TestLoad_CacheConfigParsing(t *testing.T) {
	setRequiredEnv(t)

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("CACHE_ENABLED", "")
		t.Setenv("CACHE_TTL", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.CacheEnabled {
			t.Fatalf("expected cache enabled by default")
		}
		if cfg.CacheTTL != 60*time.Second {
			t.Fatalf("unexpected default cache ttl: %s", cfg.CacheTTL)
		}
	})

	t.Run("invalid ttl", func(t *testing.T) {
		t.Setenv("CACHE_TTL", "bad")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for invalid CACHE_TTL")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

package config

import (
	"testing"
	"time"
)

// clearEnv blanks every variable the config reads, so a pre-set process
// environment cannot leak into default assertions. env treats empty values
// as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SERVER_PORT", "SERVER_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT", "SERVER_THROTTLE_LIMIT",
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "REDIS_TTL",
		"CACHE_ENABLE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Timeout != 2*time.Minute {
		t.Errorf("Timeout = %v, want 2m", cfg.Server.Timeout)
	}
	if cfg.Server.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.Server.ShutdownTimeout)
	}
	if cfg.OpenAI.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q, want gpt-4o-mini", cfg.OpenAI.Model)
	}
	if cfg.RedisConfig.TTL != 10*time.Minute {
		t.Errorf("Redis TTL = %v, want 10m", cfg.RedisConfig.TTL)
	}
	if cfg.CacheEnable {
		t.Error("cache must be disabled by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("CACHE_ENABLE", "true")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_TTL", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.OpenAI.APIKey != "sk-test" {
		t.Errorf("APIKey = %q", cfg.OpenAI.APIKey)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("Model = %q, want gpt-4o", cfg.OpenAI.Model)
	}
	if !cfg.CacheEnable {
		t.Error("CacheEnable not parsed")
	}
	if cfg.RedisConfig.Addr != "localhost:6379" {
		t.Errorf("Redis Addr = %q", cfg.RedisConfig.Addr)
	}
	if cfg.RedisConfig.TTL != time.Hour {
		t.Errorf("Redis TTL = %v, want 1h", cfg.RedisConfig.TTL)
	}
}

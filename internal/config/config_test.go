package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_ANON_KEY", "anon-key")
	t.Setenv("APP_ENV", "")
	t.Setenv("APP_PORT", "")
	t.Setenv("SES_REGION", "")
	t.Setenv("SES_FROM_NAME", "")

	cfg := Load()
	if cfg.Env != "development" {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.SupabaseURL != "https://project.supabase.co" {
		t.Errorf("SupabaseURL = %q", cfg.SupabaseURL)
	}
	if cfg.SESRegion != "us-east-1" {
		t.Errorf("SESRegion = %q, want us-east-1", cfg.SESRegion)
	}
	if cfg.SESFromName != "Famtivity" {
		t.Errorf("SESFromName = %q, want Famtivity", cfg.SESFromName)
	}
}

func TestLoadRateLimitConfigClamps(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")
	t.Setenv("RATE_LIMIT_CAPACITY", "0")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "garbage")
	t.Setenv("RATE_LIMIT_TTL", "1s")

	cfg := LoadRateLimitConfig()
	if !cfg.Enabled {
		t.Error("Enabled should default to true")
	}
	if cfg.Capacity != 1 {
		t.Errorf("Capacity = %d, want clamp to 1", cfg.Capacity)
	}
	if cfg.RefillInterval != time.Second {
		t.Errorf("RefillInterval = %v, want fallback of 1s", cfg.RefillInterval)
	}
	if want := 5 * cfg.RefillInterval; cfg.TTL < want {
		t.Errorf("TTL = %v, want at least %v", cfg.TTL, want)
	}
}

func TestLoadCacheConfigDefaults(t *testing.T) {
	t.Setenv("CACHE_ENABLED", "")
	t.Setenv("CACHE_TTL", "")
	t.Setenv("CACHE_PREFIX", "")
	t.Setenv("CACHE_MAX_BODY_BYTES", "")

	cfg := LoadCacheConfig()
	if !cfg.Enabled {
		t.Error("Enabled should default to true")
	}
	if cfg.TTL != 30*time.Second {
		t.Errorf("TTL = %v, want 30s", cfg.TTL)
	}
	if cfg.Prefix != "cache" {
		t.Errorf("Prefix = %q, want cache", cfg.Prefix)
	}
	if cfg.MaxBodyBytes != 1048576 {
		t.Errorf("MaxBodyBytes = %d, want 1 MiB", cfg.MaxBodyBytes)
	}
}

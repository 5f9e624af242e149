package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("TMDB_REGION", "")
	t.Setenv("CACHE_TTL_HOURS", "")

	cfg := Load()
	if cfg.Port != 5174 {
		t.Fatalf("expected default port 5174, got %d", cfg.Port)
	}
	if cfg.Region != "NG" {
		t.Fatalf("expected default region NG, got %q", cfg.Region)
	}
	if cfg.CacheTTLHours != 24 {
		t.Fatalf("expected default cache TTL 24h, got %d", cfg.CacheTTLHours)
	}
	if cfg.TMDBAPIKey != "" {
		t.Fatalf("expected empty TMDB key, got %q", cfg.TMDBAPIKey)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("TMDB_REGION", "GH")
	t.Setenv("TMDB_API_KEY", "  secret  ")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example ,")

	cfg := Load()
	if cfg.Port != 8080 {
		t.Fatalf("expected port 8080, got %d", cfg.Port)
	}
	if cfg.Region != "GH" {
		t.Fatalf("expected region GH, got %q", cfg.Region)
	}
	if cfg.TMDBAPIKey != "secret" {
		t.Fatalf("expected trimmed key, got %q", cfg.TMDBAPIKey)
	}
	if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected origins: %v", cfg.AllowedOrigins)
	}
}

func TestLoadBadPortFallsBack(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	if cfg := Load(); cfg.Port != 5174 {
		t.Fatalf("expected fallback port, got %d", cfg.Port)
	}
}

package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "test-key")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("TRENDING_DEFAULT_REGION", "")
	t.Setenv("TRENDING_DEFAULT_LIMIT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Fatalf("default port = %d, expected 8080", cfg.Server.Port)
	}
	if cfg.Trending.DefaultRegion != "US" {
		t.Fatalf("default region = %q, expected US", cfg.Trending.DefaultRegion)
	}
	if cfg.Trending.DefaultLimit != 25 {
		t.Fatalf("default limit = %d, expected 25", cfg.Trending.DefaultLimit)
	}
}

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when YOUTUBE_API_KEY is missing")
	}
}

func TestValidateRejectsBadLimit(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "test-key")
	t.Setenv("TRENDING_DEFAULT_LIMIT", "99")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for limit outside 1..50")
	}
}

func TestLoadLowercasesRegionInput(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "test-key")
	t.Setenv("TRENDING_DEFAULT_REGION", "in")
	t.Setenv("TRENDING_DEFAULT_LIMIT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Trending.DefaultRegion != "IN" {
		t.Fatalf("region = %q, expected IN", cfg.Trending.DefaultRegion)
	}
}

func TestParseCommaSeparated(t *testing.T) {
	t.Parallel()

	got := parseCommaSeparated(" https://a.example , ,https://b.example")
	expected := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("parseCommaSeparated() = %v, expected %v", got, expected)
	}

	if parseCommaSeparated("  ") != nil {
		t.Fatalf("expected nil for blank input")
	}
}

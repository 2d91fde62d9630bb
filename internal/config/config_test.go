package config

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q, want :8080", cfg.ListenAddr)
	}
	if cfg.ContentFile != "" {
		t.Errorf("ContentFile = %q, want embedded default", cfg.ContentFile)
	}
	if cfg.ReloadInterval != 0 {
		t.Errorf("ReloadInterval = %v, want 0 (load once)", cfg.ReloadInterval)
	}
	if cfg.ThemeCookieName != "theme" {
		t.Errorf("ThemeCookieName = %q, want theme", cfg.ThemeCookieName)
	}
	if cfg.RedisEnabled() {
		t.Error("redis should be disabled without an address")
	}
	if want := []string{"127.0.0.1/32", "::1/128"}; !reflect.DeepEqual(cfg.AllowedCIDRS, want) {
		t.Errorf("AllowedCIDRS = %v, want %v", cfg.AllowedCIDRS, want)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LINKSHELF_LISTEN_ADDR", ":9090")
	t.Setenv("LINKSHELF_CONTENT_FILE", "/srv/content.yaml")
	t.Setenv("LINKSHELF_RELOAD_INTERVAL", "5m")
	t.Setenv("LINKSHELF_REDIS_ADDR", "redis:6379")
	t.Setenv("LINKSHELF_ALLOWED_CIDRS", "none")
	t.Setenv("LINKSHELF_CORS_ORIGINS", "https://a.example, 'https://b.example'")

	cfg := Load()

	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.ContentFile != "/srv/content.yaml" {
		t.Errorf("ContentFile = %q", cfg.ContentFile)
	}
	if cfg.ReloadInterval != 5*time.Minute {
		t.Errorf("ReloadInterval = %v", cfg.ReloadInterval)
	}
	if !cfg.RedisEnabled() {
		t.Error("redis should be enabled")
	}
	if cfg.AllowedCIDRS != nil {
		t.Errorf("AllowedCIDRS = %v, want nil", cfg.AllowedCIDRS)
	}
	if want := []string{"https://a.example", "https://b.example"}; !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.CORSOrigins, want)
	}
}

func TestLoadRedisPasswordRequired(t *testing.T) {
	t.Setenv("LINKSHELF_REDIS_ADDR", "redis:6379")
	t.Setenv("LINKSHELF_REDIS_PASSWORD_REQUIRED", "true")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Load() should panic without a password")
		}
	}()
	Load()
}

func TestRedacted(t *testing.T) {
	cfg := &Config{RedisUser: "admin", RedisPassword: "secret"}
	red := cfg.Redacted()

	if red.RedisPassword == "secret" || red.RedisUser == "admin" {
		t.Errorf("credentials leaked: %+v", red)
	}
	if cfg.RedisPassword != "secret" {
		t.Error("Redacted() must not modify the original")
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{name: "valid duration", value: "5s", def: time.Second, expected: 5 * time.Second},
		{name: "invalid duration uses default", value: "invalid", def: 10 * time.Second, expected: 10 * time.Second},
		{name: "missing variable uses default", value: "", def: 15 * time.Second, expected: 15 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LINKSHELF_TEST_DURATION", tt.value)

			if got := mustDuration("TEST_DURATION", tt.def); got != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		def      bool
		expected bool
	}{
		{name: "true value", value: "true", def: false, expected: true},
		{name: "false value", value: "false", def: true, expected: false},
		{name: "invalid value uses default", value: "invalid", def: true, expected: true},
		{name: "missing variable uses default", value: "", def: false, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LINKSHELF_TEST_BOOL", tt.value)

			if got := mustBool("TEST_BOOL", tt.def); got != tt.expected {
				t.Errorf("mustBool() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetenvInt(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected int
	}{
		{name: "valid integer", value: "42", expected: 42},
		{name: "invalid integer uses default", value: "nope", expected: 7},
		{name: "missing variable uses default", value: "", expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LINKSHELF_TEST_INT", tt.value)

			if got := getenvInt("TEST_INT", 7); got != tt.expected {
				t.Errorf("getenvInt() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		in       string
		expected []string
	}{
		{in: "", expected: nil},
		{in: "a", expected: []string{"a"}},
		{in: " a , b ,, c ", expected: []string{"a", "b", "c"}},
		{in: `"a", 'b'`, expected: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := splitAndTrim(tt.in)
			if len(got) == 0 && len(tt.expected) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("splitAndTrim(%q) = %v, want %v", tt.in, got, tt.expected)
			}
		})
	}
}

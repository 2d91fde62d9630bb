package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const envPrefix = "LINKSHELF_"

type Config struct {
	ListenAddr      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per request handler deadline

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	ContentFile    string        // JSON or YAML content store, empty = embedded default
	ReloadInterval time.Duration // 0 = load once (manual /reload still works)

	// Theme persistence
	ThemeCookieName   string
	ThemeCookieMaxAge time.Duration
	CookieSecure      bool   // set Secure on cookies (HTTPS deployments)
	VisitorCookieName string // visitor id cookie, only issued when Redis is enabled

	// Redis preference mirror, empty address = disabled
	RedisAddr             string
	RedisUser             string
	RedisPassword         string
	RedisPasswordRequired bool
	RedisDB               int
	RedisDT               time.Duration // dial timeout
	RedisRT               time.Duration // read timeout
	RedisWT               time.Duration // write timeout
	RedisMaxWait          time.Duration // max wait between retries
	RedisPingTimeout      time.Duration // timeout for each ping attempt
	RedisPoolSize         int
	RedisConnectTimeout   time.Duration // total time to retry connecting
	RedisRetryInterval    time.Duration // initial wait between retries, grows exponentially
	RedisWarnThreshold    int           // warn after this many attempts
	PreferenceAudit       time.Duration // how often mirrored preferences are counted

	// Access restrictions
	AllowedHosts []string // restrict /reload to these Host headers, empty = any
	AllowedCIDRS []string // restrict /reload and /metrics to these IPs/CIDRs, empty = any
	TrustProxy   bool     // resolve client IPs from proxy headers
	CORSOrigins  []string // origins allowed to read /api/content, empty = none

	// Theme toggle rate limit (per client IP)
	ToggleBurst           int
	ToggleRefillPerMinute int
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenAddr:      getenv("LISTEN_ADDR", ":8080"),
		ShutdownTimeout: mustDuration("SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("REQUEST_TIMEOUT", 10*time.Second),

		// Logging
		LogLevel:  getenv("LOG_LEVEL", "info"),
		PrettyLog: mustBool("PRETTY_LOG", true),

		// Content
		ContentFile:    getenv("CONTENT_FILE", ""),
		ReloadInterval: mustDuration("RELOAD_INTERVAL", 0),

		// Theme
		ThemeCookieName:   getenv("THEME_COOKIE", "theme"),
		ThemeCookieMaxAge: mustDuration("THEME_COOKIE_MAX_AGE", 365*24*time.Hour),
		CookieSecure:      mustBool("COOKIE_SECURE", false),
		VisitorCookieName: getenv("VISITOR_COOKIE", "linkshelf_visitor"),

		// Redis settings
		RedisAddr:             getenv("REDIS_ADDR", ""),
		RedisUser:             getenv("REDIS_USERNAME", ""),
		RedisPassword:         getenv("REDIS_PASSWORD", ""),
		RedisPasswordRequired: mustBool("REDIS_PASSWORD_REQUIRED", false),
		RedisDB:               getenvInt("REDIS_DB", 0),
		RedisDT:               mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:               mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:               mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:          mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:      mustDuration("REDIS_PING_TIMEOUT", 2*time.Second),
		RedisPoolSize:         getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout:   mustDuration("REDIS_CONNECT_TIMEOUT", 15*time.Second),
		RedisRetryInterval:    mustDuration("REDIS_RETRY_INTERVAL", time.Second),
		RedisWarnThreshold:    getenvInt("REDIS_WARN_THRESHOLD", 3),
		PreferenceAudit:       mustDuration("PREFERENCE_AUDIT_INTERVAL", 15*time.Minute),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("ALLOWED_HOSTS", "")),
		AllowedCIDRS: parseAllowedIPs(getenv("ALLOWED_CIDRS", "127.0.0.1/32, ::1/128")),
		TrustProxy:   mustBool("TRUST_PROXY", false),
		CORSOrigins:  splitAndTrim(getenv("CORS_ORIGINS", "")),

		ToggleBurst:           getenvInt("TOGGLE_BURST", 10),
		ToggleRefillPerMinute: getenvInt("TOGGLE_REFILL_PER_MIN", 30),
	}

	if cfg.RedisAddr != "" && cfg.RedisPasswordRequired && cfg.RedisPassword == "" {
		panic(fmt.Sprintf("❌ FATAL: %sREDIS_PASSWORD is required when %sREDIS_PASSWORD_REQUIRED=true",
			envPrefix, envPrefix))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", cfg.Redacted())
	}

	return cfg
}

// RedisEnabled reports whether the preference mirror is configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// Redacted returns a copy safe to log.
func (c *Config) Redacted() Config {
	cp := *c
	if cp.RedisPassword != "" {
		cp.RedisPassword = "***REDACTED***"
	}
	if cp.RedisUser != "" {
		cp.RedisUser = "***REDACTED***"
	}
	return cp
}

// helpers, all keys are read with the LINKSHELF_ prefix
func getenv(key, def string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(envPrefix + key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(envPrefix + key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(envPrefix + key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// parseAllowedIPs accepts "none" to explicitly disable the default list.
func parseAllowedIPs(allowed string) []string {
	if allowed == "" || strings.EqualFold(strings.TrimSpace(allowed), "none") {
		return nil
	}
	return splitAndTrim(allowed)
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}

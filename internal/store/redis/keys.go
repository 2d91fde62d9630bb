package redis

import (
	"fmt"
	"strings"
)

// KeyPrefixTheme is the prefix for per-visitor theme preference keys
const KeyPrefixTheme = "linkshelf:theme:"

// ThemeKey returns the Redis key holding a visitor's theme preference
func ThemeKey(visitorID string) string {
	return KeyPrefixTheme + visitorID
}

// ExtractVisitorID extracts the visitor ID from a theme key
func ExtractVisitorID(key string) (string, error) {
	id, ok := strings.CutPrefix(key, KeyPrefixTheme)
	if !ok || id == "" {
		return "", fmt.Errorf("invalid theme key: %s", key)
	}
	return id, nil
}

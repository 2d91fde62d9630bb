package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/linkshelf/internal/theme"
)

const (
	// DefaultPreferenceTTL is how long an untouched preference is kept (365 days)
	DefaultPreferenceTTL = 365 * 24 * time.Hour
)

// Store mirrors theme preferences in Redis, keyed by visitor.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a new Redis store
func NewStore(client *redis.Client) *Store {
	return &Store{
		client: client,
		ttl:    DefaultPreferenceTTL,
	}
}

// GetTheme returns the stored mode of a visitor, "" when none is stored
func (s *Store) GetTheme(ctx context.Context, visitorID string) (string, error) {
	mode, err := s.client.Get(ctx, ThemeKey(visitorID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get theme preference: %w", err)
	}
	return mode, nil
}

// SetTheme stores the mode of a visitor and refreshes its TTL
func (s *Store) SetTheme(ctx context.Context, visitorID, mode string) error {
	if mode != theme.Dark && mode != theme.Light {
		return fmt.Errorf("invalid theme mode %q", mode)
	}
	if err := s.client.Set(ctx, ThemeKey(visitorID), mode, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save theme preference: %w", err)
	}
	return nil
}

// CountPreferences returns how many visitors have a stored preference per mode
func (s *Store) CountPreferences(ctx context.Context) (map[string]int, error) {
	counts := map[string]int{theme.Dark: 0, theme.Light: 0}

	iter := s.client.Scan(ctx, 0, KeyPrefixTheme+"*", 0).Iterator()
	for iter.Next(ctx) {
		if _, err := ExtractVisitorID(iter.Val()); err != nil {
			continue
		}
		mode, err := s.client.Get(ctx, iter.Val()).Result()
		if err != nil {
			// Expired between SCAN and GET
			continue
		}
		countMode(counts, mode)
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan theme preferences: %w", err)
	}
	return counts, nil
}

// countMode tallies mode when it is a known theme. Anything else stays out
// of the counts so it never becomes a metric label.
func countMode(counts map[string]int, mode string) bool {
	if mode != theme.Dark && mode != theme.Light {
		return false
	}
	counts[mode]++
	return true
}

// Ping checks that Redis answers
func (s *Store) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// ForVisitor returns a theme.Store bound to one visitor
func (s *Store) ForVisitor(visitorID string) theme.Store {
	return &visitorStore{store: s, visitorID: visitorID}
}

type visitorStore struct {
	store     *Store
	visitorID string
}

func (v *visitorStore) Load(ctx context.Context) (string, error) {
	return v.store.GetTheme(ctx, v.visitorID)
}

func (v *visitorStore) Save(ctx context.Context, mode string) error {
	return v.store.SetTheme(ctx, v.visitorID, mode)
}

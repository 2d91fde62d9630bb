package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MrSnakeDoc/linkshelf/internal/logger"
	"github.com/MrSnakeDoc/linkshelf/internal/metrics"
)

const (
	// DefaultAuditInterval is how often stored preferences are counted
	DefaultAuditInterval = 15 * time.Minute
)

// PreferenceCounter counts stored theme preferences per mode.
type PreferenceCounter interface {
	CountPreferences(ctx context.Context) (map[string]int, error)
}

// PreferenceAuditor periodically publishes how many visitors stored each
// theme. It only runs when the Redis mirror is enabled.
type PreferenceAuditor struct {
	counter  PreferenceCounter
	metrics  *metrics.Metrics
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewPreferenceAuditor creates a new auditor
func NewPreferenceAuditor(
	counter PreferenceCounter,
	m *metrics.Metrics,
	log logger.Logger,
	interval time.Duration,
) *PreferenceAuditor {
	if interval <= 0 {
		interval = DefaultAuditInterval
	}

	return &PreferenceAuditor{
		counter:  counter,
		metrics:  m,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start runs one audit, then one per interval until stopped.
func (pa *PreferenceAuditor) Start(ctx context.Context) {
	if err := pa.Audit(ctx); err != nil {
		pa.logger.Warn("initial preference audit failed", logger.Error(err))
	}

	ticker := time.NewTicker(pa.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := pa.Audit(ctx); err != nil {
					pa.logger.Error("preference audit failed", logger.Error(err))
				}
			case <-pa.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop stops the auditor
func (pa *PreferenceAuditor) Stop() {
	pa.stopOnce.Do(func() { close(pa.stopCh) })
}

// Audit counts preferences once and publishes the result.
func (pa *PreferenceAuditor) Audit(ctx context.Context) error {
	counts, err := pa.counter.CountPreferences(ctx)
	if err != nil {
		return fmt.Errorf("failed to count preferences: %w", err)
	}

	pa.metrics.SetPreferences(counts)

	total := 0
	for _, n := range counts {
		total += n
	}
	pa.logger.Debug("preference audit completed", logger.Int("total", total))

	return nil
}

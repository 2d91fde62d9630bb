package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MrSnakeDoc/linkshelf/internal/content"
	"github.com/MrSnakeDoc/linkshelf/internal/index"
	"github.com/MrSnakeDoc/linkshelf/internal/logger"
	"github.com/MrSnakeDoc/linkshelf/internal/metrics"
)

// ContentReloader keeps the index in sync with the content file.
type ContentReloader struct {
	loader        *content.Loader
	index         *index.MemoryIndex
	metrics       *metrics.Metrics
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	stopOnce      sync.Once
	manualTrigger <-chan struct{}
}

// NewContentReloader creates a reloader. An interval of 0 disables periodic
// reloads; the content is then loaded once and on manual triggers only.
func NewContentReloader(
	loader *content.Loader,
	idx *index.MemoryIndex,
	m *metrics.Metrics,
	log logger.Logger,
	interval time.Duration,
	manualTrigger <-chan struct{},
) *ContentReloader {
	return &ContentReloader{
		loader:        loader,
		index:         idx,
		metrics:       m,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start loads the content once, then watches for reloads in the background.
// A failure of the first load is returned: there is nothing to serve yet.
func (cr *ContentReloader) Start(ctx context.Context) error {
	if err := cr.Reload(ctx); err != nil {
		return fmt.Errorf("initial content load failed: %w", err)
	}

	go func() {
		var tick <-chan time.Time
		if cr.interval > 0 {
			ticker := time.NewTicker(cr.interval)
			defer ticker.Stop()
			tick = ticker.C
		}

		for {
			select {
			case <-tick:
				cr.reloadLogged(ctx)
			case <-cr.manualTrigger:
				cr.logger.Info("manual reload triggered")
				cr.reloadLogged(ctx)
			case <-cr.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop ends the background loop. Safe to call more than once.
func (cr *ContentReloader) Stop() {
	cr.stopOnce.Do(func() { close(cr.stopCh) })
}

// Reload reads the content file and swaps the served snapshot. On error the
// previous snapshot stays in place.
func (cr *ContentReloader) Reload(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cr.logger.Info("reloading content", logger.String("source", cr.loader.Source()))

	doc, err := cr.loader.Load()
	if err != nil {
		cr.metrics.ObserveReload(err, 0, 0)
		return fmt.Errorf("failed to load content: %w", err)
	}

	cr.index.Update(doc)
	cr.metrics.ObserveReload(nil, cr.index.CategoryCount(), cr.index.ResourceCount())

	cr.logger.Info("content loaded",
		logger.Int("categories", cr.index.CategoryCount()),
		logger.Int("resources", cr.index.ResourceCount()))

	return nil
}

func (cr *ContentReloader) reloadLogged(ctx context.Context) {
	if err := cr.Reload(ctx); err != nil {
		cr.logger.Error("failed to reload content, keeping previous snapshot",
			logger.Error(err))
	}
}

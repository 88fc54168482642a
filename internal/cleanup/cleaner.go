package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/beamx-labs/validator-engine/internal/storage"
)

// Cleaner handles periodic purging of assessment results past their
// retention window. A zero retention disables purging entirely.
type Cleaner struct {
	repo      storage.Repository
	interval  time.Duration
	retention time.Duration
}

// NewCleaner creates a new retention worker
func NewCleaner(repo storage.Repository, interval, retention time.Duration) *Cleaner {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &Cleaner{
		repo:      repo,
		interval:  interval,
		retention: retention,
	}
}

// Start begins the retention worker in a goroutine
func (c *Cleaner) Start(ctx context.Context) {
	if c.retention <= 0 {
		slog.Info("result retention disabled, cleanup worker not started")
		return
	}
	go c.run(ctx)
}

// run is the main loop for the retention worker
func (c *Cleaner) run(ctx context.Context) {
	slog.Info("cleanup worker started",
		"interval", c.interval,
		"retention", c.retention)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	// Run immediately on start
	c.cleanup(ctx)

	for {
		select {
		case <-ctx.Done():
			slog.Info("cleanup worker stopped")
			return
		case <-ticker.C:
			c.cleanup(ctx)
		}
	}
}

// cleanup deletes results older than the retention window
func (c *Cleaner) cleanup(ctx context.Context) {
	slog.Debug("running cleanup cycle")

	cutoff := time.Now().UTC().Add(-c.retention)

	deleted, err := c.repo.DeleteResultsBefore(ctx, cutoff)
	if err != nil {
		slog.Error("failed to purge expired results", "error", err)
		return
	}

	if deleted == 0 {
		slog.Debug("no expired results found")
		return
	}

	slog.Info("purged expired results",
		"count", deleted,
		"cutoff", cutoff,
	)
}

package cache

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunSweeper evicts idle sessions every interval until ctx is done. A zero
// interval or ttl disables it.
func (c *Cache) RunSweeper(ctx context.Context, interval, ttl time.Duration, log *zap.Logger) {
	if interval <= 0 || ttl <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := c.Sweep(ttl); n > 0 {
				log.Info("swept idle sessions", zap.Int("removed", n), zap.Int("active", c.Len()))
			}
		}
	}
}

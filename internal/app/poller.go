package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/five82/studioboard/internal/state"
	"github.com/five82/studioboard/internal/studio"
)

const (
	defaultPollInterval = 5 * time.Second
	maxBackoff          = 30 * time.Second
	fetchTimeout        = 10 * time.Second
)

// StartPoller launches a background goroutine that refreshes the store at a
// fixed cadence, backing off while the source keeps failing. It returns
// immediately.
func StartPoller(ctx context.Context, logger *slog.Logger, store *state.Store, source studio.Source, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		failures := 0
		for {
			if err := refresh(ctx, logger, store, source); err != nil {
				failures++
			} else {
				failures = 0
			}

			wait := calculateBackoff(failures, interval)
			if failures > 0 {
				logger.Warn("client poll failed", "attempt", failures, "backoff", wait)
			}

			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

// calculateBackoff doubles base once per consecutive failure, capped at maxBackoff.
func calculateBackoff(failures int, base time.Duration) time.Duration {
	if failures <= 0 {
		return base
	}
	backoff := base
	for i := 0; i < failures; i++ {
		backoff *= 2
		if backoff >= maxBackoff {
			return maxBackoff
		}
	}
	return backoff
}

func refresh(ctx context.Context, logger *slog.Logger, store *state.Store, source studio.Source) error {
	fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	clients, err := source.FetchClients(fetchCtx)
	if err != nil {
		store.Update(nil, err)
		logger.Debug("fetch clients", "error", err)
		return err
	}
	store.Update(clients, nil)
	logger.Debug("fetch clients", "count", len(clients))
	return nil
}

package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/five82/radioctl/internal/state"
)

const (
	defaultPollInterval = 2 * time.Second
	maxBackoff          = 30 * time.Second
)

// StartPoller launches a background goroutine that refreshes the store with
// playback and volume. Consecutive failures back off exponentially up to
// maxBackoff. It returns immediately.
func StartPoller(ctx context.Context, store *state.Store, dev Controller, interval time.Duration) {
	if interval <= 0 {
		interval = defaultPollInterval
	}
	go func() {
		failures := 0
		for {
			if err := refresh(ctx, store, dev); err != nil {
				failures++
			} else {
				failures = 0
			}
			timer := time.NewTimer(calculateBackoff(failures, interval))
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
}

func refresh(ctx context.Context, store *state.Store, dev Controller) error {
	playback, err := dev.Current(ctx)
	if err != nil {
		store.Update(playback, store.Snapshot().Volume, err)
		log.Debug().Err(err).Msg("playback poll failed")
		return err
	}
	vol, err := dev.Volume(ctx)
	if err != nil {
		store.Update(playback, vol, err)
		log.Debug().Err(err).Msg("volume poll failed")
		return err
	}
	store.Update(playback, vol, nil)
	return nil
}

// calculateBackoff doubles the interval for every consecutive failure.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	d := interval
	for i := 0; i < failures; i++ {
		d *= 2
		if d >= maxBackoff {
			return maxBackoff
		}
	}
	return d
}

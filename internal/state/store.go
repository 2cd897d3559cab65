package state

import (
	"sync"
	"time"

	"github.com/five82/radioctl/internal/device"
)

// Snapshot is the latest device state seen by the interactive mode.
type Snapshot struct {
	Playback            device.Playback
	Volume              device.Volume
	HasData             bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the device has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored playback and volume. When err is non-nil the
// previous data is kept but the error is recorded for display.
func (s *Store) Update(playback device.Playback, volume device.Volume, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastUpdated = time.Now()
	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}
	s.snapshot.Playback = playback
	s.snapshot.Volume = volume
	s.snapshot.HasData = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// SetVolume records a level the UI just wrote so the display does not wait
// for the next poll.
func (s *Store) SetVolume(volume device.Volume) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Volume = volume
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

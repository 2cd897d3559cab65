// Package state shares the polled device state between the background
// poller and the interactive UI.
//
//	Poller goroutine               UI (bubbletea)
//	  device.Current()               tick
//	  device.Volume()                  ↓
//	  store.Update()  ──(mutex)──→   store.Snapshot()
//
// Snapshot values contain no slices or maps, so the copy returned by
// Snapshot is independent of the store. A failed poll keeps the previous
// playback and volume and increments ConsecutiveFailures; two or more in a
// row mark the device offline.
package state

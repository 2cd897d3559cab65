// Package app wires configuration, the device facade and rendering into the
// two ways radioctl runs.
//
// # Command-line mode
//
// Run resolves settings (config file, then flag overrides), builds a
// nodeapi.Client and device.Device, and hands a Request to a Dispatcher.
// A Request holds exactly one primary action (play a preset, list presets,
// stop, or show what is playing) and at most one volume action (show, set,
// step up, step down):
//
//	Run()
//	  ├─> Resolve()         config.Load + flag overrides
//	  ├─> NewDevice()       nodeapi.NewClient + device.New
//	  └─> Dispatch()
//	        ├─> primary action   prints result or failure message
//	        └─> volume action    always attempted, prints the resulting level
//
// Each action reports its own failure on the error writer and the next
// action still runs. Dispatch returns ErrActionFailed when anything failed
// so the caller can choose the exit status.
//
// # Interactive mode
//
// StartPoller refreshes a state.Store with playback and volume in the
// background, backing off exponentially while the device is unreachable.
// The UI reads snapshots from the store and issues its own commands
// through the same device.Device.
package app

// Package ui provides the interactive terminal mode of radioctl.
//
// # Overview
//
// The UI is a Bubble Tea program with a single screen: a header naming the
// device, a now-playing panel with a volume bar, the preset list, a status
// line for the last action, and a help footer. It is started by
// `radioctl tui` through app.RunInteractive.
//
// # Files
//
//   - app.go: Model, Update loop, messages and the commands that call the device
//   - view.go: rendering of the header and panels
//   - keys.go: key bindings, also used by the help footer
//   - theme.go: color themes and the lipgloss styles built from them
//
// # Data Flow
//
//  1. app.StartPoller refreshes playback and volume into a state.Store
//  2. A one second tick copies the latest store snapshot into the model
//  3. Key presses for play, stop and volume run as tea.Cmd against a Player
//  4. The result comes back as an actionMsg and sets the status line
//
// Only one device command runs at a time; keys that would start another are
// ignored until the previous one reports back. Moving the selection, reloading
// presets and switching themes are always available.
//
// # Key Bindings
//
//   - ↑/k, ↓/j: Move the preset selection
//   - enter or p: Play the selected preset
//   - s: Stop playing
//   - + and -: Step the volume by the configured step
//   - r: Reload presets
//   - T: Cycle themes (saved to the prefs file)
//   - ? or h: Toggle full help
//   - q or Ctrl+C: Quit
//
// # Usage Example
//
//	err := ui.Run(ui.Options{
//		Context:    ctx,
//		Player:     dev,
//		Store:      store,
//		Address:    "http://radio.local",
//		VolumeStep: 2,
//	})
package ui

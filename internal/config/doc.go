// Package config loads radioctl's optional defaults file.
//
// # Overview
//
// radioctl needs nothing but a device address to run, so the config file
// only saves typing: it supplies defaults that command-line flags override.
// No device state is ever written here.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided (--config), use it
//  2. Otherwise, use ~/.config/radioctl/config.toml
//  3. If the file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing or empty, use defaults
//
// # Formats
//
// Paths ending in .yaml or .yml are parsed as YAML, everything else as TOML.
//
//	address = "192.168.1.40"
//	timeout = "3s"
//	volume_step = 2
//	output = "text"
//	theme = "Nightfox"
//	poll_interval = "2s"
//
// # Default Values
//
//   - timeout: 5s
//   - volume_step: 2
//   - output: text
//   - poll_interval: 2s (interactive mode only)
package config

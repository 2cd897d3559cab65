// Package device maps the radio's node tree onto playback, volume and preset
// operations.
//
// Device is the only place that knows what the player, volume and preset
// nodes contain. It decodes two firmware variants of the player state
// ("trackRoles" with optional metadata, "mediaRoles" with only a title)
// into a single Playback value, clamps every volume write against a bound
// read immediately beforehand, and turns a 1-based preset number into a
// play command that re-sends the preset's opaque media data verbatim.
//
// Nothing is cached: every call goes to the device.
package device

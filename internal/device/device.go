package device

import (
	"github.com/five82/radioctl/internal/nodeapi"
)

// Node paths used by the facade.
const (
	PlayerDataPath    = "player:player/data"
	PlayerControlPath = "player:player/control"
	VolumePath        = "player:volume"
	PresetsPath       = "/app:/presets"
)

// Device exposes playback, volume and preset operations on top of a node
// client. It keeps no device state between calls.
type Device struct {
	nodes nodeapi.NodeClient
}

// New wraps a node client.
func New(nodes nodeapi.NodeClient) *Device {
	return &Device{nodes: nodes}
}

type controlCommand struct {
	Control    string      `json:"control"`
	MediaRoles *mediaRoles `json:"mediaRoles,omitempty"`
}

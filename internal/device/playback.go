package device

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/five82/radioctl/internal/nodeapi"
)

// PlaybackKind tags which shape the player reported.
type PlaybackKind int

const (
	// PlaybackIdle means nothing is playing.
	PlaybackIdle PlaybackKind = iota
	// PlaybackTrack comes from a "trackRoles" value and may carry metadata.
	PlaybackTrack
	// PlaybackMedia comes from a "mediaRoles" value and carries only a title.
	PlaybackMedia
)

func (k PlaybackKind) String() string {
	switch k {
	case PlaybackTrack:
		return "track"
	case PlaybackMedia:
		return "media"
	default:
		return "idle"
	}
}

// MarshalText lets structured output print the kind by name.
func (k PlaybackKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Playback is a snapshot of what the player is doing.
type Playback struct {
	Kind    PlaybackKind `json:"kind" yaml:"kind"`
	Title   string       `json:"title,omitempty" yaml:"title,omitempty"`
	Album   string       `json:"album,omitempty" yaml:"album,omitempty"`
	Artist  string       `json:"artist,omitempty" yaml:"artist,omitempty"`
	Service string       `json:"service,omitempty" yaml:"service,omitempty"`
}

// Playing reports whether anything is playing.
func (p Playback) Playing() bool {
	return p.Kind != PlaybackIdle
}

// mediaRoles is the payload of a play command.
type mediaRoles struct {
	Title      string          `json:"title"`
	Type       string          `json:"type"`
	AudioType  string          `json:"audioType"`
	Modifiable bool            `json:"modifiable"`
	Path       string          `json:"path"`
	MediaData  json.RawMessage `json:"mediaData"`
}

// Current reads the player state. An idle player, or a value in a shape this
// client does not know, is reported as PlaybackIdle rather than an error.
func (d *Device) Current(ctx context.Context) (Playback, error) {
	node, err := d.nodes.ReadNode(ctx, PlayerDataPath)
	if err != nil {
		return Playback{}, fmt.Errorf("read player state: %w", err)
	}
	return DecodePlayback(node), nil
}

// DecodePlayback interprets a player data node. Each field is read on its
// own, so a value of an unexpected type only hides that field.
func DecodePlayback(node nodeapi.Node) Playback {
	value := object(node.Value)
	if value == nil {
		return Playback{}
	}

	if track := object(value["trackRoles"]); track != nil {
		if title, ok := stringField(track, "title"); ok {
			p := Playback{Kind: PlaybackTrack, Title: title}
			meta := object(object(track["mediaData"])["metaData"])
			p.Album, _ = stringField(meta, "album")
			p.Artist, _ = stringField(meta, "artist")
			p.Service, _ = stringField(meta, "serviceNameOverride")
			return p
		}
	}
	if media := object(value["mediaRoles"]); media != nil {
		if title, _ := stringField(media, "title"); title != "" {
			return Playback{Kind: PlaybackMedia, Title: title}
		}
	}
	return Playback{}
}

// object decodes raw as a JSON object, or returns nil.
func object(raw json.RawMessage) map[string]json.RawMessage {
	if len(raw) == 0 {
		return nil
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil
	}
	return m
}

// stringField returns obj[key] when it is a JSON string.
func stringField(obj map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := obj[key]
	if !ok || string(raw) == "null" {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Stop asks the player to stop.
func (d *Device) Stop(ctx context.Context) error {
	if err := d.nodes.WriteNode(ctx, PlayerControlPath, nodeapi.RoleActivate, controlCommand{Control: "stop"}); err != nil {
		return fmt.Errorf("stop playback: %w", err)
	}
	return nil
}

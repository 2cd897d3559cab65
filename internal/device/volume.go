package device

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/five82/radioctl/internal/nodeapi"
)

// ErrMalformedVolume is returned when the volume node lacks its level or bound.
var ErrMalformedVolume = errors.New("malformed volume node")

// Volume is the current level and the device's upper bound.
type Volume struct {
	Current int `json:"current" yaml:"current"`
	Max     int `json:"max" yaml:"max"`
}

const volumeValueType = "i32_"

type i32Value struct {
	Type string `json:"type"`
	I32  *int   `json:"i32_"`
}

type volumeEdit struct {
	Max *int `json:"max"`
}

// Volume reads the current level and bound.
func (d *Device) Volume(ctx context.Context) (Volume, error) {
	node, err := d.nodes.ReadNode(ctx, VolumePath)
	if err != nil {
		return Volume{}, fmt.Errorf("read volume: %w", err)
	}
	return decodeVolume(node)
}

// SetVolume clamps target into [0, max] and writes it. max is read fresh
// before every write. The returned Volume is what was sent; the device is
// not re-read to confirm it.
func (d *Device) SetVolume(ctx context.Context, target int) (Volume, error) {
	vol, err := d.Volume(ctx)
	if err != nil {
		return Volume{}, err
	}
	return d.writeVolume(ctx, target, vol.Max)
}

// StepVolume moves the level by delta from its current value.
func (d *Device) StepVolume(ctx context.Context, delta int) (Volume, error) {
	vol, err := d.Volume(ctx)
	if err != nil {
		return Volume{}, err
	}
	return d.writeVolume(ctx, vol.Current+delta, vol.Max)
}

func (d *Device) writeVolume(ctx context.Context, target, limit int) (Volume, error) {
	level := Clamp(target, limit)
	v := i32Value{Type: volumeValueType, I32: &level}
	if err := d.nodes.WriteNode(ctx, VolumePath, nodeapi.RoleValue, v); err != nil {
		return Volume{}, fmt.Errorf("set volume to %d: %w", level, err)
	}
	return Volume{Current: level, Max: limit}, nil
}

// Clamp bounds v to [0, limit]. A negative limit clamps to 0.
func Clamp(v, limit int) int {
	if v > limit {
		v = limit
	}
	if v < 0 {
		v = 0
	}
	return v
}

func decodeVolume(node nodeapi.Node) (Volume, error) {
	var value i32Value
	if len(node.Value) == 0 || json.Unmarshal(node.Value, &value) != nil || value.I32 == nil {
		return Volume{}, fmt.Errorf("%w: missing %s level", ErrMalformedVolume, volumeValueType)
	}
	var edit volumeEdit
	if len(node.Edit) == 0 || json.Unmarshal(node.Edit, &edit) != nil || edit.Max == nil {
		return Volume{}, fmt.Errorf("%w: missing max", ErrMalformedVolume)
	}
	return Volume{Current: *value.I32, Max: *edit.Max}, nil
}

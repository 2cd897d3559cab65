package device

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/five82/radioctl/internal/nodeapi"
)

// Preset is one saved station, numbered from 1 in the order the device lists it.
type Preset struct {
	Index     int             `json:"index" yaml:"index"`
	Title     string          `json:"title" yaml:"title"`
	Type      string          `json:"type,omitempty" yaml:"type,omitempty"`
	AudioType string          `json:"audioType,omitempty" yaml:"audio_type,omitempty"`
	Path      string          `json:"path,omitempty" yaml:"path,omitempty"`
	MediaData json.RawMessage `json:"-" yaml:"-"`
}

// IndexError reports a preset number outside the listed range.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("no preset #%d (%d presets available)", e.Index, e.Count)
}

// Presets lists the first page of saved presets. It is fetched on every call.
func (d *Device) Presets(ctx context.Context) ([]Preset, error) {
	rows, err := d.nodes.ReadRows(ctx, PresetsPath, nodeapi.DefaultPage)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	presets := make([]Preset, 0, len(rows))
	for i, row := range rows {
		presets = append(presets, Preset{
			Index:     i + 1,
			Title:     row.Title,
			Type:      row.Type,
			AudioType: row.AudioType,
			Path:      row.Path,
			MediaData: row.MediaData,
		})
	}
	return presets, nil
}

// PlayPreset starts the preset with the given 1-based index. An index outside
// the fetched list fails with *IndexError before anything is written.
func (d *Device) PlayPreset(ctx context.Context, index int) (Preset, error) {
	presets, err := d.Presets(ctx)
	if err != nil {
		return Preset{}, err
	}
	if index < 1 || index > len(presets) {
		return Preset{}, &IndexError{Index: index, Count: len(presets)}
	}
	preset := presets[index-1]
	if err := d.Play(ctx, preset); err != nil {
		return preset, err
	}
	return preset, nil
}

// Play sends a play command for an already fetched preset.
func (d *Device) Play(ctx context.Context, preset Preset) error {
	cmd := controlCommand{
		Control: "play",
		MediaRoles: &mediaRoles{
			Title:      preset.Title,
			Type:       preset.Type,
			AudioType:  preset.AudioType,
			Modifiable: true,
			Path:       preset.Path,
			MediaData:  preset.MediaData,
		},
	}
	if err := d.nodes.WriteNode(ctx, PlayerControlPath, nodeapi.RoleActivate, cmd); err != nil {
		return fmt.Errorf("play preset #%d %q: %w", preset.Index, preset.Title, err)
	}
	return nil
}

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/radioctl/internal/device"
)

// BarWidth is the number of cells in a volume bar.
const BarWidth = 20

const (
	barFilled = "█"
	barEmpty  = "-"
)

// FilledCells returns floor(width * current / max), bounded to [0, width].
func FilledCells(v device.Volume, width int) int {
	if v.Max <= 0 || width <= 0 {
		return 0
	}
	n := width * v.Current / v.Max
	if n < 0 {
		return 0
	}
	if n > width {
		return width
	}
	return n
}

// VolumeBar draws a proportional bar of the given width.
func VolumeBar(v device.Volume, width int) string {
	if width < 0 {
		width = 0
	}
	filled := FilledCells(v, width)
	return strings.Repeat(barFilled, filled) + strings.Repeat(barEmpty, width-filled)
}

// VolumeLine renders "Volume: |<bar>| v/max".
func VolumeLine(v device.Volume) string {
	return fmt.Sprintf("Volume: |%s| %d/%d", VolumeBar(v, BarWidth), v.Current, v.Max)
}

// PlaybackSentence describes what the player is doing.
func PlaybackSentence(p device.Playback) string {
	switch p.Kind {
	case device.PlaybackTrack:
		if p.Album != "" && p.Artist != "" {
			src := ""
			if p.Service != "" {
				src = ", source: " + p.Service
			}
			return fmt.Sprintf("Currently playing: '%s' (on '%s' by '%s'%s)", p.Title, p.Album, p.Artist, src)
		}
		if p.Service != "" {
			return fmt.Sprintf("Currently playing: %s (source: %s)", p.Title, p.Service)
		}
		return "Currently playing: " + p.Title
	case device.PlaybackMedia:
		return "Currently playing: " + p.Title
	default:
		return "Nothing is playing"
	}
}

// PresetTable renders the presets as a "#, Radio" table.
func PresetTable(presets []device.Preset) string {
	rows := make([][]string, 0, len(presets))
	for _, p := range presets {
		rows = append(rows, []string{strconv.Itoa(p.Index), p.Title})
	}
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		BorderHeader(true).
		Headers("#", "Radio").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return cell.Align(lipgloss.Right)
			}
			return cell
		})
	return t.String()
}

package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/five82/radioctl/internal/device"
	"github.com/five82/radioctl/internal/render"
)

const defaultVolumeStep = 2

// Dispatcher runs a Request against a device and prints the results.
// Each action reports its own failure; a failed primary action does not
// prevent the volume action from running.
type Dispatcher struct {
	Device     Controller
	Out        io.Writer
	Err        io.Writer
	Format     render.Format
	VolumeStep int
}

// Dispatch runs the primary action, then the volume action if one was
// requested. It returns ErrActionFailed if either failed.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) error {
	var errs []error
	if err := d.runPrimary(ctx, req); err != nil {
		errs = append(errs, err)
	}
	if err := d.runVolume(ctx, req); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrActionFailed, errors.Join(errs...))
	}
	return nil
}

func (d *Dispatcher) runPrimary(ctx context.Context, req Request) error {
	switch req.Primary {
	case PrimaryPlay:
		return d.playPreset(ctx, req.Preset)
	case PrimaryList:
		return d.listPresets(ctx)
	case PrimaryStop:
		return d.stop(ctx)
	default:
		return d.showCurrent(ctx)
	}
}

func (d *Dispatcher) runVolume(ctx context.Context, req Request) error {
	step := d.VolumeStep
	if step <= 0 {
		step = defaultVolumeStep
	}
	var err error
	switch req.Volume {
	case VolumeNone:
		return nil
	case VolumeShow:
		return d.showVolume(ctx)
	case VolumeSet:
		_, err = d.Device.SetVolume(ctx, req.Level)
	case VolumeUp:
		_, err = d.Device.StepVolume(ctx, step)
	case VolumeDown:
		_, err = d.Device.StepVolume(ctx, -step)
	default:
		return fmt.Errorf("unknown volume action %d", req.Volume)
	}
	if err != nil {
		return d.fail("set-volume", "Error when setting volume", err)
	}
	return d.showVolume(ctx)
}

func (d *Dispatcher) showCurrent(ctx context.Context) error {
	playback, err := d.Device.Current(ctx)
	if err != nil {
		return d.fail("get-current", "Error while getting current", err)
	}
	return d.emit(playback, render.PlaybackSentence(playback))
}

func (d *Dispatcher) stop(ctx context.Context) error {
	if err := d.Device.Stop(ctx); err != nil {
		return d.fail("stop", "Error when stopping", err)
	}
	return d.emit(map[string]bool{"stopped": true}, "Playing stopped")
}

func (d *Dispatcher) listPresets(ctx context.Context) error {
	presets, err := d.Device.Presets(ctx)
	if err != nil {
		return d.fail("get-presets", "Error getting presets", err)
	}
	return d.emit(presets, render.PresetTable(presets))
}

func (d *Dispatcher) playPreset(ctx context.Context, index int) error {
	preset, err := d.Device.PlayPreset(ctx, index)
	if err != nil {
		var ie *device.IndexError
		switch {
		case errors.As(err, &ie):
			return d.fail("set-preset", fmt.Sprintf("No preset #%d (%d presets available)", ie.Index, ie.Count), err)
		case preset.Index == 0:
			return d.fail("get-presets", "Error getting presets", err)
		default:
			return d.fail("set-preset", fmt.Sprintf("Error while setting preset #%d: %s", index, preset.Title), err)
		}
	}
	return d.emit(preset, fmt.Sprintf("Playing preset #%d: %s", preset.Index, preset.Title))
}

func (d *Dispatcher) showVolume(ctx context.Context) error {
	vol, err := d.Device.Volume(ctx)
	if err != nil {
		return d.fail("get-volume", "Error when getting volume", err)
	}
	return d.emit(vol, render.VolumeLine(vol))
}

// emit writes text in text mode and v otherwise.
func (d *Dispatcher) emit(v any, text string) error {
	if d.Format == render.FormatText || d.Format == "" {
		_, err := fmt.Fprintln(d.Out, text)
		return err
	}
	return render.Encode(d.Out, d.Format, v)
}

func (d *Dispatcher) fail(action, message string, err error) error {
	log.Debug().Err(err).Str("action", action).Msg("action failed")
	fmt.Fprintln(d.Err, message)
	return fmt.Errorf("%s: %w", action, err)
}

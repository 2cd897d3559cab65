package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/five82/radioctl/internal/config"
	"github.com/five82/radioctl/internal/device"
	"github.com/five82/radioctl/internal/nodeapi"
	"github.com/five82/radioctl/internal/render"
)

// ErrActionFailed is returned by Run when at least one requested action
// failed. The failure has already been reported on the error writer.
var ErrActionFailed = errors.New("one or more actions failed")

// Primary is the main action of an invocation. Exactly one runs.
type Primary int

const (
	PrimaryCurrent Primary = iota
	PrimaryList
	PrimaryStop
	PrimaryPlay
)

// VolumeAction is the optional action that runs after the primary one.
type VolumeAction int

const (
	VolumeNone VolumeAction = iota
	VolumeShow
	VolumeSet
	VolumeUp
	VolumeDown
)

// Request describes what one invocation should do.
type Request struct {
	Primary Primary
	Preset  int // 1-based, for PrimaryPlay

	Volume VolumeAction
	Level  int // for VolumeSet
}

// Controller is the part of *device.Device the dispatcher drives.
type Controller interface {
	Current(ctx context.Context) (device.Playback, error)
	Stop(ctx context.Context) error
	Volume(ctx context.Context) (device.Volume, error)
	SetVolume(ctx context.Context, target int) (device.Volume, error)
	StepVolume(ctx context.Context, delta int) (device.Volume, error)
	Presets(ctx context.Context) ([]device.Preset, error)
	PlayPreset(ctx context.Context, index int) (device.Preset, error)
}

var _ Controller = (*device.Device)(nil)

// Options configure a command-line invocation.
type Options struct {
	ConfigPath string
	Address    string        // overrides the config file
	Timeout    time.Duration // zero uses the config value
	Output     string        // empty uses the config value
	UserAgent  string

	Request Request

	Stdout io.Writer
	Stderr io.Writer
}

// Settings are the resolved values an invocation runs with.
type Settings struct {
	Address      string
	Timeout      time.Duration
	VolumeStep   int
	Format       render.Format
	Theme        string
	PollInterval time.Duration
}

// Resolve merges the config file with the command-line overrides.
func Resolve(configPath, address string, timeout time.Duration, output string) (Settings, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return Settings{}, fmt.Errorf("load config: %w", err)
	}
	s := Settings{
		Address:      cfg.Address,
		Timeout:      cfg.Timeout,
		VolumeStep:   cfg.VolumeStep,
		Theme:        cfg.Theme,
		PollInterval: cfg.PollInterval,
	}
	if a := strings.TrimSpace(address); a != "" {
		s.Address = a
	}
	if s.Address == "" {
		return Settings{}, fmt.Errorf("device address is required (--address or \"address\" in the config file)")
	}
	if timeout > 0 {
		s.Timeout = timeout
	}
	if strings.TrimSpace(output) == "" {
		output = cfg.Output
	}
	if s.Format, err = render.ParseFormat(output); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// NewDevice builds the node client and device facade for s.
func NewDevice(s Settings, userAgent string) (*device.Device, error) {
	client, err := nodeapi.NewClient(s.Address, nodeapi.WithTimeout(s.Timeout), nodeapi.WithUserAgent(userAgent))
	if err != nil {
		return nil, fmt.Errorf("init node client: %w", err)
	}
	log.Debug().Str("base_url", client.BaseURL()).Dur("timeout", s.Timeout).Msg("node client ready")
	return device.New(client), nil
}

// Run performs one command-line invocation.
func Run(ctx context.Context, opts Options) error {
	settings, err := Resolve(opts.ConfigPath, opts.Address, opts.Timeout, opts.Output)
	if err != nil {
		return err
	}
	dev, err := NewDevice(settings, opts.UserAgent)
	if err != nil {
		return err
	}
	log.Debug().
		Str("address", settings.Address).
		Dur("timeout", settings.Timeout).
		Str("output", string(settings.Format)).
		Msg("dispatching")

	d := &Dispatcher{
		Device:     dev,
		Out:        writerOr(opts.Stdout, os.Stdout),
		Err:        writerOr(opts.Stderr, os.Stderr),
		Format:     settings.Format,
		VolumeStep: settings.VolumeStep,
	}
	return d.Dispatch(ctx, opts.Request)
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w == nil {
		return fallback
	}
	return w
}

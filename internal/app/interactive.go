package app

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/five82/radioctl/internal/prefs"
	"github.com/five82/radioctl/internal/state"
	"github.com/five82/radioctl/internal/ui"
)

// InteractiveOptions configure the terminal UI.
type InteractiveOptions struct {
	ConfigPath string
	Address    string
	Timeout    time.Duration
	PollEvery  time.Duration // zero uses the config value
	PrefsPath  string
	UserAgent  string
}

// RunInteractive starts the poller and the Bubble Tea UI. It blocks until the
// user quits or ctx is cancelled.
func RunInteractive(ctx context.Context, opts InteractiveOptions) error {
	settings, err := Resolve(opts.ConfigPath, opts.Address, opts.Timeout, "")
	if err != nil {
		return err
	}
	dev, err := NewDevice(settings, opts.UserAgent)
	if err != nil {
		return err
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	theme := pickTheme(settings.Theme, prefsPath)
	interval := settings.PollInterval
	if opts.PollEvery > 0 {
		interval = opts.PollEvery
	}

	log.Debug().
		Str("address", settings.Address).
		Dur("poll", interval).
		Str("theme", theme).
		Msg("starting interactive mode")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	store := &state.Store{}
	StartPoller(ctx, store, dev, interval)

	return ui.Run(ui.Options{
		Context:    ctx,
		Player:     dev,
		Store:      store,
		Address:    settings.Address,
		PollTick:   time.Second,
		VolumeStep: settings.VolumeStep,
		ThemeName:  theme,
		PrefsPath:  prefsPath,
	})
}

// pickTheme prefers a known theme named in the config file, then the theme
// saved in prefs.
func pickTheme(configured, prefsPath string) string {
	configured = strings.TrimSpace(configured)
	if slices.Contains(ui.ThemeNames(), configured) {
		return configured
	}
	if configured != "" {
		log.Warn().Str("theme", configured).Strs("available", ui.ThemeNames()).Msg("unknown theme in config, using saved preference")
	}
	return prefs.Load(prefsPath).Theme
}

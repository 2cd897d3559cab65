package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/five82/radioctl/internal/device"
	"github.com/five82/radioctl/internal/prefs"
	"github.com/five82/radioctl/internal/state"
)

// Player is the subset of *device.Device the UI issues commands through.
type Player interface {
	Presets(ctx context.Context) ([]device.Preset, error)
	PlayPreset(ctx context.Context, index int) (device.Preset, error)
	Stop(ctx context.Context) error
	StepVolume(ctx context.Context, delta int) (device.Volume, error)
}

// Options configures the UI.
type Options struct {
	Context    context.Context
	Player     Player
	Store      *state.Store
	Address    string
	PollTick   time.Duration
	VolumeStep int
	ThemeName  string
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	ctx        context.Context
	player     Player
	store      *state.Store
	address    string
	prefsPath  string
	pollTick   time.Duration
	volumeStep int

	theme  Theme
	keys   keyMap
	help   help.Model
	width  int
	height int

	snapshot    state.Snapshot
	presets     []device.Preset
	presetsErr  error
	selectedRow int
	busy        bool

	status      string
	statusIsErr bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	pollTick := opts.PollTick
	if pollTick <= 0 {
		pollTick = time.Second
	}
	step := opts.VolumeStep
	if step <= 0 {
		step = 2
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	return Model{
		ctx:        ctx,
		player:     opts.Player,
		store:      opts.Store,
		address:    opts.Address,
		prefsPath:  prefsPath,
		pollTick:   pollTick,
		volumeStep: step,
		theme:      GetTheme(opts.ThemeName),
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(m.pollTick), m.loadPresetsCmd()}
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		var cmds []tea.Cmd
		if m.store != nil {
			cmds = append(cmds, fetchSnapshotCmd(m.store))
		}
		cmds = append(cmds, tickCmd(m.pollTick))
		return m, tea.Batch(cmds...)

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		return m, nil

	case presetsMsg:
		m.presets = msg.presets
		m.presetsErr = msg.err
		if m.selectedRow >= len(m.presets) {
			m.selectedRow = max(len(m.presets)-1, 0)
		}
		return m, nil

	case actionMsg:
		m.busy = false
		m.setStatus(msg.text, msg.err)
		if msg.volume != nil && m.store != nil {
			m.store.SetVolume(*msg.volume)
			m.snapshot.Volume = *msg.volume
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if err := prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name}); err != nil {
			log.Debug().Err(err).Msg("save prefs failed")
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < len(m.presets)-1 {
			m.selectedRow++
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, m.loadPresetsCmd()
	}

	// Device commands run one at a time.
	if m.busy {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Play):
		if len(m.presets) == 0 {
			return m, nil
		}
		m.busy = true
		return m, m.playCmd(m.presets[m.selectedRow].Index)

	case key.Matches(msg, m.keys.Stop):
		m.busy = true
		return m, m.stopCmd()

	case key.Matches(msg, m.keys.VolumeUp):
		m.busy = true
		return m, m.stepVolumeCmd(m.volumeStep)

	case key.Matches(msg, m.keys.VolumeDown):
		m.busy = true
		return m, m.stepVolumeCmd(-m.volumeStep)
	}
	return m, nil
}

func (m *Model) setStatus(text string, err error) {
	m.status = text
	m.statusIsErr = err != nil
	if err != nil {
		log.Debug().Err(err).Msg(text)
	}
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type presetsMsg struct {
	presets []device.Preset
	err     error
}

type actionMsg struct {
	text   string
	err    error
	volume *device.Volume
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

func (m Model) loadPresetsCmd() tea.Cmd {
	ctx, player := m.ctx, m.player
	return func() tea.Msg {
		presets, err := player.Presets(ctx)
		return presetsMsg{presets: presets, err: err}
	}
}

func (m Model) playCmd(index int) tea.Cmd {
	ctx, player := m.ctx, m.player
	return func() tea.Msg {
		preset, err := player.PlayPreset(ctx, index)
		if err != nil {
			return actionMsg{text: fmt.Sprintf("Error while setting preset #%d", index), err: err}
		}
		return actionMsg{text: fmt.Sprintf("Playing preset #%d: %s", preset.Index, preset.Title)}
	}
}

func (m Model) stopCmd() tea.Cmd {
	ctx, player := m.ctx, m.player
	return func() tea.Msg {
		if err := player.Stop(ctx); err != nil {
			return actionMsg{text: "Error when stopping", err: err}
		}
		return actionMsg{text: "Playing stopped"}
	}
}

func (m Model) stepVolumeCmd(delta int) tea.Cmd {
	ctx, player := m.ctx, m.player
	return func() tea.Msg {
		vol, err := player.StepVolume(ctx, delta)
		if err != nil {
			return actionMsg{text: "Error when setting volume", err: err}
		}
		return actionMsg{text: fmt.Sprintf("Volume %d/%d", vol.Current, vol.Max), volume: &vol}
	}
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(opts Options) error {
	m := New(opts)
	programOpts := []tea.ProgramOption{tea.WithAltScreen()}
	if opts.Context != nil {
		programOpts = append(programOpts, tea.WithContext(opts.Context))
	}
	_, err := tea.NewProgram(m, programOpts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && opts.Context != nil && opts.Context.Err() != nil {
		return nil
	}
	return err
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/five82/radioctl/internal/app"
)

// showVolume is what pflag stores when -v is given without a value.
const showVolume = "show"

// volumeFlag is an int flag whose value is optional: bare -v shows the
// volume, -v=N sets it. Negative levels only show it.
type volumeFlag struct {
	set   bool
	show  bool
	level int
}

func (v *volumeFlag) String() string {
	if !v.set || v.show {
		return ""
	}
	return strconv.Itoa(v.level)
}

func (v *volumeFlag) Set(s string) error {
	v.set = true
	if s == showVolume {
		v.show = true
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid volume level %q", s)
	}
	v.show = n < 0
	v.level = n
	return nil
}

func (v *volumeFlag) Type() string { return "int" }

var _ pflag.Value = (*volumeFlag)(nil)

// cliFlags holds the action flags of the root command.
type cliFlags struct {
	play    int
	list    bool
	stop    bool
	volume  volumeFlag
	volUp   bool
	volDown bool
	output  string
}

func (c *cliFlags) register(f *pflag.FlagSet) {
	f.IntVarP(&c.play, "play", "p", 0, "preset to play (1-based)")
	f.BoolVarP(&c.list, "list", "l", false, "list presets")
	f.BoolVarP(&c.stop, "stop", "s", false, "stop playing")
	f.VarP(&c.volume, "volume", "v", "get the volume, or set it with -v=N")
	f.Lookup("volume").NoOptDefVal = showVolume
	f.BoolVarP(&c.volUp, "vol-up", "u", false, "raise volume")
	f.BoolVarP(&c.volDown, "vol-down", "d", false, "lower volume")
	f.StringVar(&c.output, "output", "", "output format: text, json or yaml")
}

// request turns the parsed flags into one primary and one optional volume
// action. A single positional integer is the value of a bare -v.
func (c *cliFlags) request(cmd *cobra.Command, args []string) (app.Request, error) {
	if len(args) == 1 {
		if !c.volume.set || !c.volume.show {
			return app.Request{}, fmt.Errorf("unexpected argument %q", args[0])
		}
		if err := c.volume.Set(args[0]); err != nil {
			return app.Request{}, err
		}
	}

	var req app.Request
	switch {
	case cmd.Flags().Changed("play"):
		req.Primary = app.PrimaryPlay
		req.Preset = c.play
	case c.list:
		req.Primary = app.PrimaryList
	case c.stop:
		req.Primary = app.PrimaryStop
	default:
		req.Primary = app.PrimaryCurrent
	}

	switch {
	case c.volDown:
		req.Volume = app.VolumeDown
	case c.volUp:
		req.Volume = app.VolumeUp
	case c.volume.set && c.volume.show:
		req.Volume = app.VolumeShow
	case c.volume.set:
		req.Volume = app.VolumeSet
		req.Level = c.volume.level
	}
	return req, nil
}

// normalizeVolumeArgs rewrites -vN and "-v -N" as -v=N. pflag stops reading
// a value after a shorthand flag that has NoOptDefVal, so neither form would
// reach volumeFlag.Set otherwise.
func normalizeVolumeArgs(argv []string) []string {
	out := make([]string, 0, len(argv))
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		switch {
		case arg == "--":
			return append(out, argv[i:]...)
		case (arg == "-v" || arg == "--volume") && i+1 < len(argv) && isNegativeInt(argv[i+1]):
			out = append(out, arg+"="+argv[i+1])
			i++
		case strings.HasPrefix(arg, "-v") && isInt(arg[2:]):
			out = append(out, "-v="+arg[2:])
		default:
			out = append(out, arg)
		}
	}
	return out
}

func isInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

func isNegativeInt(s string) bool {
	return strings.HasPrefix(s, "-") && isInt(s)
}

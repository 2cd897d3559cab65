// Package main is the entry point for the radioctl CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/five82/radioctl/internal/app"
)

// Set by goreleaser ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := rootCmd()
	root.SetArgs(normalizeVolumeArgs(os.Args[1:]))
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, app.ErrActionFailed) {
			fmt.Fprintf(os.Stderr, "radioctl: %v\n", err)
		}
		return 1
	}
	return 0
}

// globalFlags are shared by the root command and its subcommands.
type globalFlags struct {
	address    string
	configPath string
	timeout    time.Duration
	debug      bool
}

func rootCmd() *cobra.Command {
	var (
		g   globalFlags
		cli cliFlags
	)
	root := &cobra.Command{
		Use:   "radioctl -a HOST [-p N | -l | -s] [-v[=N] | -u | -d]",
		Short: "Control an internet radio over its HTTP node API",
		Long: "radioctl shows what the radio is playing, lists and plays presets, stops\n" +
			"playback, and reads or changes the volume. Without an action it prints\n" +
			"the current playback.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(g.debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := cli.request(cmd, args)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context(), app.Options{
				ConfigPath: g.configPath,
				Address:    g.address,
				Timeout:    g.timeout,
				Output:     cli.output,
				UserAgent:  userAgent(),
				Request:    req,
				Stdout:     cmd.OutOrStdout(),
				Stderr:     cmd.ErrOrStderr(),
			})
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&g.address, "address", "a", "", "hostname or IP address of the radio")
	pf.StringVar(&g.configPath, "config", "", "config file (default ~/.config/radioctl/config.toml)")
	pf.DurationVar(&g.timeout, "timeout", 0, "per-request timeout (default from config, 5s)")
	pf.BoolVar(&g.debug, "debug", false, "log requests and failures to stderr")

	cli.register(root.Flags())
	root.AddCommand(versionCmd(), tuiCmd(&g))
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "radioctl %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

func tuiCmd(g *globalFlags) *cobra.Command {
	var poll time.Duration
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse presets and control playback interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.RunInteractive(cmd.Context(), app.InteractiveOptions{
				ConfigPath: g.configPath,
				Address:    g.address,
				Timeout:    g.timeout,
				PollEvery:  poll,
				UserAgent:  userAgent(),
			})
		},
	}
	cmd.Flags().DurationVar(&poll, "poll", 0, "refresh interval (default from config, 2s)")
	return cmd
}

// setupLogging routes zerolog to stderr. Diagnostics stay quiet unless
// --debug is given so they never mix with command output.
func setupLogging(debug bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
}

func userAgent() string {
	return "radioctl/" + version
}

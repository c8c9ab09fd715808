// Package cli wires configuration, fetching and rendering behind the
// profilebox root command.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fsmiamoto/profilebox/internal/config"
	"github.com/fsmiamoto/profilebox/internal/fetch"
	"github.com/fsmiamoto/profilebox/internal/logging"
	"github.com/fsmiamoto/profilebox/internal/profile"
	"github.com/fsmiamoto/profilebox/internal/tui"
)

// Options holds everything the command touches outside the process.
type Options struct {
	Stdout     io.Writer
	Stderr     io.Writer
	Getenv     func(string) string
	ConfigPath string       // TOML config file; "" skips it
	Client     fetch.Client // nil means an HTTP client
	Width      int          // 0 means detect from Stdout
}

// DefaultOptions returns Options bound to the real process.
func DefaultOptions() Options {
	return Options{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Getenv:     os.Getenv,
		ConfigPath: config.DefaultPath(),
	}
}

// NewRootCommand builds the profilebox command. It takes no arguments and no
// flags beyond cobra's --help and --version.
func NewRootCommand(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profilebox",
		Short: "Print a remote user profile as a box in the terminal",
		Long: `profilebox fetches a user profile from a JSON endpoint and prints it
as a bordered box sized to the terminal.

The endpoint is taken from ` + config.EnvURL + `, then from "endpoint" in
the config file, then from the built-in default.`,
		Args:          cobra.NoArgs,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}
	cmd.SetOut(opts.Stdout)
	cmd.SetErr(opts.Stderr)
	return cmd
}

// Main runs the command with args and returns the process exit code. Any
// failure is reported as a single "Error:" line on Stderr.
func Main(ctx context.Context, args []string, opts Options) int {
	cmd := NewRootCommand(opts)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		logging.Logger{Out: opts.Stderr}.Errorf("%v", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(config.LoadInput{Getenv: opts.Getenv, Path: opts.ConfigPath})
	if err != nil {
		return err
	}
	log := logging.Logger{Out: opts.Stderr, Debug: cfg.Debug}
	log.Debugf("endpoint %s (from %s)", cfg.Endpoint, cfg.Source)

	client := opts.Client
	if client == nil {
		client = fetch.NewHTTPClient(nil, userAgent(), log)
	}

	p, err := client.Fetch(ctx, cfg.Endpoint)
	if err != nil {
		return err
	}

	width := opts.Width
	if width <= 0 {
		width = detectWidth(opts.Stdout)
	}
	log.Debugf("rendering at width %d", tui.ClampWidth(width))

	_, err = fmt.Fprintln(opts.Stdout, profile.Render(p, width, tui.NewStyler(opts.Stdout)))
	return err
}

func detectWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		return tui.TerminalWidth(f)
	}
	return tui.TerminalWidth(nil)
}

func userAgent() string {
	return "profilebox/" + Version
}

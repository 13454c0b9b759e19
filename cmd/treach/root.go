// SPDX-License-Identifier: MIT

package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/treach/config"
)

func newRootCmd(version string) *cobra.Command {
	var configFile string
	root := &cobra.Command{
		Use:           "treach",
		Short:         "Temporal reachability indexing and querying",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "YAML configuration file (default ./treach.yaml if present)")

	load := func(fs *pflag.FlagSet) (*config.Config, error) {
		return config.Load(configFile, fs)
	}
	root.AddCommand(newRunCmd(load), newStatsCmd(load), newGenCmd())
	return root
}

type loader func(*pflag.FlagSet) (*config.Config, error)

// graphFlags registers the flags shared by every command reading an edge list.
func graphFlags(fs *pflag.FlagSet) {
	fs.StringP("graph", "g", "", "edge list file (src dst [t] per line)")
	fs.Float64("subgraph", 1, "fraction of distinct timestamps kept when building the graph, in (0,1]")
	fs.String("malformed", "abort", "malformed record policy: abort|skip")
	fs.Bool("undirected", false, "mirror every edge")
	fs.Bool("debug", false, "debug logging and internal invariant checks")
	fs.String("log-format", "auto", "log format: auto|console|json")
}

// newLogger writes JSON, or a console rendering when w is a terminal or
// format asks for it.
func newLogger(w io.Writer, format string, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	console := format == "console"
	if f, ok := w.(*os.File); ok && format == "auto" {
		console = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	if console {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

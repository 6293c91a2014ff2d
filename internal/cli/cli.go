// Package cli implements the smallworld command-line interface.
//
// It is a thin driver over the experiment package: every command builds a
// seeded *rand.Rand, runs one experiment, and prints a table.
//
// # Commands
//
//   - connectivity: fraction of connected Erdős–Rényi graphs G(n,p)
//   - sweep: Watts–Strogatz C(p)/C(0) and L(p)/L(0) over a list of p
//
// # Configuration
//
// Defaults can be stored in a TOML file passed with --config. Flags given on
// the command line override the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and every run logs a unique run ID.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the smallworld CLI with os.Args under ctx.
func Execute(ctx context.Context) error {
	return NewRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// NewRootCmd builds the command tree. Tables go to out, logs to errw.
func NewRootCmd(out, errw io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "smallworld",
		Short:         "smallworld runs random-graph and small-world experiments",
		Long:          `smallworld measures how often Erdős–Rényi graphs are connected and how rewiring a ring lattice shrinks path lengths while keeping clustering high (Watts–Strogatz).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(errw, level)

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if configPath != "" {
				logger.Debug("loaded config", "path", configPath)
			}

			ctx := withLogger(cmd.Context(), logger)
			cmd.SetContext(withConfig(ctx, cfg))
			return nil
		},
	}

	root.SetOut(out)
	root.SetErr(errw)
	root.SetVersionTemplate(fmt.Sprintf("smallworld %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML file with default experiment settings")

	root.AddCommand(newConnectivityCmd())
	root.AddCommand(newSweepCmd())

	return root
}

// Package cli wires the kingdoms command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
	"github.com/riordanpawley/kingdoms/internal/app"
	"github.com/riordanpawley/kingdoms/internal/config"
	"github.com/riordanpawley/kingdoms/internal/services/share"
	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

// options are the persistent flags shared by every command
type options struct {
	cfgFile string
	logFile string
	verbose bool

	// clipboard replaces the system clipboard in tests
	clipboard share.Clipboard
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. Without a subcommand it starts
// the dashboard.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&options{})
}

func newRootCommand(opts *options) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kingdoms",
		Short: "Terminal dashboard for kingdom standings",
		Long: `Kingdoms shows the current season's standings as tier columns or a
rank table, tracks rank movement between snapshots, and lets you
compare and share kingdoms. Hover or tap scores, badges and table
cells for details.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", config.DefaultFile, "config file path")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(
		newListCmd(opts),
		newCompareCmd(opts),
		newShareCmd(opts),
		newVersionCmd(),
	)

	return rootCmd
}

func newListCmd(opts *options) *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the leaderboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, closeFn, err := opts.dependencies(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			return ListCommand(cmd.Context(), deps, cmd.OutOrStdout(), top)
		},
	}
	cmd.Flags().IntVarP(&top, "top", "n", 0, "only list the top N kingdoms")

	return cmd
}

func newCompareCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <kingdom> <kingdom>",
		Short: "Compare two kingdoms by ID or name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, closeFn, err := opts.dependencies(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			return CompareCommand(cmd.Context(), deps, cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func newShareCmd(opts *options) *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "share <kingdom>",
		Short: "Copy a kingdom's summary to the clipboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, closeFn, err := opts.dependencies(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			return ShareCommand(cmd.Context(), deps, cmd.OutOrStdout(), args[0], printOnly)
		},
	}
	cmd.Flags().BoolVar(&printOnly, "print", false, "print the summary instead of copying it")

	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of kingdoms",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "kingdoms %s\n", Version)
		},
	}
}

func runDashboard(cmd *cobra.Command, opts *options) error {
	deps, closeFn, err := opts.dependencies(cmd)
	if err != nil {
		return err
	}
	defer closeFn()

	zones := zone.New()
	defer zones.Close()

	model := app.New(app.Deps{
		Config:  deps.Config,
		Source:  deps.Source,
		History: deps.History,
		Share:   deps.Share,
		Zones:   zones,
		Logger:  deps.Logger,
	})

	// Hover tooltips need motion events, and blur hides them
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
		tea.WithContext(cmd.Context()),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}

// dependencies loads config and opens services for one command. The
// returned func closes everything that was opened.
func (o *options) dependencies(cmd *cobra.Command) (*Dependencies, func(), error) {
	cfg, err := config.Load(o.cfgFile)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid config %s: %w", o.cfgFile, err)
	}

	// stdout belongs to the dashboard, so it only logs to a file
	dashboard := cmd.Parent() == nil
	logger, closeLog, err := o.logger(cmd.ErrOrStderr(), dashboard)
	if err != nil {
		return nil, nil, err
	}

	deps, err := NewDependencies(cfg, o.clipboard, logger)
	if err != nil {
		closeLog()
		return nil, nil, err
	}

	return deps, func() {
		if err := deps.Close(); err != nil {
			logger.Warn("failed to close history", "error", err)
		}
		closeLog()
	}, nil
}

func (o *options) logger(stderr io.Writer, dashboard bool) (*slog.Logger, func(), error) {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}

	var w io.Writer = stderr
	closeFn := func() {}

	switch {
	case o.logFile != "":
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
		if !o.verbose {
			level = slog.LevelInfo
		}
	case dashboard:
		w = io.Discard
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	logger.Debug("logger ready", "level", level.String(), "pid", os.Getpid())
	return logger, closeFn, nil
}

// Package cmd provides the CLI commands for margo.
package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dquint/margo/internal/config"
	"github.com/dquint/margo/internal/errors"
	"github.com/dquint/margo/internal/logging"
	"github.com/dquint/margo/internal/palette"
	"github.com/dquint/margo/internal/shortcut"
	"github.com/dquint/margo/internal/tui"
)

// Version information - set via ldflags at build time in main.go.
// These are exported so main.go can set them before Execute().
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "margo [file...]",
	Short: "margo - terminal markdown reader",
	Long: `Margo is a terminal markdown reader with tabs, a fuzzy file
finder and a command palette.

Running margo with no arguments opens the home tab; file arguments are
opened in tabs. The command palette (ctrl+p by default) lists every
available action; the finder (ctrl+o) searches the markdown index.`,
	Args: cobra.ArbitraryArgs,
	RunE: runRoot,
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.margo/config.yaml)")
}

// runRoot loads config, installs the global shortcut listener, and
// starts the TUI.
func runRoot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if err := initLogging(cfg); err != nil {
		return err
	}
	defer logging.CloseGlobal()

	chord, err := shortcut.ParseChord(cfg.Shortcuts.Palette)
	if err != nil {
		return errors.Wrap(err, errors.ErrShortcut, "invalid palette shortcut")
	}

	// The listener is the one process-wide key interceptor. Install it
	// here, at the root, and release it on every exit path.
	controller := palette.NewController()
	listener, err := shortcut.Install(chord, controller)
	if err != nil {
		return errors.Wrap(err, errors.ErrShortcut, "failed to install shortcut listener")
	}
	defer listener.Close()

	model := tui.New(cfg, listener, controller)
	for _, path := range args {
		if _, statErr := os.Stat(path); statErr != nil {
			return errors.FileReadError(path, statErr)
		}
	}
	model.OpenFiles(args)

	logging.Info("starting margo", "version", Version, "palette", cfg.Shortcuts.Palette)

	// Focus reporting drives the stale-index refresh.
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// loadConfig resolves the --config flag and loads configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// initLogging sets up the global file logger from config.
func initLogging(cfg *config.Config) error {
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	logCfg.MaxLogFiles = cfg.Logging.MaxFiles
	logCfg.JSONFormat = cfg.Logging.JSON
	if cfg.Logging.Dir != "" {
		logCfg.LogDir = cfg.Logging.Dir
	}
	return logging.InitGlobal(logCfg)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
	rootCmd.SetVersionTemplate("margo {{.Version}}\n")

	if err := rootCmd.Execute(); err != nil {
		var merr *errors.MargoError
		if stderrors.As(err, &merr) {
			fmt.Fprint(os.Stderr, merr.Format())
		}
		os.Exit(1)
	}
}

// Root returns the root command for testing purposes.
func Root() *cobra.Command {
	return rootCmd
}

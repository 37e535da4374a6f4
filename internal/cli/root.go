package cli

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fetchedhq/fetched/internal/app"
	"github.com/fetchedhq/fetched/internal/config"
	"github.com/fetchedhq/fetched/internal/logging"
	"github.com/fetchedhq/fetched/internal/storage/filesystem"
	"github.com/fetchedhq/fetched/internal/theme"
	"github.com/fetchedhq/fetched/internal/tui/views"
	"github.com/spf13/cobra"
)

// ExitCode is the process status after the user quits.
const ExitCode = 256

// ExitError asks main to terminate with Code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

type rootOptions struct {
	dataDir   string
	configDir string
	editor    string
}

// NewRootCommand creates the root command.
func NewRootCommand(version string) *cobra.Command {
	var opts rootOptions

	cmd := &cobra.Command{
		Use:           "fetched",
		Short:         "fetched - a terminal HTTP collection manager",
		Long:          "fetched is a vim-modal terminal UI for organizing HTTP requests into collections on disk.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dataDir, "dir", "d", "", "Directory holding the collections (default: current directory)")
	cmd.Flags().StringVar(&opts.configDir, "config-dir", "", "Configuration directory (default: $XDG_CONFIG_HOME/fetched or ~/.config/fetched)")
	cmd.Flags().StringVarP(&opts.editor, "editor", "e", "", "Editor used to open request files (default: $VISUAL, $EDITOR, vi)")

	return cmd
}

// loadConfig resolves the configuration directory, creates it and applies
// flag overrides on top of config.yaml.
func loadConfig(opts rootOptions) (config.Config, error) {
	configDir := opts.configDir
	if configDir == "" {
		dir, err := config.DefaultDir()
		if err != nil {
			return config.Config{}, err
		}
		configDir = dir
	}

	if err := config.Initialize(configDir); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(configDir)
	if err != nil {
		return config.Config{}, err
	}

	if opts.dataDir != "" {
		dataDir, err := filepath.Abs(opts.dataDir)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to resolve data directory: %w", err)
		}
		cfg.DataDir = dataDir
	}
	if opts.editor != "" {
		cfg.Editor = opts.editor
	}
	return cfg, nil
}

// newApp wires the stores, theme and log file into a bootstrapped app. The
// log file is closed by the exit hook.
func newApp(ctx context.Context, opts rootOptions) (*app.App, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	logFile, err := logging.Open(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	th, err := theme.Load(cfg.ThemeFile)
	if err != nil {
		logFile.Error("theme", "err", err)
		_ = logFile.Close()
		return nil, err
	}

	store, err := filesystem.NewCollectionStore(cfg.DataDir)
	if err != nil {
		logFile.Error("data directory", "err", err)
		_ = logFile.Close()
		return nil, err
	}

	a := app.New(
		app.WithConfig(cfg),
		app.WithTheme(th),
		app.WithStore(store),
		app.WithDocuments(filesystem.NewDocumentStore()),
		app.WithLogger(logFile.Logger),
	)
	a.RegisterHook(app.HookExit, func(ctx context.Context) error {
		return logFile.Close()
	})

	if err := a.Bootstrap(ctx); err != nil {
		logFile.Error("bootstrap", "err", err)
		_ = logFile.Close()
		return nil, err
	}

	logFile.Info("started", "data_dir", cfg.DataDir, "config_dir", cfg.ConfigDir)
	return a, nil
}

// runTUI starts the TUI application
func runTUI(ctx context.Context, opts rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(ctx, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(views.NewMainView(a), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		_ = a.Exit(ctx)
		return fmt.Errorf("error running TUI: %w", err)
	}

	if a.Exited() {
		return &ExitError{Code: ExitCode}
	}
	return a.Exit(ctx)
}

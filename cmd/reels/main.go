package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/glabrego/reels-cli/internal/app"
	"github.com/glabrego/reels-cli/internal/capture"
	"github.com/glabrego/reels-cli/internal/config"
	"github.com/glabrego/reels-cli/internal/logging"
	"github.com/glabrego/reels-cli/internal/storage"
	"github.com/glabrego/reels-cli/internal/tui"
	"github.com/glabrego/reels-cli/internal/tui/platform"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dbPath     string
		cameraRoll string
		library    string
		logPath    string
	)

	cmd := &cobra.Command{
		Use:     "reels",
		Short:   "A terminal media feed: capture, post, like, comment, share",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFromEnv()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			if cmd.Flags().Changed("db") {
				cfg.DBPath = dbPath
			}
			if cmd.Flags().Changed("camera-roll") {
				cfg.CameraRollDir = cameraRoll
			}
			if cmd.Flags().Changed("library") {
				cfg.LibraryDir = library
			}
			if cmd.Flags().Changed("log-file") {
				cfg.LogPath = logPath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg)
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&dbPath, "db", "reels.db", "path to the feed database")
	cmd.Flags().StringVar(&cameraRoll, "camera-roll", "camera-roll", "directory that receives camera captures")
	cmd.Flags().StringVar(&library, "library", "library", "media library directory for picks")
	cmd.Flags().StringVar(&logPath, "log-file", "", "diagnostic log file (empty disables logging)")
	return cmd
}

func run(cfg config.Config) error {
	logger, closeLog, err := logging.New(cfg.LogPath)
	if err != nil {
		return fmt.Errorf("logging init error: %w", err)
	}
	defer func() { _ = closeLog() }()

	repo, err := storage.NewRepository(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("storage init error: %w", err)
	}
	defer repo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := repo.Init(ctx); err != nil {
		return fmt.Errorf("storage schema error: %w", err)
	}
	if err := repo.CheckWritable(ctx); err != nil {
		return fmt.Errorf("storage write check failed (%w). Verify REELS_DB_PATH is writable: %s", err, cfg.DBPath)
	}

	service := app.NewService(repo)
	provider := capture.DirProvider{
		CameraRollDir: cfg.CameraRollDir,
		LibraryDir:    cfg.LibraryDir,
		Log:           logger,
	}

	model := tui.NewModel(service, provider, capture.Options{
		MediaType:    "mixed",
		Quality:      1,
		SaveToPhotos: cfg.SaveToPhotos,
	})
	model.SetLogger(logger)
	model.SetPermissionFn(func() bool {
		return platform.RequestStoragePermission(cfg.LibraryDir)
	})

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

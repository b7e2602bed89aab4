package app

import (
	"context"
	"fmt"

	"github.com/inkwell-hq/quill/internal/config"
	"github.com/inkwell-hq/quill/internal/inkwell"
	"github.com/inkwell-hq/quill/internal/logging"
	"github.com/inkwell-hq/quill/internal/prefs"
	"github.com/inkwell-hq/quill/internal/ui"
)

// Options configure the Quill application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/quill/prefs.toml
	PostID     string
}

// Run boots the edit form for one post and blocks until the user quits,
// the edit is saved, or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load quill config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	logger, closeLog := logging.New(cfg.LogFile)
	defer closeLog()

	client, err := inkwell.NewClient(cfg.BaseURL, cfg.APIToken)
	if err != nil {
		return fmt.Errorf("init inkwell client: %w", err)
	}

	logger.Info("starting edit session", "post", opts.PostID, "base_url", cfg.BaseURL)

	updated, err := ui.Run(ui.Options{
		Context:   ctx,
		Service:   client,
		PostID:    opts.PostID,
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
	if err != nil {
		return err
	}
	if updated {
		fmt.Println("Post updated.")
	}
	return nil
}

package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/proportion/app"
	"github.com/jask/proportion/core"
	"github.com/jask/proportion/internal/config"
	"github.com/jask/proportion/internal/journal"
	"github.com/jask/proportion/internal/logging"
	"github.com/jask/proportion/internal/store"
)

// rootOptions holds the global flags.
type rootOptions struct {
	ConfigPath string
	Tags       string
	LogLevel   string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "proportion",
		Short:         "Bank panel and tag driven proportion table",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "config file (default ~/.config/proportion/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.Tags, "tags", "", "comma separated starting tags, overrides config")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")

	cmd.AddCommand(newValidateCommand())
	return cmd
}

// resolveConfig loads config and applies flag overrides.
func resolveConfig(opts *rootOptions) (config.Config, []string, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	if opts.LogLevel != "" {
		cfg.Log.Level = opts.LogLevel
	}
	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		return config.Config{}, nil, err
	}
	if strings.TrimSpace(opts.Tags) != "" {
		cfg.Tags.PresetFile = ""
		cfg.Tags.Initial = splitFlagTags(opts.Tags)
	}
	tags, err := cfg.InitialTags()
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, store.UniqueTags(tags), nil
}

func splitFlagTags(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func runTUI(ctx context.Context, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, tags, err := resolveConfig(opts)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{Path: cfg.Log.Path, Level: cfg.Log.Level, Journald: cfg.Log.Journald})
	if err != nil {
		return err
	}
	defer logger.Close()

	j, err := journal.Open(cfg.Journal.Path)
	if err != nil {
		return fmt.Errorf("journal: %w", err)
	}
	defer j.Close()

	st := store.New(store.State{Bank: cfg.Bank.Initial, Tags: tags})
	st.Subscribe(j.StoreListener(ctx, logger.Logger))

	defaults := core.DefaultKeyBindings()
	overrides, err := config.LoadKeybindings(cfg.Keybindings.Path, core.DefaultKeybindingsByAction(defaults))
	if err != nil {
		return fmt.Errorf("keybindings: %w", err)
	}
	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(defaults, overrides))

	logger.Info("starting", "session", j.SessionID(), "tags", len(tags), "journal", cfg.Journal.Path)
	m := app.NewModel(app.Deps{
		Ctx:     ctx,
		Store:   st,
		Journal: j,
		Logger:  logger.Logger,
		Keys:    keys,
		Config:  cfg,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	logger.Info("exiting", "bank", st.Snapshot().Bank)
	return nil
}

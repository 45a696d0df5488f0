package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pockit/internal/common"
	"github.com/Veraticus/pockit/internal/tui"
	"github.com/Veraticus/pockit/internal/tui/themes"
)

func chatCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open the interactive chat screen",
		Long: `Chat with the assistant in the terminal.

Press tab to switch language, esc to cancel a pending reply and ctrl+c to
quit. Logs are written to logging.file while the screen is open.`,
		Args: cobra.NoArgs,
		RunE: runChat,
	}

	cmd.Flags().String("theme", "default", "color theme (default, catppuccin)")

	return cmd
}

func runChat(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	themeName, _ := cmd.Flags().GetString("theme")

	level, err := common.ParseLevel(appConfig.Logging.Level)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(appConfig.Logging.File), 0750); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logFile, err := common.SetupFileLogger(appConfig.Logging.File, level, appConfig.Logging.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logFile.Close() }()

	client, err := createLLMClient()
	if err != nil {
		return err
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer closeStorage(store)

	chat := chatFactory(client, store)(appConfig.Language())
	slog.Info("Starting chat session", "language", chat.Language(), "database", store.Path())

	return tui.Run(ctx, chat, tui.WithTheme(themes.GetTheme(themeName)))
}

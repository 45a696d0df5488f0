package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Veraticus/pockit/internal/assistant"
	"github.com/Veraticus/pockit/internal/llm"
	"github.com/Veraticus/pockit/internal/locale"
	"github.com/Veraticus/pockit/internal/storage"
)

// initStorage opens the configured database and brings its schema up to date.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(appConfig.Database.Path)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// closeStorage closes store and logs any failure.
func closeStorage(store *storage.SQLiteStorage) {
	if err := store.Close(); err != nil {
		slog.Error("failed to close storage", "error", err)
	}
}

// createLLMClient validates the configuration and builds the provider client.
// This function is shared by every command that talks to the classifier.
func createLLMClient() (*llm.ResilientClient, error) {
	if err := appConfig.Validate(); err != nil {
		return nil, err
	}

	client, err := llm.New(appConfig.LLMClientConfig())
	if err != nil {
		return nil, err
	}

	slog.Debug("LLM client ready",
		"provider", appConfig.LLM.Provider,
		"model", appConfig.LLM.Model)
	return client, nil
}

// chatFactory returns a constructor for chats sharing client and recorder.
func chatFactory(client llm.Client, recorder assistant.Recorder) func(locale.Language) *assistant.Chat {
	return func(lang locale.Language) *assistant.Chat {
		return assistant.NewChat(client, recorder, assistant.Config{
			Language:  lang,
			Timeout:   appConfig.LLM.Timeout,
			MaxTokens: appConfig.LLM.MaxTokens,
		}, slog.Default())
	}
}

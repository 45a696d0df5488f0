package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pockit/internal/cli"
	"github.com/Veraticus/pockit/internal/storage"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the local database",
		Long: `Bring the SQLite database up to the schema this build expects.

The chat, ask and serve commands migrate automatically; run this to
upgrade ahead of time or, with --status, to see where a database stands.`,
		Args: cobra.NoArgs,
		RunE: runMigrate,
	}

	cmd.Flags().Bool("status", false, "Report the schema version without changing anything")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	statusOnly, _ := cmd.Flags().GetBool("status")
	path := appConfig.Database.Path

	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer closeStorage(store)

	before, err := store.SchemaVersion(cmd.Context())
	if err != nil {
		return err
	}
	if statusOnly {
		printSchemaStatus(cmd.OutOrStdout(), path, before)
		return nil
	}

	slog.Info("Migrating database", "database", path, "from", before, "to", storage.ExpectedSchemaVersion)
	if err := store.Migrate(cmd.Context()); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	msg := "Database migrations completed successfully!"
	if before == storage.ExpectedSchemaVersion {
		msg = "Database schema already current, migrations completed successfully!"
	}
	fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(msg))
	return nil
}

func printSchemaStatus(out io.Writer, path string, current int) {
	fmt.Fprintln(out, cli.FormatTitle("Database Schema"))
	fmt.Fprintf(out, "Database: %s\n", path)
	fmt.Fprintf(out, "Current version: %d\n", current)
	fmt.Fprintf(out, "Latest version: %d\n", storage.ExpectedSchemaVersion)
	if current < storage.ExpectedSchemaVersion {
		fmt.Fprintln(out, cli.FormatWarning("Migrations pending. Run 'pockit migrate'."))
	}
}

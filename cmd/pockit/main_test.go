package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/pockit/internal/common"
	"github.com/Veraticus/pockit/internal/model"
	"github.com/Veraticus/pockit/internal/storage"
)

// writeConfig points the database and log file at a temp directory.
func writeConfig(t *testing.T) (configPath, dbPath string) {
	t.Helper()
	dir := t.TempDir()
	dbPath = filepath.Join(dir, "pockit.db")
	configPath = filepath.Join(dir, "config.yaml")

	content := "database:\n  path: " + dbPath + "\n" +
		"logging:\n  level: error\n  file: " + filepath.Join(dir, "pockit.log") + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

	t.Setenv("POCKIT_LLM_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")
	return configPath, dbPath
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	configPath, _ := writeConfig(t)

	out, err := execute(t, "version", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "pockit dev")
}

func TestAskCmd_DryRun(t *testing.T) {
	configPath, dbPath := writeConfig(t)

	out, err := execute(t, "ask", "--config", configPath, "--lang", "en", "--dry-run", "I spent 500 on groceries")
	require.NoError(t, err)
	assert.Contains(t, out, "Got it!")
	assert.Contains(t, out, "₹500")
	assert.Contains(t, out, "BigBazaar")

	// Nothing is stored in a dry run.
	_, statErr := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestAskCmd_MissingAPIKey(t *testing.T) {
	configPath, _ := writeConfig(t)

	_, err := execute(t, "ask", "--config", configPath, "--dry-run=false", "hello")
	require.ErrorIs(t, err, common.ErrMissingConfig)
}

func TestMigrateCmd(t *testing.T) {
	configPath, _ := writeConfig(t)

	out, err := execute(t, "migrate", "--config", configPath, "--status")
	require.NoError(t, err)
	assert.Contains(t, out, "Current version: 0")
	assert.Contains(t, out, "Migrations pending")

	out, err = execute(t, "migrate", "--config", configPath, "--status=false")
	require.NoError(t, err)
	assert.Contains(t, out, "completed successfully")

	out, err = execute(t, "migrate", "--config", configPath, "--status")
	require.NoError(t, err)
	assert.Contains(t, out, "Current version: 2")
	assert.NotContains(t, out, "Migrations pending")
}

func TestRecordCmds(t *testing.T) {
	configPath, dbPath := writeConfig(t)

	out, err := execute(t, "transactions", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No transactions recorded yet")

	out, err = execute(t, "summary", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "No spending recorded yet")

	store, err := storage.NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.RecordTransaction(ctx, model.Transaction{
		PhoneNumber: model.NullString, Amount: 500, SpentCategory: "groceries",
		MethodOfPayment: "card", Receiver: "BigBazaar",
	}))
	require.NoError(t, store.RecordMilestone(ctx, model.Milestone{SavedAmount: 2000, GoalAmount: 10000, Duration: "3 months"}))
	require.NoError(t, store.Close())

	out, err = execute(t, "transactions", "--config", configPath, "--limit", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "BigBazaar")
	assert.Contains(t, out, "₹500")

	out, err = execute(t, "milestones", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "3 months")
	assert.Contains(t, out, "20%")

	out, err = execute(t, "summary", "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, out, "groceries")

	_, err = execute(t, "transactions", "--config", configPath, "--limit", "-1")
	require.Error(t, err)
}

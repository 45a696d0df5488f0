package config

import (
	"os"
	"path/filepath"
	"strings"
)

// memoryDatabase is SQLite's name for a private in-memory database.
const memoryDatabase = ":memory:"

// ExpandPath resolves $VAR references and a leading ~ in a configured path.
// The SQLite ":memory:" name is returned untouched.
func ExpandPath(path string) string {
	if path == "" || path == memoryDatabase {
		return path
	}

	path = os.ExpandEnv(path)
	if path == "~" || strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + path[1:]
		}
	}
	return filepath.Clean(path)
}

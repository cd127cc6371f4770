package util

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDir is where the settings database lives.
func DataDir(app string) string {
	if base := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); base != "" {
		return filepath.Join(base, app)
	}
	return homeRelative(filepath.Join(".local", "share", app), app)
}

// ReportsDir is the default target for exported month sheets.
func ReportsDir(app string) string {
	return filepath.Join(DocumentsDir(), strings.ToUpper(app))
}

// DocumentsDir honours XDG_DOCUMENTS_DIR from the environment or from
// ~/.config/user-dirs.dirs.
func DocumentsDir() string {
	if base := strings.TrimSpace(os.Getenv("XDG_DOCUMENTS_DIR")); base != "" {
		return ExpandHome(base)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	if data, err := os.ReadFile(filepath.Join(home, ".config", "user-dirs.dirs")); err == nil {
		if dir := userDirValue(string(data), "XDG_DOCUMENTS_DIR"); dir != "" {
			return ExpandHome(dir)
		}
	}
	return filepath.Join(home, "Documents")
}

// ExpandHome replaces $HOME and a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	if strings.HasPrefix(path, "~/") {
		path = filepath.Join(home, path[2:])
	}
	return strings.ReplaceAll(path, "$HOME", home)
}

func homeRelative(rel, fallback string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(".", fallback)
	}
	return filepath.Join(home, rel)
}

func userDirValue(data, key string) string {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if value, ok := strings.CutPrefix(line, key+"="); ok {
			return strings.Trim(value, "\"")
		}
	}
	return ""
}

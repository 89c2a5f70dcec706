// Package config resolves where a project's feattree state lives.
//
// Resolution is explicit: callers obtain a Config once and pass it down,
// so the store and publisher carry no ambient global state and multiple
// instances can coexist in tests.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// DataDirName is the per-project directory holding the database and the
// derived documents.
const DataDirName = ".feat-tree"

// Config locates a project's feattree state.
type Config struct {
	// ProjectRoot is the project directory the tracker serves.
	ProjectRoot string
}

// Resolve determines the project root, in order: the FEATTREE_ROOT
// environment variable, the current-project file written by the
// session-start hook, then the working directory.
func Resolve() Config {
	if root := strings.TrimSpace(os.Getenv("FEATTREE_ROOT")); root != "" {
		return Config{ProjectRoot: root}
	}
	if root := currentProjectFromHook(); root != "" {
		return Config{ProjectRoot: root}
	}
	cwd, err := os.Getwd()
	if err != nil {
		cwd = "."
	}
	return Config{ProjectRoot: cwd}
}

// currentProjectFromHook reads the project path recorded by the editor
// hook at ~/.feat-tree/current-project. Returns "" when absent.
func currentProjectFromHook() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(home, DataDirName, "current-project"))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// DataDir returns the project's feattree state directory.
func (c Config) DataDir() string {
	return filepath.Join(c.ProjectRoot, DataDirName)
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolve_EnvWins(t *testing.T) {
	t.Setenv("FEATTREE_ROOT", "/srv/project")

	cfg := Resolve()
	if cfg.ProjectRoot != "/srv/project" {
		t.Errorf("ProjectRoot = %q, want /srv/project", cfg.ProjectRoot)
	}
}

func TestResolve_HookFile(t *testing.T) {
	t.Setenv("FEATTREE_ROOT", "")
	home := t.TempDir()
	t.Setenv("HOME", home)

	hookDir := filepath.Join(home, DataDirName)
	if err := os.MkdirAll(hookDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(hookDir, "current-project"), []byte("/work/app\n"), 0o644); err != nil {
		t.Fatalf("write hook file: %v", err)
	}

	cfg := Resolve()
	if cfg.ProjectRoot != "/work/app" {
		t.Errorf("ProjectRoot = %q, want /work/app", cfg.ProjectRoot)
	}
}

func TestResolve_FallsBackToCwd(t *testing.T) {
	t.Setenv("FEATTREE_ROOT", "")
	t.Setenv("HOME", t.TempDir())

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}

	cfg := Resolve()
	if cfg.ProjectRoot != cwd {
		t.Errorf("ProjectRoot = %q, want cwd %q", cfg.ProjectRoot, cwd)
	}
}

func TestDataDir(t *testing.T) {
	cfg := Config{ProjectRoot: "/work/app"}
	want := filepath.Join("/work/app", DataDirName)
	if got := cfg.DataDir(); got != want {
		t.Errorf("DataDir() = %q, want %q", got, want)
	}
}

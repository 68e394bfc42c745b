package home

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewExplicitPath(t *testing.T) {
	d, err := New("/tmp/deck-home")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.Path() != "/tmp/deck-home" {
		t.Errorf("path = %q", d.Path())
	}
	if d.DefraDataPath() != filepath.Join("/tmp/deck-home", DefraDirName) {
		t.Errorf("defra path = %q", d.DefraDataPath())
	}
	if d.ConfigPath() != filepath.Join("/tmp/deck-home", ConfigFileName) {
		t.Errorf("config path = %q", d.ConfigPath())
	}
}

func TestNewDefaultPath(t *testing.T) {
	d, err := New("")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if filepath.Base(d.Path()) != DefaultDirName {
		t.Errorf("default path = %q", d.Path())
	}
}

func TestEnsureExists(t *testing.T) {
	root := filepath.Join(t.TempDir(), "home")

	d, err := New(root)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.Exists() {
		t.Error("Exists before creation")
	}

	if err := d.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists: %v", err)
	}
	if !d.Exists() {
		t.Error("home directory not created")
	}
	if info, err := os.Stat(d.DefraDataPath()); err != nil || !info.IsDir() {
		t.Errorf("defra data dir not created: %v", err)
	}

	if d.ConfigExists() {
		t.Error("ConfigExists with no config file")
	}
	if err := os.WriteFile(d.ConfigPath(), []byte("completion:\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if !d.ConfigExists() {
		t.Error("ConfigExists after write")
	}
}

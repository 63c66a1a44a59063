package home

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("with explicit path", func(t *testing.T) {
		dir, err := New("/tmp/test-coax")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if dir.Path() != "/tmp/test-coax" {
			t.Errorf("expected path /tmp/test-coax, got %s", dir.Path())
		}
	})

	t.Run("with empty path uses default", func(t *testing.T) {
		dir, err := New("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		home, _ := os.UserHomeDir()
		expected := filepath.Join(home, DefaultDirName)
		if dir.Path() != expected {
			t.Errorf("expected path %s, got %s", expected, dir.Path())
		}
	})
}

func TestDir_Paths(t *testing.T) {
	dir, _ := New("/tmp/test-coax")

	t.Run("SchemasPath", func(t *testing.T) {
		expected := "/tmp/test-coax/schemas"
		if dir.SchemasPath() != expected {
			t.Errorf("expected %s, got %s", expected, dir.SchemasPath())
		}
	})

	t.Run("ToolsPath", func(t *testing.T) {
		expected := "/tmp/test-coax/tools"
		if dir.ToolsPath() != expected {
			t.Errorf("expected %s, got %s", expected, dir.ToolsPath())
		}
	})

	t.Run("SchemaPath", func(t *testing.T) {
		expected := "/tmp/test-coax/schemas/person.yaml"
		if dir.SchemaPath("person") != expected {
			t.Errorf("expected %s, got %s", expected, dir.SchemaPath("person"))
		}
	})

	t.Run("ConfigPath", func(t *testing.T) {
		expected := "/tmp/test-coax/config.yaml"
		if dir.ConfigPath() != expected {
			t.Errorf("expected %s, got %s", expected, dir.ConfigPath())
		}
	})
}

func TestDir_EnsureExists(t *testing.T) {
	tmpDir := t.TempDir()
	coaxDir := filepath.Join(tmpDir, "coax-test")

	dir, err := New(coaxDir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Directory shouldn't exist yet
	if dir.Exists() {
		t.Error("directory should not exist before EnsureExists")
	}

	// Create it
	if err := dir.EnsureExists(); err != nil {
		t.Fatalf("EnsureExists failed: %v", err)
	}

	// Now it should exist
	if !dir.Exists() {
		t.Error("directory should exist after EnsureExists")
	}

	// Subdirectories should also exist
	if _, err := os.Stat(dir.SchemasPath()); os.IsNotExist(err) {
		t.Error("schemas directory should exist after EnsureExists")
	}
	if _, err := os.Stat(dir.ToolsPath()); os.IsNotExist(err) {
		t.Error("tools directory should exist after EnsureExists")
	}
}

func TestDir_ConfigExists(t *testing.T) {
	tmpDir := t.TempDir()
	dir, _ := New(tmpDir)

	// Config doesn't exist
	if dir.ConfigExists() {
		t.Error("config should not exist initially")
	}

	// Create a config file
	configPath := dir.ConfigPath()
	if err := os.WriteFile(configPath, []byte("test: true\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	// Now it should exist
	if !dir.ConfigExists() {
		t.Error("config should exist after creation")
	}
}

package home

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultDirName is the default name for the coax home directory.
	DefaultDirName = ".coax"

	// SchemasDirName is the subdirectory for saved schema definitions.
	SchemasDirName = "schemas"

	// ToolsDirName is the subdirectory for saved tool definitions.
	ToolsDirName = "tools"

	// ConfigFileName is the default config file name.
	ConfigFileName = "config.yaml"
)

// Dir represents the coax home directory structure.
type Dir struct {
	path string
}

// New creates a new Dir with the given path.
// If path is empty, uses the default (~/.coax).
func New(path string) (*Dir, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(home, DefaultDirName)
	}

	return &Dir{path: path}, nil
}

// Path returns the root path of the home directory.
func (d *Dir) Path() string {
	return d.path
}

// SchemasPath returns the path to the schemas directory.
func (d *Dir) SchemasPath() string {
	return filepath.Join(d.path, SchemasDirName)
}

// ToolsPath returns the path to the tools directory.
func (d *Dir) ToolsPath() string {
	return filepath.Join(d.path, ToolsDirName)
}

// SchemaPath returns the path to a named schema file.
func (d *Dir) SchemaPath(name string) string {
	return filepath.Join(d.SchemasPath(), name+".yaml")
}

// ConfigPath returns the path to the default config file.
func (d *Dir) ConfigPath() string {
	return filepath.Join(d.path, ConfigFileName)
}

// EnsureExists creates the home directory and subdirectories if they don't exist.
func (d *Dir) EnsureExists() error {
	if err := os.MkdirAll(d.SchemasPath(), 0o755); err != nil {
		return fmt.Errorf("failed to create schemas directory: %w", err)
	}
	if err := os.MkdirAll(d.ToolsPath(), 0o755); err != nil {
		return fmt.Errorf("failed to create tools directory: %w", err)
	}
	return nil
}

// Exists returns true if the home directory exists.
func (d *Dir) Exists() bool {
	_, err := os.Stat(d.path)
	return err == nil
}

// ConfigExists returns true if the config file exists in the home directory.
func (d *Dir) ConfigExists() bool {
	_, err := os.Stat(d.ConfigPath())
	return err == nil
}

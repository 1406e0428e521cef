// Package testutil provides shared fixtures for resolvr's tests: isolated
// XDG directory trees and desktop entry builders.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

// XDGDirs holds the isolated XDG tree a test runs against.
type XDGDirs struct {
	ConfigHome string
	DataHome   string
	StateHome  string
}

// SetupXDG points every XDG base directory at fresh temp dirs and reloads
// the xdg package so nothing from the host machine leaks into the test.
// The previous environment is restored automatically.
func SetupXDG(t *testing.T) XDGDirs {
	t.Helper()

	dirs := XDGDirs{
		ConfigHome: t.TempDir(),
		DataHome:   t.TempDir(),
		StateHome:  t.TempDir(),
	}

	t.Setenv("XDG_CONFIG_HOME", dirs.ConfigHome)
	t.Setenv("XDG_DATA_HOME", dirs.DataHome)
	t.Setenv("XDG_DATA_DIRS", dirs.DataHome)
	t.Setenv("XDG_STATE_HOME", dirs.StateHome)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	return dirs
}

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// ReadFile reads the content of a file and returns it as a string.
// It fails the test if the file cannot be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	return string(content)
}

// FileExists checks if a file exists and is not a directory.
func FileExists(t *testing.T, path string) bool {
	t.Helper()

	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return !info.IsDir()
}

// EntrySpec describes a desktop entry fixture.
type EntrySpec struct {
	Name      string
	Exec      string
	Terminal  bool
	NoDisplay bool
	MimeTypes []string
}

// DesktopEntry renders an EntrySpec as desktop file content.
func DesktopEntry(spec EntrySpec) string {
	var b strings.Builder
	b.WriteString("[Desktop Entry]\n")
	b.WriteString("Type=Application\n")
	b.WriteString("Name=" + spec.Name + "\n")
	b.WriteString("Exec=" + spec.Exec + "\n")
	if spec.Terminal {
		b.WriteString("Terminal=true\n")
	}
	if spec.NoDisplay {
		b.WriteString("NoDisplay=true\n")
	}
	if len(spec.MimeTypes) > 0 {
		b.WriteString("MimeType=" + strings.Join(spec.MimeTypes, ";") + ";\n")
	}
	return b.String()
}

// InstallEntry writes a desktop entry fixture into the applications
// directory of an XDG data dir and returns its path.
func InstallEntry(t *testing.T, dataHome, fileName string, spec EntrySpec) string {
	t.Helper()
	return CreateFile(t, filepath.Join(dataHome, "applications"), fileName, DesktopEntry(spec))
}

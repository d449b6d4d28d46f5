package appdir

import (
	"fmt"
	"os"
	"path/filepath"
)

// ConfigDir returns the OS-specific config directory for dnsintel.
// Linux: $XDG_CONFIG_HOME/dnsintel  macOS: ~/Library/Application Support/dnsintel
// Windows: %AppData%/dnsintel
// userConfigDir is injectable for tests; pass os.UserConfigDir normally.
func ConfigDir(userConfigDir func() (string, error)) (string, error) {
	if userConfigDir == nil {
		userConfigDir = os.UserConfigDir
	}
	base, err := userConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting user config dir: %w", err)
	}
	return filepath.Join(base, "dnsintel"), nil
}

// EnsureFile creates path and its parent directories if they do not exist.
// The file is created with 0600 permissions (owner read/write only).
// A no-op if the file already exists.
func EnsureFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return fmt.Errorf("creating config file: %w", err)
	}
	return f.Close()
}

package configs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultInstallPath is where iwd looks for network files.
const DefaultInstallPath = "/var/lib/iwd"

// UserSettings is the optional per-user configuration stored under the
// user's config directory.
type UserSettings struct {
	// OutputDir overrides the default output directory for converted
	// network files.
	OutputDir string `toml:"output_dir"`
}

// SettingsPath returns the location of the user settings file.
func SettingsPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "netctl2iwd", "config.toml"), nil
}

// LoadUserSettings reads the settings file. A missing file is not an
// error; it yields zero-valued settings so every field falls back to its
// built-in default.
func LoadUserSettings() (*UserSettings, error) {
	path, err := SettingsPath()
	if err != nil {
		return nil, err
	}

	settings := &UserSettings{}
	if _, err := toml.DecodeFile(path, settings); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return settings, nil
		}
		return nil, err
	}
	return settings, nil
}

// SaveUserSettings writes the settings file, creating the config
// directory if needed.
func SaveUserSettings(settings *UserSettings) error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(settings)
}

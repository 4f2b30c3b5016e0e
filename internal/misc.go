package internal

import "path/filepath"

const PreferencesFileName = "Preferences"

const localStateFileName = "Local State"

const backupDirName = ".color_backups"

const (
	systemProfileFolder = "System Profile"
	guestProfileFolder  = "Guest Profile"
)

// AutogeneratedThemeID selects the theme the browser computes from a
// seed color. A color without this sentinel has no visible effect.
const AutogeneratedThemeID = "autogenerated_theme_id"

// UserColorThemeID marks a color picked in the restricted appearance
// settings.
const UserColorThemeID = "user_color_theme_id"

type Profile struct {
	FolderName string
	Path       string
}

func (p Profile) PreferencesPath() string {
	return filepath.Join(p.Path, PreferencesFileName)
}

func BackupDir(dataDir string) string {
	return filepath.Join(dataDir, backupDirName)
}

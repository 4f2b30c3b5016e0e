package internal_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"t0ast.cc/bravetint/internal"
	uio "t0ast.cc/bravetint/util/io"
)

func TestBackupPreferences(t *testing.T) {
	dataDir, cleanup := setUpDataDir(t, "datadir")
	defer cleanup()
	profile := profileIn(dataDir, "Profile 2")

	before := time.Now().Truncate(time.Second)
	backupPath, err := internal.BackupPreferences(profile.PreferencesPath(), dataDir)
	assert.NoError(t, err)
	after := time.Now()

	assert.Equal(t, internal.BackupDir(dataDir), filepath.Dir(backupPath))

	name := filepath.Base(backupPath)
	assert.True(t, strings.HasPrefix(name, "Profile 2_"))
	assert.True(t, strings.HasSuffix(name, ".json"))
	timestamp, err := time.ParseInLocation("20060102_150405", strings.TrimSuffix(strings.TrimPrefix(name, "Profile 2_"), ".json"), time.Local)
	assert.NoError(t, err)
	assert.False(t, timestamp.Before(before))
	assert.False(t, timestamp.After(after))

	original, err := os.ReadFile(profile.PreferencesPath())
	assert.NoError(t, err)
	backedUp, err := os.ReadFile(backupPath)
	assert.NoError(t, err)
	assert.Equal(t, original, backedUp)
}

func TestBackupPreferencesMissingSource(t *testing.T) {
	dataDir, cleanup := setUpDataDir(t, "datadir")
	defer cleanup()

	_, err := internal.BackupPreferences(profileIn(dataDir, "Ghost").PreferencesPath(), dataDir)
	assert.Error(t, err)
}

func TestListBackups(t *testing.T) {
	tmpDir, err := os.MkdirTemp(os.TempDir(), "bravetint-test-*")
	assert.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	backupDir := internal.BackupDir(tmpDir)
	assert.NoError(t, os.MkdirAll(backupDir, uio.FileModeURWXGRWXO))
	for _, name := range []string{
		"Default_20240101_120000.json",
		"Default_20241231_235959.json",
		"Profile 2_20240615_080000.json",
		"notes.txt",
	} {
		assert.NoError(t, os.WriteFile(filepath.Join(backupDir, name), []byte("{}"), uio.FileModeURWGRWO))
	}
	assert.NoError(t, os.MkdirAll(filepath.Join(backupDir, "stray.json"), uio.FileModeURWXGRWXO))

	backups, err := internal.ListBackups(tmpDir)
	assert.NoError(t, err)

	labels := make([]string, 0, len(backups))
	for _, backup := range backups {
		labels = append(labels, backup.Label)
	}
	assert.Equal(t, []string{
		"Profile 2_20240615_080000",
		"Default_20241231_235959",
		"Default_20240101_120000",
	}, labels)
	assert.Equal(t, filepath.Join(backupDir, "Profile 2_20240615_080000.json"), backups[0].Path)
}

func TestListBackupsNoBackupDir(t *testing.T) {
	tmpDir, err := os.MkdirTemp(os.TempDir(), "bravetint-test-*")
	assert.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	backups, err := internal.ListBackups(tmpDir)
	assert.NoError(t, err)
	assert.Equal(t, []internal.Backup{}, backups)
}

package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	uerror "t0ast.cc/bravetint/util/error"
	uio "t0ast.cc/bravetint/util/io"
)

// BackupPreferences copies a preference document into the backup
// directory, named by profile folder and timestamp.
func BackupPreferences(prefsPath string, dataDir string) (string, error) {
	backupDir := BackupDir(dataDir)
	if err := os.MkdirAll(backupDir, uio.FileModeURWXGRWXO); err != nil {
		return "", err
	}
	folderName := filepath.Base(filepath.Dir(prefsPath))
	timestamp := time.Now().Format("20060102_150405")
	backupPath := filepath.Join(backupDir, fmt.Sprintf("%s_%s.json", folderName, timestamp))
	if err := uio.CopyFile(prefsPath, backupPath); err != nil {
		return "", err
	}
	return backupPath, nil
}

type Backup struct {
	Label string
	Path  string
}

// ListBackups enumerates saved backups newest-first.
func ListBackups(dataDir string) ([]Backup, error) {
	backupDir := BackupDir(dataDir)
	dirEntries, err := os.ReadDir(backupDir)
	if errors.Is(err, fs.ErrNotExist) {
		return []Backup{}, nil
	}
	if err != nil {
		return nil, uerror.WithStackTrace(err)
	}
	backups := []Backup{}
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() || !strings.HasSuffix(dirEntry.Name(), ".json") {
			continue
		}
		backups = append(backups, Backup{
			Label: strings.TrimSuffix(dirEntry.Name(), ".json"),
			Path:  filepath.Join(backupDir, dirEntry.Name()),
		})
	}
	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Label > backups[j].Label
	})
	return backups, nil
}

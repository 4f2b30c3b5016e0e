package cli

import (
	"fmt"

	"t0ast.cc/bravetint/internal"
)

type BackupsCmd struct{}

func (cmd *BackupsCmd) Run(common CommandContext) error {
	backups, err := internal.ListBackups(common.DataDir)
	if err != nil {
		return err
	}
	if len(backups) == 0 {
		fmt.Println("No backups found.")
		return nil
	}

	fmt.Printf("Found %d backup(s) in %s:\n\n", len(backups), internal.BackupDir(common.DataDir))
	for _, backup := range backups {
		fmt.Printf("  %s\n", backup.Label)
	}
	return nil
}

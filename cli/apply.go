package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"t0ast.cc/bravetint/internal"
)

type ApplyCmd struct {
	Color string `arg:"" optional:"" help:"Hex color to apply (e.g. #FF5500)"`
}

func (cmd *ApplyCmd) Run(common CommandContext) error {
	if CLI.List {
		return listProfiles(common)
	}

	if cmd.Color == "" {
		return errors.New("No color given.\n       Pass a hex color such as \"#FF5500\", or use --list to see profiles.")
	}

	if internal.IsBrowserRunning(common.Context) {
		if CLI.Force {
			PrintWarning("Brave is running. Changes may not take effect until restart.")
		} else {
			return errors.New("Brave Browser is running. Please close it first.\n       Use --force to apply anyway (changes won't take effect until restart).")
		}
	}

	colorInt, err := internal.HexToSignedInt(cmd.Color)
	if err != nil {
		return err
	}
	colorHex := strings.ToUpper(cmd.Color)
	if !strings.HasPrefix(colorHex, "#") {
		colorHex = "#" + colorHex
	}

	fmt.Printf("Color: %s %s (value: %d)\n", swatch(colorHex), colorHex, colorInt)
	if CLI.DryRun {
		fmt.Print("DRY RUN - no changes will be made\n\n")
	} else {
		fmt.Println()
	}

	allProfiles, err := internal.ListProfiles(common.DataDir)
	if err != nil {
		return err
	}
	names, err := internal.LoadNameIndex(common.DataDir)
	if err != nil {
		names = internal.NameIndex{}
	}

	var profiles []internal.Profile
	switch {
	case len(CLI.Name) > 0:
		profiles = internal.FindProfilesByName(allProfiles, names, CLI.Name)
		if len(profiles) == 0 {
			return fmt.Errorf("No profiles found matching: %s\n       Use --list to see available profiles.", strings.Join(CLI.Name, ", "))
		}
	case len(CLI.Profiles) > 0:
		var missing []string
		profiles, missing = internal.FilterByFolders(allProfiles, CLI.Profiles)
		if len(missing) > 0 {
			PrintWarning(fmt.Sprintf("Profile folder(s) not found: %s", strings.Join(missing, ", ")))
		}
	default:
		profiles = allProfiles
	}

	if len(profiles) == 0 {
		return errors.New("No profiles to update.")
	}

	opts := internal.ApplyOptions{
		DryRun: CLI.DryRun,
		Backup: !CLI.NoBackup && !CLI.DryRun,
	}
	status := "updating"
	if CLI.DryRun {
		status = "would update"
	}
	newDisplay := fmt.Sprintf("%s %s", swatch(colorHex), colorHex)

	updated := 0
	for _, profile := range profiles {
		nameDisplay := profile.FolderName
		if displayName := internal.ResolveDisplayName(profile, names); displayName != "" {
			nameDisplay = fmt.Sprintf("%s (%s)", profile.FolderName, displayName)
		}
		currentDisplay, _ := colorCell(profile.PreferencesPath())
		fmt.Printf("%s %s: %s -> %s\n", status, nameDisplay, currentDisplay, newDisplay)

		backupPath, err := internal.ApplyColor(profile, colorInt, common.DataDir, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  %s %v\n", errorPrefixStyle.Render("Error:"), err)
			continue
		}
		if opts.Backup && backupPath == "" {
			PrintWarning(fmt.Sprintf("Could not back up %s before writing", profile.FolderName))
		}
		updated++
	}

	summary := "Updated"
	if CLI.DryRun {
		summary = "Would update"
	}
	fmt.Printf("\n%s %d/%d profile(s)\n", summary, updated, len(profiles))

	if !CLI.DryRun && updated > 0 {
		if opts.Backup {
			fmt.Printf("\nBackups saved to: %s\n", internal.BackupDir(common.DataDir))
		}
		fmt.Println("Restart Brave Browser to see the changes.")
	}
	return nil
}

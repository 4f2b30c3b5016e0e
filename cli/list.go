package cli

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"t0ast.cc/bravetint/internal"
)

const (
	folderColumnWidth = 15
	nameColumnWidth   = 28
	colorColumnWidth  = 20
)

func listProfiles(common CommandContext) error {
	profiles, err := internal.ListProfiles(common.DataDir)
	if err != nil {
		return err
	}
	if len(profiles) == 0 {
		fmt.Println("No profiles found.")
		return nil
	}
	names, err := internal.LoadNameIndex(common.DataDir)
	if err != nil {
		names = internal.NameIndex{}
	}

	fmt.Printf("Found %d profile(s):\n\n", len(profiles))

	sb := strings.Builder{}
	writeColumn := func(rendered string, plain string, width int) {
		sb.WriteString(rendered)
		spacing := width - runewidth.StringWidth(plain) + 1
		if spacing < 1 {
			spacing = 1
		}
		sb.WriteString(strings.Repeat(" ", spacing))
	}

	writeColumn("Folder", "Folder", folderColumnWidth)
	writeColumn("Profile Name", "Profile Name", nameColumnWidth)
	writeColumn("Color", "Color", colorColumnWidth)
	sb.WriteString("Status\n")
	sb.WriteString(strings.Repeat("-", 80))
	sb.WriteString("\n")

	for _, profile := range profiles {
		displayName := internal.ResolveDisplayName(profile, names)
		colorRendered, colorPlain := colorCell(profile.PreferencesPath())
		themeID, err := internal.ThemeID(profile.PreferencesPath())
		if err != nil {
			themeID = ""
		}

		writeColumn(profile.FolderName, profile.FolderName, folderColumnWidth)
		writeColumn(displayName, displayName, nameColumnWidth)
		writeColumn(colorRendered, colorPlain, colorColumnWidth)
		sb.WriteString(statusBadge(themeID))
		sb.WriteString("\n")
	}

	fmt.Print(sb.String())
	return nil
}

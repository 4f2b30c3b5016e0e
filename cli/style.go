package cli

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"

	"t0ast.cc/bravetint/internal"
)

var (
	errorPrefixStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warningPrefixStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	errorTextStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	statusCustomStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	statusRestrictedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	statusMutedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// PrintError writes an error message to stderr. Only the prefix is
// styled so multi-line messages keep their own layout.
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorPrefixStyle.Render("Error:"), message)
}

// PrintWarning writes a warning message to stderr.
func PrintWarning(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", warningPrefixStyle.Render("Warning:"), message)
}

// swatch renders a two-cell block in the given color. Terminals without
// color support show plain spaces, so callers pair it with the hex text.
func swatch(hexColor string) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(hexColor)).Render("  ")
}

// statusBadge classifies which theming mechanism a theme identifier
// belongs to.
func statusBadge(themeID string) string {
	switch themeID {
	case internal.AutogeneratedThemeID:
		return statusCustomStyle.Render("✓ custom")
	case internal.UserColorThemeID:
		return statusRestrictedStyle.Render("⚠ restricted")
	case "":
		return statusMutedStyle.Render("(none)")
	default:
		return statusMutedStyle.Render("extension")
	}
}

// colorCell renders a profile's current color. The second return is the
// unstyled text whose display width column layouts are computed from,
// since the rendered form may contain escape sequences.
func colorCell(prefsPath string) (string, string) {
	colorInt, isSet, err := internal.CurrentColor(prefsPath)
	if err != nil {
		plain := fmt.Sprintf("ERROR: %v", err)
		return errorTextStyle.Render(plain), plain
	}
	if !isSet {
		return statusMutedStyle.Render("(not set)"), "(not set)"
	}
	hexColor := internal.SignedIntToHex(colorInt)
	return fmt.Sprintf("%s %s", swatch(hexColor), hexColor), "   " + hexColor
}

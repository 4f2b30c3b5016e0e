package internal

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	uerror "t0ast.cc/bravetint/util/error"
)

// DetectDataDir returns the browser's default user data directory for
// the current platform.
func DetectDataDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", uerror.WithStackTrace(err)
		}
		return filepath.Join(home, "Library", "Application Support", "BraveSoftware", "Brave-Browser"), nil
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			return "", uerror.StackTracef("LOCALAPPDATA is not set")
		}
		return filepath.Join(localAppData, "BraveSoftware", "Brave-Browser", "User Data"), nil
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return "", uerror.WithStackTrace(err)
		}
		return filepath.Join(home, ".config", "BraveSoftware", "Brave-Browser"), nil
	}
}

// IsBrowserRunning reports whether a browser process shows up in the
// process list. The check is advisory.
func IsBrowserRunning(ctx context.Context) bool {
	switch runtime.GOOS {
	case "darwin":
		return pgrepMatches(ctx, "Brave Browser")
	case "windows":
		out, err := exec.CommandContext(ctx, "tasklist", "/FI", "IMAGENAME eq brave.exe").Output()
		if err != nil {
			return false
		}
		return strings.Contains(strings.ToLower(string(out)), "brave.exe")
	default:
		return pgrepMatches(ctx, "brave")
	}
}

func pgrepMatches(ctx context.Context, processName string) bool {
	// pgrep exits nonzero when nothing matches; treat a missing pgrep
	// the same way since the guard is advisory.
	return exec.CommandContext(ctx, "pgrep", "-x", processName).Run() == nil
}

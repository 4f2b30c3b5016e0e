package internal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"

	uio "t0ast.cc/bravetint/util/io"
)

type ApplyOptions struct {
	DryRun bool
	Backup bool
}

// ApplyColor writes colorInt into the profile's preference document and
// forces the autogenerated theme on. Returns the path of the backup
// taken before the write, if one was made.
func ApplyColor(profile Profile, colorInt int32, dataDir string, opts ApplyOptions) (backupPath string, err error) {
	prefsPath := profile.PreferencesPath()
	prefs, err := readPrefs(prefsPath)
	if err != nil {
		return "", err
	}

	theme := ensureMap(ensureMap(prefs, "autogenerated"), "theme")
	theme["color"] = colorInt
	extensionTheme := ensureMap(ensureMap(prefs, "extensions"), "theme")
	extensionTheme["id"] = AutogeneratedThemeID

	if opts.DryRun {
		return "", nil
	}
	if opts.Backup {
		// Best-effort: a failed copy must not block the write.
		if path, backupErr := BackupPreferences(prefsPath, dataDir); backupErr == nil {
			backupPath = path
		}
	}
	if err := writePrefs(prefsPath, prefs); err != nil {
		return backupPath, err
	}
	return backupPath, nil
}

// CurrentColor reads the autogenerated theme color. The second return
// distinguishes "no color set" from a failed read.
func CurrentColor(prefsPath string) (int32, bool, error) {
	prefs, err := readPrefs(prefsPath)
	if err != nil {
		return 0, false, err
	}
	raw, ok := lookupMap(prefs, "autogenerated", "theme")["color"].(float64)
	if !ok || raw < math.MinInt32 || raw > math.MaxInt32 {
		return 0, false, nil
	}
	return int32(raw), true, nil
}

func ThemeID(prefsPath string) (string, error) {
	prefs, err := readPrefs(prefsPath)
	if err != nil {
		return "", err
	}
	id, _ := lookupMap(prefs, "extensions", "theme")["id"].(string)
	return id, nil
}

func readPrefs(prefsPath string) (map[string]interface{}, error) {
	prefsBytes, err := os.ReadFile(prefsPath)
	if err != nil {
		return nil, err
	}
	var prefs map[string]interface{}
	if err := json.Unmarshal(prefsBytes, &prefs); err != nil {
		return nil, fmt.Errorf("Failed to parse %s: %w", prefsPath, err)
	}
	// A "null" document unmarshals into a nil map with no error.
	if prefs == nil {
		return nil, fmt.Errorf("Failed to parse %s: not a JSON object", prefsPath)
	}
	return prefs, nil
}

// writePrefs serializes the document the way the browser's own writer
// does: compact, no HTML escaping, no trailing newline.
func writePrefs(prefsPath string, prefs map[string]interface{}) error {
	buf := bytes.Buffer{}
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	if err := encoder.Encode(prefs); err != nil {
		return err
	}
	return os.WriteFile(prefsPath, bytes.TrimSuffix(buf.Bytes(), []byte("\n")), uio.FileModeURWGRWO)
}

// lookupMap walks nested objects, returning nil when any step is
// missing or not an object. Reads off the nil result are safe.
func lookupMap(parent map[string]interface{}, keys ...string) map[string]interface{} {
	current := parent
	for _, key := range keys {
		next, ok := current[key].(map[string]interface{})
		if !ok {
			return nil
		}
		current = next
	}
	return current
}

func ensureMap(parent map[string]interface{}, key string) map[string]interface{} {
	if child, ok := parent[key].(map[string]interface{}); ok {
		return child
	}
	child := map[string]interface{}{}
	parent[key] = child
	return child
}

package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	uerror "t0ast.cc/bravetint/util/error"
	uio "t0ast.cc/bravetint/util/io"
)

// ListProfiles returns the profile directories under dataDir in
// canonical order: "Default" first, numbered profiles ascending,
// everything else lexicographically last.
func ListProfiles(dataDir string) ([]Profile, error) {
	dirEntries, err := os.ReadDir(dataDir)
	if err != nil {
		return nil, uerror.WithStackTrace(err)
	}
	profiles := []Profile{}
	for _, dirEntry := range dirEntries {
		if !dirEntry.IsDir() {
			continue
		}
		if dirEntry.Name() == systemProfileFolder || dirEntry.Name() == guestProfileFolder {
			continue
		}
		profilePath := filepath.Join(dataDir, dirEntry.Name())
		hasPrefs, err := uio.FileExists(filepath.Join(profilePath, PreferencesFileName))
		if err != nil {
			return nil, uerror.WithStackTrace(err)
		}
		if !hasPrefs {
			continue
		}
		profiles = append(profiles, Profile{
			FolderName: dirEntry.Name(),
			Path:       profilePath,
		})
	}
	sortProfiles(profiles)
	return profiles, nil
}

type profileSortKey struct {
	class  int
	number int
	name   string
}

func sortKeyFor(folderName string) profileSortKey {
	if folderName == "Default" {
		return profileSortKey{class: 0}
	}
	if rest, ok := strings.CutPrefix(folderName, "Profile "); ok {
		if number, err := strconv.Atoi(rest); err == nil {
			return profileSortKey{class: 1, number: number}
		}
	}
	return profileSortKey{class: 2, name: folderName}
}

func (k profileSortKey) less(other profileSortKey) bool {
	if k.class != other.class {
		return k.class < other.class
	}
	if k.number != other.number {
		return k.number < other.number
	}
	return k.name < other.name
}

func sortProfiles(profiles []Profile) {
	sort.Slice(profiles, func(i, j int) bool {
		return sortKeyFor(profiles[i].FolderName).less(sortKeyFor(profiles[j].FolderName))
	})
}

type NameIndex map[string]string

// LoadNameIndex reads display names from the browser's shared state
// document. Callers treat any error as an empty index.
func LoadNameIndex(dataDir string) (NameIndex, error) {
	stateBytes, err := os.ReadFile(filepath.Join(dataDir, localStateFileName))
	if err != nil {
		return nil, err
	}
	var state map[string]interface{}
	if err := json.Unmarshal(stateBytes, &state); err != nil {
		return nil, fmt.Errorf("Failed to parse %s: %w", localStateFileName, err)
	}
	names := NameIndex{}
	for folderName, info := range lookupMap(state, "profile", "info_cache") {
		infoMap, ok := info.(map[string]interface{})
		if !ok {
			continue
		}
		name, _ := infoMap["name"].(string)
		names[folderName] = name
	}
	return names, nil
}

// ResolveDisplayName prefers the name index and falls back to the name
// in the profile's own preference document.
func ResolveDisplayName(profile Profile, names NameIndex) string {
	if name := names[profile.FolderName]; name != "" {
		return name
	}
	prefs, err := readPrefs(profile.PreferencesPath())
	if err != nil {
		return ""
	}
	name, _ := lookupMap(prefs, "profile")["name"].(string)
	return name
}

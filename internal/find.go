package internal

import (
	"slices"
	"strings"
)

// FindProfilesByName maps display-name queries onto profiles. Matching
// is case-insensitive; exact matches win over substring matches. The
// result follows query order without duplicates.
func FindProfilesByName(profiles []Profile, names NameIndex, queries []string) []Profile {
	displayNames := make([]string, len(profiles))
	byName := map[string]Profile{}
	for i, profile := range profiles {
		name := strings.ToLower(ResolveDisplayName(profile, names))
		displayNames[i] = name
		if name == "" {
			continue
		}
		if _, taken := byName[name]; !taken {
			byName[name] = profile
		}
	}

	matched := []Profile{}
	seen := map[string]bool{}
	accept := func(profile Profile) {
		if !seen[profile.FolderName] {
			seen[profile.FolderName] = true
			matched = append(matched, profile)
		}
	}
	for _, query := range queries {
		query := strings.ToLower(query)
		if profile, ok := byName[query]; ok {
			accept(profile)
			continue
		}
		for i, profile := range profiles {
			if displayNames[i] != "" && strings.Contains(displayNames[i], query) {
				accept(profile)
				break
			}
		}
	}
	return matched
}

// FilterByFolders restricts profiles to exact folder names. Folder
// names that match nothing come back in input order for reporting.
func FilterByFolders(profiles []Profile, folders []string) (matched []Profile, missing []string) {
	wanted := map[string]bool{}
	for _, folder := range folders {
		wanted[folder] = true
	}
	matched = []Profile{}
	missing = []string{}
	found := map[string]bool{}
	for _, profile := range profiles {
		if wanted[profile.FolderName] {
			matched = append(matched, profile)
			found[profile.FolderName] = true
		}
	}
	for _, folder := range folders {
		if !found[folder] && !slices.Contains(missing, folder) {
			missing = append(missing, folder)
		}
	}
	return matched, missing
}

package metadata

import (
	"os"

	ini "gopkg.in/ini.v1"
)

// LoadEntryPoints reads an entry_points.txt file, which uses config
// syntax: one section per entry point group, `name = target` items.
// Returns (nil, nil) when the file does not exist.
func LoadEntryPoints(path string) (*ini.File, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment: true,
	}, path)
}

// EntryPointGroups returns the group sections of an entry points file in
// source order, skipping the synthetic unnamed section.
func EntryPointGroups(file *ini.File) []*ini.Section {
	var groups []*ini.Section
	for _, sec := range file.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		groups = append(groups, sec)
	}
	return groups
}

package metadata

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// DefaultGroup names the unconditional install requirements in a
// requires.txt file; every other group is an optional extra.
const DefaultGroup = "default"

// RequirementGroups holds the parsed contents of a requires.txt file.
// The file format is line-oriented: `[name]` lines switch the current
// group and every other non-blank line is a requirement appended to it.
type RequirementGroups struct {
	groups map[string][]string
}

// ParseRequires parses a requires.txt stream. The default group is always
// materialized, even when the file opens with an extra section.
func ParseRequires(r io.Reader) (*RequirementGroups, error) {
	groups := map[string][]string{}
	current := DefaultGroup

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "[") {
			trimmed := strings.TrimSpace(line)
			current = strings.TrimSuffix(strings.TrimPrefix(trimmed, "["), "]")
		} else if strings.TrimSpace(line) != "" {
			groups[current] = append(groups[current], strings.TrimSpace(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading requires: %w", err)
	}

	if _, ok := groups[DefaultGroup]; !ok {
		groups[DefaultGroup] = nil
	}

	return &RequirementGroups{groups: groups}, nil
}

// LoadRequires parses the file at path. Returns (nil, nil) when the file
// does not exist: a missing requires.txt just means nothing to add.
func LoadRequires(path string) (*RequirementGroups, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()
	return ParseRequires(f)
}

// Default returns the unconditional install requirements.
func (r *RequirementGroups) Default() []string {
	return r.groups[DefaultGroup]
}

// Extras returns the names of the extra groups, sorted.
func (r *RequirementGroups) Extras() []string {
	var names []string
	for name := range r.groups {
		if name != DefaultGroup {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Get returns the requirements of the named group.
func (r *RequirementGroups) Get(name string) []string {
	return r.groups[name]
}

// HasExtras reports whether at least one extra group exists.
func (r *RequirementGroups) HasExtras() bool {
	return len(r.groups) > 1
}

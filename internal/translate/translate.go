// Package translate maps distribution metadata fields onto setup.cfg keys.
//
// Each field is serialized by a pure translator: absent inputs, empty
// lists and the legacy ["UNKNOWN"] sentinel all come out as "no value",
// so they never appear in the generated config.
package translate

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/astrofrog/generate-setup-cfg/internal/metadata"
)

// Translator serializes one metadata field. The boolean reports whether
// a value is present; absent fields are skipped by the merger.
type Translator func(dist *metadata.Distribution, projectDir string) (string, bool)

// Field binds a setup.cfg [metadata] key to its translator.
type Field struct {
	CfgKey    string
	Serialize Translator
}

// SerializeString passes a scalar through, treating the empty string as
// absent. The legacy sentinel "UNKNOWN" survives untouched, matching the
// historical behavior of the imperative tool.
func SerializeString(v string) (string, bool) {
	if v == "" {
		return "", false
	}
	return v, true
}

// SerializeList joins a list field. nil, empty, and exactly ["UNKNOWN"]
// all mean "no data". Multiline form prefixes a newline so the value
// renders as an indented block under its key; compact form joins with
// a comma and space.
func SerializeList(vals []string, multiline bool) (string, bool) {
	if len(vals) == 0 || (len(vals) == 1 && vals[0] == "UNKNOWN") {
		return "", false
	}
	if multiline {
		return "\n" + strings.Join(vals, "\n"), true
	}
	return strings.Join(vals, ", "), true
}

// SerializeFileRef resolves the long_description override: instead of
// copying the (often huge) description text into the config, it emits a
// `file:` reference to the first readme candidate that exists under dir.
func SerializeFileRef(dir string, candidates []string) (string, bool) {
	for _, name := range candidates {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return "file: " + name, true
		}
	}
	return "", false
}

func scalar(key string, get func(*metadata.Distribution) string) Field {
	return Field{CfgKey: key, Serialize: func(d *metadata.Distribution, _ string) (string, bool) {
		return SerializeString(get(d))
	}}
}

func list(key string, multiline bool, get func(*metadata.Distribution) []string) Field {
	return Field{CfgKey: key, Serialize: func(d *metadata.Distribution, _ string) (string, bool) {
		return SerializeList(get(d), multiline)
	}}
}

// Table returns the static field table in output order. Two bindings
// invert names on purpose: the metadata "summary" becomes the config
// "description", and the metadata "description" feeds "long_description"
// via the file-reference override.
func Table(readmeCandidates []string) []Field {
	return []Field{
		scalar("name", func(d *metadata.Distribution) string { return d.Name }),
		scalar("version", func(d *metadata.Distribution) string { return d.Version }),
		scalar("url", func(d *metadata.Distribution) string { return d.HomePage }),
		scalar("download_url", func(d *metadata.Distribution) string { return d.DownloadURL }),
		scalar("author", func(d *metadata.Distribution) string { return d.Author }),
		scalar("author_email", func(d *metadata.Distribution) string { return d.AuthorEmail }),
		scalar("maintainer", func(d *metadata.Distribution) string { return d.Maintainer }),
		scalar("maintainer_email", func(d *metadata.Distribution) string { return d.MaintainerEmail }),
		list("classifiers", true, func(d *metadata.Distribution) []string { return d.Classifiers }),
		scalar("license", func(d *metadata.Distribution) string { return d.License }),
		scalar("description", func(d *metadata.Distribution) string { return d.Summary }),
		{CfgKey: "long_description", Serialize: func(_ *metadata.Distribution, dir string) (string, bool) {
			return SerializeFileRef(dir, readmeCandidates)
		}},
		list("keywords", false, func(d *metadata.Distribution) []string {
			if d.Keywords == "" {
				return nil
			}
			return strings.Split(d.Keywords, ",")
		}),
		list("platforms", false, func(d *metadata.Distribution) []string { return d.Platforms }),
		list("provides", false, func(d *metadata.Distribution) []string { return d.Provides }),
		list("requires", false, func(d *metadata.Distribution) []string { return d.Requires }),
		list("obsoletes", false, func(d *metadata.Distribution) []string { return d.Obsoletes }),
	}
}

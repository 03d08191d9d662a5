package document

import (
	"os"
	"strings"

	ini "gopkg.in/ini.v1"

	"github.com/astrofrog/generate-setup-cfg/internal/metadata"
)

// Document is the setup.cfg being assembled. It wraps an ini file so that
// anything already present and not produced by this run survives verbatim.
type Document struct {
	file *ini.File
}

// FieldValue is one translated metadata field ready to be set.
type FieldValue struct {
	Key   string
	Value string
}

// Options carries everything the merge step writes besides the [metadata]
// fields. EntryPoints and Requirements are nil when the corresponding
// auxiliary file does not exist.
type Options struct {
	ZipSafe        bool
	RequiresPython string
	EntryPoints    *ini.File
	Requirements   *metadata.RequirementGroups
}

var loadOptions = ini.LoadOptions{
	AllowPythonMultilineValues: true,
	IgnoreInlineComment:        true,
}

// New returns an empty document.
func New() *Document {
	return &Document{file: ini.Empty(loadOptions)}
}

// Load reads an existing setup.cfg. A missing file yields an empty
// document, matching the behavior of starting a fresh configuration.
func Load(path string) (*Document, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(), nil
	}
	file, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, err
	}
	normalizeContinuations(file)
	return &Document{file: file}, nil
}

// normalizeContinuations strips the indentation from continuation lines
// after parsing, the way Python's configparser does on read. The ini
// parser keeps the leading tab of each continuation, so without this an
// untouched multiline value would gain one indent level per run.
func normalizeContinuations(file *ini.File) {
	for _, sec := range file.Sections() {
		for _, key := range sec.Keys() {
			value := key.Value()
			if !strings.Contains(value, "\n") {
				continue
			}
			lines := strings.Split(value, "\n")
			for i := 1; i < len(lines); i++ {
				lines[i] = strings.TrimLeft(lines[i], " \t")
			}
			key.SetValue(strings.Join(lines, "\n"))
		}
	}
}

// Merge applies the translated fields and derived options. Existing keys
// for the same names are overwritten; everything else is left alone.
func (d *Document) Merge(fields []FieldValue, opts Options) {
	meta := d.file.Section("metadata")
	options := d.file.Section("options")

	for _, f := range fields {
		meta.Key(f.Key).SetValue(f.Value)
	}

	options.Key("zip_safe").SetValue(pythonBool(opts.ZipSafe))
	options.Key("packages").SetValue("find:")
	options.Key("include_package_data").SetValue(pythonBool(true))
	if opts.RequiresPython != "" {
		options.Key("python_requires").SetValue(opts.RequiresPython)
	}

	if opts.EntryPoints != nil {
		entry := d.file.Section("options.entry_points")
		for _, group := range metadata.EntryPointGroups(opts.EntryPoints) {
			var lines []string
			for _, key := range group.Keys() {
				lines = append(lines, key.Name()+" = "+key.Value())
			}
			entry.Key(group.Name()).SetValue("\n" + strings.Join(lines, "\n"))
		}
	}

	if opts.Requirements != nil {
		// The default group is written even when empty; an empty block
		// is still a statement that there are no install requirements.
		options.Key("install_requires").SetValue("\n" + strings.Join(opts.Requirements.Default(), "\n"))

		if opts.Requirements.HasExtras() {
			extras := d.file.Section("options.extras_require")
			for _, name := range opts.Requirements.Extras() {
				// Historical quirk kept as-is: extras are joined with
				// "; " rather than the newline block install_requires
				// uses.
				extras.Key(name).SetValue(strings.Join(opts.Requirements.Get(name), "; "))
			}
		}
	}
}

// Section returns the named section, creating it if needed.
func (d *Document) Section(name string) *ini.Section {
	return d.file.Section(name)
}

// HasSection reports whether the named section exists.
func (d *Document) HasSection(name string) bool {
	_, err := d.file.GetSection(name)
	return err == nil
}

func pythonBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

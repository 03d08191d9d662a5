package document

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	ini "gopkg.in/ini.v1"
)

// Canonical section order for the output file. [metadata] leads,
// [options] follows, then the options.* sub-sections sorted by name;
// anything else keeps its original relative order at the end.
type sectionPriority int

const (
	prioMetadata sectionPriority = iota
	prioOptions
	prioOptionsChild
	prioOther
)

func priorityOf(name string) sectionPriority {
	switch {
	case name == "metadata":
		return prioMetadata
	case name == "options":
		return prioOptions
	case strings.HasPrefix(name, "options"):
		return prioOptionsChild
	default:
		return prioOther
	}
}

// orderedSections returns the document's sections in canonical order.
// Keys parsed before any section header land in the ini default section
// and are dropped: they have no representation in the configparser
// dialect, and Python rejects such input outright.
func (d *Document) orderedSections() []*ini.Section {
	var sections []*ini.Section
	for _, sec := range d.file.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		sections = append(sections, sec)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		pi, pj := priorityOf(sections[i].Name()), priorityOf(sections[j].Name())
		if pi != pj {
			return pi < pj
		}
		if pi == prioOptionsChild {
			return sections[i].Name() < sections[j].Name()
		}
		return false
	})

	return sections
}

// WriteTo serializes the document in the configparser dialect: embedded
// newlines become tab-indented continuation lines and each section is
// followed by a blank line. The ini library's own writer is not used
// because it quotes multiline values in a form setuptools cannot read.
func (d *Document) WriteTo(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, sec := range d.orderedSections() {
		if _, err := bw.WriteString("[" + sec.Name() + "]\n"); err != nil {
			return err
		}
		for _, key := range sec.Keys() {
			value := strings.ReplaceAll(key.Value(), "\n", "\n\t")
			if _, err := bw.WriteString(key.Name() + " = " + value + "\n"); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Save writes the document to path, replacing any existing file.
func (d *Document) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := d.WriteTo(f); err != nil {
		return err
	}
	return f.Sync()
}

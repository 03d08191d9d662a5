package metadata

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Distribution is a typed view of a PKG-INFO file, read in place from the
// project's egg-info directory ("develop install" introspection). Scalar
// fields are empty when the header is absent; list fields accumulate one
// element per repeated header. Legacy metadata may carry the literal
// sentinel "UNKNOWN" in any field.
type Distribution struct {
	Name            string
	Version         string
	HomePage        string
	DownloadURL     string
	Author          string
	AuthorEmail     string
	Maintainer      string
	MaintainerEmail string
	License         string
	Summary         string
	Description     string
	Keywords        string
	RequiresPython  string

	Classifiers []string
	Platforms   []string
	Provides    []string
	Requires    []string
	Obsoletes   []string
}

// ReadDistribution parses the PKG-INFO file inside eggInfoDir.
func ReadDistribution(eggInfoDir string) (*Distribution, error) {
	path := filepath.Join(eggInfoDir, "PKG-INFO")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading PKG-INFO: %w", err)
	}
	defer f.Close()
	return ParsePKGINFO(f)
}

// ParsePKGINFO parses a PKG-INFO header block.
//
// Headers may fold over multiple lines (continuations start with
// whitespace). Everything after the first blank line is the message body,
// which newer metadata versions use for the long description when no
// Description header was written.
func ParsePKGINFO(r io.Reader) (*Distribution, error) {
	dist := &Distribution{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		lastHeader string
		lastValue  strings.Builder
		inBody     bool
		body       strings.Builder
	)

	flush := func() {
		if lastHeader != "" {
			dist.setHeader(lastHeader, lastValue.String())
		}
		lastHeader = ""
		lastValue.Reset()
	}

	for scanner.Scan() {
		line := scanner.Text()

		if inBody {
			body.WriteString(line)
			body.WriteString("\n")
			continue
		}

		if line == "" {
			flush()
			inBody = true
			continue
		}

		if line[0] == ' ' || line[0] == '\t' {
			// Folded continuation of the previous header.
			if lastHeader != "" {
				lastValue.WriteString("\n")
				lastValue.WriteString(strings.TrimLeft(line, " \t"))
			}
			continue
		}

		flush()
		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		lastHeader = strings.ToLower(strings.TrimSpace(name))
		lastValue.WriteString(strings.TrimSpace(value))
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading PKG-INFO: %w", err)
	}

	if dist.Description == "" && body.Len() > 0 {
		dist.Description = strings.TrimRight(body.String(), "\n")
	}

	return dist, nil
}

func (d *Distribution) setHeader(name, value string) {
	switch name {
	case "name":
		d.Name = value
	case "version":
		d.Version = value
	case "home-page":
		d.HomePage = value
	case "download-url":
		d.DownloadURL = value
	case "author":
		d.Author = value
	case "author-email":
		d.AuthorEmail = value
	case "maintainer":
		d.Maintainer = value
	case "maintainer-email":
		d.MaintainerEmail = value
	case "license":
		d.License = value
	case "summary":
		d.Summary = value
	case "description":
		d.Description = value
	case "keywords":
		d.Keywords = value
	case "requires-python":
		d.RequiresPython = value
	case "classifier":
		d.Classifiers = append(d.Classifiers, value)
	case "platform":
		d.Platforms = append(d.Platforms, value)
	case "provides":
		d.Provides = append(d.Provides, value)
	case "requires":
		d.Requires = append(d.Requires, value)
	case "obsoletes":
		d.Obsoletes = append(d.Obsoletes, value)
	}
}

package translate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrofrog/generate-setup-cfg/internal/metadata"
)

func TestSerializeString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		present  bool
	}{
		{name: "empty is absent", input: "", expected: "", present: false},
		{name: "value passes through", input: "astroquery", expected: "astroquery", present: true},
		{name: "UNKNOWN sentinel passes through", input: "UNKNOWN", expected: "UNKNOWN", present: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SerializeString(tt.input)
			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSerializeList(t *testing.T) {
	tests := []struct {
		name      string
		input     []string
		multiline bool
		expected  string
		present   bool
	}{
		{name: "nil is absent", input: nil, present: false},
		{name: "empty is absent", input: []string{}, present: false},
		{name: "UNKNOWN sentinel is absent", input: []string{"UNKNOWN"}, present: false},
		{name: "compact join", input: []string{"a", "b", "c"}, expected: "a, b, c", present: true},
		{name: "multiline join", input: []string{"a", "b", "c"}, multiline: true, expected: "\na\nb\nc", present: true},
		{name: "single element compact", input: []string{"only"}, expected: "only", present: true},
		{name: "single element multiline", input: []string{"only"}, multiline: true, expected: "\nonly", present: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SerializeList(tt.input, tt.multiline)
			assert.Equal(t, tt.present, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSerializeList_MultilineRoundTrip(t *testing.T) {
	elems := []string{"a", "b", "c"}
	got, ok := SerializeList(elems, true)
	require.True(t, ok)

	stripped := strings.TrimPrefix(got, "\n")
	assert.Equal(t, elems, strings.Split(stripped, "\n"))
}

func TestSerializeFileRef(t *testing.T) {
	dir := t.TempDir()

	_, ok := SerializeFileRef(dir, []string{"README.rst"})
	assert.False(t, ok, "no readme present")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.rst"), []byte("docs"), 0644))

	got, ok := SerializeFileRef(dir, []string{"README.rst"})
	require.True(t, ok)
	assert.Equal(t, "file: README.rst", got)
}

func TestSerializeFileRef_CandidateOrder(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("docs"), 0644))

	got, ok := SerializeFileRef(dir, []string{"README.rst", "README.md"})
	require.True(t, ok)
	assert.Equal(t, "file: README.md", got)
}

func TestTable_KeysInOutputOrder(t *testing.T) {
	var keys []string
	for _, f := range Table([]string{"README.rst"}) {
		keys = append(keys, f.CfgKey)
	}

	assert.Equal(t, []string{
		"name", "version", "url", "download_url",
		"author", "author_email", "maintainer", "maintainer_email",
		"classifiers", "license", "description", "long_description",
		"keywords", "platforms", "provides", "requires", "obsoletes",
	}, keys)
}

func TestTable_NameInversions(t *testing.T) {
	dir := t.TempDir()
	dist := &metadata.Distribution{
		Summary:     "short text",
		Description: "long text that must not be copied",
	}

	fields := map[string]Field{}
	for _, f := range Table([]string{"README.rst"}) {
		fields[f.CfgKey] = f
	}

	got, ok := fields["description"].Serialize(dist, dir)
	require.True(t, ok)
	assert.Equal(t, "short text", got)

	// long_description ignores the metadata value entirely; with no
	// readme on disk it is absent.
	_, ok = fields["long_description"].Serialize(dist, dir)
	assert.False(t, ok)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.rst"), []byte("docs"), 0644))
	got, ok = fields["long_description"].Serialize(dist, dir)
	require.True(t, ok)
	assert.Equal(t, "file: README.rst", got)
}

func TestTable_KeywordsSplitOnComma(t *testing.T) {
	dir := t.TempDir()
	dist := &metadata.Distribution{Keywords: "astronomy,data access"}

	for _, f := range Table(nil) {
		if f.CfgKey != "keywords" {
			continue
		}
		got, ok := f.Serialize(dist, dir)
		require.True(t, ok)
		assert.Equal(t, "astronomy, data access", got)
		return
	}
	t.Fatal("keywords field missing from table")
}

func TestTable_ClassifiersMultiline(t *testing.T) {
	dir := t.TempDir()
	dist := &metadata.Distribution{
		Classifiers: []string{"Programming Language :: Python", "License :: OSI Approved"},
	}

	for _, f := range Table(nil) {
		if f.CfgKey != "classifiers" {
			continue
		}
		got, ok := f.Serialize(dist, dir)
		require.True(t, ok)
		assert.Equal(t, "\nProgramming Language :: Python\nLicense :: OSI Approved", got)
		return
	}
	t.Fatal("classifiers field missing from table")
}

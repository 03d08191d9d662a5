package metadata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequires(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		def       []string
		extras    []string
		hasExtras bool
	}{
		{
			name:    "default only",
			content: "astropy\nrequests\n",
			def:     []string{"astropy", "requests"},
		},
		{
			name:      "default then extra",
			content:   "a\n[extra1]\nb\n",
			def:       []string{"a"},
			extras:    []string{"extra1"},
			hasExtras: true,
		},
		{
			name:      "extras come back sorted",
			content:   "core\n[zeta]\nz1\n[alpha]\na1\na2\n",
			def:       []string{"core"},
			extras:    []string{"alpha", "zeta"},
			hasExtras: true,
		},
		{
			name:      "extra without default still materializes default",
			content:   "[docs]\nsphinx\n",
			def:       nil,
			extras:    []string{"docs"},
			hasExtras: true,
		},
		{
			name:    "blank lines ignored",
			content: "a\n\n\nb\n",
			def:     []string{"a", "b"},
		},
		{
			name:    "whitespace trimmed from requirements",
			content: "  a  \n\tb\n",
			def:     []string{"a", "b"},
		},
		{
			name:      "environment marker group names pass through",
			content:   "[extra:python_version<\"3\"]\nfutures\n",
			def:       nil,
			extras:    []string{"extra:python_version<\"3\""},
			hasExtras: true,
		},
		{
			name:    "empty file",
			content: "",
			def:     nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groups, err := ParseRequires(strings.NewReader(tt.content))
			require.NoError(t, err)

			assert.Equal(t, tt.def, groups.Default())
			assert.Equal(t, tt.hasExtras, groups.HasExtras())
			if tt.extras == nil {
				assert.Empty(t, groups.Extras())
			} else {
				assert.Equal(t, tt.extras, groups.Extras())
			}
		})
	}
}

func TestParseRequires_GroupContents(t *testing.T) {
	groups, err := ParseRequires(strings.NewReader("a\n[extra1]\nb\nc\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "c"}, groups.Get("extra1"))
	assert.Nil(t, groups.Get("missing"))
}

func TestLoadRequires_MissingFileIsNil(t *testing.T) {
	dir := t.TempDir()

	groups, err := LoadRequires(filepath.Join(dir, "requires.txt"))
	require.NoError(t, err)
	assert.Nil(t, groups)
}

func TestLoadRequires_ReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "requires.txt")
	require.NoError(t, os.WriteFile(path, []byte("astropy\n[all]\nextras\n"), 0644))

	groups, err := LoadRequires(path)
	require.NoError(t, err)
	require.NotNil(t, groups)
	assert.Equal(t, []string{"astropy"}, groups.Default())
	assert.Equal(t, []string{"all"}, groups.Extras())
}

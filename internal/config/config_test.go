package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astrofrog/generate-setup-cfg/pkg/setupcfg"
)

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `python: python3
setup_cfg: setup.generated.cfg
readme_candidates:
  - README.rst
  - README.md
skip_build: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "python3", cfg.Python)
	assert.Equal(t, "setup.generated.cfg", cfg.SetupCfg)
	assert.Equal(t, []string{"README.rst", "README.md"}, cfg.ReadmeCandidates)
	assert.True(t, cfg.SkipBuild)
}

func TestLoad_MinimalYAML(t *testing.T) {
	dir := t.TempDir()
	content := `python: python3
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "python3", cfg.Python)
	assert.Empty(t, cfg.SetupCfg)
	assert.False(t, cfg.SkipBuild)
}

func TestLoad_FileNotFound(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConfigNotFound))
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	content := "python: [unclosed\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.Error(t, err)
	assert.True(t, errors.Is(err, setupcfg.ErrInvalidConfig))
	assert.Nil(t, cfg)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &ToolConfig{}
	cfg.ApplyDefaults()

	assert.Equal(t, setupcfg.DefaultPython, cfg.Python)
	assert.Equal(t, setupcfg.SetupCfgName, cfg.SetupCfg)
	assert.Equal(t, []string{"README.rst"}, cfg.ReadmeCandidates)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &ToolConfig{
		Python:           "python3.12",
		SetupCfg:         "other.cfg",
		ReadmeCandidates: []string{"README.md"},
	}
	cfg.ApplyDefaults()

	assert.Equal(t, "python3.12", cfg.Python)
	assert.Equal(t, "other.cfg", cfg.SetupCfg)
	assert.Equal(t, []string{"README.md"}, cfg.ReadmeCandidates)
}

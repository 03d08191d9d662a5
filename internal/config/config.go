package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/astrofrog/generate-setup-cfg/pkg/setupcfg"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ToolConfig is the optional per-project configuration for the converter.
// Everything has a sensible default; the file exists for projects with an
// unusual interpreter, a renamed config file or a non-RST readme.
type ToolConfig struct {
	// Python is the interpreter used to run the setup script.
	Python string `yaml:"python,omitempty"`
	// SetupCfg is the name of the declarative config file to merge into.
	SetupCfg string `yaml:"setup_cfg,omitempty"`
	// ReadmeCandidates are checked in order for the long_description
	// file reference.
	ReadmeCandidates []string `yaml:"readme_candidates,omitempty"`
	// SkipBuild disables the egg_info subprocess run and reuses whatever
	// metadata directory is already present.
	SkipBuild bool `yaml:"skip_build,omitempty"`
}

const ConfigFileName = "setupcfg-gen.yaml"

// Load reads the tool config from sourcePath. Returns ErrConfigNotFound
// when the file does not exist.
func Load(sourcePath string) (*ToolConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ToolConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", setupcfg.ErrInvalidConfig, err)
	}
	return &cfg, nil
}

// ApplyDefaults fills in unset fields.
func (c *ToolConfig) ApplyDefaults() {
	if c.Python == "" {
		c.Python = setupcfg.DefaultPython
	}
	if c.SetupCfg == "" {
		c.SetupCfg = setupcfg.SetupCfgName
	}
	if len(c.ReadmeCandidates) == 0 {
		c.ReadmeCandidates = []string{"README.rst"}
	}
}

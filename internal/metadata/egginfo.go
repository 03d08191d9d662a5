package metadata

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/astrofrog/generate-setup-cfg/pkg/setupcfg"
)

// RunEggInfo invokes `<python> setup.py egg_info` in dir, with the
// subprocess output passed through to the console. A non-zero exit is
// logged but not fatal here: if the build script failed to produce the
// metadata directory, LocateEggInfo reports that.
func RunEggInfo(ctx context.Context, logger setupcfg.Logger, python, dir string) error {
	cmd := exec.CommandContext(ctx, python, setupcfg.SetupScriptName, "egg_info")
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	logger.Verbose("running %s %s egg_info", python, setupcfg.SetupScriptName)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			logger.Verbose("egg_info exited with status %d", exitErr.ExitCode())
			return nil
		}
		return fmt.Errorf("running %s: %w", setupcfg.SetupScriptName, err)
	}
	return nil
}

// LocateEggInfo finds the single egg-info metadata directory in dir.
// Zero or multiple candidates both fail with setupcfg.ErrEggInfoCount,
// since the translation target is then missing or ambiguous.
func LocateEggInfo(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, setupcfg.EggInfoGlob))
	if err != nil {
		return "", err
	}
	if len(matches) != 1 {
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = filepath.Base(m)
		}
		return "", fmt.Errorf("%w, got %v", setupcfg.ErrEggInfoCount, names)
	}
	return matches[0], nil
}

// ZipSafe reports whether the package is zip-safe: true unless the
// egg-info directory contains the `not-zip-safe` marker file.
func ZipSafe(eggInfoDir string) bool {
	_, err := os.Stat(filepath.Join(eggInfoDir, "not-zip-safe"))
	return err != nil
}

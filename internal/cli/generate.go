package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/astrofrog/generate-setup-cfg/internal/config"
	"github.com/astrofrog/generate-setup-cfg/internal/document"
	"github.com/astrofrog/generate-setup-cfg/internal/logging"
	"github.com/astrofrog/generate-setup-cfg/internal/metadata"
	"github.com/astrofrog/generate-setup-cfg/internal/translate"
	"github.com/astrofrog/generate-setup-cfg/internal/tui"
	"github.com/astrofrog/generate-setup-cfg/internal/ui"
	"github.com/astrofrog/generate-setup-cfg/pkg/setupcfg"
)

var generateFlags struct {
	yes       bool
	skipBuild bool
	python    string
}

func init() {
	rootCmd.Flags().BoolVarP(&generateFlags.yes, "yes", "y", false, "Rewrite an existing setup.cfg without prompting")
	rootCmd.Flags().BoolVar(&generateFlags.skipBuild, "skip-build", false, "Do not run egg_info; reuse the existing metadata directory")
	rootCmd.Flags().StringVar(&generateFlags.python, "python", "", "Interpreter used to run setup.py (default: python)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	verbose := getVerboseFlag(cmd)
	logger := logging.NewConsoleLogger(verbose)

	// A project .env reaches the egg_info subprocess through our own
	// environment.
	_ = godotenv.Load(filepath.Join(dir, ".env"))

	cfg, err := loadToolConfig(dir, logger)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("python") {
		cfg.Python = generateFlags.python
	}
	skipBuild := generateFlags.skipBuild || cfg.SkipBuild

	cfgPath := filepath.Join(dir, cfg.SetupCfg)
	if err := confirmRewrite(cmd.Context(), cfgPath, verbose); err != nil {
		return err
	}

	if skipBuild {
		logger.Verbose("skipping egg_info run")
	} else if err := metadata.RunEggInfo(cmd.Context(), logger, cfg.Python, dir); err != nil {
		return err
	}

	eggInfoDir, err := metadata.LocateEggInfo(dir)
	if err != nil {
		logger.Error("%v", err)
		return err
	}
	logger.Verbose("using metadata from %s", eggInfoDir)

	dist, err := metadata.ReadDistribution(eggInfoDir)
	if err != nil {
		return err
	}

	var fields []document.FieldValue
	for _, field := range translate.Table(cfg.ReadmeCandidates) {
		value, ok := field.Serialize(dist, dir)
		if !ok {
			logger.Verbose("skipping %s: no value", field.CfgKey)
			continue
		}
		fields = append(fields, document.FieldValue{Key: field.CfgKey, Value: value})
	}

	entryPoints, err := metadata.LoadEntryPoints(filepath.Join(eggInfoDir, "entry_points.txt"))
	if err != nil {
		return fmt.Errorf("reading entry points: %w", err)
	}
	requirements, err := metadata.LoadRequires(filepath.Join(eggInfoDir, "requires.txt"))
	if err != nil {
		return fmt.Errorf("reading requirements: %w", err)
	}

	doc, err := document.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", cfg.SetupCfg, err)
	}

	doc.Merge(fields, document.Options{
		ZipSafe:        metadata.ZipSafe(eggInfoDir),
		RequiresPython: dist.RequiresPython,
		EntryPoints:    entryPoints,
		Requirements:   requirements,
	})

	if err := doc.Save(cfgPath); err != nil {
		return fmt.Errorf("writing %s: %w", cfg.SetupCfg, err)
	}

	fmt.Fprintf(os.Stderr, "%s wrote %s (%d metadata fields)\n",
		tui.SuccessStyle.Render("✓"), cfgPath, len(fields))
	return nil
}

// loadToolConfig reads setupcfg-gen.yaml when present and fills defaults.
func loadToolConfig(dir string, logger setupcfg.Logger) (*config.ToolConfig, error) {
	cfg, err := config.Load(dir)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			cfg = &config.ToolConfig{}
		} else {
			return nil, fmt.Errorf("loading %s: %w", config.ConfigFileName, err)
		}
	} else {
		logger.Verbose("loaded %s", config.ConfigFileName)
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// confirmRewrite asks before rewriting an existing setup.cfg. Scripted
// runs (no terminal, CI) and --yes proceed without a prompt; a merge
// preserves unknown content, so silence is safe there.
func confirmRewrite(ctx context.Context, cfgPath string, verbose bool) error {
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		return nil
	}

	var approver setupcfg.Approver
	if generateFlags.yes || !tui.IsInteractive() {
		approver = ui.NewForcedApprover(verbose)
	} else {
		approver = ui.NewInteractiveApprover(verbose)
	}

	approved, err := approver.RequestApproval(ctx, cfgPath)
	if err != nil {
		return err
	}
	if !approved {
		return setupcfg.ErrApprovalDenied
	}
	return nil
}

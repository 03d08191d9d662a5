package setupcfg

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Conversion completed successfully
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid configuration or ambiguous egg-info state
	ExitApprovalDenied = 12 // User denied overwrite approval
)

const (
	// SetupCfgName is the default name of the declarative config file
	// that the tool reads, merges into and rewrites.
	SetupCfgName = "setup.cfg"

	// SetupScriptName is the legacy build script that is invoked to
	// regenerate the egg-info metadata directory.
	SetupScriptName = "setup.py"

	// EggInfoGlob matches metadata directories produced by the egg_info
	// command. Exactly one match is required for a conversion to proceed.
	EggInfoGlob = "*.egg-info"

	// DefaultPython is the interpreter used to run the setup script when
	// neither the config file nor the --python flag says otherwise.
	DefaultPython = "python"
)

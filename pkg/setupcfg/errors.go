package setupcfg

import "errors"

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := runConversion(ctx, opts)
//	if errors.Is(err, setupcfg.ErrApprovalDenied) {
//	    // Handle user declining the overwrite
//	}
var (
	// ErrInvalidConfig indicates the tool configuration file is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEggInfoCount indicates that zero or more than one egg-info
	// metadata directory was found, so the conversion target is
	// ambiguous or missing.
	ErrEggInfoCount = errors.New("expected exactly one egg-info directory")

	// ErrApprovalDenied indicates the user denied approval to overwrite
	// an existing setup.cfg.
	ErrApprovalDenied = errors.New("approval denied")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrEggInfoCount):
		return ExitConfigError
	case errors.Is(err, ErrApprovalDenied):
		return ExitApprovalDenied
	}

	return ExitGeneralError
}

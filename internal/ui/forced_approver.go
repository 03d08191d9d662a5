package ui

import (
	"context"
	"fmt"
	"os"

	"github.com/astrofrog/generate-setup-cfg/internal/tui"
	"github.com/astrofrog/generate-setup-cfg/pkg/setupcfg"
)

// ForcedApprover implements the Approver interface for non-interactive
// approval. It is used when --yes is passed or when no terminal is attached
// (CI, piped input), where prompting would hang the run.
type ForcedApprover struct {
	verbose bool
}

// NewForcedApprover creates a new ForcedApprover.
func NewForcedApprover(verbose bool) setupcfg.Approver {
	return &ForcedApprover{verbose: verbose}
}

// RequestApproval approves immediately after noting the rewrite.
func (a *ForcedApprover) RequestApproval(ctx context.Context, path string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if a.verbose {
		fmt.Fprintf(os.Stderr, "%s rewriting '%s' without prompting\n", tui.MutedStyle.Render("[VERBOSE]"), path)
	}
	return true, nil
}

// Verify ForcedApprover implements the Approver interface at compile time
var _ setupcfg.Approver = (*ForcedApprover)(nil)

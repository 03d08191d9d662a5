package setupcfg

import "context"

// Approver handles user interaction for approval workflows, in particular
// confirming the rewrite of an existing setup.cfg.
//
// Implementations:
//   - ForcedApprover: approves immediately (--yes, non-interactive runs)
//   - InteractiveApprover: prompts the user for confirmation
type Approver interface {
	// RequestApproval asks for confirmation before rewriting the file at path.
	//
	// Returns:
	//   - bool: true if approved, false if denied
	//   - error: any error that occurred during the approval process
	RequestApproval(ctx context.Context, path string) (bool, error)
}

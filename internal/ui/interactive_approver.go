package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/astrofrog/generate-setup-cfg/internal/tui"
	"github.com/astrofrog/generate-setup-cfg/pkg/setupcfg"
)

// InteractiveApprover implements the Approver interface for console-based
// interactive confirmation. It asks the user before an existing setup.cfg
// is merged into and rewritten.
type InteractiveApprover struct {
	verbose bool
}

// NewInteractiveApprover creates a new InteractiveApprover.
func NewInteractiveApprover(verbose bool) setupcfg.Approver {
	return &InteractiveApprover{verbose: verbose}
}

// RequestApproval prompts the user to confirm the rewrite with y/yes.
func (a *InteractiveApprover) RequestApproval(ctx context.Context, path string) (bool, error) {
	fmt.Fprintf(os.Stderr, "\n%s '%s' already exists.\n", tui.WarningStyle.Render("Note:"), path)
	fmt.Fprintln(os.Stderr, "Known fields will be updated from the generated metadata; everything else is kept.")
	fmt.Fprintf(os.Stderr, "\nRewrite '%s'? [y/N]: ", path)

	// Read user input with context cancellation support
	inputChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		reader := bufio.NewReader(os.Stdin)
		input, err := reader.ReadString('\n')
		if err != nil {
			errChan <- err
			return
		}
		inputChan <- strings.TrimSpace(input)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-errChan:
		return false, fmt.Errorf("failed to read input: %w", err)
	case input := <-inputChan:
		switch strings.ToLower(input) {
		case "y", "yes":
			fmt.Fprintln(os.Stderr, tui.SuccessStyle.Render("✓")+" Confirmed. Rewriting...")
			return true, nil
		}
		fmt.Fprintln(os.Stderr, "Operation cancelled.")
		return false, nil
	}
}

// Verify InteractiveApprover implements the Approver interface at compile time
var _ setupcfg.Approver = (*InteractiveApprover)(nil)

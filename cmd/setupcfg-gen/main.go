package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/astrofrog/generate-setup-cfg/internal/cli"
	"github.com/astrofrog/generate-setup-cfg/pkg/setupcfg"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(setupcfg.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(setupcfg.ExitCodeForError(err))
	}
}

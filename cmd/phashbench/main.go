package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"phashbench/internal/errs"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCommand()
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			reportError(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// reportError prints the single failure line: the error kind, then the
// message naming the offending input.
func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "error (%s): %v\n", errs.Kind(err), err)
}

// Command xorsat counts the assignments satisfying a set of XOR scripts and
// prints one of them.
//
// Usage:
//
//	xorsat [flags] FILE...
//
// Each FILE (or - for standard input) holds a header line "N M" followed by
// one line per variable listing the scripts that reference it. For every
// file the output is "0" when no assignment exists, otherwise the number of
// solutions and the first one as a bitstring, on two lines.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gitrdm/gokanxor/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(cfg).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

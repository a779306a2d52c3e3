// SPDX-License-Identifier: MIT

// Command ising-anneal runs a configured annealing ensemble and prints the
// result as JSON.
//
//	ising-anneal run --config run.yaml
//	ising-anneal exact --config small.yaml --beta 0.5
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

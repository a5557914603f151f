// Command layoutdemo runs a list view, a tree and a flexible toolbar on the
// layout engine, either in a GLFW window or headless.
//
// Usage:
//
//	go run ./cmd/layoutdemo window
//	go run ./cmd/layoutdemo window --screenshot list.jpg
//	go run ./cmd/layoutdemo dump --items 500 --click 3
//	go run ./cmd/layoutdemo style > mystyle.toml
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

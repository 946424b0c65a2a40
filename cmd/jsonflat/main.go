// Package main is the entry point for the jsonflat CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reoring/jsonflat/cmd/jsonflat/internal"
)

func main() {
	if err := internal.Run(context.Background(), internal.OSEnv()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

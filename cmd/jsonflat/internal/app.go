// Package internal contains the main application logic for the CLI.
package internal

import (
	"context"
	"io"
	"os"

	"github.com/reoring/jsonflat/internal/commands"
)

// Env carries the OS dependencies of the CLI.
type Env struct {
	Args   []string
	Stdin  io.Reader
	Piped  bool
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
}

// OSEnv returns the Env of the running process.
func OSEnv() Env {
	return Env{
		Args:   os.Args[1:],
		Stdin:  os.Stdin,
		Piped:  stdinPiped(),
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}
}

// stdinPiped reports whether stdin is a pipe or file rather than a terminal.
func stdinPiped() bool {
	fi, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}

// Run is the main application logic, extracted for testability.
func Run(ctx context.Context, env Env) error {
	rootCmd := commands.NewRootCmd(commands.Streams{
		In:      env.Stdin,
		InPiped: env.Piped,
		Out:     env.Stdout,
		Err:     env.Stderr,
	}, env.Getenv)
	rootCmd.SetArgs(env.Args)
	return rootCmd.ExecuteContext(ctx)
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// rootCommand builds the command tree; tests swap it.
var rootCommand = newRootCommand

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(stderr, "\n\nerror: %v\n\n%s", r, debug.Stack())
			code = 1
		}
	}()

	cmd := rootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, "\n\ninterrupted by user")
			return 1
		}
		fmt.Fprintln(stderr, formatError(err))
		return 1
	}
	return 0
}

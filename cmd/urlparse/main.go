package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	// Entry point: create a root context and run the application.
	ctx := context.Background()

	// Pass in the command line arguments and the standard streams to the run
	// function. This allows the run function to be tested in isolation
	// without relying on the process environment.
	if err := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

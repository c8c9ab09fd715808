// Command profilebox prints a remote user profile as a box in the terminal.
package main

import (
	"context"
	"io"
	"os"

	"github.com/fsmiamoto/profilebox/internal/cli"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts := cli.DefaultOptions()
	opts.Stdout = stdout
	opts.Stderr = stderr
	return cli.Main(context.Background(), args, opts)
}

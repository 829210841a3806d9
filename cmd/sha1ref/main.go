// Command sha1ref prints SHA-1 digests of files, standard input or literal strings.
package main

import (
	"fmt"
	"os"

	"github.com/codahale/sha1ref/cmd/sha1ref/cli"
)

func main() {
	if err := cli.New().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "sha1ref: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}

// Command runa is the command-line front end for the toolchain
// implemented by internal/lexer, internal/parser, internal/bytecode,
// internal/locale, and internal/runa. It is a thin shell: the only
// component that touches the filesystem, stdout/stderr, and the
// process exit code.
package main

import (
	"fmt"
	"os"

	"github.com/gubiczam/runa/cmd/runa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

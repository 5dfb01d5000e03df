package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags; the zero value identifies a
	// development build.
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "runa",
	Short: "runa is a locale-pluggable toy scripting toolchain",
	Long: `runa lexes, parses, compiles, and runs programs written in a small
dynamically-typed language whose surface keywords come from a locale
pack (see runa locale list). The same program can be written with
English or Hungarian keywords and compiles to identical bytecode.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("runa version %s (%s)\n", Version, GitCommit))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

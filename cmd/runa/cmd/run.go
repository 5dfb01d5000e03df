package cmd

import (
	"fmt"
	"os"

	"github.com/gubiczam/runa/internal/runa"
	"github.com/spf13/cobra"
)

var entryFlag string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Compile and execute a program, printing its return value",
	Long: `Run lexes, parses, compiles, and executes a program end to end.

Examples:
  runa run --file examples/fib.runa
  runa run --locale hu --file examples/fib.hu.runa
  runa run                          # runs the built-in demo snippet`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&localeFlag, "locale", "en", "locale pack to use (built-in: en, hu; or a path to a .yaml/.json pack)")
	runCmd.Flags().StringVar(&fileFlag, "file", "", "source file to read (default: a locale-specific demo snippet)")
	runCmd.Flags().StringVar(&entryFlag, "entry", "", "entry function to call (default: the locale pack's preferred entries, then \"main\")")
}

func runRun(_ *cobra.Command, _ []string) error {
	pack, err := loadPack(localeFlag)
	if err != nil {
		return err
	}
	source, filename, err := loadSource(fileFlag, localeFlag)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "runa: running %s under locale %q\n", filename, pack.Tag)
	}

	program, err := runa.Compile(source, pack)
	if err != nil {
		return err
	}

	entry := entryFlag
	if entry == "" {
		for _, candidate := range pack.EntryCandidates() {
			if _, ok := program.Lookup(candidate); ok {
				entry = candidate
				break
			}
		}
		if entry == "" {
			entry = "main"
		}
	}

	result, err := runa.Run(program, entry, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("=> %s\n", result.Render())
	return nil
}

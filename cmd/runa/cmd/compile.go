package cmd

import (
	"fmt"

	"github.com/gubiczam/runa/internal/bytecode"
	"github.com/gubiczam/runa/internal/runa"
	"github.com/spf13/cobra"
)

var disasmFlag bool

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile a program to bytecode and dump it",
	RunE:  runCompile,
}

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.Flags().StringVar(&localeFlag, "locale", "en", "locale pack to use (built-in: en, hu; or a path to a .yaml/.json pack)")
	compileCmd.Flags().StringVar(&fileFlag, "file", "", "source file to read (default: a locale-specific demo snippet)")
	compileCmd.Flags().BoolVar(&disasmFlag, "disasm", true, "render the bytecode with the disassembler; with --disasm=false print one summary line per function")
}

func runCompile(_ *cobra.Command, _ []string) error {
	pack, err := loadPack(localeFlag)
	if err != nil {
		return err
	}
	source, _, err := loadSource(fileFlag, localeFlag)
	if err != nil {
		return err
	}

	program, err := runa.Compile(source, pack)
	if err != nil {
		return err
	}

	if disasmFlag {
		fmt.Print(bytecode.Disassemble(program))
		return nil
	}
	for _, fn := range program.Functions {
		fmt.Printf("%s/%d locals=%d instructions=%d\n", fn.Name, fn.Arity, fn.LocalCount, len(fn.Chunk.Code))
	}
	return nil
}

package cmd

import (
	"fmt"

	"github.com/gubiczam/runa/internal/lexer"
	"github.com/gubiczam/runa/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a program and dump its AST",
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().StringVar(&localeFlag, "locale", "en", "locale pack to use (built-in: en, hu; or a path to a .yaml/.json pack)")
	parseCmd.Flags().StringVar(&fileFlag, "file", "", "source file to read (default: a locale-specific demo snippet)")
}

func runParse(_ *cobra.Command, _ []string) error {
	pack, err := loadPack(localeFlag)
	if err != nil {
		return err
	}
	source, _, err := loadSource(fileFlag, localeFlag)
	if err != nil {
		return err
	}

	tokens, err := lexer.Lex(source, pack.Keywords)
	if err != nil {
		return err
	}
	prog, err := parser.Parse(tokens, source)
	if err != nil {
		return err
	}
	fmt.Print(prog.Dump())
	return nil
}

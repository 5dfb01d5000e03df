package cmd

import (
	"fmt"

	"github.com/gubiczam/runa/internal/lexer"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex",
	Short: "Tokenize a program and dump its token sequence",
	RunE:  runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
	lexCmd.Flags().StringVar(&localeFlag, "locale", "en", "locale pack to use (built-in: en, hu; or a path to a .yaml/.json pack)")
	lexCmd.Flags().StringVar(&fileFlag, "file", "", "source file to read (default: a locale-specific demo snippet)")
}

func runLex(_ *cobra.Command, _ []string) error {
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
	for _, tok := range tokens {
		fmt.Printf("%-5s %s\n", tok.Pos, tok)
	}
	return nil
}

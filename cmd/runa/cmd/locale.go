package cmd

import (
	"fmt"

	"github.com/gubiczam/runa/internal/locale"
	"github.com/spf13/cobra"
)

var localeCmd = &cobra.Command{
	Use:   "locale",
	Short: "Inspect locale packs",
}

var localeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a locale pack's keyword table in collation order",
	RunE:  runLocaleList,
}

var localeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a locale pack as JSON",
	RunE:  runLocaleExport,
}

func init() {
	rootCmd.AddCommand(localeCmd)
	localeCmd.AddCommand(localeListCmd)
	localeCmd.AddCommand(localeExportCmd)

	localeListCmd.Flags().StringVar(&localeFlag, "locale", "en", "locale pack to list (built-in: en, hu; or a path to a .yaml/.json pack)")
	localeExportCmd.Flags().StringVar(&localeFlag, "locale", "en", "locale pack to export (built-in: en, hu; or a path to a .yaml/.json pack)")
}

func runLocaleList(_ *cobra.Command, _ []string) error {
	pack, err := loadPack(localeFlag)
	if err != nil {
		return err
	}
	fmt.Printf("locale %s (%d keywords, preferred entries %v)\n", pack.Tag, len(pack.Keywords), pack.EntryCandidates())
	for _, word := range pack.SortedWords() {
		fmt.Printf("  %-12s %s\n", word, pack.Keywords[word])
	}
	return nil
}

func runLocaleExport(_ *cobra.Command, _ []string) error {
	pack, err := loadPack(localeFlag)
	if err != nil {
		return err
	}
	doc, err := pack.ToJSON()
	if err != nil {
		return err
	}
	fmt.Println(doc)
	return nil
}

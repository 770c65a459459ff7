package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperdesk/internal/translate"
)

var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Translate the selected papers' titles and abstracts into Chinese",
	Long: `Translate runs one AI call per selected paper, in library order. The
batch stops at the first failure and nothing is saved in that case; the
library is written only after every selected paper has been translated.`,
	RunE: runTranslate,
}

func runTranslate(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	gateway, err := newGateway(cmd)
	if err != nil {
		return err
	}

	sel := selectionFromFlags(cmd, store)
	n, err := translate.Batch(cmd.Context(), gateway, store, sel, os.Stdout)
	if err != nil {
		return err
	}
	fmt.Printf("translated %d paper(s)\n", n)
	return nil
}

func init() {
	addSelectionFlags(translateCmd)
	rootCmd.AddCommand(translateCmd)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperdesk/internal/review"
)

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Generate an AI literature review over the selected papers",
	Long: `Review sends the selected papers' titles, authors, and abstracts to
the AI gateway in one call and prints the resulting review. The result
is display-only and is not stored.`,
	RunE: runReview,
}

func runReview(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	gateway, err := newGateway(cmd)
	if err != nil {
		return err
	}

	sel := selectionFromFlags(cmd, store)
	result, err := review.Run(cmd.Context(), gateway, store, sel, os.Stderr)
	if err != nil {
		return err
	}
	fmt.Println(result)
	return nil
}

func init() {
	addSelectionFlags(reviewCmd)
	rootCmd.AddCommand(reviewCmd)
}

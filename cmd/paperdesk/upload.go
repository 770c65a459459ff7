package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperdesk/internal/ingest"
)

var uploadCmd = &cobra.Command{
	Use:   "upload [files...]",
	Short: "Add papers to the library from PDF or Excel files",
	Long: `Upload processes files in the given order. PDFs are read page by page
and their metadata extracted by the AI gateway; Excel workbooks
contribute one paper per row of the first sheet. Files of any other
type are ignored. A failing file is reported and skipped; papers from
the remaining files are still added.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func runUpload(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}
	gateway, err := newGateway(cmd)
	if err != nil {
		return err
	}

	result, err := ingest.UploadBatch(cmd.Context(), gateway, store, args, os.Stdout)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed", result.Failed)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}

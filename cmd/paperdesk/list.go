package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperdesk/internal/library"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the papers in the library",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	filter, _ := cmd.Flags().GetString("filter")
	visible := library.Filter(store.List(), filter)

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(visible)
	}

	if len(visible) == 0 {
		fmt.Println("The library is empty. Upload files to add papers.")
		return nil
	}

	for _, p := range visible {
		fmt.Println(formatPaper(p))
		fmt.Printf("      %s  %s\n", strings.Join(p.Authors, ", "), p.Date)
		if p.TranslatedTitle != "" {
			fmt.Printf("      译: %s\n", p.TranslatedTitle)
		}
		if p.Notes != "" {
			fmt.Printf("      note: %s\n", p.Notes)
		}
	}

	fmt.Printf("\n%d/%d paper(s)\n", len(visible), store.Len())
	return nil
}

func init() {
	listCmd.Flags().String("filter", "", "substring filter over title, authors, and journal")
	listCmd.Flags().Bool("json", false, "output papers as JSON")

	rootCmd.AddCommand(listCmd)
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperdesk/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Full-text search over the library",
	Long: `Search matches the query against titles, authors, abstracts, notes,
and translations using the SQLite full-text index. The index is rebuilt
automatically when the library has changed since the last rebuild.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	ix, err := search.Open(dataDir(cmd))
	if err != nil {
		return err
	}
	defer ix.Close()

	ctx := cmd.Context()
	stale, err := ix.Stale(ctx, store.ModTime())
	if err != nil {
		return err
	}
	if stale {
		fmt.Fprintln(os.Stderr, "rebuilding index")
		if err := ix.Rebuild(ctx, store.List(), store.ModTime()); err != nil {
			return err
		}
	}

	limit, _ := cmd.Flags().GetInt("limit")
	results, err := ix.Search(ctx, strings.Join(args, " "), limit)
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}
	for i, r := range results {
		fmt.Printf("%d. %s  %s\n   %s\n", i+1, r.ID, r.Title, r.Snippet)
	}
	return nil
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Rebuild the full-text index from the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		ix, err := search.Open(dataDir(cmd))
		if err != nil {
			return err
		}
		defer ix.Close()

		if err := ix.Rebuild(cmd.Context(), store.List(), store.ModTime()); err != nil {
			return err
		}
		fmt.Printf("indexed %d paper(s)\n", store.Len())
		return nil
	},
}

func init() {
	searchCmd.Flags().Int("limit", 20, "maximum number of results")
	searchCmd.Flags().Bool("json", false, "output results as JSON")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(indexCmd)
}

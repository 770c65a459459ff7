package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperdesk/pkg/types"
)

var noteCmd = &cobra.Command{
	Use:   "note [id] [text...]",
	Short: "Set the note on a paper",
	Long: `Note replaces the note text of one paper. Only the notes field is
touched; all other metadata is left as-is. An empty text clears the note.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNote,
}

func runNote(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	text := strings.Join(args[1:], " ")
	return store.Update(args[0], func(p *types.Paper) {
		p.Notes = text
	})
}

func init() {
	rootCmd.AddCommand(noteCmd)
}

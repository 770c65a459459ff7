package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperdesk/internal/library"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a paper from the library",
	Long: `Delete removes one paper by id. The id is also retracted from the
current selection so batch operations cannot reference it afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	store, err := openStore(cmd)
	if err != nil {
		return err
	}

	session := library.NewSession(store)
	if err := session.Delete(args[0]); err != nil {
		return err
	}
	fmt.Printf("deleted %s\n", args[0])
	return nil
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

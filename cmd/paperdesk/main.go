// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paperdesk CLI.
package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paperdesk/internal/ai"
	"github.com/pdiddy/paperdesk/internal/library"
	"github.com/pdiddy/paperdesk/internal/secrets"
	"github.com/pdiddy/paperdesk/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the paperdesk CLI.
var rootCmd = &cobra.Command{
	Use:   "paperdesk",
	Short: "Personal library of academic papers with AI assistance",
	Long: `paperdesk keeps a local library of academic papers built from uploaded
PDF and Excel files. Papers can be annotated with notes, translated
(title and abstract into Chinese), and synthesized into an AI-generated
literature review.

The library is a plain JSON file under the data directory; a SQLite
full-text index over it backs the search command.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paperdesk.yaml or ~/.config/paperdesk/config.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory holding papers.json, settings.json, and index/ (default: ./library)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paperdesk")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paperdesk"))
		}
	}

	viper.SetDefault("data_dir", "library")
	viper.SetDefault("http_timeout", time.Duration(0))

	viper.SetEnvPrefix("PAPERDESK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// dataDir resolves the data directory: flag first, then config/env, then
// the default.
func dataDir(cmd *cobra.Command) string {
	if dir, _ := cmd.Flags().GetString("data-dir"); dir != "" {
		return dir
	}
	return viper.GetString("data_dir")
}

// openStore opens the library store under the resolved data directory.
func openStore(cmd *cobra.Command) (*library.Store, error) {
	return library.Open(dataDir(cmd))
}

// newGateway builds the AI gateway from the persisted settings blob,
// filling a missing key from .secrets/ai-api-key. Completeness is not
// checked here; the gateway rejects incomplete settings at call time.
func newGateway(cmd *cobra.Command) (*ai.Gateway, error) {
	settings, err := library.LoadSettings(dataDir(cmd))
	if err != nil {
		return nil, err
	}
	if settings.Key == "" {
		settings.Key = loadedSecrets[secrets.AIKeyFile]
	}

	// http_timeout of zero means no client-side deadline: a hung call
	// holds its batch until the transport gives up.
	var client *http.Client
	if timeout := viper.GetDuration("http_timeout"); timeout > 0 {
		client = &http.Client{Timeout: timeout}
	}
	return ai.NewGateway(settings, client), nil
}

// selectionFromFlags builds the batch selection shared by translate and
// review: explicit --id toggles, or --all over the papers visible under
// --filter.
func selectionFromFlags(cmd *cobra.Command, store *library.Store) *library.Selection {
	sel := library.NewSelection()

	ids, _ := cmd.Flags().GetStringArray("id")
	for _, id := range ids {
		sel.Toggle(id)
	}

	if all, _ := cmd.Flags().GetBool("all"); all {
		filter, _ := cmd.Flags().GetString("filter")
		visible := library.Filter(store.List(), filter)
		sel.SelectAll(library.IDs(visible))
	}

	return sel
}

func addSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringArray("id", nil, "paper id to select (repeatable)")
	cmd.Flags().Bool("all", false, "select all papers visible under --filter")
	cmd.Flags().String("filter", "", "substring filter over title, authors, and journal")
}

func formatPaper(p types.Paper) string {
	return fmt.Sprintf("%s  %s (%s)", p.ID, p.Title, p.Journal)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

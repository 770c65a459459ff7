package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/paperdesk/internal/library"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage the AI gateway connection settings",
	Long: `Settings manages the url/key/model bundle sent with every AI gateway
call. It is stored as its own JSON blob beside the library and is not
validated beyond a presence check at call time.`,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set one or more AI settings fields",
	RunE:  runSettingsSet,
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	dir := dataDir(cmd)
	settings, err := library.LoadSettings(dir)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("url") {
		settings.URL, _ = cmd.Flags().GetString("url")
	}
	if cmd.Flags().Changed("key") {
		settings.Key, _ = cmd.Flags().GetString("key")
	}
	if cmd.Flags().Changed("model") {
		settings.Model, _ = cmd.Flags().GetString("model")
	}

	return library.SaveSettings(dir, settings)
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the AI settings with the key masked",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := library.LoadSettings(dataDir(cmd))
		if err != nil {
			return err
		}
		fmt.Printf("url:   %s\nkey:   %s\nmodel: %s\n",
			settings.URL, maskKey(settings.Key), settings.Model)
		return nil
	},
}

// maskKey keeps the first four characters of a key and hides the rest.
func maskKey(key string) string {
	if key == "" {
		return "(unset)"
	}
	if len(key) <= 4 {
		return "****"
	}
	return key[:4] + "****"
}

func init() {
	settingsSetCmd.Flags().String("url", "", "base endpoint of an OpenAI-compatible API")
	settingsSetCmd.Flags().String("key", "", "bearer token for the endpoint")
	settingsSetCmd.Flags().String("model", "", "model identifier")

	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsShowCmd)
	rootCmd.AddCommand(settingsCmd)
}

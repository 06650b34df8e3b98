package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mcpdeck/mcpdeck/internal/config"
	"github.com/mcpdeck/mcpdeck/internal/errors"
	"github.com/mcpdeck/mcpdeck/internal/launch"
	"github.com/mcpdeck/mcpdeck/internal/paths"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mcpdeck configuration",
	Long: `Manage mcpdeck configuration stored in ~/.config/mcpdeck/config.yaml.

Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  mcpdeck config

  # Get the active profile
  mcpdeck config get profile

  # Point templates somewhere else
  mcpdeck config set templates_dir ~/dotfiles/mcp-templates`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !viper.IsSet(args[0]) {
			return errors.NewUserError(
				errors.Newf("unknown config key: %s", args[0]),
				"run 'mcpdeck config' to list known keys")
		}
		fmt.Fprintln(cmd.OutOrStdout(), viper.Get(args[0]))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value and persist it",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Set(args[0], args[1]); err != nil {
			return err
		}
		okStyle.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration values",
	RunE:  runConfigList,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the config file in $EDITOR",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path := paths.ConfigPath()
		if _, err := os.Stat(path); err != nil {
			// Materialize current settings so there is something to edit.
			if err := config.Save(); err != nil {
				return err
			}
		}

		editor := os.Getenv("EDITOR")
		if editor == "" {
			editor = os.Getenv("VISUAL")
		}
		if editor == "" {
			editor = "vi"
		}
		return launch.Run(editor + " " + path)
	},
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	settings := viper.AllSettings()
	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := cmd.OutOrStdout()
	for _, key := range keys {
		value, err := yaml.Marshal(settings[key])
		if err != nil {
			return errors.Wrapf(err, "rendering %s", key)
		}
		fmt.Fprintf(w, "%s: %s", key, value)
	}
	return nil
}

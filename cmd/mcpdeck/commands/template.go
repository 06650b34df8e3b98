package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	templateCmd.AddCommand(templateListCmd)
	templateCmd.AddCommand(templateShowCmd)
	rootCmd.AddCommand(templateCmd)
}

var templateCmd = &cobra.Command{
	Use:     "template",
	Aliases: []string{"tpl"},
	Short:   "Inspect configuration templates",
	Long: `Inspect the template files mcpdeck deploys from.

Templates live in the templates directory (mcpdeck config get templates_dir)
as plain JSON or TOML files, one per application.`,
	RunE: runTemplateList,
}

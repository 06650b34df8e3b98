package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpdeck/mcpdeck/internal/deploy"
	"github.com/mcpdeck/mcpdeck/pkg/fileutil"
)

var renderOutput string

func init() {
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "",
		"write to a file instead of stdout")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <template>",
	Short: "Render a template with its enabled servers",
	Long: `Render a template to its final deployable form using the current
selection, without touching any destination. Useful for previewing exactly
what a deploy would write.`,
	Example: `  # Preview on stdout
  mcpdeck render codex_config.toml

  # Write to a file
  mcpdeck render codex_config.toml -o /tmp/config.toml`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	tpl, err := a.findTemplate(args[0])
	if err != nil {
		return err
	}

	selected, err := a.store.Selected(tpl)
	if err != nil {
		return err
	}

	content, err := tpl.Render(selected)
	if err != nil {
		return err
	}

	if renderOutput != "" {
		return fileutil.AtomicWriteFile(renderOutput, []byte(content), deploy.DefaultFilePerm)
	}
	fmt.Fprint(cmd.OutOrStdout(), content)
	return nil
}

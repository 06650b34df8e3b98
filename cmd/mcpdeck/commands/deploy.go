package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcpdeck/mcpdeck/internal/deploy"
	"github.com/mcpdeck/mcpdeck/internal/errors"
)

var deployServers []string

func init() {
	deployCmd.Flags().StringSliceVar(&deployServers, "servers", nil,
		"deploy these servers instead of the stored selection")
	rootCmd.AddCommand(deployCmd)
}

var deployCmd = &cobra.Command{
	Use:   "deploy <template>",
	Short: "Render and write a template to its destinations",
	Long: `Render the template with its enabled servers and write the result to
every destination the active location profile maps it to, creating missing
parent directories. Destination files are overwritten in full.

Destinations fail independently: one unwritable path does not stop the
others. A staging copy is always written to the output directory first.`,
	Example: `  # Deploy with the stored selection
  mcpdeck deploy codex_config.toml

  # Deploy to the project profile
  mcpdeck deploy codex_config.toml --profile project

  # One-off server set, selection left untouched
  mcpdeck deploy codex_config.toml --servers github,fetch`,
	Args: cobra.ExactArgs(1),
	RunE: runDeploy,
}

func runDeploy(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	tpl, err := a.findTemplate(args[0])
	if err != nil {
		return err
	}

	selected := deployServers
	if selected == nil {
		selected, err = a.store.Selected(tpl)
		if err != nil {
			return err
		}
	}

	d := deploy.New(a.resolver, a.history, a.logger, a.outputDir)
	result, err := d.Deploy(tpl, selected, activeProfile(), a.locationCtx())
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "staged %s\n", result.Artifact)
	if len(result.Writes) == 0 {
		warnStyle.Fprintf(w, "no destinations mapped for %s in profile %q\n",
			tpl.Filename, result.Profile)
		return nil
	}

	for _, wr := range result.Writes {
		if wr.OK() {
			okStyle.Fprint(w, "  ok   ")
			fmt.Fprintln(w, wr.Path)
		} else {
			failStyle.Fprint(w, "  fail ")
			fmt.Fprintf(w, "%s: %v\n", wr.Path, wr.Err)
		}
	}

	if failed := result.Failed(); len(failed) > 0 {
		paths := make([]string, 0, len(failed))
		for _, wr := range failed {
			paths = append(paths, wr.Path)
		}
		return errors.NewSystemError(
			errors.Newf("%d of %d destinations failed: %s",
				len(failed), len(result.Writes), strings.Join(paths, ", ")),
			"check permissions on the failed paths and re-run; successful writes are already in place")
	}
	return nil
}

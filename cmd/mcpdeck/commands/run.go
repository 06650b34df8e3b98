package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcpdeck/mcpdeck/internal/config"
	"github.com/mcpdeck/mcpdeck/internal/deploy"
	"github.com/mcpdeck/mcpdeck/internal/history"
	"github.com/mcpdeck/mcpdeck/internal/launch"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run <template> -- <command...>",
	Short: "Deploy a template, then run a shell command",
	Long: `Deploy the template's enabled servers, then execute a shell command
with the terminal attached. Built for batch workflows where a tool should
run against a freshly deployed configuration.

The template used is remembered and becomes the default for the next run.`,
	Example: `  # Deploy the Codex config and run a one-shot prompt
  mcpdeck run codex_config.toml -- codex exec "summarize this repo"

  # Re-run with the remembered template
  mcpdeck run codex_config.toml -- make check`,
	Args: cobra.MinimumNArgs(2),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	tpl, err := a.findTemplate(args[0])
	if err != nil {
		return err
	}
	command := strings.Join(args[1:], " ")

	selected, err := a.store.Selected(tpl)
	if err != nil {
		return err
	}

	d := deploy.New(a.resolver, a.history, a.logger, a.outputDir)
	result, err := d.Deploy(tpl, selected, activeProfile(), a.locationCtx())
	if err != nil {
		return err
	}
	if !result.OK() {
		warnStyle.Fprintf(cmd.OutOrStdout(),
			"%d destination(s) failed to deploy; running anyway\n", len(result.Failed()))
	}

	if err := config.Set("last_batch_template", tpl.Filename); err != nil {
		a.logger.Warn("could not remember batch template", "error", err)
	}

	a.history.Append(history.EventBatch, map[string]any{
		"template": tpl.Filename,
		"command":  command,
	})
	return launch.RunShell(command)
}

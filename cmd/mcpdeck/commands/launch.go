package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcpdeck/mcpdeck/internal/deploy"
	"github.com/mcpdeck/mcpdeck/internal/errors"
	"github.com/mcpdeck/mcpdeck/internal/history"
	"github.com/mcpdeck/mcpdeck/internal/launch"
)

var launchNoDeploy bool

func init() {
	launchCmd.Flags().BoolVar(&launchNoDeploy, "no-deploy", false,
		"launch without deploying the configuration first")
	rootCmd.AddCommand(launchCmd)
}

var launchCmd = &cobra.Command{
	Use:   "launch <template>",
	Short: "Deploy a template's config and start its application",
	Long: `Deploy the template to the active profile's destinations, then start
the application that reads it, with the terminal attached.

Launch commands come from a builtin table keyed by template filename and can
be overridden under the "launch" map in the config file.`,
	Example: `  # Deploy the Codex config, then run codex
  mcpdeck launch codex_config.toml

  # Start without re-deploying
  mcpdeck launch codex_config.toml --no-deploy`,
	Args: cobra.ExactArgs(1),
	RunE: runLaunch,
}

func runLaunch(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	tpl, err := a.findTemplate(args[0])
	if err != nil {
		return err
	}

	command, ok := launch.Command(tpl.Filename)
	if !ok {
		return errors.NewUserError(
			errors.Newf("no launch command known for %s", tpl.Filename),
			`add one under "launch:" in the config file`)
	}

	if !launchNoDeploy {
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
				"%d destination(s) failed to deploy; launching anyway\n", len(result.Failed()))
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "launching %s: %s\n", tpl.DisplayName, command)
	a.history.Append(history.EventLaunch, map[string]any{
		"template": tpl.Filename,
		"command":  command,
	})
	return launch.Run(command)
}

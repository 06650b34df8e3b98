package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

var templateShowDestinations bool

func init() {
	templateShowCmd.Flags().BoolVar(&templateShowDestinations, "destinations", false,
		"also resolve and print deployment destinations for the active profile")
}

var templateShowCmd = &cobra.Command{
	Use:   "show <template>",
	Short: "Show one template's servers and selection",
	Long: `Show a template's servers with their current on/off state, plus the
template's format scaffolding (container key or TOML header).`,
	Example: `  # Show by filename
  mcpdeck template show codex_config.toml

  # Show by display name, with destinations
  mcpdeck template show Codex --destinations`,
	Args: cobra.ExactArgs(1),
	RunE: runTemplateShow,
}

func runTemplateShow(cmd *cobra.Command, args []string) error {
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
	enabled := make(map[string]struct{}, len(selected))
	for _, name := range selected {
		enabled[name] = struct{}{}
	}

	w := cmd.OutOrStdout()
	headerStyle.Fprintf(w, "%s", tpl.DisplayName)
	fmt.Fprintf(w, " (%s, %s)\n", tpl.Filename, tpl.Format)

	if tpl.ContainerKey != "" {
		dimStyle.Fprintf(w, "container key: %s\n", tpl.ContainerKey)
	}
	if meta := tpl.Metadata(); len(meta) > 0 {
		dimStyle.Fprintf(w, "metadata keys: %s\n", strings.Join(meta, ", "))
	}
	if len(tpl.HeaderLines) > 0 {
		dimStyle.Fprintf(w, "header: %d lines\n", len(tpl.HeaderLines))
	}

	fmt.Fprintln(w)
	for _, name := range tpl.ServerOrder {
		if _, on := enabled[name]; on {
			okStyle.Fprint(w, "  [x] ")
		} else {
			fmt.Fprint(w, "  [ ] ")
		}
		fmt.Fprintln(w, name)
	}

	if templateShowDestinations {
		return showDestinations(w, a, tpl.Filename)
	}
	return nil
}

func showDestinations(w io.Writer, a *app, filename string) error {
	profile := activeProfile()
	dests, err := a.resolver.Resolve(profile, filename, a.locationCtx())
	if err != nil {
		return err
	}

	fmt.Fprintln(w)
	headerStyle.Fprintf(w, "destinations (%s)\n", profile)
	if len(dests) == 0 {
		warnStyle.Fprintln(w, "  none mapped in this profile")
		return nil
	}
	for _, dest := range dests {
		fmt.Fprintf(w, "  %s\n", dest)
	}
	return nil
}

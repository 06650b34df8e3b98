package commands

import (
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/mcpdeck/mcpdeck/internal/errors"
	"github.com/mcpdeck/mcpdeck/internal/history"
	"github.com/mcpdeck/mcpdeck/internal/template"
)

var (
	selectAll    bool
	selectNone   bool
	selectClear  bool
	selectToggle bool
)

func init() {
	selectCmd.Flags().BoolVar(&selectAll, "all", false, "enable every server")
	selectCmd.Flags().BoolVar(&selectNone, "none", false, "disable every server (explicit empty selection)")
	selectCmd.Flags().BoolVar(&selectClear, "clear", false, "forget the explicit selection, returning to default-all")
	selectCmd.Flags().BoolVar(&selectToggle, "toggle-all", false, "flip between everything and nothing")
	rootCmd.AddCommand(selectCmd)
}

var selectCmd = &cobra.Command{
	Use:   "select <template> [server...]",
	Short: "Choose which servers a template deploys",
	Long: `Choose the set of MCP servers enabled for a template.

With server names as arguments, exactly those servers are enabled. With no
arguments and no flags, an interactive picker opens. Until a selection is
made, every server in the template is enabled by default; an explicit
selection, even an empty one, sticks until cleared.`,
	Example: `  # Enable exactly two servers
  mcpdeck select codex_config.toml github fetch

  # Pick interactively
  mcpdeck select codex_config.toml

  # Explicitly disable everything
  mcpdeck select codex_config.toml --none

  # Back to the default (everything on)
  mcpdeck select codex_config.toml --clear`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSelect,
}

func runSelect(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	tpl, err := a.findTemplate(args[0])
	if err != nil {
		return err
	}

	names, err := chooseServers(a, tpl, args[1:])
	if err != nil {
		return err
	}
	if names == nil {
		if selectClear {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: selection cleared, all servers enabled\n", tpl.Filename)
		}
		return nil
	}

	if err := a.store.Set(tpl.Filename, names); err != nil {
		return err
	}
	a.history.Append(history.EventSelection, map[string]any{
		"template": tpl.Filename,
		"servers":  names,
	})

	w := cmd.OutOrStdout()
	if len(names) == 0 {
		warnStyle.Fprintf(w, "%s: no servers enabled\n", tpl.Filename)
		return nil
	}
	okStyle.Fprintf(w, "%s: enabled %s\n", tpl.Filename, strings.Join(names, ", "))
	return nil
}

// chooseServers works out the new selection from flags, arguments, or the
// interactive picker. A nil result means no selection change should be
// persisted.
func chooseServers(a *app, tpl *template.Template, args []string) ([]string, error) {
	switch {
	case selectClear:
		if err := a.store.Clear(tpl.Filename); err != nil {
			return nil, err
		}
		return nil, nil
	case selectToggle:
		return a.store.ToggleAll(tpl)
	case selectAll:
		return append([]string(nil), tpl.ServerOrder...), nil
	case selectNone:
		return []string{}, nil
	}

	if len(args) > 0 {
		var unknown []string
		for _, name := range args {
			if !tpl.HasServer(name) {
				unknown = append(unknown, name)
			}
		}
		if len(unknown) > 0 {
			return nil, errors.NewUserError(
				errors.Newf("unknown server(s): %s", strings.Join(unknown, ", ")),
				fmt.Sprintf("run 'mcpdeck template show %s' to see defined servers", tpl.Filename))
		}
		return args, nil
	}

	return pickServers(a, tpl)
}

// pickServers opens a fuzzy multi-select over the template's servers,
// pre-rendering each server's definition in the preview pane.
func pickServers(a *app, tpl *template.Template) ([]string, error) {
	current, err := a.store.Selected(tpl)
	if err != nil {
		return nil, err
	}
	enabled := make(map[string]struct{}, len(current))
	for _, name := range current {
		enabled[name] = struct{}{}
	}

	idxs, err := fuzzyfinder.FindMulti(
		tpl.ServerOrder,
		func(i int) string {
			name := tpl.ServerOrder[i]
			if _, on := enabled[name]; on {
				return "[x] " + name
			}
			return "[ ] " + name
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return previewBlock(tpl, tpl.ServerOrder[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}

	names := make([]string, 0, len(idxs))
	for _, i := range idxs {
		names = append(names, tpl.ServerOrder[i])
	}
	return names, nil
}

func previewBlock(tpl *template.Template, name string) string {
	block := tpl.Blocks[name]
	if block.Raw != nil {
		return string(block.Raw)
	}
	return strings.Join(block.Lines, "\n")
}

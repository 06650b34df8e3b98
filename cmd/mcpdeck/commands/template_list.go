package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var templateListJSON bool

func init() {
	templateListCmd.Flags().BoolVar(&templateListJSON, "json", false, "Output in JSON format")
}

var templateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Long: `List every template found in the templates directory along with its
format, server count, and current selection state.

A selection of "all" means no explicit choice has been made and every server
deploys; an explicit selection shows how many of the defined servers are
enabled.`,
	Example: `  # List templates
  mcpdeck template list

  # Output as JSON
  mcpdeck template list --json`,
	RunE: runTemplateList,
}

// templateInfoJSON is one template in JSON output.
type templateInfoJSON struct {
	Filename    string   `json:"filename"`
	DisplayName string   `json:"display_name"`
	Format      string   `json:"format"`
	Servers     []string `json:"servers"`
	Selected    []string `json:"selected"`
	Explicit    bool     `json:"explicit_selection"`
}

func runTemplateList(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	return writeTemplateList(cmd.OutOrStdout(), a)
}

func writeTemplateList(w io.Writer, a *app) error {
	if len(a.templates) == 0 {
		fmt.Fprintln(w, "No templates found.")
		return nil
	}

	if templateListJSON {
		out := make([]templateInfoJSON, 0, len(a.templates))
		for _, tpl := range a.templates {
			selected, explicit, err := a.store.Lookup(tpl.Filename)
			if err != nil {
				return err
			}
			if !explicit {
				selected = tpl.ServerOrder
			}
			out = append(out, templateInfoJSON{
				Filename:    tpl.Filename,
				DisplayName: tpl.DisplayName,
				Format:      string(tpl.Format),
				Servers:     tpl.ServerOrder,
				Selected:    selected,
				Explicit:    explicit,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TEMPLATE\tNAME\tFORMAT\tSERVERS\tSELECTED")
	for _, tpl := range a.templates {
		selected, explicit, err := a.store.Lookup(tpl.Filename)
		if err != nil {
			return err
		}
		state := "all"
		if explicit {
			state = fmt.Sprintf("%d/%d", countKnown(tpl.ServerOrder, selected), len(tpl.ServerOrder))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			tpl.Filename, tpl.DisplayName, tpl.Format, len(tpl.ServerOrder), state)
	}
	return tw.Flush()
}

// countKnown counts selected names the template actually defines, so stale
// entries don't inflate the display.
func countKnown(order, selected []string) int {
	known := make(map[string]struct{}, len(order))
	for _, name := range order {
		known[name] = struct{}{}
	}
	n := 0
	for _, name := range selected {
		if _, ok := known[name]; ok {
			n++
		}
	}
	return n
}

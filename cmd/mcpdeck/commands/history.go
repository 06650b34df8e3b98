package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mcpdeck/mcpdeck/internal/history"
)

var (
	historyCount int
	historyJSON  bool
)

func init() {
	historyCmd.Flags().IntVarP(&historyCount, "number", "n", 20,
		"number of entries to show (0 for all)")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the deployment audit log",
	Long: `Show recent entries from the append-only audit log: deployments,
selection changes, launches, and batch runs.`,
	Example: `  # Last 20 entries
  mcpdeck history

  # Everything, as JSON
  mcpdeck history -n 0 --json`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	entries, err := a.history.Tail(historyCount)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if historyJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No history yet.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tEVENT\tDETAILS")
	for _, entry := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", entry.Timestamp, entry.Event, summarize(entry))
	}
	return tw.Flush()
}

// summarize compacts an entry's details to one line for the table view.
func summarize(entry history.Entry) string {
	tplName, _ := entry.Details["template"].(string)
	switch entry.Event {
	case history.EventDeploy:
		dests, _ := entry.Details["destinations"].([]any)
		return fmt.Sprintf("%s -> %d destination(s)", tplName, len(dests))
	case history.EventSelection:
		servers, _ := entry.Details["servers"].([]any)
		return fmt.Sprintf("%s: %d server(s) enabled", tplName, len(servers))
	case history.EventLaunch:
		cmdLine, _ := entry.Details["command"].(string)
		return fmt.Sprintf("%s (%s)", tplName, cmdLine)
	case history.EventBatch:
		cmdLine, _ := entry.Details["command"].(string)
		return fmt.Sprintf("%s: %s", tplName, cmdLine)
	default:
		raw, err := json.Marshal(entry.Details)
		if err != nil {
			return ""
		}
		return string(raw)
	}
}

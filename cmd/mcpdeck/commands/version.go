package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	buildinfo "github.com/mcpdeck/mcpdeck/cmd"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, and build date of mcpdeck.`,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("mcpdeck version %s\n", buildinfo.Version)
		fmt.Printf("  commit: %s\n", buildinfo.Commit)
		fmt.Printf("  built:  %s\n", buildinfo.Date)
	},
}

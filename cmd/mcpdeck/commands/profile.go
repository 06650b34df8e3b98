package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mcpdeck/mcpdeck/internal/errors"
	"github.com/mcpdeck/mcpdeck/internal/location"
	"github.com/mcpdeck/mcpdeck/internal/paths"
	"github.com/mcpdeck/mcpdeck/pkg/fileutil"
)

var profileInitForce bool

func init() {
	profileInitCmd.Flags().BoolVar(&profileInitForce, "force", false,
		"overwrite an existing profiles file")
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileInitCmd)
	rootCmd.AddCommand(profileCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect and customize location profiles",
	Long: `Location profiles map each template to the physical paths it deploys
to. The builtin windows, unix, and project profiles apply unless a
profiles.yaml exists in the config directory.`,
	RunE: runProfileList,
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List profile names",
	RunE:  runProfileList,
}

var profileShowCmd = &cobra.Command{
	Use:   "show <profile>",
	Short: "Show one profile's path mappings",
	Example: `  # Unexpanded path templates
  mcpdeck profile show unix`,
	Args: cobra.ExactArgs(1),
	RunE: runProfileShow,
}

var profileInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the builtin profiles to profiles.yaml for editing",
	Long: `Write the builtin location table to the config directory as
profiles.yaml. Once the file exists it replaces the builtin table entirely,
so trim it to the applications you actually use.`,
	RunE: runProfileInit,
}

func runProfileList(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	active := activeProfile()
	w := cmd.OutOrStdout()
	for _, name := range a.resolver.Profiles().Names() {
		if name == active {
			okStyle.Fprintf(w, "* %s\n", name)
		} else {
			fmt.Fprintf(w, "  %s\n", name)
		}
	}
	return nil
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	profile, ok := a.resolver.Profiles()[args[0]]
	if !ok {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrUnknownProfile, "%q", args[0]),
			"run 'mcpdeck profile list' to see defined profiles")
	}

	filenames := make([]string, 0, len(profile))
	for filename := range profile {
		filenames = append(filenames, filename)
	}
	sort.Strings(filenames)

	w := cmd.OutOrStdout()
	headerStyle.Fprintf(w, "%s\n", args[0])
	for _, filename := range filenames {
		fmt.Fprintf(w, "  %s\n", filename)
		for _, tmpl := range profile[filename] {
			dimStyle.Fprintf(w, "    %s\n", tmpl)
		}
	}
	return nil
}

func runProfileInit(cmd *cobra.Command, _ []string) error {
	path := paths.ProfilesPath()
	if _, err := os.Stat(path); err == nil && !profileInitForce {
		return errors.NewUserError(
			errors.Newf("%s already exists", path),
			"use --force to overwrite it with the builtin table")
	}

	if err := paths.EnsureDir(paths.ConfigDir(), paths.DefaultDirPerm); err != nil {
		return err
	}
	if err := fileutil.AtomicWriteYAML(path, location.DefaultProfiles()); err != nil {
		return err
	}

	okStyle.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
	return nil
}

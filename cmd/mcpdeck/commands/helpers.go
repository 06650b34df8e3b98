package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mcpdeck/mcpdeck/internal/errors"
	"github.com/mcpdeck/mcpdeck/internal/history"
	"github.com/mcpdeck/mcpdeck/internal/location"
	"github.com/mcpdeck/mcpdeck/internal/logging"
	"github.com/mcpdeck/mcpdeck/internal/paths"
	"github.com/mcpdeck/mcpdeck/internal/project"
	"github.com/mcpdeck/mcpdeck/internal/selection"
	"github.com/mcpdeck/mcpdeck/internal/template"
)

// Shared output styles.
var (
	headerStyle = color.New(color.FgCyan, color.Bold)
	okStyle     = color.New(color.FgGreen)
	warnStyle   = color.New(color.FgYellow)
	failStyle   = color.New(color.FgRed)
	dimStyle    = color.New(color.Faint)
)

// app bundles the wired-up collaborators every command needs.
type app struct {
	logger    *slog.Logger
	templates []*template.Template
	store     *selection.Store
	resolver  *location.Resolver
	history   *history.Log
	outputDir string
}

// loadApp loads templates, selections, profiles, and the audit log using
// the effective configuration.
func loadApp(cmd *cobra.Command) (*app, error) {
	logger := logging.FromContext(cmd.Context())

	templatesDir := viper.GetString("templates_dir")
	templates, err := template.LoadDir(templatesDir, logger)
	if err != nil {
		return nil, errors.NewUserError(err,
			fmt.Sprintf("create %s and put template files in it", templatesDir))
	}

	return &app{
		logger:    logger,
		templates: templates,
		store:     selection.NewStore(paths.SelectionsDir()),
		resolver:  location.NewResolver(loadProfiles(logger)),
		history:   history.New(paths.HistoryPath(), logger),
		outputDir: viper.GetString("output_dir"),
	}, nil
}

// loadProfiles returns the user's profiles.yaml when present and readable,
// else the builtin table.
func loadProfiles(logger *slog.Logger) location.Profiles {
	path := paths.ProfilesPath()
	if _, err := os.Stat(path); err != nil {
		return location.DefaultProfiles()
	}

	profiles, err := location.LoadProfiles(path)
	if err != nil {
		logger.Warn("ignoring unreadable profiles file", "path", path, "error", err)
		return location.DefaultProfiles()
	}
	return profiles
}

// findTemplate resolves a template argument to a loaded template. The
// argument matches the filename exactly, or a display name case-insensitively.
func (a *app) findTemplate(arg string) (*template.Template, error) {
	if tpl := template.Find(a.templates, arg); tpl != nil {
		return tpl, nil
	}
	for _, tpl := range a.templates {
		if strings.EqualFold(tpl.DisplayName, arg) {
			return tpl, nil
		}
	}
	return nil, errors.NewUserError(
		errors.Wrapf(errors.ErrNotFound, "%q", arg),
		"run 'mcpdeck template list' to see available templates")
}

// locationCtx assembles the resolution context. The project root comes from
// configuration when pinned, else from walking up from the working
// directory; detection failure leaves it empty, which only matters for the
// project profile.
func (a *app) locationCtx() location.Context {
	ctx := location.Context{}
	if cfg != nil && cfg.ProjectRoot != "" {
		ctx.ProjectRoot = cfg.ProjectRoot
		return ctx
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ctx
	}
	root, err := project.DetectRoot(cwd)
	if err != nil {
		a.logger.Debug("project root detection failed", "error", err)
		return ctx
	}
	ctx.ProjectRoot = root
	return ctx
}

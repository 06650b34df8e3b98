// Package commands implements the CLI commands for mcpdeck.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	buildinfo "github.com/mcpdeck/mcpdeck/cmd"
	"github.com/mcpdeck/mcpdeck/internal/config"
	"github.com/mcpdeck/mcpdeck/internal/errors"
	"github.com/mcpdeck/mcpdeck/internal/logging"
)

// profileFlag holds the value of the --profile flag.
var profileFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// cfg is the loaded configuration; configLoadErr holds any load error.
var (
	cfg           *config.Config
	configLoadErr error
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&profileFlag, "profile", "p", "",
		"location profile: windows, unix, project (default from config)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")

	rootCmd.Version = buildinfo.Version
	rootCmd.SetVersionTemplate("mcpdeck version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load("")
}

var rootCmd = &cobra.Command{
	Use:   "mcpdeck",
	Short: "Manage MCP server configurations across AI assistants",
	Long: `mcpdeck keeps one template per AI assistant (Claude Desktop, Codex,
Gemini CLI, Copilot, ...) and deploys any subset of its MCP servers to the
places each application actually reads its configuration from.

Templates are plain JSON or TOML files. Toggle servers on or off per
template, then deploy: mcpdeck renders the template with just the enabled
servers and writes the result to every destination the active location
profile maps the template to.`,
	Example: `  # See which templates are available
  mcpdeck template list

  # Enable only two servers for Codex
  mcpdeck select codex_config.toml github fetch

  # Deploy Codex config to its real location
  mcpdeck deploy codex_config.toml

  # Deploy everywhere a project profile points
  mcpdeck deploy codex_config.toml --profile project`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}
		if configLoadErr != nil {
			return errors.NewUserError(configLoadErr, "check ~/.config/mcpdeck/config.yaml")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(nil, "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			if val, ok := os.LookupEnv("MCPDECK_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 1
				case "2":
					v = 2
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	logger := logging.New(logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: cmd.ErrOrStderr(),
	})

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		fileHandler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})
		logger = slog.New(logging.NewMultiHandler(logger.Handler(), fileHandler))
	}

	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// activeProfile returns the location profile to use: the --profile flag if
// given, else the configured default.
func activeProfile() string {
	if profileFlag != "" {
		return profileFlag
	}
	if cfg != nil && cfg.Profile != "" {
		return cfg.Profile
	}
	return "unix"
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

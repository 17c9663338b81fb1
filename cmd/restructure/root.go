package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/restructure/cmd/restructure/commands"
	"github.com/walteh/restructure/cmd/restructure/opts"
	"github.com/walteh/restructure/pkg/log"
)

// newRootCmd builds the command tree. Shared dependencies are created in
// PersistentPreRunE, once flags are parsed.
func newRootCmd() *cobra.Command {
	o := &opts.RootOpts{}

	rootCmd := &cobra.Command{
		Use:   "restructure",
		Short: "Migrate a research project into a package layout and validate the result",
		Long: `restructure moves the files of a flat research project into a structured
package layout, adds documentation headers and writes a migration report.
The validate command checks any tree against the expected layout.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogging(cmd, o.Debug)
			console := log.New(cmd.OutOrStdout(), logger)

			ctx := log.NewContext(logger.WithContext(cmd.Context()), console)
			cmd.SetContext(ctx)

			o.User = opts.NewUserLogger(ctx, cmd.OutOrStdout())
			if err := o.LoadConfig(ctx); err != nil {
				return err
			}
			if loc := o.Config.Location(); loc != "" {
				o.User.LogStateChange("Using config " + loc)
			}
			return nil
		},
	}

	addRootFlags(rootCmd, o)

	rootCmd.AddCommand(
		commands.NewMigrateCmd(o),
		commands.NewValidateCmd(o),
		newVersionCmd(),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", "", "tool config file (.yaml, .json or .hcl); built-in plan when empty")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging(cmd *cobra.Command, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(cmd.ErrOrStderr()).Level(level).With().Timestamp().Logger()
}

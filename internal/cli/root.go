// Package cli wires the svgmacro commands into a cobra command tree.
package cli

import (
	"embed"
	"io/fs"
	"os"

	"github.com/rasviitanen/svgmacro/internal/version"
	"github.com/rasviitanen/svgmacro/pkg/cobrax/topics"
	"github.com/rasviitanen/svgmacro/pkg/config"
	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/rasviitanen/svgmacro/pkg/logging"
	"github.com/rasviitanen/svgmacro/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicsFS embed.FS

// app is the state shared by all commands of one invocation
type app struct {
	verbosity int
	format    string
	config    *config.Config
	topics    *topics.TopicManager
}

// printer returns a message printer for the command's error stream,
// where status messages go so stdout carries only documents
func (a *app) printer(cmd *cobra.Command) *ui.Printer {
	f, err := ui.ParseFormat(a.format)
	if err != nil || f == ui.FormatJSON {
		f = ui.FormatAuto
	}
	return ui.NewPrinter(cmd.ErrOrStderr(), f)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "svgmacro",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to get working directory")
			}
			cfg, err := config.Load(wd)
			if err != nil {
				logging.SetupLogger(a.verbosity)
				return err
			}
			a.config = cfg

			verbosity := a.verbosity
			if v := logging.VerbosityForLevel(cfg.Log.Level); v > verbosity {
				verbosity = v
			}
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")

			if _, err := ui.ParseFormat(a.format); err != nil {
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, "no command specified")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.format, "format", "auto", MsgFlagFormat)

	rootCmd.AddGroup(
		&cobra.Group{ID: "core", Title: "COMMANDS:"},
		&cobra.Group{ID: "misc", Title: "MISC:"},
	)
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRenderCmd(a))
	rootCmd.AddCommand(newTreeCmd(a))
	rootCmd.AddCommand(newSyntaxCmd(a))
	rootCmd.AddCommand(newGenConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd(a))

	sub, err := fs.Sub(topicsFS, "topics")
	if err == nil {
		opts := topics.Options{
			Extensions: []string{".md"},
			Renderer:   topics.NewGlamourRenderer(!stdoutIsTerminal()),
		}
		if tm, err := topics.InitializeWithOptions(rootCmd, sub, opts); err == nil {
			a.topics = tm
		}
	}

	return rootCmd
}

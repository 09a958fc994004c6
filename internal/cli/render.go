package cli

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rasviitanen/svgmacro/pkg/commands"
	"github.com/rasviitanen/svgmacro/pkg/config"
	"github.com/rasviitanen/svgmacro/pkg/logging"
	"github.com/spf13/cobra"
)

type sourceFlags struct {
	dataFiles []string
	sets      []string
	markdown  []string
	syntax    string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVar(&f.dataFiles, "data", nil, MsgFlagData)
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, MsgFlagSet)
	cmd.Flags().StringArrayVar(&f.markdown, "markdown", nil, MsgFlagMarkdown)
	cmd.Flags().StringVar(&f.syntax, "syntax", "", MsgFlagSyntax)

	_ = cmd.RegisterFlagCompletionFunc("syntax", cobra.FixedCompletions(
		[]string{config.SyntaxAuto, config.SyntaxMacro, config.SyntaxXML}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.MarkFlagFilename("data", "yaml", "yml", "toml", "json")
	_ = cmd.MarkFlagFilename("markdown", "md")
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		src    sourceFlags
		output string
		check  bool
		watch  bool
	)

	cmd := &cobra.Command{
		Use:     "render FILE",
		Short:   MsgRenderShort,
		Long:    MsgRenderLong,
		Example: MsgRenderExample,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.render")
			p := a.printer(cmd)

			opts := commands.RenderOptions{
				Path:      args[0],
				Output:    output,
				DataFiles: src.dataFiles,
				Sets:      src.sets,
				Markdown:  src.markdown,
				Syntax:    src.syntax,
				Check:     check,
				Config:    a.config,
				Stdout:    cmd.OutOrStdout(),
			}

			report := func(result *commands.RenderResult) {
				// Keep stdout clean when it carries the document
				if result.Output == commands.StdoutPath {
					return
				}
				p.Printf(MsgRendered, result.Output,
					humanize.Bytes(uint64(result.Bytes)),
					result.Syntax,
					result.Duration.Round(time.Millisecond).String())
			}

			if !watch {
				result, err := commands.Render(opts)
				if err != nil {
					return err
				}
				report(result)
				return nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			p.Printf(MsgWatching, args[0])
			return commands.Watch(ctx, commands.WatchOptions{
				Render:   opts,
				Debounce: a.config.Watch.Debounce,
				OnRender: func(result *commands.RenderResult, err error) {
					if err != nil {
						logger.Debug().Err(err).Msg("Render failed while watching")
						p.Printf(MsgRenderFailed, err.Error())
						return
					}
					report(result)
				},
			})
		},
	}

	src.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVar(&check, "check", false, MsgFlagCheck)
	cmd.Flags().BoolVar(&watch, "watch", false, MsgFlagWatch)

	return cmd
}

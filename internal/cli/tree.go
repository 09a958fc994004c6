package cli

import (
	"os"

	"github.com/rasviitanen/svgmacro/pkg/commands"
	"github.com/rasviitanen/svgmacro/pkg/ui"
	"github.com/spf13/cobra"
)

func newTreeCmd(a *app) *cobra.Command {
	var src sourceFlags

	cmd := &cobra.Command{
		Use:     "tree FILE",
		Short:   MsgTreeShort,
		Long:    MsgTreeLong,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ui.ParseFormat(a.format)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			f, _ := out.(*os.File)

			return commands.Tree(commands.TreeOptions{
				Path:      args[0],
				DataFiles: src.dataFiles,
				Sets:      src.sets,
				Markdown:  src.markdown,
				Syntax:    src.syntax,
				Format:    ui.Resolve(format, f),
				Config:    a.config,
				Out:       out,
			})
		},
	}

	src.register(cmd)
	return cmd
}

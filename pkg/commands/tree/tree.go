// Package tree implements the tree command, which prints the node tree a
// document compiles to instead of rendering it.
package tree

import (
	"io"

	"github.com/pterm/pterm"
	"github.com/rasviitanen/svgmacro/pkg/commands/render"
	"github.com/rasviitanen/svgmacro/pkg/config"
	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/rasviitanen/svgmacro/pkg/logging"
	"github.com/rasviitanen/svgmacro/pkg/treeview"
	"github.com/rasviitanen/svgmacro/pkg/ui"
)

// TreeOptions holds options for the tree command
type TreeOptions struct {
	Path      string
	DataFiles []string
	Sets      []string
	Markdown  []string
	Syntax    string
	// Format must be resolved: terminal, text or json
	Format ui.Format
	Config *config.Config
	Out    io.Writer
}

// Tree compiles the document and writes its structure to opts.Out.
// Escape nodes are shown by label and are not run.
func Tree(opts TreeOptions) error {
	logger := logging.GetLogger("commands.tree")
	defer logging.LogOperationStart(logger, "tree")()

	if opts.Config == nil {
		return errors.New(errors.ErrInternal, "tree called without configuration")
	}

	scope, err := render.BuildScope(opts.Config, opts.DataFiles, opts.Sets, opts.Markdown)
	if err != nil {
		return err
	}

	syntaxName := opts.Syntax
	if syntaxName == "" {
		syntaxName = opts.Config.Render.Syntax
	}
	nodes, resolved, err := render.Compile(opts.Path, syntaxName, scope)
	if err != nil {
		return err
	}
	logger.Debug().Str("path", opts.Path).Str("syntax", resolved).Str("format", opts.Format.String()).Msg("Printing tree")

	switch opts.Format {
	case ui.FormatJSON:
		return treeview.JSON(opts.Out, nodes)
	case ui.FormatText:
		pterm.DisableStyling()
		defer pterm.EnableStyling()
		return treeview.Render(opts.Out, nodes)
	case ui.FormatTerminal:
		return treeview.Render(opts.Out, nodes)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unsupported tree format %s", opts.Format)
	}
}

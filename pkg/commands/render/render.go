// Package render implements the render command: it compiles a document,
// renders it into a buffer and delivers the result to a file or stdout.
package render

import (
	"bytes"
	"io"
	"os"
	"time"

	"github.com/rasviitanen/svgmacro/pkg/config"
	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/rasviitanen/svgmacro/pkg/logging"
	"github.com/rasviitanen/svgmacro/pkg/markup"
	"github.com/rasviitanen/svgmacro/pkg/output"
)

// StdoutPath selects standard output as the destination
const StdoutPath = "-"

// RenderOptions holds options for the render command
type RenderOptions struct {
	// Path is the source document
	Path string
	// Output is the destination file; empty or "-" writes to Stdout
	Output string
	// DataFiles are loaded after the configured data files
	DataFiles []string
	// Sets are key=value assignments applied after all data files
	Sets []string
	// Markdown blocks given as name=file
	Markdown []string
	// Syntax overrides the configured syntax when not empty
	Syntax string
	// Check validates the output as XML before it is written
	Check bool
	// Config is the loaded configuration
	Config *config.Config
	// Stdout receives the document when no output file is set
	Stdout io.Writer
}

// RenderResult describes a finished render
type RenderResult struct {
	Path     string
	Output   string
	Syntax   string
	Bytes    int
	Duration time.Duration
}

// Render runs a complete render. Nothing is written when compiling,
// rendering or the well-formedness check fails.
func Render(opts RenderOptions) (*RenderResult, error) {
	logger := logging.GetLogger("commands.render")
	defer logging.LogOperationStart(logger, "render")()
	start := time.Now()

	cfg := opts.Config
	if cfg == nil {
		return nil, errors.New(errors.ErrInternal, "render called without configuration")
	}

	scope, err := BuildScope(cfg, opts.DataFiles, opts.Sets, opts.Markdown)
	if err != nil {
		return nil, err
	}

	syntaxName := opts.Syntax
	if syntaxName == "" {
		syntaxName = cfg.Render.Syntax
	}
	nodes, resolved, err := Compile(opts.Path, syntaxName, scope)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("path", opts.Path).Str("syntax", resolved).Int("nodes", len(nodes)).Msg("Compiled document")

	var buf bytes.Buffer
	if err := markup.Render(&buf, nodes...); err != nil {
		return nil, err
	}

	if opts.Check || cfg.Render.Check {
		if err := output.CheckWellFormed(buf.Bytes()); err != nil {
			return nil, err
		}
	}

	result := &RenderResult{
		Path:   opts.Path,
		Output: opts.Output,
		Syntax: resolved,
		Bytes:  buf.Len(),
	}

	if opts.Output == "" || opts.Output == StdoutPath {
		result.Output = StdoutPath
		if err := writeStdout(opts.Stdout, buf.Bytes(), cfg.Render.Newline); err != nil {
			return nil, err
		}
	} else {
		if cfg.Render.Newline == config.NewlineAlways {
			buf.WriteByte('\n')
		}
		if err := output.WriteFile(opts.Output, buf.Bytes()); err != nil {
			return nil, err
		}
	}

	result.Duration = time.Since(start)
	logger.Info().
		Str("path", opts.Path).
		Str("output", result.Output).
		Int("bytes", result.Bytes).
		Dur("duration", result.Duration).
		Msg("Rendered document")
	return result, nil
}

func writeStdout(w io.Writer, data []byte, policy string) error {
	if w == nil {
		w = os.Stdout
	}
	f, _ := w.(*os.File)
	if output.Newline(policy, f) {
		data = append(data, '\n')
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(err, errors.ErrSinkWrite, "failed to write to stdout")
	}
	return nil
}

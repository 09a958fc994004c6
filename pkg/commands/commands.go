// Package commands provides the command implementations behind the CLI.
//
// Each command lives in its own subdirectory:
//   - render/    - Render command and the shared compile step
//   - tree/      - Tree command
//   - watch/     - Watch loop around Render
//   - genconfig/ - GenConfig command
//
// This file re-exports the command functions so the CLI depends on a
// single package.
package commands

import (
	"context"

	"github.com/rasviitanen/svgmacro/pkg/commands/genconfig"
	"github.com/rasviitanen/svgmacro/pkg/commands/render"
	"github.com/rasviitanen/svgmacro/pkg/commands/tree"
	"github.com/rasviitanen/svgmacro/pkg/commands/watch"
)

// StdoutPath is the output name that selects standard output.
const StdoutPath = render.StdoutPath

// RenderOptions configures Render.
type RenderOptions = render.RenderOptions

// RenderResult describes a finished render.
type RenderResult = render.RenderResult

// Render compiles a document and writes the result.
func Render(opts RenderOptions) (*RenderResult, error) {
	return render.Render(opts)
}

// TreeOptions configures Tree.
type TreeOptions = tree.TreeOptions

// Tree prints the node tree of a document.
func Tree(opts TreeOptions) error {
	return tree.Tree(opts)
}

// WatchOptions configures Watch.
type WatchOptions = watch.WatchOptions

// Watch re-renders a document on every input change until ctx ends.
func Watch(ctx context.Context, opts WatchOptions) error {
	return watch.Watch(ctx, opts)
}

// GenConfigOptions configures GenConfig.
type GenConfigOptions = genconfig.GenConfigOptions

// GenConfigResult holds the output of GenConfig.
type GenConfigResult = genconfig.GenConfigResult

// GenConfig prints or writes a starter configuration file.
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}

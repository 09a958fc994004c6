package syntax

import (
	"io"

	"github.com/rasviitanen/svgmacro/pkg/logging"
	"github.com/rasviitanen/svgmacro/pkg/markup"
)

// Compile parses src and lowers it against scope.
func Compile(name, src string, scope *Scope) ([]markup.Node, error) {
	logger := logging.GetLogger("syntax")

	doc, err := Parse(name, src)
	if err != nil {
		return nil, err
	}
	logger.Trace().Str("file", name).Int("nodes", len(doc.Nodes)).Msg("Parsed document")

	nodes, err := Lower(doc, scope)
	if err != nil {
		return nil, err
	}
	logger.Trace().Str("file", name).Int("nodes", len(nodes)).Msg("Lowered document")
	return nodes, nil
}

// Render compiles src and renders it to w.
func Render(w io.Writer, name, src string, scope *Scope) error {
	nodes, err := Compile(name, src, scope)
	if err != nil {
		return err
	}
	return markup.Render(w, nodes...)
}

// Package component connects markup trees with gomponents, so HTML built
// with gomponents can be embedded in a document (inside a foreignObject,
// for instance) and markup nodes can be used where gomponents expects a
// node.
package component

import (
	"fmt"
	"io"

	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/rasviitanen/svgmacro/pkg/markup"
	g "maragu.dev/gomponents"
)

// FromGomponents returns an escape that renders n into the writer of the
// enclosing render. Write failures surface as SINK_WRITE errors like
// those of markup nodes.
func FromGomponents(n g.Node) markup.Escape {
	return markup.DoLabeled(fmt.Sprintf("gomponents %T", n), func(w io.Writer) error {
		if n == nil {
			return nil
		}
		if err := n.Render(w); err != nil {
			if errors.IsErrorCode(err, errors.ErrSinkWrite) {
				return err
			}
			return errors.Wrap(err, errors.ErrSinkWrite, "failed to write gomponents node")
		}
		return nil
	})
}

// ToGomponents returns a gomponents node rendering nodes in order.
func ToGomponents(nodes ...markup.Node) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		return markup.Render(w, nodes...)
	})
}

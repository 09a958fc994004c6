/*
Package markup renders trees of tagged markup into an XML/SVG text stream.

A document is a sequence of Nodes. Each Node is one of:

  - *Element: a tag with ordered attributes, either self-closing (<circle/>)
    or a container with children (<g>...</g>, including the empty <g></g>).
  - Content: a value written straight to the output, with no wrapping tag.
  - Escape: a callback that receives the output writer and may render
    further nodes into it any number of times (loops, conditionals,
    helper functions).

# Values

Every piece of emitted text is a Value, either a Literal or a Computed.
The two only differ inside attribute values:

	markup.Set(markup.Key("width"), markup.Literal(`"200"`))  //  width="200"
	markup.Set(markup.Key("width"), markup.Computed("200"))   //  width="200"
	markup.Set(markup.Key("width"), markup.Literal("200"))    //  width=200

A Literal is written exactly as authored, so any quotes must be part of
the literal. A Computed attribute value is always wrapped in one pair of
double quotes. As content, both are written verbatim.

# Escaping

Nothing is escaped. Characters such as <, & and " in literal or computed
text reach the output unchanged. Callers that render untrusted data must
escape it themselves before building the tree.

# Rendering

	svg := markup.El("svg", markup.Attrs(
		markup.Set(markup.Key("width"), markup.Show(200)),
	),
		markup.Void("circle", markup.Set(markup.Key("r"), markup.Literal(`"10"`))),
		markup.Do(func(w io.Writer) error {
			for i := 0; i < 2; i++ {
				if err := markup.Render(w, markup.Void("rect")); err != nil {
					return err
				}
			}
			return nil
		}),
	)
	err := markup.Render(os.Stdout, svg)
	// <svg width="200"><circle r="10"/><rect/><rect/></svg>

Output is produced depth-first in declaration order. The only error the
renderer produces is a failed write on the output (code SINK_WRITE); it
stops the render immediately and whatever was already written stays
written.
*/
package markup

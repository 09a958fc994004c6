package output

import (
	"github.com/beevik/etree"
	"github.com/rasviitanen/svgmacro/pkg/errors"
)

// CheckWellFormed parses data as XML and reports MALFORMED_OUTPUT when it
// does not parse or contains no element at all. Content is never escaped
// during rendering, so a stray '<' or '&' in host data shows up here.
// Several top-level elements are accepted, as a fragment is a valid render.
func CheckWellFormed(data []byte) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return errors.Wrap(err, errors.ErrMalformedOutput, "rendered output is not well-formed XML").
			WithDetail("bytes", len(data))
	}

	roots := 0
	for _, tok := range doc.Child {
		if _, ok := tok.(*etree.Element); ok {
			roots++
		}
	}
	if roots == 0 {
		return errors.New(errors.ErrMalformedOutput, "rendered output contains no element").
			WithDetail("bytes", len(data))
	}
	return nil
}

package markup_test

import (
	stderrors "errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/rasviitanen/svgmacro/pkg/markup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingWriter accepts limit bytes and fails every write after that.
type failingWriter struct {
	sb    strings.Builder
	limit int
}

var errDiskFull = stderrors.New("disk full")

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.sb.Len()+len(p) > w.limit {
		return 0, errDiskFull
	}
	return w.sb.Write(p)
}

func circles(n int) markup.EscapeFunc {
	return func(w io.Writer) error {
		for i := 0; i < n; i++ {
			if err := markup.Render(w, markup.Void("circle", lit("dy", `"20"`))); err != nil {
				return err
			}
		}
		return nil
	}
}

func TestEscapeTopLevelLoop(t *testing.T) {
	out := render(t, markup.Do(circles(2)))
	assert.Equal(t, `<circle dy="20"/><circle dy="20"/>`, out)
}

func TestEscapeOutputTracksCallbackRenders(t *testing.T) {
	for _, n := range []int{0, 1, 5} {
		t.Run(fmt.Sprintf("%d_iterations", n), func(t *testing.T) {
			out := render(t, markup.El("svg", nil, markup.Do(circles(n))))
			assert.Equal(t, "<svg>"+strings.Repeat(`<circle dy="20"/>`, n)+"</svg>", out)
		})
	}
}

func TestEscapeInterleavesWithSiblings(t *testing.T) {
	content := markup.Text("Hello, this is an example")
	myFunction := func(w io.Writer) error {
		return markup.Render(w, markup.Void("circle",
			lit("cx", `"100"`), lit("cy", `"100"`), lit("r", `"10"`),
		))
	}

	out := render(t, markup.El("svg", markup.Attrs(markup.Set(markup.Key("width"), markup.Computed("200"))),
		content,
		markup.Void("circle", lit("fill", `"red"`)),
		content,
		markup.Do(myFunction),
		content,
	))

	assert.Equal(t, `<svg width="200">Hello, this is an example<circle fill="red"/>`+
		`Hello, this is an example<circle cx="100" cy="100" r="10"/>Hello, this is an example</svg>`, out)
}

func TestEscapeReceivesTheSameWriter(t *testing.T) {
	var sb strings.Builder
	var seen io.Writer

	err := markup.Render(&sb, markup.El("g", nil, markup.Do(func(w io.Writer) error {
		seen = w
		return nil
	})))
	require.NoError(t, err)
	assert.Same(t, &sb, seen)
}

func TestNestedEscapes(t *testing.T) {
	out := render(t, markup.El("svg", nil, markup.Do(func(w io.Writer) error {
		for i := 0; i < 2; i++ {
			row := markup.El("g", markup.Attrs(markup.Set(markup.Key("id"), markup.Show(i))),
				markup.Do(circles(i+1)),
			)
			if err := markup.Render(w, row); err != nil {
				return err
			}
		}
		return nil
	})))

	assert.Equal(t, `<svg><g id="0"><circle dy="20"/></g><g id="1"><circle dy="20"/><circle dy="20"/></g></svg>`, out)
}

func TestConditionalEscapeRendersNothing(t *testing.T) {
	show := false
	out := render(t, markup.El("g", nil, markup.Do(func(w io.Writer) error {
		if show {
			return markup.Render(w, markup.Void("circle"))
		}
		return nil
	})))
	assert.Equal(t, "<g></g>", out)
}

func TestNilEscapeIsNoop(t *testing.T) {
	assert.Equal(t, "<g></g>", render(t, markup.El("g", nil, markup.Escape{})))
}

func TestSinkFailureStopsRender(t *testing.T) {
	tests := []struct {
		name    string
		limit   int
		partial string
	}{
		{name: "fails_on_first_write", limit: 0, partial: ""},
		{name: "fails_inside_children", limit: len("<svg><g>"), partial: "<svg><g>"},
		{name: "fails_inside_escape", limit: len(`<svg><circle dy="20"/>`), partial: `<svg><circle dy="20"/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &failingWriter{limit: tt.limit}
			tree := markup.El("svg", nil,
				markup.El("g", nil, markup.Text("never")),
				markup.Do(circles(3)),
			)
			if tt.name == "fails_inside_escape" {
				tree = markup.El("svg", nil, markup.Do(circles(3)))
			}

			err := markup.Render(w, tree)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrSinkWrite))
			assert.True(t, stderrors.Is(err, errDiskFull))
			assert.Equal(t, tt.partial, w.sb.String())
		})
	}
}

func TestSinkFailureIsWrappedOnce(t *testing.T) {
	w := &failingWriter{limit: len("<svg>")}
	err := markup.Render(w, markup.El("svg", nil, markup.Do(circles(1))))
	require.Error(t, err)

	var markupErr *errors.MarkupError
	require.True(t, stderrors.As(err, &markupErr))
	assert.Equal(t, errors.ErrSinkWrite, markupErr.Code)
	assert.Same(t, errDiskFull, markupErr.Wrapped)
}

// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test coded errors as the renderer and commands produce them

package errors_test

import (
	stderrors "errors"
	"fmt"
	"io"
	"testing"

	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "new",
			err:      errors.New(errors.ErrUndefined, "undefined: width"),
			expected: "[UNDEFINED] undefined: width",
		},
		{
			name:     "newf",
			err:      errors.Newf(errors.ErrSyntax, "doc.svgm:%d:%d: unexpected %q", 3, 14, "]"),
			expected: `[SYNTAX] doc.svgm:3:14: unexpected "]"`,
		},
		{
			name:     "wrap",
			err:      errors.Wrap(io.ErrClosedPipe, errors.ErrSinkWrite, "failed to write markup"),
			expected: "[SINK_WRITE] failed to write markup: io: read/write on closed pipe",
		},
		{
			name:     "wrapf",
			err:      errors.Wrapf(io.ErrUnexpectedEOF, errors.ErrDataParse, "failed to parse %s", "data.yaml"),
			expected: "[DATA_PARSE] failed to parse data.yaml: unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrSinkWrite, "failed to write markup"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrFileRead, "failed to read %s", "doc.svgm"))
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrSyntax, "unexpected token").
		WithDetail("line", 3).
		WithDetails(map[string]interface{}{"column": 14, "file": "doc.svgm"})

	details := errors.GetErrorDetails(fmt.Errorf("compile: %w", err))
	assert.Equal(t, map[string]interface{}{"line": 3, "column": 14, "file": "doc.svgm"}, details)

	assert.Nil(t, errors.GetErrorDetails(io.EOF))

	var zero errors.MarkupError
	zero.WithDetail("path", "out.svg")
	assert.Equal(t, "out.svg", zero.Details["path"])
}

func TestSinkWriteAcrossWrapping(t *testing.T) {
	sinkErr := errors.Wrap(io.ErrClosedPipe, errors.ErrSinkWrite, "failed to write markup")

	// Escape callbacks and commands pass the error along with plain wrapping
	passed := fmt.Errorf("escape %q: %w", "for i in 0..3", sinkErr)

	assert.True(t, errors.IsErrorCode(passed, errors.ErrSinkWrite))
	assert.Equal(t, errors.ErrSinkWrite, errors.GetErrorCode(passed))
	assert.ErrorIs(t, passed, io.ErrClosedPipe)

	var markupErr *errors.MarkupError
	require.True(t, stderrors.As(passed, &markupErr))
	assert.Same(t, sinkErr, markupErr)
}

func TestOutermostCodeWins(t *testing.T) {
	sinkErr := errors.Wrap(io.ErrClosedPipe, errors.ErrSinkWrite, "failed to write markup")
	rewrapped := errors.Wrap(sinkErr, errors.ErrInternal, "render failed")

	assert.False(t, errors.IsErrorCode(rewrapped, errors.ErrSinkWrite))
	assert.Equal(t, errors.ErrInternal, errors.GetErrorCode(rewrapped))

	// errors.Is still finds the code anywhere in the chain
	assert.ErrorIs(t, rewrapped, errors.New(errors.ErrSinkWrite, ""))
	assert.ErrorIs(t, rewrapped, io.ErrClosedPipe)
}

func TestIsComparesCodes(t *testing.T) {
	a := errors.New(errors.ErrUndefined, "undefined: width")
	b := errors.New(errors.ErrUndefined, "undefined: height")

	assert.ErrorIs(t, a, b)
	assert.NotErrorIs(t, a, errors.New(errors.ErrType, "undefined: width"))
	assert.NotErrorIs(t, a, io.EOF)
}

func TestCodeOfForeignErrors(t *testing.T) {
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(io.EOF))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
	assert.False(t, errors.IsErrorCode(nil, errors.ErrUnknown))
	assert.False(t, errors.IsErrorCode(io.EOF, errors.ErrSinkWrite))
}

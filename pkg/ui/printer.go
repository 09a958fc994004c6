package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/rasviitanen/svgmacro/pkg/ui/styles"
)

// Printer writes tagged messages, styling them for terminals and
// stripping the tags everywhere else
type Printer struct {
	w      io.Writer
	format Format
}

// NewPrinter creates a printer for w. FormatAuto is resolved against w
// when it is a file and falls back to text otherwise.
func NewPrinter(w io.Writer, format Format) *Printer {
	if format == FormatAuto {
		f, _ := w.(*os.File)
		format = DetectFormat(f)
	}
	return &Printer{w: w, format: format}
}

// Format returns the resolved format
func (p *Printer) Format() Format {
	return p.format
}

// Printf formats a tagged message and writes it followed by a newline.
// String arguments are escaped so they never read as tags.
func (p *Printer) Printf(format string, args ...interface{}) {
	for i, arg := range args {
		if s, ok := arg.(string); ok {
			args[i] = styles.Escape(s)
		}
	}
	msg := styles.Expand(fmt.Sprintf(format, args...), styles.Registry, p.format != FormatTerminal)
	_, _ = fmt.Fprintln(p.w, msg)
}

package output

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/natefinch/atomic"
	"github.com/rasviitanen/svgmacro/pkg/config"
	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/rasviitanen/svgmacro/pkg/logging"
)

// WriteFile replaces path with data in a single rename, creating parent
// directories as needed. Readers never observe a partially written file.
func WriteFile(path string, data []byte) error {
	logger := logging.GetLogger("output")

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to create directory for %s", path).
				WithDetail("path", path)
		}
	}

	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}

	logger.Debug().Str("path", path).Int("bytes", len(data)).Msg("Wrote output file")
	return nil
}

// Newline reports whether a trailing newline should follow the document
// when it is written to f. With the auto policy a newline is added only
// for terminals, so redirected output stays byte-for-byte the render.
// A nil f means the destination is not a terminal.
func Newline(policy string, f *os.File) bool {
	switch policy {
	case config.NewlineAlways:
		return true
	case config.NewlineNever:
		return false
	}
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

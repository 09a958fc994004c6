// Package watch re-runs a render whenever one of its inputs changes.
package watch

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rasviitanen/svgmacro/pkg/commands/render"
	"github.com/rasviitanen/svgmacro/pkg/errors"
	"github.com/rasviitanen/svgmacro/pkg/internal/hashutil"
	"github.com/rasviitanen/svgmacro/pkg/logging"
)

// WatchOptions holds options for a watched render
type WatchOptions struct {
	Render render.RenderOptions
	// Debounce is the quiet period after the last change before a render
	Debounce time.Duration
	// OnRender receives the outcome of every render, including the first
	OnRender func(*render.RenderResult, error)
}

// Inputs returns the files a render reads: the source, the data files
// and the markdown blocks.
func Inputs(opts render.RenderOptions) []string {
	inputs := []string{opts.Path}
	if opts.Config != nil {
		inputs = append(inputs, opts.Config.Data.Files...)
	}
	inputs = append(inputs, opts.DataFiles...)
	for _, arg := range opts.Markdown {
		if _, path, ok := strings.Cut(arg, "="); ok && path != "" {
			inputs = append(inputs, path)
		}
	}
	return inputs
}

// Watch renders once, then again after every change to an input, until
// ctx is cancelled. After a successful render, a change that leaves every
// input with the same content, such as a save without edits, does not
// render. Render failures are reported to OnRender and do not stop the
// loop. Directories are watched rather than files so that editors
// replacing a file by rename are seen.
func Watch(ctx context.Context, opts WatchOptions) error {
	logger := logging.GetLogger("commands.watch")

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, errors.ErrWatch, "failed to create file watcher")
	}
	defer func() { _ = watcher.Close() }()

	inputs := Inputs(opts.Render)
	watched := map[string]bool{}
	dirs := map[string]bool{}
	for _, input := range inputs {
		abs, err := filepath.Abs(input)
		if err != nil {
			return errors.Wrapf(err, errors.ErrWatch, "failed to resolve %s", input)
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return errors.Wrapf(err, errors.ErrWatch, "failed to watch %s", dir).WithDetail("path", dir)
		}
		dirs[dir] = true
		logger.Debug().Str("dir", dir).Msg("Watching directory")
	}

	var last hashutil.Snapshot
	run := func() {
		current := hashutil.TakeSnapshot(inputs)
		if last != nil && current.Equal(last) {
			logger.Trace().Msg("Inputs unchanged, skipping render")
			return
		}

		result, err := render.Render(opts.Render)
		if err == nil {
			last = current
		}
		if opts.OnRender != nil {
			opts.OnRender(result, err)
		}
	}
	run()

	// pending is nil while no render is scheduled
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			logger.Debug().Msg("Watch stopped")
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !watched[name] {
				continue
			}
			logger.Trace().Str("file", name).Str("op", event.Op.String()).Msg("Input changed")
			pending = time.After(opts.Debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return errors.Wrap(err, errors.ErrWatch, "file watcher failed")
		case <-pending:
			pending = nil
			run()
		}
	}
}

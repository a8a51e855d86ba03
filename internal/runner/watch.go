package runner

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce collapses the burst of events an editor save produces.
const debounce = 100 * time.Millisecond

// Watch re-transforms a file whenever it changes, until ctx is cancelled.
// The parent directories are watched rather than the files, so saves that
// replace a file by renaming over it are seen. onResult is called from the
// watch goroutine after every run, successful or not.
func Watch(ctx context.Context, paths []string, opts Options, onResult func(Result, error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	logger := opts.logger()
	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		watched[abs] = true
		dir := filepath.Dir(abs)
		if !dirs[dir] {
			if err := w.Add(dir); err != nil {
				return err
			}
			dirs[dir] = true
		}
	}
	logger.Info("watcher: started", slog.Int("files", len(watched)))

	pending := make(map[string]bool)
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-fire:
			fire = nil
			for path := range pending {
				res, err := TransformFile(path, opts)
				if err != nil {
					logger.Warn("watcher: transform failed", slog.String("path", path), slog.String("error", err.Error()))
				}
				onResult(res, err)
			}
			clear(pending)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || !watched[abs] {
				continue
			}
			logger.Debug("watcher: changed", slog.String("path", abs), slog.String("op", ev.Op.String()))
			pending[abs] = true
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// errWatchWithoutFile is returned for --watch without a window file.
var errWatchWithoutFile = errors.New("wrapcheckdemo: --watch needs a window file")

// watchWindow calls rerender each time the file at path is written or
// replaced, until ctx is done. Render errors are logged and watching
// goes on, so a half-saved file does not end the session.
func watchWindow(ctx context.Context, path string, rerender func() error, logger *slog.Logger) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("wrapcheckdemo: watch %s: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("wrapcheckdemo: watch: %w", err)
	}
	defer w.Close()

	// Editors often save by renaming a new file over the old one, which
	// only the directory sees.
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("wrapcheckdemo: watch %s: %w", path, err)
	}
	logger.Info("watching", "file", target)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			logger.Debug("window changed", "op", ev.Op.String())
			if err := rerender(); err != nil {
				logger.Error("render failed", "err", err)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		}
	}
}

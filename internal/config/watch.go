package config

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch monitors path and calls onChange with the reloaded engine settings
// each time the file is written or replaced. It runs until ctx is cancelled.
//
// A reload that fails to parse or validate is logged and skipped; the caller
// keeps whatever settings it already has.
func Watch(ctx context.Context, path string, onChange func(Engine)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// Watch the directory so atomic saves (write temp + rename) are seen.
	target := filepath.Clean(path)
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}

	slog.Info("config: watching for changes", "path", target)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			engine, err := LoadEngine(target)
			if err != nil {
				slog.Error("config: reload failed, keeping previous settings", "path", target, "error", err)
				continue
			}

			slog.Info("config: reloaded", "path", target)
			onChange(engine)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config: watcher error", "error", err)
		}
	}
}

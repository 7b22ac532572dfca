package folio

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchConfig reloads the config at path whenever it is written and sends
// each valid result on the returned channel. Invalid edits are logged and
// skipped; the previous config stays in effect. The directory is watched
// rather than the file so editors that replace the file on save keep
// working. The watcher stops and the channel closes when ctx is done.
func WatchConfig(ctx context.Context, path string) (<-chan Config, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch config: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch config %s: %w", path, err)
	}

	out := make(chan Config, 1)
	go func() {
		defer close(out)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != abs {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := LoadConfig(abs)
				if err != nil {
					logger().Warn("config reload failed", "path", path, "err", err)
					continue
				}
				logger().Info("config reloaded", "path", path)
				// Keep only the newest config if the loop has not caught up.
				select {
				case <-out:
				default:
				}
				select {
				case out <- cfg:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger().Warn("config watcher error", "err", err)
			}
		}
	}()
	return out, nil
}

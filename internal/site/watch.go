package site

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceInterval is how long Watch waits after the last change before
// rebuilding.
var DebounceInterval = 500 * time.Millisecond

// Watch calls rebuild after files under dirs change, coalescing bursts of
// events. It blocks until ctx is done. Rebuild errors are logged and
// watching continues.
func Watch(ctx context.Context, dirs []string, rebuild func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	watched := 0
	for _, root := range dirs {
		if _, err := os.Stat(root); err != nil {
			log.Printf("watch: %s not found, not watching", root)
			continue
		}
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				log.Printf("watch: walking %s: %v", path, err)
				return nil
			}
			if d.IsDir() {
				if err := watcher.Add(path); err != nil {
					log.Printf("watch: failed to watch %s: %v", path, err)
					return nil
				}
				watched++
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("walking %s: %w", root, err)
		}
	}
	if watched == 0 {
		return fmt.Errorf("no directories to watch")
	}

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					log.Printf("watch: failed to watch %s: %v", event.Name, err)
				}
			}

			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(DebounceInterval, func() {
				if ctx.Err() != nil {
					return
				}
				if err := rebuild(); err != nil {
					log.Printf("watch: rebuild failed: %v", err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		}
	}
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

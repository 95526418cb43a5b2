package ingestion

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch imports every document in dir that is created or written until ctx
// is done. Bursts of events for one file are coalesced: the file is imported
// once it has been quiet for the debounce interval. Import failures are
// logged and the watch continues.
func (i *Importer) Watch(ctx context.Context, dir string) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(dir); err != nil {
		return err
	}
	i.logger.Info("watching for profile documents", "dir", dir)

	timers := make(map[string]*time.Timer)
	ready := make(chan string)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !IsDocumentFile(event.Name) {
				continue
			}
			path := event.Name
			if t, exists := timers[path]; exists {
				t.Reset(i.debounce)
				continue
			}
			timers[path] = time.AfterFunc(i.debounce, func() {
				select {
				case ready <- path:
				case <-ctx.Done():
				}
			})

		case path := <-ready:
			delete(timers, path)
			if _, err := i.ImportFiles(ctx, path); err != nil {
				i.logger.Warn("watched document import failed", "path", path, "err", err)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			i.logger.Warn("file watcher error", "dir", dir, "err", err)
		}
	}
}

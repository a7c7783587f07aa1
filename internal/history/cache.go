package history

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/avast/retry-go"
	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"
)

// signature identifies a file's content cheaply, without reading it.
type signature struct {
	size    int64
	modTime time.Time
}

// Cache memoizes Load so that repeated filter changes don't re-parse the
// CSV. The memo is keyed by the file's size and modification time and is
// invalidated when either changes.
type Cache struct {
	path   string
	sig    signature
	ds     *Dataset
	loaded bool
}

func NewCache(path string) *Cache {
	return &Cache{path: path}
}

func (c *Cache) Path() string {
	return c.path
}

// Get returns the dataset for the cached path, re-reading the file only when
// its signature has changed since the last load.
func (c *Cache) Get() (*Dataset, error) {
	st, err := os.Stat(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, c.path)
		}
		return nil, fmt.Errorf("stat %s: %w", c.path, err)
	}

	sig := signature{size: st.Size(), modTime: st.ModTime()}
	if c.loaded && sig == c.sig {
		return c.ds, nil
	}

	ds, err := Load(c.path)
	if err != nil {
		return nil, err
	}
	c.ds = ds
	c.sig = sig
	c.loaded = true
	return ds, nil
}

// Invalidate drops the memoized dataset so the next Get re-reads the file.
func (c *Cache) Invalidate() {
	c.loaded = false
}

// Watch monitors the history file and calls onReload with a fresh Dataset
// each time it changes. It runs until ctx is cancelled.
//
// Exporters may rewrite the file in place or replace it via rename (atomic
// save), so both Write and Create events trigger a reload, and the path is
// re-added afterwards in case the inode was replaced. Reloads are
// rate-limited because a single save often produces a burst of events.
func (c *Cache) Watch(ctx context.Context, onReload func(*Dataset)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(c.path); err != nil {
		return fmt.Errorf("watching %s: %w", c.path, err)
	}

	limiter := rate.NewLimiter(rate.Every(500*time.Millisecond), 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if !limiter.Allow() {
				continue
			}

			c.Invalidate()
			var ds *Dataset
			err := retry.Do(
				func() error {
					var err error
					ds, err = c.Get()
					return err
				},
				retry.Attempts(3),
				retry.Delay(100*time.Millisecond),
				retry.RetryIf(func(err error) bool {
					// A half-written file shows up as a parse failure; the
					// next attempt usually sees the completed write.
					return errors.Is(err, ErrParse)
				}),
			)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Reload failed, keeping previous data: %v\n", err)
				continue
			}
			onReload(ds)

			_ = watcher.Add(c.path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watch error: %v\n", err)
		}
	}
}

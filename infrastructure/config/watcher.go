package config

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Overrides are the few settings safe to change at runtime. Everything
// else requires a restart.
type Overrides struct {
	LogLevel           string `json:"log_level,omitempty"`
	RateLimitPerMinute int    `json:"rate_limit_per_minute,omitempty"`
	EnableCORS         *bool  `json:"enable_cors,omitempty"`
}

// Watcher tails a JSON override file and applies changes without a
// restart. Reload failures keep the previous overrides in effect.
type Watcher struct {
	path     string
	logger   *zap.Logger
	mu       sync.RWMutex
	current  Overrides
	onChange func(Overrides)
}

// NewWatcher loads the override file once and returns a watcher ready
// to run. A missing file is not an error; it means no overrides yet.
func NewWatcher(path string, onChange func(Overrides), logger *zap.Logger) (*Watcher, error) {
	w := &Watcher{
		path:     path,
		logger:   logger,
		onChange: onChange,
	}
	if err := w.reload(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	return w, nil
}

// Current returns the overrides as of the last successful reload.
func (w *Watcher) Current() Overrides {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Run blocks watching the override file until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(w.path); err != nil {
		return err
	}

	w.logger.Info("watching config overrides", zap.String("path", w.path))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := w.reload(); err != nil {
				w.logger.Warn("failed to reload config overrides",
					zap.String("path", w.path),
					zap.Error(err))
				continue
			}
			w.logger.Info("config overrides reloaded", zap.String("path", w.path))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) reload() error {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return err
	}

	var overrides Overrides
	if err := json.Unmarshal(data, &overrides); err != nil {
		return err
	}

	w.mu.Lock()
	w.current = overrides
	w.mu.Unlock()

	if w.onChange != nil {
		w.onChange(overrides)
	}
	return nil
}

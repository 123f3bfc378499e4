package config

import (
	"context"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/milk9111/tilegrid/layer"
)

// Reloader keeps a live layer stack in step with its config file.
type Reloader struct {
	path   string
	stack  *layer.Stack
	logger *log.Logger
	// mu, when set, is held while transforms change so that readers which
	// take the same lock never see a half-applied reload.
	mu sync.Locker
	// OnApply, when set, is called after each successful reload.
	OnApply func(*Config)
}

type ReloaderOption func(*Reloader)

func WithLogger(l *log.Logger) ReloaderOption {
	return func(r *Reloader) {
		r.logger = l
	}
}

func WithLocker(mu sync.Locker) ReloaderOption {
	return func(r *Reloader) {
		r.mu = mu
	}
}

func NewReloader(path string, stack *layer.Stack, opts ...ReloaderOption) *Reloader {
	r := &Reloader{path: path, stack: stack}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return r
}

// Reload reads the config file and applies it to the stack. A file that
// fails to load or validate leaves the stack untouched.
func (r *Reloader) Reload() error {
	cfg, err := Load(r.path)
	if err != nil {
		r.logger.Warn("config reload rejected", "path", r.path, "err", err)
		return err
	}
	if r.mu != nil {
		r.mu.Lock()
	}
	err = Apply(cfg, r.stack)
	if r.mu != nil {
		r.mu.Unlock()
	}
	if err != nil {
		r.logger.Warn("config reload rejected", "path", r.path, "err", err)
		return err
	}
	r.logger.Info("config reloaded", "path", r.path, "layers", len(cfg.Layers))
	for _, l := range cfg.Layers {
		r.logger.Debug("layer transform", "layer", l.Name, "type", l.Grid.Type,
			"scale", l.Grid.ScaleOrDefault(), "rotation", l.Grid.Rotation,
			"x_shift", l.Grid.XShift, "y_shift", l.Grid.YShift)
	}
	if r.OnApply != nil {
		r.OnApply(cfg)
	}
	return nil
}

// Run watches the config file and reloads on every change until ctx is
// done. Rejected reloads are logged and do not stop the loop.
func (r *Reloader) Run(ctx context.Context) error {
	w, err := NewWatcher(r.path)
	if err != nil {
		return err
	}
	defer w.Close()

	r.logger.Info("watching config", "path", r.path)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-w.Events:
			if !ok {
				return nil
			}
			_ = r.Reload()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.logger.Error("config watcher", "err", err)
		}
	}
}

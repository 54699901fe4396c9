// Package logger builds the application slog.Logger for an environment.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// New returns a logger writing to w. local writes text at debug level, dev
// writes JSON at debug level and prod writes text at info level.
func New(env string, w io.Writer) *slog.Logger {
	return slog.New(handlerFor(env, w))
}

// NewWithErrorFile is New plus a copy of every error record appended to
// path. The returned close func releases the file.
func NewWithErrorFile(env string, w io.Writer, path string) (*slog.Logger, func() error, error) {
	core := handlerFor(env, w)
	if path == "" {
		return slog.New(core), func() error { return nil }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return slog.New(core), func() error { return nil }, fmt.Errorf("open error log: %w", err)
	}

	h := &dualHandler{
		core:   core,
		errors: slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelError}),
	}
	return slog.New(h), f.Close, nil
}

// Err wraps an error as a log attribute.
func Err(err error) slog.Attr {
	return slog.Attr{Key: "error", Value: slog.StringValue(err.Error())}
}

func handlerFor(env string, w io.Writer) slog.Handler {
	level := slog.LevelDebug
	if env == envProd {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	switch env {
	case envDev:
		return slog.NewJSONHandler(w, opts)
	default:
		return slog.NewTextHandler(w, opts)
	}
}

// dualHandler sends everything to core and error records to errors as well.
type dualHandler struct {
	core   slog.Handler
	errors slog.Handler
}

func (h *dualHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.core.Enabled(ctx, lvl) || h.errors.Enabled(ctx, lvl)
}

func (h *dualHandler) Handle(ctx context.Context, r slog.Record) error {
	if h.core.Enabled(ctx, r.Level) {
		if err := h.core.Handle(ctx, r); err != nil {
			return err
		}
	}
	if r.Level >= slog.LevelError && h.errors.Enabled(ctx, r.Level) {
		return h.errors.Handle(ctx, r.Clone())
	}
	return nil
}

func (h *dualHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dualHandler{core: h.core.WithAttrs(attrs), errors: h.errors.WithAttrs(attrs)}
}

func (h *dualHandler) WithGroup(name string) slog.Handler {
	return &dualHandler{core: h.core.WithGroup(name), errors: h.errors.WithGroup(name)}
}

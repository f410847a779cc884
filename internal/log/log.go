// Package log provides the component loggers used by ssmshape.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Component names the part of ssmshape that emitted a record.
type Component string

const (
	ComponentCLI      Component = "cli"
	ComponentCodec    Component = "codec"
	ComponentValidate Component = "validate"
	ComponentWatch    Component = "watch"
	ComponentConfig   Component = "config"
)

// Format selects how records are rendered.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat parses a --log-format value. The empty string selects text.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(s)) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown log format %q (want text or json)", s)
}

var (
	defaultLogger atomic.Pointer[slog.Logger]
	output        atomic.Pointer[slog.Handler]
)

func init() {
	setOutput(New(os.Stderr, FormatText, nil).Handler())
	defaultLogger.Store(slog.New(&swapHandler{}))
}

func setOutput(h slog.Handler) {
	output.Store(&h)
}

// New creates a logger writing to w in the given format. A nil opts follows
// the process-wide level set with SetLevel.
func New(w io.Writer, format Format, opts *HandlerOptions) *slog.Logger {
	if opts == nil {
		opts = &HandlerOptions{Level: DynamicLevel{}}
	}
	if format == FormatJSON {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     opts.Level,
			AddSource: opts.AddSource,
		}))
	}
	return slog.New(NewColorHandler(w, opts))
}

// Configure redirects the default logger to w. Loggers obtained from For
// before the call follow the change.
func Configure(w io.Writer, format Format) {
	setOutput(New(w, format, nil).Handler())
}

// swapHandler forwards to the handler installed by Configure, replaying the
// attrs and groups added to it since.
type swapHandler struct {
	ops []func(slog.Handler) slog.Handler
}

func (h *swapHandler) current() slog.Handler {
	cur := *output.Load()
	for _, op := range h.ops {
		cur = op(cur)
	}
	return cur
}

func (h *swapHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.current().Enabled(ctx, level)
}

func (h *swapHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.current().Handle(ctx, r)
}

func (h *swapHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h.with(func(next slog.Handler) slog.Handler { return next.WithAttrs(attrs) })
}

func (h *swapHandler) WithGroup(name string) slog.Handler {
	return h.with(func(next slog.Handler) slog.Handler { return next.WithGroup(name) })
}

func (h *swapHandler) with(op func(slog.Handler) slog.Handler) *swapHandler {
	ops := make([]func(slog.Handler) slog.Handler, len(h.ops), len(h.ops)+1)
	copy(ops, h.ops)
	return &swapHandler{ops: append(ops, op)}
}

// For returns a logger tagged with component.
func For(component Component) *slog.Logger {
	return Default().With("component", string(component))
}

// Default returns the default logger.
func Default() *slog.Logger {
	return defaultLogger.Load()
}

// SetDefault sets the default logger.
func SetDefault(logger *slog.Logger) {
	defaultLogger.Store(logger)
}

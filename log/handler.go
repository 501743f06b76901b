package log

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
)

// Handler implements slog.Handler on top of the host logger.
type Handler struct {
	logger *Logger
	prefix string // accumulated group prefix, "a.b."
	attrs  string // pre-formatted attributes from WithAttrs
	opts   handlerConfig
}

// HandlerOption configures the Handler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	level     slog.Leveler
	addSource bool
}

// defaultHandlerConfig returns the default configuration.
func defaultHandlerConfig() handlerConfig {
	return handlerConfig{
		level:     slog.LevelInfo,
		addSource: true,
	}
}

// WithLevel sets the minimum log level to report.
// Records below this level never reach the host.
func WithLevel(level slog.Leveler) HandlerOption {
	return func(c *handlerConfig) {
		c.level = level
	}
}

// WithSource controls whether the record's file and line are passed to the
// host. Enabled by default.
func WithSource(enabled bool) HandlerOption {
	return func(c *handlerConfig) {
		c.addSource = enabled
	}
}

// NewHandler creates a Handler writing through logger.
func NewHandler(logger *Logger, opts ...HandlerOption) *Handler {
	cfg := defaultHandlerConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Handler{logger: logger, opts: cfg}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.level.Level()
}

// Handle formats the record as "message key=value ..." and sends it to the
// host with a severity derived from its level.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	var b strings.Builder
	b.WriteString(record.Message)
	b.WriteString(h.attrs)
	record.Attrs(func(attr slog.Attr) bool {
		appendAttr(&b, h.prefix, attr)
		return true
	})

	var file string
	var line int
	if h.opts.addSource && record.PC != 0 {
		frame, _ := runtime.CallersFrames([]uintptr{record.PC}).Next()
		file, line = frame.File, frame.Line
	}

	return h.logger.Log(typeForLevel(record.Level), b.String(), file, line)
}

// WithAttrs returns a new Handler that includes the given attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	var b strings.Builder
	b.WriteString(h.attrs)
	for _, attr := range attrs {
		appendAttr(&b, h.prefix, attr)
	}
	newHandler := *h
	newHandler.attrs = b.String()
	return &newHandler
}

// WithGroup returns a new Handler that qualifies later attributes with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newHandler := *h
	newHandler.prefix = h.prefix + name + "."
	return &newHandler
}

func typeForLevel(level slog.Level) Type {
	switch {
	case level >= slog.LevelError:
		return TypeError
	case level >= slog.LevelWarn:
		return TypeWarning
	default:
		return TypeInfo
	}
}

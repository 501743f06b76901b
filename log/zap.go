package log

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Core implements zapcore.Core on top of the host logger.
type Core struct {
	zapcore.LevelEnabler
	logger *Logger
	fields []zapcore.Field
}

// NewCore creates a zap core writing through logger for levels accepted by
// enabler.
func NewCore(logger *Logger, enabler zapcore.LevelEnabler) *Core {
	return &Core{LevelEnabler: enabler, logger: logger}
}

// NewZap returns a zap.Logger backed by the host logger, with caller
// annotation so the host log shows the Go source location.
func NewZap(logger *Logger, enabler zapcore.LevelEnabler, opts ...zap.Option) *zap.Logger {
	return zap.New(NewCore(logger, enabler), append([]zap.Option{zap.AddCaller()}, opts...)...)
}

// With returns a core that adds fields to every entry.
func (c *Core) With(fields []zapcore.Field) zapcore.Core {
	clone := *c
	clone.fields = append(slices.Clip(c.fields), fields...)
	return &clone
}

// Check adds c to ce when the entry's level is enabled.
func (c *Core) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if c.Enabled(ent.Level) {
		return ce.AddCore(ent, c)
	}
	return ce
}

// Write formats the entry as "[name] message key=value ..." and sends it to
// the host.
func (c *Core) Write(ent zapcore.Entry, fields []zapcore.Field) error {
	enc := zapcore.NewMapObjectEncoder()
	for _, f := range c.fields {
		f.AddTo(enc)
	}
	for _, f := range fields {
		f.AddTo(enc)
	}

	var b strings.Builder
	if ent.LoggerName != "" {
		b.WriteByte('[')
		b.WriteString(ent.LoggerName)
		b.WriteString("] ")
	}
	b.WriteString(ent.Message)

	keys := make([]string, 0, len(enc.Fields))
	for k := range enc.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(quoteIfNeeded(formatField(enc.Fields[k])))
	}

	var file string
	var line int
	if ent.Caller.Defined {
		file, line = ent.Caller.File, ent.Caller.Line
	}
	return c.logger.Log(typeForZapLevel(ent.Level), b.String(), file, line)
}

// Sync is a no-op; the host writes synchronously.
func (c *Core) Sync() error {
	return nil
}

func formatField(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	}
	if data, err := json.Marshal(v); err == nil {
		return string(data)
	}
	return fmt.Sprintf("%v", v)
}

func typeForZapLevel(level zapcore.Level) Type {
	switch {
	case level >= zapcore.ErrorLevel:
		return TypeError
	case level == zapcore.WarnLevel:
		return TypeWarning
	default:
		return TypeInfo
	}
}

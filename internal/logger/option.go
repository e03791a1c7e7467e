package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// leveledCore raises the minimum level of a wrapped core without touching
// the shared atomic level.
type leveledCore struct {
	zapcore.Core

	// min is the lowest level this core lets through.
	min zapcore.Level
}

// Enabled reports whether l reaches the minimum level.
func (c *leveledCore) Enabled(l zapcore.Level) bool {
	return c.min.Enabled(l) && c.Core.Enabled(l)
}

// Check adds the core to ce if the entry reaches the minimum level.
//
//nolint:gocritic // AddCore requires ent to be passed by value.
func (c *leveledCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if !c.Enabled(ent.Level) {
		return ce
	}

	return ce.AddCore(ent, c)
}

// With keeps the minimum level on child cores.
//
//nolint:ireturn,nolintlint // Returning zapcore.Core is intended for zap integration.
func (c *leveledCore) With(fields []zapcore.Field) zapcore.Core {
	return &leveledCore{
		Core: c.Core.With(fields),
		min:  c.min,
	}
}

// WithLevel is a zap option that hides entries below lvl. One-shot commands
// use it to print only the face and real problems.
//
//nolint:ireturn,nolintlint // Returning zap.Option is intended for zap integration.
func WithLevel(lvl zapcore.Level) zap.Option {
	return zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return &leveledCore{
			Core: core,
			min:  lvl,
		}
	})
}

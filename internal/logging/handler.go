package logging

import (
	"io"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// Controls how records are rendered.
type Options struct {
	Name    string     // Logger name shown on each line. Empty omits it.
	Level   slog.Level // Minimum level.
	Verbose bool       // Add timestamps and the calling source location.
	Color   bool       // Colorize level names, for terminals.
}

// A slog handler backed by a zap console core with an adjustable level.
type Handler struct {
	slog.Handler
	level zap.AtomicLevel
}

// Creates a [Handler] that writes to w.
func NewHandler(w io.Writer, opts Options) *Handler {
	level := zap.NewAtomicLevelAt(zapLevel(opts.Level))

	enc := zapcore.EncoderConfig{
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		LineEnding:       zapcore.DefaultLineEnding,
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
	if opts.Color {
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	if opts.Verbose {
		enc.TimeKey = "time"
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		enc.CallerKey = "caller"
		enc.EncodeCaller = zapcore.ShortCallerEncoder
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)

	hopts := []zapslog.HandlerOption{zapslog.WithCaller(opts.Verbose)}
	if opts.Name != "" {
		hopts = append(hopts, zapslog.WithName(opts.Name))
	}

	return &Handler{
		Handler: zapslog.NewHandler(core, hopts...),
		level:   level,
	}
}

// Changes the minimum level of this handler and all handlers derived from it.
func (h *Handler) SetLevel(l slog.Level) {
	h.level.SetLevel(zapLevel(l))
}

// Returns the current minimum level.
func (h *Handler) Level() slog.Level {
	switch h.level.Level() {
	case zapcore.DebugLevel:
		return slog.LevelDebug
	case zapcore.InfoLevel:
		return slog.LevelInfo
	case zapcore.WarnLevel:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs), level: h.level}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name), level: h.level}
}

// Maps a slog level onto the nearest zap level at or below it.
func zapLevel(l slog.Level) zapcore.Level {
	switch {
	case l >= slog.LevelError:
		return zapcore.ErrorLevel
	case l >= slog.LevelWarn:
		return zapcore.WarnLevel
	case l >= slog.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

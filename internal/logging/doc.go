// Package logging provides the slog handler relpack logs through.
//
// Records are encoded by zap's console encoder. The level is held in a
// [zap.AtomicLevel] shared by the handler and every handler derived from it
// with WithAttrs or WithGroup, so it can be changed after the logger has
// been installed as the slog default.
//
// Example usage:
//
//	h := logging.NewHandler(os.Stderr, logging.Options{Level: slog.LevelInfo})
//	slog.SetDefault(slog.New(h))
//	h.SetLevel(slog.LevelDebug)
package logging

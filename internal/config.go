package internal

import (
	"log/slog"
	"strconv"
)

// Log modes seeded from linker flags.
//
// Flags given on the command line take precedence; these only provide the
// defaults a release build ships with.
type Modes struct {
	Quiet   bool // Suppress informational output.
	Debug   bool // Enable debug output.
	Verbose bool // Include caller and stack detail in log lines.
}

// Returns the modes baked into the binary via ldflags.
//
// Values that fail to parse as booleans are treated as false.
func BuildModes() Modes {
	return Modes{
		Quiet:   parseFlag(rawQuiet),
		Debug:   parseFlag(rawDebug),
		Verbose: parseFlag(rawVerbose),
	}
}

// Combines the receiver with another set of modes. A mode is enabled if it is
// enabled in either.
func (m Modes) Merge(o Modes) Modes {
	return Modes{
		Quiet:   m.Quiet || o.Quiet,
		Debug:   m.Debug || o.Debug,
		Verbose: m.Verbose || o.Verbose,
	}
}

// Returns the slog level for the modes. Debug wins over quiet.
func (m Modes) Level() slog.Level {
	if m.Debug {
		return slog.LevelDebug
	}
	if m.Quiet {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}

func parseFlag(raw string) bool {
	v, err := strconv.ParseBool(raw)
	return err == nil && v
}

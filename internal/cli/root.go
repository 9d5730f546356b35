package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/cruciblehq/relpack/internal"
	"github.com/cruciblehq/relpack/internal/logging"
)

// Represents the root command for relpack.
var RootCmd struct {
	Quiet   bool       `short:"q" help:"Suppress informational output."`
	Verbose bool       `short:"v" help:"Enable verbose output."`
	Debug   bool       `short:"d" help:"Enable debug output."`
	Config  string     `short:"c" help:"Config file to load instead of relpack.yaml." placeholder:"PATH" type:"path"`
	Root    string     `short:"C" help:"Repository root." default:"." placeholder:"DIR" type:"existingdir"`
	Package PackageCmd `cmd:"" help:"Build the service in a container and package the release archive."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Release packager.\n\nBuilds the service binary in an isolated container and packs it with its unit file into a compressed archive."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Creates a logger for the given modes, writing to stderr.
func Logger(modes internal.Modes) *slog.Logger {
	return slog.New(logging.NewHandler(os.Stderr, logging.Options{
		Name:    internal.Name,
		Level:   modes.Level(),
		Verbose: modes.Verbose,
		Color:   isatty(os.Stderr),
	}))
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	modes := internal.BuildModes().Merge(internal.Modes{
		Quiet:   RootCmd.Quiet,
		Debug:   RootCmd.Debug,
		Verbose: RootCmd.Verbose,
	})

	// Verbose output needs a different encoder, so the handler is replaced.
	if !modes.Verbose {
		if handler, ok := slog.Default().Handler().(*logging.Handler); ok {
			handler.SetLevel(modes.Level())
			return
		}
	}

	slog.SetDefault(Logger(modes))
}

// Whether the given file is an interactive terminal.
func isatty(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// Parses flags, configures logging and dispatches relpack's commands.
//
// relpack accepts the following global flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Enable verbose output.
//	-d, --debug     Enable debug output.
//	-c, --config    Config file to load instead of relpack.yaml.
//	-C, --root      Repository root (default ".").
//
// The package command runs the release pipeline; version prints build
// information. Flags override build-time defaults set via linker flags. After
// parsing, the global logger is reconfigured to reflect the final level and
// verbosity before the command runs. SIGINT and SIGTERM cancel the command's
// context, which stops the running external tool.
package cli

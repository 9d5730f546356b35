// Package command runs external tools on behalf of the release pipeline.
//
// Every stage that touches the container runtime, the archiver or the
// ownership of a file goes through a [Runner]. The production implementation,
// [Exec], echoes each command line before starting it, streams the child's
// output to the terminal, and turns a non-zero exit into an error. Tests
// substitute the recorder in the commandtest package.
//
// Example usage:
//
//	r := command.New()
//	err := r.Run(ctx, command.Cmd{
//	    Name: "docker",
//	    Args: []string{"build", "-t", "app-image", "."},
//	}.WithSudo(true))
//	if err != nil {
//	    return err
//	}
package command

// Package release runs the packaging pipeline end to end.
//
// A run resolves the release version from the project manifest, builds the
// environment image, runs the build container with its cache volumes and the
// output bind mount, hands the produced binary to the invoking user, and packs
// the binary and its companion files into a compressed archive. The archive
// can optionally be checksummed and published.
//
// Stages run strictly in that order and the first failure ends the run. The
// version is resolved before anything else, so a broken manifest aborts the
// run before any container or archive command is issued. Nothing is rolled
// back: a failed run may leave behind a built image, an exited container or
// a binary with container ownership.
//
// Example usage:
//
//	cfg, err := config.Load(".", "")
//	if err != nil {
//	    return err
//	}
//	res, err := release.New(cfg, command.New()).Run(ctx)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Archive)
package release

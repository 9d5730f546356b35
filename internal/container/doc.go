// Package container drives the isolated build through a container runtime CLI.
//
// A build has two steps. The build-environment image is built from the
// repository's Dockerfile with the repository root as context, then a
// container is started from it with the cache mounts and the output bind
// mount attached. Whatever runs inside the container is opaque: it either
// exits zero after writing the binary into the output mount, or fails.
//
// Cache mounts come in two flavours that may be combined: named volumes
// managed by the runtime, and a single host directory bind-mounted as a cache.
// Neither is cleared between runs; reusing them is what makes repeated
// releases fast. The output bind mount is mandatory and is the only channel
// through which the binary reaches the host.
//
// Example usage:
//
//	r := container.New(cfg, command.New())
//	if err := r.Build(ctx, container.BuildOptions{Version: "1.2.3"}); err != nil {
//	    return err
//	}
//	if err := r.Run(ctx); err != nil {
//	    return err
//	}
package container

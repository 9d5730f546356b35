// Provides filesystem locations used by relpack.
//
// User-level configuration follows XDG conventions on Linux and the platform
// conventions elsewhere. Repository-relative locations (manifest, output
// directory, per-repository config file) are resolved against an explicit
// repository root rather than the working directory.
package paths
